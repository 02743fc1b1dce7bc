// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/courseforge/ent/lessonrunevent"
)

// LessonRunEventCreate is the builder for creating a LessonRunEvent entity.
type LessonRunEventCreate struct {
	config
	mutation *LessonRunEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LessonRunEventCreate) SetSequence(v int64) *LessonRunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LessonRunEventCreate) SetTimestamp(v time.Time) *LessonRunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableTimestamp(v *time.Time) *LessonRunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *LessonRunEventCreate) SetTopic(v string) *LessonRunEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *LessonRunEventCreate) SetSlug(v string) *LessonRunEventCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *LessonRunEventCreate) SetDifficulty(v string) *LessonRunEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetOutputDir sets the "output_dir" field.
func (_c *LessonRunEventCreate) SetOutputDir(v string) *LessonRunEventCreate {
	_c.mutation.SetOutputDir(v)
	return _c
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableOutputDir(v *string) *LessonRunEventCreate {
	if v != nil {
		_c.SetOutputDir(*v)
	}
	return _c
}

// SetModulesTotal sets the "modules_total" field.
func (_c *LessonRunEventCreate) SetModulesTotal(v int) *LessonRunEventCreate {
	_c.mutation.SetModulesTotal(v)
	return _c
}

// SetNillableModulesTotal sets the "modules_total" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableModulesTotal(v *int) *LessonRunEventCreate {
	if v != nil {
		_c.SetModulesTotal(*v)
	}
	return _c
}

// SetModulesSucceeded sets the "modules_succeeded" field.
func (_c *LessonRunEventCreate) SetModulesSucceeded(v int) *LessonRunEventCreate {
	_c.mutation.SetModulesSucceeded(v)
	return _c
}

// SetNillableModulesSucceeded sets the "modules_succeeded" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableModulesSucceeded(v *int) *LessonRunEventCreate {
	if v != nil {
		_c.SetModulesSucceeded(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *LessonRunEventCreate) SetQualityScore(v float64) *LessonRunEventCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableQualityScore(v *float64) *LessonRunEventCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *LessonRunEventCreate) SetPassed(v bool) *LessonRunEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetAiCalls sets the "ai_calls" field.
func (_c *LessonRunEventCreate) SetAiCalls(v int) *LessonRunEventCreate {
	_c.mutation.SetAiCalls(v)
	return _c
}

// SetNillableAiCalls sets the "ai_calls" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableAiCalls(v *int) *LessonRunEventCreate {
	if v != nil {
		_c.SetAiCalls(*v)
	}
	return _c
}

// SetCacheHits sets the "cache_hits" field.
func (_c *LessonRunEventCreate) SetCacheHits(v int) *LessonRunEventCreate {
	_c.mutation.SetCacheHits(v)
	return _c
}

// SetNillableCacheHits sets the "cache_hits" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableCacheHits(v *int) *LessonRunEventCreate {
	if v != nil {
		_c.SetCacheHits(*v)
	}
	return _c
}

// SetFallbackCalls sets the "fallback_calls" field.
func (_c *LessonRunEventCreate) SetFallbackCalls(v int) *LessonRunEventCreate {
	_c.mutation.SetFallbackCalls(v)
	return _c
}

// SetNillableFallbackCalls sets the "fallback_calls" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableFallbackCalls(v *int) *LessonRunEventCreate {
	if v != nil {
		_c.SetFallbackCalls(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LessonRunEventCreate) SetDurationMs(v int64) *LessonRunEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableDurationMs(v *int64) *LessonRunEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LessonRunEventCreate) SetErrorMessage(v string) *LessonRunEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LessonRunEventCreate) SetNillableErrorMessage(v *string) *LessonRunEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the LessonRunEventMutation object of the builder.
func (_c *LessonRunEventCreate) Mutation() *LessonRunEventMutation {
	return _c.mutation
}

// Save creates the LessonRunEvent in the database.
func (_c *LessonRunEventCreate) Save(ctx context.Context) (*LessonRunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonRunEventCreate) SaveX(ctx context.Context) *LessonRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonRunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonRunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonRunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lessonrunevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.OutputDir(); !ok {
		v := lessonrunevent.DefaultOutputDir
		_c.mutation.SetOutputDir(v)
	}
	if _, ok := _c.mutation.ModulesTotal(); !ok {
		v := lessonrunevent.DefaultModulesTotal
		_c.mutation.SetModulesTotal(v)
	}
	if _, ok := _c.mutation.ModulesSucceeded(); !ok {
		v := lessonrunevent.DefaultModulesSucceeded
		_c.mutation.SetModulesSucceeded(v)
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		v := lessonrunevent.DefaultQualityScore
		_c.mutation.SetQualityScore(v)
	}
	if _, ok := _c.mutation.AiCalls(); !ok {
		v := lessonrunevent.DefaultAiCalls
		_c.mutation.SetAiCalls(v)
	}
	if _, ok := _c.mutation.CacheHits(); !ok {
		v := lessonrunevent.DefaultCacheHits
		_c.mutation.SetCacheHits(v)
	}
	if _, ok := _c.mutation.FallbackCalls(); !ok {
		v := lessonrunevent.DefaultFallbackCalls
		_c.mutation.SetFallbackCalls(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := lessonrunevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := lessonrunevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonRunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonRunEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonRunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "LessonRunEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := lessonrunevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "LessonRunEvent.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := lessonrunevent.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "LessonRunEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := lessonrunevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputDir(); !ok {
		return &ValidationError{Name: "output_dir", err: errors.New(`ent: missing required field "LessonRunEvent.output_dir"`)}
	}
	if _, ok := _c.mutation.ModulesTotal(); !ok {
		return &ValidationError{Name: "modules_total", err: errors.New(`ent: missing required field "LessonRunEvent.modules_total"`)}
	}
	if _, ok := _c.mutation.ModulesSucceeded(); !ok {
		return &ValidationError{Name: "modules_succeeded", err: errors.New(`ent: missing required field "LessonRunEvent.modules_succeeded"`)}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "LessonRunEvent.quality_score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "LessonRunEvent.passed"`)}
	}
	if _, ok := _c.mutation.AiCalls(); !ok {
		return &ValidationError{Name: "ai_calls", err: errors.New(`ent: missing required field "LessonRunEvent.ai_calls"`)}
	}
	if _, ok := _c.mutation.CacheHits(); !ok {
		return &ValidationError{Name: "cache_hits", err: errors.New(`ent: missing required field "LessonRunEvent.cache_hits"`)}
	}
	if _, ok := _c.mutation.FallbackCalls(); !ok {
		return &ValidationError{Name: "fallback_calls", err: errors.New(`ent: missing required field "LessonRunEvent.fallback_calls"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "LessonRunEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "LessonRunEvent.error_message"`)}
	}
	return nil
}

func (_c *LessonRunEventCreate) sqlSave(ctx context.Context) (*LessonRunEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonRunEventCreate) createSpec() (*LessonRunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonRunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonrunevent.Table, sqlgraph.NewFieldSpec(lessonrunevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lessonrunevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lessonrunevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(lessonrunevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(lessonrunevent.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(lessonrunevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.OutputDir(); ok {
		_spec.SetField(lessonrunevent.FieldOutputDir, field.TypeString, value)
		_node.OutputDir = value
	}
	if value, ok := _c.mutation.ModulesTotal(); ok {
		_spec.SetField(lessonrunevent.FieldModulesTotal, field.TypeInt, value)
		_node.ModulesTotal = value
	}
	if value, ok := _c.mutation.ModulesSucceeded(); ok {
		_spec.SetField(lessonrunevent.FieldModulesSucceeded, field.TypeInt, value)
		_node.ModulesSucceeded = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(lessonrunevent.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(lessonrunevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.AiCalls(); ok {
		_spec.SetField(lessonrunevent.FieldAiCalls, field.TypeInt, value)
		_node.AiCalls = value
	}
	if value, ok := _c.mutation.CacheHits(); ok {
		_spec.SetField(lessonrunevent.FieldCacheHits, field.TypeInt, value)
		_node.CacheHits = value
	}
	if value, ok := _c.mutation.FallbackCalls(); ok {
		_spec.SetField(lessonrunevent.FieldFallbackCalls, field.TypeInt, value)
		_node.FallbackCalls = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(lessonrunevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(lessonrunevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// LessonRunEventCreateBulk is the builder for creating many LessonRunEvent entities in bulk.
type LessonRunEventCreateBulk struct {
	config
	err      error
	builders []*LessonRunEventCreate
}

// Save creates the LessonRunEvent entities in the database.
func (_c *LessonRunEventCreateBulk) Save(ctx context.Context) ([]*LessonRunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonRunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonRunEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonRunEventCreateBulk) SaveX(ctx context.Context) []*LessonRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonRunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonRunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
