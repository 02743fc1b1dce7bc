// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/courseforge/ent/lessonrunevent"
	"github.com/abhisek/courseforge/ent/predicate"
)

// LessonRunEventUpdate is the builder for updating LessonRunEvent entities.
type LessonRunEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonRunEventMutation
}

// Where appends a list predicates to the LessonRunEventUpdate builder.
func (_u *LessonRunEventUpdate) Where(ps ...predicate.LessonRunEvent) *LessonRunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonRunEventUpdate) SetTopic(v string) *LessonRunEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableTopic(v *string) *LessonRunEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *LessonRunEventUpdate) SetSlug(v string) *LessonRunEventUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableSlug(v *string) *LessonRunEventUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LessonRunEventUpdate) SetDifficulty(v string) *LessonRunEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableDifficulty(v *string) *LessonRunEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *LessonRunEventUpdate) SetOutputDir(v string) *LessonRunEventUpdate {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableOutputDir(v *string) *LessonRunEventUpdate {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// SetModulesTotal sets the "modules_total" field.
func (_u *LessonRunEventUpdate) SetModulesTotal(v int) *LessonRunEventUpdate {
	_u.mutation.ResetModulesTotal()
	_u.mutation.SetModulesTotal(v)
	return _u
}

// SetNillableModulesTotal sets the "modules_total" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableModulesTotal(v *int) *LessonRunEventUpdate {
	if v != nil {
		_u.SetModulesTotal(*v)
	}
	return _u
}

// AddModulesTotal adds value to the "modules_total" field.
func (_u *LessonRunEventUpdate) AddModulesTotal(v int) *LessonRunEventUpdate {
	_u.mutation.AddModulesTotal(v)
	return _u
}

// SetModulesSucceeded sets the "modules_succeeded" field.
func (_u *LessonRunEventUpdate) SetModulesSucceeded(v int) *LessonRunEventUpdate {
	_u.mutation.ResetModulesSucceeded()
	_u.mutation.SetModulesSucceeded(v)
	return _u
}

// SetNillableModulesSucceeded sets the "modules_succeeded" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableModulesSucceeded(v *int) *LessonRunEventUpdate {
	if v != nil {
		_u.SetModulesSucceeded(*v)
	}
	return _u
}

// AddModulesSucceeded adds value to the "modules_succeeded" field.
func (_u *LessonRunEventUpdate) AddModulesSucceeded(v int) *LessonRunEventUpdate {
	_u.mutation.AddModulesSucceeded(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *LessonRunEventUpdate) SetQualityScore(v float64) *LessonRunEventUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableQualityScore(v *float64) *LessonRunEventUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *LessonRunEventUpdate) AddQualityScore(v float64) *LessonRunEventUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *LessonRunEventUpdate) SetPassed(v bool) *LessonRunEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillablePassed(v *bool) *LessonRunEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAiCalls sets the "ai_calls" field.
func (_u *LessonRunEventUpdate) SetAiCalls(v int) *LessonRunEventUpdate {
	_u.mutation.ResetAiCalls()
	_u.mutation.SetAiCalls(v)
	return _u
}

// SetNillableAiCalls sets the "ai_calls" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableAiCalls(v *int) *LessonRunEventUpdate {
	if v != nil {
		_u.SetAiCalls(*v)
	}
	return _u
}

// AddAiCalls adds value to the "ai_calls" field.
func (_u *LessonRunEventUpdate) AddAiCalls(v int) *LessonRunEventUpdate {
	_u.mutation.AddAiCalls(v)
	return _u
}

// SetCacheHits sets the "cache_hits" field.
func (_u *LessonRunEventUpdate) SetCacheHits(v int) *LessonRunEventUpdate {
	_u.mutation.ResetCacheHits()
	_u.mutation.SetCacheHits(v)
	return _u
}

// SetNillableCacheHits sets the "cache_hits" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableCacheHits(v *int) *LessonRunEventUpdate {
	if v != nil {
		_u.SetCacheHits(*v)
	}
	return _u
}

// AddCacheHits adds value to the "cache_hits" field.
func (_u *LessonRunEventUpdate) AddCacheHits(v int) *LessonRunEventUpdate {
	_u.mutation.AddCacheHits(v)
	return _u
}

// SetFallbackCalls sets the "fallback_calls" field.
func (_u *LessonRunEventUpdate) SetFallbackCalls(v int) *LessonRunEventUpdate {
	_u.mutation.ResetFallbackCalls()
	_u.mutation.SetFallbackCalls(v)
	return _u
}

// SetNillableFallbackCalls sets the "fallback_calls" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableFallbackCalls(v *int) *LessonRunEventUpdate {
	if v != nil {
		_u.SetFallbackCalls(*v)
	}
	return _u
}

// AddFallbackCalls adds value to the "fallback_calls" field.
func (_u *LessonRunEventUpdate) AddFallbackCalls(v int) *LessonRunEventUpdate {
	_u.mutation.AddFallbackCalls(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LessonRunEventUpdate) SetDurationMs(v int64) *LessonRunEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableDurationMs(v *int64) *LessonRunEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LessonRunEventUpdate) AddDurationMs(v int64) *LessonRunEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LessonRunEventUpdate) SetErrorMessage(v string) *LessonRunEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LessonRunEventUpdate) SetNillableErrorMessage(v *string) *LessonRunEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the LessonRunEventMutation object of the builder.
func (_u *LessonRunEventUpdate) Mutation() *LessonRunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonRunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonRunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonRunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonRunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonRunEventUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonrunevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := lessonrunevent.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := lessonrunevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonRunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonrunevent.Table, lessonrunevent.Columns, sqlgraph.NewFieldSpec(lessonrunevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonrunevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(lessonrunevent.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(lessonrunevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(lessonrunevent.FieldOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModulesTotal(); ok {
		_spec.SetField(lessonrunevent.FieldModulesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModulesTotal(); ok {
		_spec.AddField(lessonrunevent.FieldModulesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModulesSucceeded(); ok {
		_spec.SetField(lessonrunevent.FieldModulesSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModulesSucceeded(); ok {
		_spec.AddField(lessonrunevent.FieldModulesSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(lessonrunevent.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(lessonrunevent.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(lessonrunevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AiCalls(); ok {
		_spec.SetField(lessonrunevent.FieldAiCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiCalls(); ok {
		_spec.AddField(lessonrunevent.FieldAiCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheHits(); ok {
		_spec.SetField(lessonrunevent.FieldCacheHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheHits(); ok {
		_spec.AddField(lessonrunevent.FieldCacheHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FallbackCalls(); ok {
		_spec.SetField(lessonrunevent.FieldFallbackCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFallbackCalls(); ok {
		_spec.AddField(lessonrunevent.FieldFallbackCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(lessonrunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(lessonrunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(lessonrunevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonrunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonRunEventUpdateOne is the builder for updating a single LessonRunEvent entity.
type LessonRunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonRunEventMutation
}

// SetTopic sets the "topic" field.
func (_u *LessonRunEventUpdateOne) SetTopic(v string) *LessonRunEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableTopic(v *string) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *LessonRunEventUpdateOne) SetSlug(v string) *LessonRunEventUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableSlug(v *string) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LessonRunEventUpdateOne) SetDifficulty(v string) *LessonRunEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableDifficulty(v *string) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *LessonRunEventUpdateOne) SetOutputDir(v string) *LessonRunEventUpdateOne {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableOutputDir(v *string) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// SetModulesTotal sets the "modules_total" field.
func (_u *LessonRunEventUpdateOne) SetModulesTotal(v int) *LessonRunEventUpdateOne {
	_u.mutation.ResetModulesTotal()
	_u.mutation.SetModulesTotal(v)
	return _u
}

// SetNillableModulesTotal sets the "modules_total" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableModulesTotal(v *int) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetModulesTotal(*v)
	}
	return _u
}

// AddModulesTotal adds value to the "modules_total" field.
func (_u *LessonRunEventUpdateOne) AddModulesTotal(v int) *LessonRunEventUpdateOne {
	_u.mutation.AddModulesTotal(v)
	return _u
}

// SetModulesSucceeded sets the "modules_succeeded" field.
func (_u *LessonRunEventUpdateOne) SetModulesSucceeded(v int) *LessonRunEventUpdateOne {
	_u.mutation.ResetModulesSucceeded()
	_u.mutation.SetModulesSucceeded(v)
	return _u
}

// SetNillableModulesSucceeded sets the "modules_succeeded" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableModulesSucceeded(v *int) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetModulesSucceeded(*v)
	}
	return _u
}

// AddModulesSucceeded adds value to the "modules_succeeded" field.
func (_u *LessonRunEventUpdateOne) AddModulesSucceeded(v int) *LessonRunEventUpdateOne {
	_u.mutation.AddModulesSucceeded(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *LessonRunEventUpdateOne) SetQualityScore(v float64) *LessonRunEventUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableQualityScore(v *float64) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *LessonRunEventUpdateOne) AddQualityScore(v float64) *LessonRunEventUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *LessonRunEventUpdateOne) SetPassed(v bool) *LessonRunEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillablePassed(v *bool) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAiCalls sets the "ai_calls" field.
func (_u *LessonRunEventUpdateOne) SetAiCalls(v int) *LessonRunEventUpdateOne {
	_u.mutation.ResetAiCalls()
	_u.mutation.SetAiCalls(v)
	return _u
}

// SetNillableAiCalls sets the "ai_calls" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableAiCalls(v *int) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetAiCalls(*v)
	}
	return _u
}

// AddAiCalls adds value to the "ai_calls" field.
func (_u *LessonRunEventUpdateOne) AddAiCalls(v int) *LessonRunEventUpdateOne {
	_u.mutation.AddAiCalls(v)
	return _u
}

// SetCacheHits sets the "cache_hits" field.
func (_u *LessonRunEventUpdateOne) SetCacheHits(v int) *LessonRunEventUpdateOne {
	_u.mutation.ResetCacheHits()
	_u.mutation.SetCacheHits(v)
	return _u
}

// SetNillableCacheHits sets the "cache_hits" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableCacheHits(v *int) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetCacheHits(*v)
	}
	return _u
}

// AddCacheHits adds value to the "cache_hits" field.
func (_u *LessonRunEventUpdateOne) AddCacheHits(v int) *LessonRunEventUpdateOne {
	_u.mutation.AddCacheHits(v)
	return _u
}

// SetFallbackCalls sets the "fallback_calls" field.
func (_u *LessonRunEventUpdateOne) SetFallbackCalls(v int) *LessonRunEventUpdateOne {
	_u.mutation.ResetFallbackCalls()
	_u.mutation.SetFallbackCalls(v)
	return _u
}

// SetNillableFallbackCalls sets the "fallback_calls" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableFallbackCalls(v *int) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetFallbackCalls(*v)
	}
	return _u
}

// AddFallbackCalls adds value to the "fallback_calls" field.
func (_u *LessonRunEventUpdateOne) AddFallbackCalls(v int) *LessonRunEventUpdateOne {
	_u.mutation.AddFallbackCalls(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LessonRunEventUpdateOne) SetDurationMs(v int64) *LessonRunEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableDurationMs(v *int64) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LessonRunEventUpdateOne) AddDurationMs(v int64) *LessonRunEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LessonRunEventUpdateOne) SetErrorMessage(v string) *LessonRunEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LessonRunEventUpdateOne) SetNillableErrorMessage(v *string) *LessonRunEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the LessonRunEventMutation object of the builder.
func (_u *LessonRunEventUpdateOne) Mutation() *LessonRunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonRunEventUpdate builder.
func (_u *LessonRunEventUpdateOne) Where(ps ...predicate.LessonRunEvent) *LessonRunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonRunEventUpdateOne) Select(field string, fields ...string) *LessonRunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonRunEvent entity.
func (_u *LessonRunEventUpdateOne) Save(ctx context.Context) (*LessonRunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonRunEventUpdateOne) SaveX(ctx context.Context) *LessonRunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonRunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonRunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonRunEventUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonrunevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := lessonrunevent.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := lessonrunevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LessonRunEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonRunEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonRunEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonrunevent.Table, lessonrunevent.Columns, sqlgraph.NewFieldSpec(lessonrunevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonRunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonrunevent.FieldID)
		for _, f := range fields {
			if !lessonrunevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonrunevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonrunevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(lessonrunevent.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(lessonrunevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(lessonrunevent.FieldOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModulesTotal(); ok {
		_spec.SetField(lessonrunevent.FieldModulesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModulesTotal(); ok {
		_spec.AddField(lessonrunevent.FieldModulesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModulesSucceeded(); ok {
		_spec.SetField(lessonrunevent.FieldModulesSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModulesSucceeded(); ok {
		_spec.AddField(lessonrunevent.FieldModulesSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(lessonrunevent.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(lessonrunevent.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(lessonrunevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AiCalls(); ok {
		_spec.SetField(lessonrunevent.FieldAiCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiCalls(); ok {
		_spec.AddField(lessonrunevent.FieldAiCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheHits(); ok {
		_spec.SetField(lessonrunevent.FieldCacheHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheHits(); ok {
		_spec.AddField(lessonrunevent.FieldCacheHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FallbackCalls(); ok {
		_spec.SetField(lessonrunevent.FieldFallbackCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFallbackCalls(); ok {
		_spec.AddField(lessonrunevent.FieldFallbackCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(lessonrunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(lessonrunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(lessonrunevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &LessonRunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonrunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
