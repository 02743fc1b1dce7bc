package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonRunEvent records the outcome of one lesson generation run.
type LessonRunEvent struct {
	ent.Schema
}

func (LessonRunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonRunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").NotEmpty(),
		field.String("slug").NotEmpty(),
		field.String("difficulty").NotEmpty(),
		field.String("output_dir").
			Default(""),
		field.Int("modules_total").
			Default(0),
		field.Int("modules_succeeded").
			Default(0),
		field.Float("quality_score").
			Default(0),
		field.Bool("passed").
			Comment("Whether the run cleared the quality gate"),
		field.Int("ai_calls").
			Default(0),
		field.Int("cache_hits").
			Default(0),
		field.Int("fallback_calls").
			Default(0),
		field.Int64("duration_ms").
			Default(0),
		field.String("error_message").
			Default(""),
	}
}

func (LessonRunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("passed"),
	}
}
