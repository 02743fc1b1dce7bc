// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonRunEventsColumns holds the columns for the "lesson_run_events" table.
	LessonRunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "output_dir", Type: field.TypeString, Default: ""},
		{Name: "modules_total", Type: field.TypeInt, Default: 0},
		{Name: "modules_succeeded", Type: field.TypeInt, Default: 0},
		{Name: "quality_score", Type: field.TypeFloat64, Default: 0},
		{Name: "passed", Type: field.TypeBool},
		{Name: "ai_calls", Type: field.TypeInt, Default: 0},
		{Name: "cache_hits", Type: field.TypeInt, Default: 0},
		{Name: "fallback_calls", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LessonRunEventsTable holds the schema information for the "lesson_run_events" table.
	LessonRunEventsTable = &schema.Table{
		Name:       "lesson_run_events",
		Columns:    LessonRunEventsColumns,
		PrimaryKey: []*schema.Column{LessonRunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonrunevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonRunEventsColumns[1]},
			},
			{
				Name:    "lessonrunevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonRunEventsColumns[2]},
			},
			{
				Name:    "lessonrunevent_slug",
				Unique:  false,
				Columns: []*schema.Column{LessonRunEventsColumns[4]},
			},
			{
				Name:    "lessonrunevent_passed",
				Unique:  false,
				Columns: []*schema.Column{LessonRunEventsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LessonRunEventsTable,
	}
)

func init() {
}
