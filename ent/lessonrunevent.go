// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/courseforge/ent/lessonrunevent"
)

// LessonRunEvent is the model entity for the LessonRunEvent schema.
type LessonRunEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// OutputDir holds the value of the "output_dir" field.
	OutputDir string `json:"output_dir,omitempty"`
	// ModulesTotal holds the value of the "modules_total" field.
	ModulesTotal int `json:"modules_total,omitempty"`
	// ModulesSucceeded holds the value of the "modules_succeeded" field.
	ModulesSucceeded int `json:"modules_succeeded,omitempty"`
	// QualityScore holds the value of the "quality_score" field.
	QualityScore float64 `json:"quality_score,omitempty"`
	// Whether the run cleared the quality gate
	Passed bool `json:"passed,omitempty"`
	// AiCalls holds the value of the "ai_calls" field.
	AiCalls int `json:"ai_calls,omitempty"`
	// CacheHits holds the value of the "cache_hits" field.
	CacheHits int `json:"cache_hits,omitempty"`
	// FallbackCalls holds the value of the "fallback_calls" field.
	FallbackCalls int `json:"fallback_calls,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonRunEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonrunevent.FieldPassed:
			values[i] = new(sql.NullBool)
		case lessonrunevent.FieldQualityScore:
			values[i] = new(sql.NullFloat64)
		case lessonrunevent.FieldID, lessonrunevent.FieldSequence, lessonrunevent.FieldModulesTotal, lessonrunevent.FieldModulesSucceeded, lessonrunevent.FieldAiCalls, lessonrunevent.FieldCacheHits, lessonrunevent.FieldFallbackCalls, lessonrunevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case lessonrunevent.FieldTopic, lessonrunevent.FieldSlug, lessonrunevent.FieldDifficulty, lessonrunevent.FieldOutputDir, lessonrunevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case lessonrunevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonRunEvent fields.
func (_m *LessonRunEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonrunevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonrunevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case lessonrunevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case lessonrunevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case lessonrunevent.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case lessonrunevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case lessonrunevent.FieldOutputDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_dir", values[i])
			} else if value.Valid {
				_m.OutputDir = value.String
			}
		case lessonrunevent.FieldModulesTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field modules_total", values[i])
			} else if value.Valid {
				_m.ModulesTotal = int(value.Int64)
			}
		case lessonrunevent.FieldModulesSucceeded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field modules_succeeded", values[i])
			} else if value.Valid {
				_m.ModulesSucceeded = int(value.Int64)
			}
		case lessonrunevent.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = value.Float64
			}
		case lessonrunevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case lessonrunevent.FieldAiCalls:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_calls", values[i])
			} else if value.Valid {
				_m.AiCalls = int(value.Int64)
			}
		case lessonrunevent.FieldCacheHits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cache_hits", values[i])
			} else if value.Valid {
				_m.CacheHits = int(value.Int64)
			}
		case lessonrunevent.FieldFallbackCalls:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_calls", values[i])
			} else if value.Valid {
				_m.FallbackCalls = int(value.Int64)
			}
		case lessonrunevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case lessonrunevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonRunEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LessonRunEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonRunEvent.
// Note that you need to call LessonRunEvent.Unwrap() before calling this method if this LessonRunEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonRunEvent) Update() *LessonRunEventUpdateOne {
	return NewLessonRunEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonRunEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonRunEvent) Unwrap() *LessonRunEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonRunEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonRunEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LessonRunEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("output_dir=")
	builder.WriteString(_m.OutputDir)
	builder.WriteString(", ")
	builder.WriteString("modules_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModulesTotal))
	builder.WriteString(", ")
	builder.WriteString("modules_succeeded=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModulesSucceeded))
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityScore))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("ai_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiCalls))
	builder.WriteString(", ")
	builder.WriteString("cache_hits=")
	builder.WriteString(fmt.Sprintf("%v", _m.CacheHits))
	builder.WriteString(", ")
	builder.WriteString("fallback_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.FallbackCalls))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// LessonRunEvents is a parsable slice of LessonRunEvent.
type LessonRunEvents []*LessonRunEvent
