// Code generated by ent, DO NOT EDIT.

package lessonrunevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonrunevent type in the database.
	Label = "lesson_run_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldOutputDir holds the string denoting the output_dir field in the database.
	FieldOutputDir = "output_dir"
	// FieldModulesTotal holds the string denoting the modules_total field in the database.
	FieldModulesTotal = "modules_total"
	// FieldModulesSucceeded holds the string denoting the modules_succeeded field in the database.
	FieldModulesSucceeded = "modules_succeeded"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldAiCalls holds the string denoting the ai_calls field in the database.
	FieldAiCalls = "ai_calls"
	// FieldCacheHits holds the string denoting the cache_hits field in the database.
	FieldCacheHits = "cache_hits"
	// FieldFallbackCalls holds the string denoting the fallback_calls field in the database.
	FieldFallbackCalls = "fallback_calls"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the lessonrunevent in the database.
	Table = "lesson_run_events"
)

// Columns holds all SQL columns for lessonrunevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTopic,
	FieldSlug,
	FieldDifficulty,
	FieldOutputDir,
	FieldModulesTotal,
	FieldModulesSucceeded,
	FieldQualityScore,
	FieldPassed,
	FieldAiCalls,
	FieldCacheHits,
	FieldFallbackCalls,
	FieldDurationMs,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DefaultOutputDir holds the default value on creation for the "output_dir" field.
	DefaultOutputDir string
	// DefaultModulesTotal holds the default value on creation for the "modules_total" field.
	DefaultModulesTotal int
	// DefaultModulesSucceeded holds the default value on creation for the "modules_succeeded" field.
	DefaultModulesSucceeded int
	// DefaultQualityScore holds the default value on creation for the "quality_score" field.
	DefaultQualityScore float64
	// DefaultAiCalls holds the default value on creation for the "ai_calls" field.
	DefaultAiCalls int
	// DefaultCacheHits holds the default value on creation for the "cache_hits" field.
	DefaultCacheHits int
	// DefaultFallbackCalls holds the default value on creation for the "fallback_calls" field.
	DefaultFallbackCalls int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultErrorMessage holds the default value on creation for the "error_message" field.
	DefaultErrorMessage string
)

// OrderOption defines the ordering options for the LessonRunEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByOutputDir orders the results by the output_dir field.
func ByOutputDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputDir, opts...).ToFunc()
}

// ByModulesTotal orders the results by the modules_total field.
func ByModulesTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModulesTotal, opts...).ToFunc()
}

// ByModulesSucceeded orders the results by the modules_succeeded field.
func ByModulesSucceeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModulesSucceeded, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByAiCalls orders the results by the ai_calls field.
func ByAiCalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiCalls, opts...).ToFunc()
}

// ByCacheHits orders the results by the cache_hits field.
func ByCacheHits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheHits, opts...).ToFunc()
}

// ByFallbackCalls orders the results by the fallback_calls field.
func ByFallbackCalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallbackCalls, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
