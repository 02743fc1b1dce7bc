// Code generated by ent, DO NOT EDIT.

package lessonrunevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/courseforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldTopic, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldSlug, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldDifficulty, v))
}

// OutputDir applies equality check predicate on the "output_dir" field. It's identical to OutputDirEQ.
func OutputDir(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldOutputDir, v))
}

// ModulesTotal applies equality check predicate on the "modules_total" field. It's identical to ModulesTotalEQ.
func ModulesTotal(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldModulesTotal, v))
}

// ModulesSucceeded applies equality check predicate on the "modules_succeeded" field. It's identical to ModulesSucceededEQ.
func ModulesSucceeded(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldModulesSucceeded, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldQualityScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldPassed, v))
}

// AiCalls applies equality check predicate on the "ai_calls" field. It's identical to AiCallsEQ.
func AiCalls(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldAiCalls, v))
}

// CacheHits applies equality check predicate on the "cache_hits" field. It's identical to CacheHitsEQ.
func CacheHits(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldCacheHits, v))
}

// FallbackCalls applies equality check predicate on the "fallback_calls" field. It's identical to FallbackCallsEQ.
func FallbackCalls(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldFallbackCalls, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContainsFold(FieldTopic, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContainsFold(FieldSlug, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// OutputDirEQ applies the EQ predicate on the "output_dir" field.
func OutputDirEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldOutputDir, v))
}

// OutputDirNEQ applies the NEQ predicate on the "output_dir" field.
func OutputDirNEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldOutputDir, v))
}

// OutputDirIn applies the In predicate on the "output_dir" field.
func OutputDirIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldOutputDir, vs...))
}

// OutputDirNotIn applies the NotIn predicate on the "output_dir" field.
func OutputDirNotIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldOutputDir, vs...))
}

// OutputDirGT applies the GT predicate on the "output_dir" field.
func OutputDirGT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldOutputDir, v))
}

// OutputDirGTE applies the GTE predicate on the "output_dir" field.
func OutputDirGTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldOutputDir, v))
}

// OutputDirLT applies the LT predicate on the "output_dir" field.
func OutputDirLT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldOutputDir, v))
}

// OutputDirLTE applies the LTE predicate on the "output_dir" field.
func OutputDirLTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldOutputDir, v))
}

// OutputDirContains applies the Contains predicate on the "output_dir" field.
func OutputDirContains(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContains(FieldOutputDir, v))
}

// OutputDirHasPrefix applies the HasPrefix predicate on the "output_dir" field.
func OutputDirHasPrefix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasPrefix(FieldOutputDir, v))
}

// OutputDirHasSuffix applies the HasSuffix predicate on the "output_dir" field.
func OutputDirHasSuffix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasSuffix(FieldOutputDir, v))
}

// OutputDirEqualFold applies the EqualFold predicate on the "output_dir" field.
func OutputDirEqualFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEqualFold(FieldOutputDir, v))
}

// OutputDirContainsFold applies the ContainsFold predicate on the "output_dir" field.
func OutputDirContainsFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContainsFold(FieldOutputDir, v))
}

// ModulesTotalEQ applies the EQ predicate on the "modules_total" field.
func ModulesTotalEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldModulesTotal, v))
}

// ModulesTotalNEQ applies the NEQ predicate on the "modules_total" field.
func ModulesTotalNEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldModulesTotal, v))
}

// ModulesTotalIn applies the In predicate on the "modules_total" field.
func ModulesTotalIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldModulesTotal, vs...))
}

// ModulesTotalNotIn applies the NotIn predicate on the "modules_total" field.
func ModulesTotalNotIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldModulesTotal, vs...))
}

// ModulesTotalGT applies the GT predicate on the "modules_total" field.
func ModulesTotalGT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldModulesTotal, v))
}

// ModulesTotalGTE applies the GTE predicate on the "modules_total" field.
func ModulesTotalGTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldModulesTotal, v))
}

// ModulesTotalLT applies the LT predicate on the "modules_total" field.
func ModulesTotalLT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldModulesTotal, v))
}

// ModulesTotalLTE applies the LTE predicate on the "modules_total" field.
func ModulesTotalLTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldModulesTotal, v))
}

// ModulesSucceededEQ applies the EQ predicate on the "modules_succeeded" field.
func ModulesSucceededEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldModulesSucceeded, v))
}

// ModulesSucceededNEQ applies the NEQ predicate on the "modules_succeeded" field.
func ModulesSucceededNEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldModulesSucceeded, v))
}

// ModulesSucceededIn applies the In predicate on the "modules_succeeded" field.
func ModulesSucceededIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldModulesSucceeded, vs...))
}

// ModulesSucceededNotIn applies the NotIn predicate on the "modules_succeeded" field.
func ModulesSucceededNotIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldModulesSucceeded, vs...))
}

// ModulesSucceededGT applies the GT predicate on the "modules_succeeded" field.
func ModulesSucceededGT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldModulesSucceeded, v))
}

// ModulesSucceededGTE applies the GTE predicate on the "modules_succeeded" field.
func ModulesSucceededGTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldModulesSucceeded, v))
}

// ModulesSucceededLT applies the LT predicate on the "modules_succeeded" field.
func ModulesSucceededLT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldModulesSucceeded, v))
}

// ModulesSucceededLTE applies the LTE predicate on the "modules_succeeded" field.
func ModulesSucceededLTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldModulesSucceeded, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldQualityScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldPassed, v))
}

// AiCallsEQ applies the EQ predicate on the "ai_calls" field.
func AiCallsEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldAiCalls, v))
}

// AiCallsNEQ applies the NEQ predicate on the "ai_calls" field.
func AiCallsNEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldAiCalls, v))
}

// AiCallsIn applies the In predicate on the "ai_calls" field.
func AiCallsIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldAiCalls, vs...))
}

// AiCallsNotIn applies the NotIn predicate on the "ai_calls" field.
func AiCallsNotIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldAiCalls, vs...))
}

// AiCallsGT applies the GT predicate on the "ai_calls" field.
func AiCallsGT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldAiCalls, v))
}

// AiCallsGTE applies the GTE predicate on the "ai_calls" field.
func AiCallsGTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldAiCalls, v))
}

// AiCallsLT applies the LT predicate on the "ai_calls" field.
func AiCallsLT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldAiCalls, v))
}

// AiCallsLTE applies the LTE predicate on the "ai_calls" field.
func AiCallsLTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldAiCalls, v))
}

// CacheHitsEQ applies the EQ predicate on the "cache_hits" field.
func CacheHitsEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldCacheHits, v))
}

// CacheHitsNEQ applies the NEQ predicate on the "cache_hits" field.
func CacheHitsNEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldCacheHits, v))
}

// CacheHitsIn applies the In predicate on the "cache_hits" field.
func CacheHitsIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldCacheHits, vs...))
}

// CacheHitsNotIn applies the NotIn predicate on the "cache_hits" field.
func CacheHitsNotIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldCacheHits, vs...))
}

// CacheHitsGT applies the GT predicate on the "cache_hits" field.
func CacheHitsGT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldCacheHits, v))
}

// CacheHitsGTE applies the GTE predicate on the "cache_hits" field.
func CacheHitsGTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldCacheHits, v))
}

// CacheHitsLT applies the LT predicate on the "cache_hits" field.
func CacheHitsLT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldCacheHits, v))
}

// CacheHitsLTE applies the LTE predicate on the "cache_hits" field.
func CacheHitsLTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldCacheHits, v))
}

// FallbackCallsEQ applies the EQ predicate on the "fallback_calls" field.
func FallbackCallsEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldFallbackCalls, v))
}

// FallbackCallsNEQ applies the NEQ predicate on the "fallback_calls" field.
func FallbackCallsNEQ(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldFallbackCalls, v))
}

// FallbackCallsIn applies the In predicate on the "fallback_calls" field.
func FallbackCallsIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldFallbackCalls, vs...))
}

// FallbackCallsNotIn applies the NotIn predicate on the "fallback_calls" field.
func FallbackCallsNotIn(vs ...int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldFallbackCalls, vs...))
}

// FallbackCallsGT applies the GT predicate on the "fallback_calls" field.
func FallbackCallsGT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldFallbackCalls, v))
}

// FallbackCallsGTE applies the GTE predicate on the "fallback_calls" field.
func FallbackCallsGTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldFallbackCalls, v))
}

// FallbackCallsLT applies the LT predicate on the "fallback_calls" field.
func FallbackCallsLT(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldFallbackCalls, v))
}

// FallbackCallsLTE applies the LTE predicate on the "fallback_calls" field.
func FallbackCallsLTE(v int) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldFallbackCalls, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldDurationMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonRunEvent) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonRunEvent) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonRunEvent) predicate.LessonRunEvent {
	return predicate.LessonRunEvent(sql.NotPredicates(p))
}
