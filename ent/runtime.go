// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/courseforge/ent/lessonrunevent"
	"github.com/abhisek/courseforge/ent/llmrequestevent"
	"github.com/abhisek/courseforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonruneventMixin := schema.LessonRunEvent{}.Mixin()
	lessonruneventMixinFields0 := lessonruneventMixin[0].Fields()
	_ = lessonruneventMixinFields0
	lessonruneventFields := schema.LessonRunEvent{}.Fields()
	_ = lessonruneventFields
	// lessonruneventDescTimestamp is the schema descriptor for timestamp field.
	lessonruneventDescTimestamp := lessonruneventMixinFields0[1].Descriptor()
	// lessonrunevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonrunevent.DefaultTimestamp = lessonruneventDescTimestamp.Default.(func() time.Time)
	// lessonruneventDescTopic is the schema descriptor for topic field.
	lessonruneventDescTopic := lessonruneventFields[0].Descriptor()
	// lessonrunevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	lessonrunevent.TopicValidator = lessonruneventDescTopic.Validators[0].(func(string) error)
	// lessonruneventDescSlug is the schema descriptor for slug field.
	lessonruneventDescSlug := lessonruneventFields[1].Descriptor()
	// lessonrunevent.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	lessonrunevent.SlugValidator = lessonruneventDescSlug.Validators[0].(func(string) error)
	// lessonruneventDescDifficulty is the schema descriptor for difficulty field.
	lessonruneventDescDifficulty := lessonruneventFields[2].Descriptor()
	// lessonrunevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	lessonrunevent.DifficultyValidator = lessonruneventDescDifficulty.Validators[0].(func(string) error)
	// lessonruneventDescOutputDir is the schema descriptor for output_dir field.
	lessonruneventDescOutputDir := lessonruneventFields[3].Descriptor()
	// lessonrunevent.DefaultOutputDir holds the default value on creation for the output_dir field.
	lessonrunevent.DefaultOutputDir = lessonruneventDescOutputDir.Default.(string)
	// lessonruneventDescModulesTotal is the schema descriptor for modules_total field.
	lessonruneventDescModulesTotal := lessonruneventFields[4].Descriptor()
	// lessonrunevent.DefaultModulesTotal holds the default value on creation for the modules_total field.
	lessonrunevent.DefaultModulesTotal = lessonruneventDescModulesTotal.Default.(int)
	// lessonruneventDescModulesSucceeded is the schema descriptor for modules_succeeded field.
	lessonruneventDescModulesSucceeded := lessonruneventFields[5].Descriptor()
	// lessonrunevent.DefaultModulesSucceeded holds the default value on creation for the modules_succeeded field.
	lessonrunevent.DefaultModulesSucceeded = lessonruneventDescModulesSucceeded.Default.(int)
	// lessonruneventDescQualityScore is the schema descriptor for quality_score field.
	lessonruneventDescQualityScore := lessonruneventFields[6].Descriptor()
	// lessonrunevent.DefaultQualityScore holds the default value on creation for the quality_score field.
	lessonrunevent.DefaultQualityScore = lessonruneventDescQualityScore.Default.(float64)
	// lessonruneventDescAiCalls is the schema descriptor for ai_calls field.
	lessonruneventDescAiCalls := lessonruneventFields[8].Descriptor()
	// lessonrunevent.DefaultAiCalls holds the default value on creation for the ai_calls field.
	lessonrunevent.DefaultAiCalls = lessonruneventDescAiCalls.Default.(int)
	// lessonruneventDescCacheHits is the schema descriptor for cache_hits field.
	lessonruneventDescCacheHits := lessonruneventFields[9].Descriptor()
	// lessonrunevent.DefaultCacheHits holds the default value on creation for the cache_hits field.
	lessonrunevent.DefaultCacheHits = lessonruneventDescCacheHits.Default.(int)
	// lessonruneventDescFallbackCalls is the schema descriptor for fallback_calls field.
	lessonruneventDescFallbackCalls := lessonruneventFields[10].Descriptor()
	// lessonrunevent.DefaultFallbackCalls holds the default value on creation for the fallback_calls field.
	lessonrunevent.DefaultFallbackCalls = lessonruneventDescFallbackCalls.Default.(int)
	// lessonruneventDescDurationMs is the schema descriptor for duration_ms field.
	lessonruneventDescDurationMs := lessonruneventFields[11].Descriptor()
	// lessonrunevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	lessonrunevent.DefaultDurationMs = lessonruneventDescDurationMs.Default.(int64)
	// lessonruneventDescErrorMessage is the schema descriptor for error_message field.
	lessonruneventDescErrorMessage := lessonruneventFields[12].Descriptor()
	// lessonrunevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	lessonrunevent.DefaultErrorMessage = lessonruneventDescErrorMessage.Default.(string)
}
