package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Before  int64  // sequence < Before
	Purpose string // filter LLM requests by purpose label
	Slug    string // filter lesson runs by topic slug
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a persisted LLM request event.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMStats aggregates LLM request events for reporting.
type LLMStats struct {
	TotalRequests int
	Successes     int
	Failures      int
	InputTokens   int
	OutputTokens  int
	AvgLatencyMs  float64
	ByPurpose     map[string]int
}

// LessonRunData captures the outcome of one lesson generation run.
type LessonRunData struct {
	Topic            string
	Slug             string
	Difficulty       string
	OutputDir        string
	ModulesTotal     int
	ModulesSucceeded int
	QualityScore     float64
	Passed           bool
	AICalls          int
	CacheHits        int
	FallbackCalls    int
	DurationMs       int64
	ErrorMessage     string
}

// LessonRunRecord is a persisted lesson run event.
type LessonRunRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LessonRunData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendLessonRun records a completed lesson generation run.
	AppendLessonRun(ctx context.Context, data LessonRunData) error

	// ListLLMRequests returns LLM request events, newest first.
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMRequest returns one LLM request event by ID, or nil if absent.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestRecord, error)

	// LLMRequestStats aggregates all LLM request events.
	LLMRequestStats(ctx context.Context) (LLMStats, error)

	// ListLessonRuns returns lesson run events, newest first.
	ListLessonRuns(ctx context.Context, opts QueryOpts) ([]LessonRunRecord, error)

	// GetLessonRun returns one lesson run event by ID, or nil if absent.
	GetLessonRun(ctx context.Context, id int) (*LessonRunRecord, error)
}
