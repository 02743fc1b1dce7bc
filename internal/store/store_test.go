package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndListLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "starter_example", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "assignment_a", InputTokens: 80, OutputTokens: 40, LatencyMs: 150, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "learning_path", Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first.
	recs, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Purpose != "learning_path" {
		t.Errorf("first record purpose = %q, want 'learning_path'", recs[0].Purpose)
	}
	if recs[0].Sequence <= recs[1].Sequence {
		t.Error("expected descending sequence order")
	}

	// Filter by purpose.
	recs, err = repo.ListLLMRequests(ctx, QueryOpts{Purpose: "starter_example"})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].InputTokens != 100 {
		t.Errorf("input tokens = %d, want 100", recs[0].InputTokens)
	}

	// Limit.
	recs, err = repo.ListLLMRequests(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
}

func TestGetLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku", Purpose: "test_starter",
		Success: true, RequestBody: "[user]\nwrite tests", ResponseBody: "def test_ok(): pass",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	recs, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	rec, err := repo.GetLLMRequest(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil record")
	}
	if rec.ResponseBody != "def test_ok(): pass" {
		t.Errorf("response body = %q", rec.ResponseBody)
	}

	missing, err := repo.GetLLMRequest(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing ID")
	}
}

func TestLLMRequestStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Purpose: "starter_example", InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true},
		{Provider: "openai", Purpose: "starter_example", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true},
		{Provider: "openai", Purpose: "readme", Success: false},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMRequestStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRequests != 3 {
		t.Errorf("total = %d, want 3", stats.TotalRequests)
	}
	if stats.Successes != 2 || stats.Failures != 1 {
		t.Errorf("successes/failures = %d/%d, want 2/1", stats.Successes, stats.Failures)
	}
	if stats.InputTokens != 200 {
		t.Errorf("input tokens = %d, want 200", stats.InputTokens)
	}
	if stats.ByPurpose["starter_example"] != 2 {
		t.Errorf("by purpose starter_example = %d, want 2", stats.ByPurpose["starter_example"])
	}
}

func TestAppendAndListLessonRuns(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	runs := []LessonRunData{
		{Topic: "Fractions", Slug: "fractions", Difficulty: "beginner", ModulesTotal: 1, ModulesSucceeded: 1, QualityScore: 0.8, Passed: true},
		{Topic: "Recursion", Slug: "recursion", Difficulty: "advanced", ModulesTotal: 4, ModulesSucceeded: 3, QualityScore: 0.4, Passed: false},
	}
	for i, r := range runs {
		if err := repo.AppendLessonRun(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.ListLessonRuns(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Slug != "recursion" {
		t.Errorf("first record slug = %q, want 'recursion'", recs[0].Slug)
	}

	recs, err = repo.ListLessonRuns(ctx, QueryOpts{Slug: "fractions"})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if !recs[0].Passed {
		t.Error("expected fractions run to have passed")
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "lesson_run_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
