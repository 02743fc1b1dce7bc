package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/courseforge/internal/llm"
)

func testOptions() Options {
	return Options{RateDelay: 1 * time.Millisecond}
}

func TestGenerator_NilProviderFallsBack(t *testing.T) {
	g, err := NewGenerator(nil, nil, testOptions())
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	res := g.Generate(context.Background(), testRequest(TypeStarterExample))
	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if res.Model != "fallback" {
		t.Fatalf("model = %q, want 'fallback'", res.Model)
	}
	if !strings.Contains(res.Content, "class DataStructuresExample:") {
		t.Error("expected fallback starter example content")
	}

	stats := g.Stats()
	if stats.FallbackCalls != 1 || stats.AICalls != 0 {
		t.Errorf("stats = %+v, want 1 fallback call", stats)
	}
}

func TestGenerator_AIPath(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{
			Text:  "class ListDemo:\n    pass\n",
			Usage: llm.Usage{TotalTokens: 42},
		},
	)
	g, err := NewGenerator(mock, nil, testOptions())
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	res := g.Generate(context.Background(), testRequest(TypeStarterExample))
	if res.Source != SourceAI {
		t.Fatalf("source = %q, want ai", res.Source)
	}
	if !strings.Contains(res.Content, "class ListDemo:") {
		t.Errorf("unexpected content: %q", res.Content)
	}
	if res.TokensUsed != 42 {
		t.Errorf("tokens = %d, want 42", res.TokensUsed)
	}

	// The request carries the type-specific prompts and budget.
	call := mock.Calls[0]
	if call.MaxTokens != 800 {
		t.Errorf("max tokens = %d, want 800", call.MaxTokens)
	}
	if !strings.Contains(call.System, "Python programming instructor") {
		t.Error("expected code system prompt")
	}
	if !strings.Contains(call.Prompt, "Topic: Data Structures") {
		t.Error("expected base context in prompt")
	}
}

func TestGenerator_ExtractsFencedCode(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Here you go:\n```python\nclass Demo:\n    pass\n```\n"},
	)
	g, _ := NewGenerator(mock, nil, testOptions())

	res := g.Generate(context.Background(), testRequest(TypeStarterExample))
	if strings.Contains(res.Content, "```") {
		t.Errorf("expected fences stripped, got: %q", res.Content)
	}
	if !strings.Contains(res.Content, "class Demo:") {
		t.Errorf("expected code preserved, got: %q", res.Content)
	}
}

func TestGenerator_ProseKeepsFences(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "# Guide\n\n```bash\npytest -v\n```\n"},
	)
	g, _ := NewGenerator(mock, nil, testOptions())

	res := g.Generate(context.Background(), testRequest(TypeLearningPath))
	if !strings.Contains(res.Content, "```bash") {
		t.Error("expected markdown fences preserved in prose content")
	}
}

func TestGenerator_CacheHit(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "class Demo:\n    pass\n"},
	)
	g, _ := NewGenerator(mock, nil, testOptions())

	req := testRequest(TypeStarterExample)
	first := g.Generate(context.Background(), req)
	second := g.Generate(context.Background(), req)

	if first.Source != SourceAI {
		t.Fatalf("first source = %q, want ai", first.Source)
	}
	if second.Source != SourceCache {
		t.Fatalf("second source = %q, want cache", second.Source)
	}
	if first.Content != second.Content {
		t.Error("cached content differs from original")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}

	stats := g.Stats()
	if stats.AICalls != 1 || stats.CacheHits != 1 {
		t.Errorf("stats = %+v, want 1 ai call and 1 cache hit", stats)
	}
}

func TestGenerator_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g, _ := NewGenerator(mock, nil, testOptions())

	res := g.Generate(context.Background(), testRequest(TypeAssignmentA))
	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if !strings.Contains(res.Content, "class DataStructuresAssignment:") {
		t.Error("expected fallback assignment content")
	}
}

func TestGenerator_EmptyResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "   \n"},
	)
	g, _ := NewGenerator(mock, nil, testOptions())

	res := g.Generate(context.Background(), testRequest(TypeAssignmentB))
	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
}

func TestGenerator_CostEfficientRoutesToEconomy(t *testing.T) {
	full := llm.NewMockProvider(
		llm.MockResponse{Text: "# Learning Path\n"},
	)
	economy := llm.NewMockProvider(
		llm.MockResponse{Text: "class Demo:\n    pass\n"},
	)
	g, _ := NewGenerator(full, economy, Options{
		RateDelay:     1 * time.Millisecond,
		CostEfficient: true,
	})

	g.Generate(context.Background(), testRequest(TypeStarterExample))
	if economy.CallCount() != 1 {
		t.Fatalf("expected starter example on economy provider, calls = %d", economy.CallCount())
	}
	if full.CallCount() != 0 {
		t.Fatalf("expected no full-provider calls yet, got %d", full.CallCount())
	}

	g.Generate(context.Background(), testRequest(TypeLearningPath))
	if full.CallCount() != 1 {
		t.Fatalf("expected learning path on full provider, calls = %d", full.CallCount())
	}
}

func TestGenerator_CancelledContextFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "class Demo:\n    pass\n"},
	)
	g, _ := NewGenerator(mock, nil, Options{RateDelay: 10 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := g.Generate(ctx, testRequest(TypeStarterExample))
	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestMaxTokens(t *testing.T) {
	tests := []struct {
		typ  Type
		want int
	}{
		{TypeStarterExample, 800},
		{TypeAssignmentA, 600},
		{TypeTestStarter, 400},
		{TypeLearningPath, 1200},
		{Type("unknown"), 600},
	}

	for _, tt := range tests {
		if got := MaxTokens(tt.typ); got != tt.want {
			t.Errorf("MaxTokens(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestStats_Percentages(t *testing.T) {
	s := Stats{AICalls: 2, CacheHits: 6, FallbackCalls: 2}
	if s.TotalCalls() != 10 {
		t.Fatalf("total = %d, want 10", s.TotalCalls())
	}
	if s.CacheEfficiency() != 60 {
		t.Errorf("cache efficiency = %f, want 60", s.CacheEfficiency())
	}
	if s.AIUsage() != 20 {
		t.Errorf("ai usage = %f, want 20", s.AIUsage())
	}

	var empty Stats
	if empty.CacheEfficiency() != 0 || empty.AIUsage() != 0 {
		t.Error("expected zero percentages for no calls")
	}
}
