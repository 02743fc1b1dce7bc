package content

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abhisek/courseforge/internal/llm"
)

const (
	defaultCacheSize = 128
	defaultRateDelay = 1 * time.Second
	economyRateDelay = 200 * time.Millisecond

	generationTemperature = 0.3
)

// Options configures a Generator.
type Options struct {
	// CacheSize bounds the per-run content cache. Default: 128.
	CacheSize int

	// RateDelay is the pause before each provider call. Default: 1s,
	// or 200ms when CostEfficient is set.
	RateDelay time.Duration

	// CostEfficient routes every content type except learning paths to
	// the economy provider and shortens the rate delay.
	CostEfficient bool
}

// Generator produces lesson content from an LLM provider, with an LRU
// cache in front and deterministic fallback behind. A Generator never
// fails: when the provider is unavailable or errors out, the fallback
// template is returned instead.
type Generator struct {
	full    llm.Provider // nil disables AI entirely
	economy llm.Provider
	cache   *lru.Cache[string, Result]

	rateDelay     time.Duration
	costEfficient bool

	mu    sync.Mutex
	stats Stats
}

// NewGenerator creates a Generator. full may be nil to force fallback
// content for every request. economy may be nil, in which case full
// serves all content types.
func NewGenerator(full, economy llm.Provider, opts Options) (*Generator, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, Result](size)
	if err != nil {
		return nil, err
	}

	delay := opts.RateDelay
	if delay == 0 {
		delay = defaultRateDelay
		if opts.CostEfficient {
			delay = economyRateDelay
		}
	}

	return &Generator{
		full:          full,
		economy:       economy,
		cache:         cache,
		rateDelay:     delay,
		costEfficient: opts.CostEfficient,
	}, nil
}

// Generate produces content for the request. Results are cached by
// request identity, so equivalent requests within a run cost one
// provider call at most.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	key := req.CacheKey()

	if cached, ok := g.cache.Get(key); ok {
		g.count(func(s *Stats) { s.CacheHits++ })
		cached.Source = SourceCache
		return cached
	}

	result := g.generate(ctx, req)
	g.cache.Add(key, result)
	return result
}

// Stats returns a snapshot of the generation counters.
func (g *Generator) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}

func (g *Generator) count(f func(*Stats)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f(&g.stats)
}

func (g *Generator) generate(ctx context.Context, req Request) Result {
	start := time.Now()

	provider := g.pickProvider(req.Type)
	if provider == nil {
		return g.fallback(req, start)
	}

	// Pace provider calls; an expired context falls back rather than
	// failing the lesson.
	select {
	case <-ctx.Done():
		return g.fallback(req, start)
	case <-time.After(g.rateDelay):
	}

	ctx = llm.WithPurpose(ctx, string(req.Type))
	resp, err := provider.Generate(ctx, llm.Request{
		System:      systemPrompt(req.Type),
		Prompt:      userPrompt(req),
		MaxTokens:   MaxTokens(req.Type),
		Temperature: generationTemperature,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return g.fallback(req, start)
	}

	text := resp.Text
	if req.Type.IsCode() {
		text = extractCode(text)
	}

	g.count(func(s *Stats) { s.AICalls++ })
	return Result{
		Content:    strings.TrimSpace(text) + "\n",
		Model:      resp.Model,
		TokensUsed: resp.Usage.TotalTokens,
		Duration:   time.Since(start),
		Source:     SourceAI,
	}
}

// pickProvider routes learning paths to the configured model and
// everything else to the economy tier when one is available.
func (g *Generator) pickProvider(t Type) llm.Provider {
	if g.full == nil {
		return nil
	}
	if t == TypeLearningPath || g.economy == nil {
		return g.full
	}
	if g.costEfficient {
		return g.economy
	}
	return g.full
}

func (g *Generator) fallback(req Request, start time.Time) Result {
	g.count(func(s *Stats) { s.FallbackCalls++ })
	return Result{
		Content:  Fallback(req),
		Model:    "fallback",
		Duration: time.Since(start),
		Source:   SourceFallback,
	}
}

var codeBlockRe = regexp.MustCompile("(?s)```(?:python|py)?\n?(.*?)```")

// extractCode pulls Python source out of markdown fences. Models asked
// for bare code still wrap it sometimes; the largest fenced block wins.
// Content without fences is returned unchanged.
func extractCode(text string) string {
	matches := codeBlockRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text
	}

	largest := ""
	for _, m := range matches {
		if len(m[1]) > len(largest) {
			largest = m[1]
		}
	}
	return strings.TrimSpace(largest)
}
