package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/courseforge/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	base, err := newBaseProvider(ctx, cfg, "")
	if err != nil {
		return nil, err
	}
	if cfg.Provider == "mock" {
		return base, nil
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewEconomyProvider creates a Provider that targets the provider's
// cheap-tier model instead of the configured one. Used for content types
// where the configured model's quality is not worth its cost.
func NewEconomyProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	base, err := newBaseProvider(ctx, cfg, cfg.EconomyModel())
	if err != nil {
		return nil, err
	}
	if cfg.Provider == "mock" {
		return base, nil
	}

	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a fully configured Provider from environment
// variables, falling back to credential discovery when no provider is
// configured explicitly.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// newBaseProvider constructs the underlying provider, optionally overriding
// the configured model.
func newBaseProvider(ctx context.Context, cfg Config, modelOverride string) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		c := cfg.Anthropic
		if modelOverride != "" {
			c.Model = modelOverride
		}
		base, err = NewAnthropicProvider(c)
	case "openai":
		c := cfg.OpenAI
		if modelOverride != "" {
			c.Model = modelOverride
		}
		base, err = NewOpenAIProvider(c)
	case "gemini":
		c := cfg.Gemini
		if modelOverride != "" {
			c.Model = modelOverride
		}
		base, err = NewGeminiProvider(ctx, c)
	case "openrouter":
		c := cfg.OpenRouter
		if modelOverride != "" {
			c.Model = modelOverride
		}
		base, err = NewOpenRouterProvider(c)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return base, nil
}
