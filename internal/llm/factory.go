package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/store"
)

// NewProvider builds the configured vendor provider. Each attempt is
// logged, and attempts are retried: retry(logging(vendor)). eventRepo may
// be nil. The mock provider is returned bare.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("no LLM provider configured")
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithRetry(WithLogging(base, eventRepo, logger), cfg.Retry, logger)
	if cfg.Timeout > 0 {
		p = bounded{Provider: p, timeout: cfg.Timeout}
	}
	return p, nil
}

// bounded applies one deadline across all attempts of a call.
type bounded struct {
	Provider
	timeout time.Duration
}

func (b bounded) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.Provider.Complete(ctx, p)
}
