package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "PATHWISE_"

// Config holds LLM provider configuration. The LLM backs optional resource
// curation only; an empty Provider disables it.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool { return c.Provider != "" }

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a disabled Config with per-provider model defaults.
// Curation prompts are short, so the small models are the defaults.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays PATHWISE_* variables on DefaultConfig. When
// PATHWISE_LLM_PROVIDER is unset the standard vendor key variables are
// probed instead.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	env := func(name string, dst *string) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	env("LLM_PROVIDER", &cfg.Provider)
	env("ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	env("ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	env("ANTHROPIC_BASE_URL", &cfg.Anthropic.BaseURL)
	env("OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	env("OPENAI_MODEL", &cfg.OpenAI.Model)
	env("OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	env("GEMINI_API_KEY", &cfg.Gemini.APIKey)
	env("GEMINI_MODEL", &cfg.Gemini.Model)
	env("GEMINI_BASE_URL", &cfg.Gemini.BaseURL)
	env("OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	env("OPENROUTER_MODEL", &cfg.OpenRouter.Model)
	env("OPENROUTER_BASE_URL", &cfg.OpenRouter.BaseURL)

	if v := os.Getenv(EnvPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}

	if cfg.Provider == "" {
		if found, ok := DiscoverConfig(); ok {
			found.Timeout = cfg.Timeout
			return found
		}
	}
	return cfg
}

// DiscoverConfig probes the vendor API key variables in priority order
// (Gemini, OpenAI, Anthropic, OpenRouter) and selects the first provider
// whose key is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key. A disabled
// config is valid.
func (c Config) Validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider", EnvPrefix, name, c.Provider)
	}
	switch c.Provider {
	case "", ProviderMock:
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing("ANTHROPIC")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing("OPENAI")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing("GEMINI")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return missing("OPENROUTER")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
