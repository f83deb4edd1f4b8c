package llm

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// openRouterReferer and openRouterTitle identify the app on the
	// OpenRouter dashboard.
	openRouterReferer = "https://github.com/abhisek/pathwise"
	openRouterTitle   = "pathwise"
)

// NewOpenRouterProvider returns a Provider for OpenRouter's
// OpenAI-compatible API. Model IDs are passed through unchanged
// ("vendor/model").
func NewOpenRouterProvider(cfg OpenRouterConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	conf := openai.DefaultConfig(cfg.APIKey)
	conf.BaseURL = defaultOpenRouterBaseURL
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	conf.HTTPClient = &http.Client{Transport: headerTransport{
		base: http.DefaultTransport,
		headers: map[string]string{
			"HTTP-Referer": openRouterReferer,
			"X-Title":      openRouterTitle,
		},
	}}
	return chatCompletions(ProviderOpenRouter, cfg.Model, conf), nil
}
