package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// NewAnthropicProvider returns a Provider backed by the Messages API.
// Schema prompts use the native JSON output format.
func NewAnthropicProvider(cfg AnthropicConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	return &endpoint{
		vendor: ProviderAnthropic,
		model:  resolveModel(cfg.Model, anthropicModels),
		send: func(ctx context.Context, model string, p Prompt) (reply, error) {
			msg, err := client.Messages.New(ctx, anthropicParams(model, p))
			if err != nil {
				var apiErr *anthropic.Error
				if errors.As(err, &apiErr) {
					var h http.Header
					if apiErr.Response != nil {
						h = apiErr.Response.Header
					}
					return reply{}, classify(ProviderAnthropic, apiErr.StatusCode, h, err)
				}
				return reply{}, classify(ProviderAnthropic, 0, nil, err)
			}

			var text strings.Builder
			for _, block := range msg.Content {
				if block.Type == "text" {
					text.WriteString(block.Text)
				}
			}
			return reply{
				text: text.String(),
				usage: Usage{
					Input:  int(msg.Usage.InputTokens),
					Output: int(msg.Usage.OutputTokens),
				},
				model:     string(msg.Model),
				truncated: msg.StopReason == "max_tokens",
			}, nil
		},
	}, nil
}

func anthropicParams(model string, p Prompt) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(p.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.Input)),
		},
	}
	if p.Instructions != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.Instructions}}
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}
	if p.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: p.Schema.Definition},
		}
	}
	return params
}
