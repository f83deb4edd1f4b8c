package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

var openaiModels = map[string]string{
	"gpt-mini": "gpt-4o-mini",
	"gpt":      "gpt-4o",
}

// NewOpenAIProvider returns a Provider backed by the Chat Completions API.
// BaseURL points it at any OpenAI-compatible server.
func NewOpenAIProvider(cfg OpenAIConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	return chatCompletions(ProviderOpenAI, resolveModel(cfg.Model, openaiModels), conf), nil
}

// chatCompletions builds an endpoint for any server speaking the OpenAI
// chat completions protocol.
func chatCompletions(vendor, model string, conf openai.ClientConfig) *endpoint {
	client := openai.NewClientWithConfig(conf)
	return &endpoint{
		vendor: vendor,
		model:  model,
		send: func(ctx context.Context, model string, p Prompt) (reply, error) {
			req, err := chatRequest(model, p)
			if err != nil {
				return reply{}, err
			}
			resp, err := client.CreateChatCompletion(ctx, req)
			if err != nil {
				var apiErr *openai.APIError
				if errors.As(err, &apiErr) {
					return reply{}, classify(vendor, apiErr.HTTPStatusCode, nil, err)
				}
				var reqErr *openai.RequestError
				if errors.As(err, &reqErr) {
					return reply{}, classify(vendor, reqErr.HTTPStatusCode, nil, err)
				}
				return reply{}, classify(vendor, 0, nil, err)
			}
			if len(resp.Choices) == 0 {
				return reply{}, &Error{Kind: KindInvalidOutput, Vendor: vendor, Err: errors.New("no choices returned")}
			}
			choice := resp.Choices[0]
			return reply{
				text: choice.Message.Content,
				usage: Usage{
					Input:  resp.Usage.PromptTokens,
					Output: resp.Usage.CompletionTokens,
				},
				model:     resp.Model,
				truncated: choice.FinishReason == openai.FinishReasonLength,
			}, nil
		},
	}
}

func chatRequest(model string, p Prompt) (openai.ChatCompletionRequest, error) {
	req := openai.ChatCompletionRequest{
		Model:               model,
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
	}
	if p.Instructions != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: p.Instructions,
		})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: p.Input,
	})

	if p.Schema != nil {
		def, err := json.Marshal(p.Schema.Definition)
		if err != nil {
			return req, fmt.Errorf("marshal schema %s: %w", p.Schema.Name, err)
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        p.Schema.Name,
				Description: p.Schema.Description,
				Schema:      json.RawMessage(def),
				Strict:      true,
			},
		}
	}
	return req, nil
}

// headerTransport adds fixed headers to every request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	for k, v := range t.headers {
		r.Header.Set(k, v)
	}
	return t.base.RoundTrip(r)
}
