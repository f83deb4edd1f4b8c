package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// NewGeminiProvider returns a Provider backed by the Gemini API. Schema
// prompts are sent as a response schema with a JSON MIME type.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	cc := &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &endpoint{
		vendor: ProviderGemini,
		model:  resolveModel(cfg.Model, geminiModels),
		send: func(ctx context.Context, model string, p Prompt) (reply, error) {
			res, err := client.Models.GenerateContent(ctx, model, genai.Text(p.Input), geminiConfig(p))
			if err != nil {
				return reply{}, classify(ProviderGemini, geminiStatus(err), nil, err)
			}

			r := reply{text: res.Text(), model: res.ModelVersion}
			if res.UsageMetadata != nil {
				r.usage = Usage{
					Input:  int(res.UsageMetadata.PromptTokenCount),
					Output: int(res.UsageMetadata.CandidatesTokenCount),
				}
			}
			if len(res.Candidates) > 0 {
				r.truncated = res.Candidates[0].FinishReason == genai.FinishReasonMaxTokens
			}
			return r, nil
		},
	}, nil
}

// geminiStatus returns the HTTP status carried by a genai.APIError, held
// by value or by pointer.
func geminiStatus(err error) int {
	var v genai.APIError
	if errors.As(err, &v) {
		return v.Code
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return p.Code
	}
	return 0
}

func geminiConfig(p Prompt) *genai.GenerateContentConfig {
	conf := &genai.GenerateContentConfig{MaxOutputTokens: int32(p.MaxTokens)}
	if p.Temperature > 0 {
		conf.Temperature = genai.Ptr(float32(p.Temperature))
	}
	if p.Instructions != "" {
		conf.SystemInstruction = genai.NewContentFromText(p.Instructions, genai.RoleUser)
	}
	if p.Schema != nil {
		conf.ResponseMIMEType = "application/json"
		conf.ResponseSchema = geminiSchema(p.Schema.Definition)
	}
	return conf
}

// geminiSchema converts the JSON Schema subset used by prompts into
// Gemini's OpenAPI-style schema. A type list containing "null" becomes a
// nullable schema of the other type. Unsupported keywords such as
// additionalProperties are dropped.
func geminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{}
	switch t := def["type"].(type) {
	case string:
		s.Type = geminiType(t)
	case []any:
		for _, v := range t {
			name, _ := v.(string)
			if name == "null" {
				s.Nullable = genai.Ptr(true)
			} else if name != "" {
				s.Type = geminiType(name)
			}
		}
	}
	s.Description, _ = def["description"].(string)

	if props, ok := def["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if sub, ok := v.(map[string]any); ok {
				s.Properties[name] = geminiSchema(sub)
			}
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		s.Items = geminiSchema(items)
	}
	s.Required = stringList(def["required"])
	s.Enum = stringList(def["enum"])
	if n, ok := intKeyword(def["minItems"]); ok {
		s.MinItems = genai.Ptr(n)
	}
	if n, ok := intKeyword(def["maxItems"]); ok {
		s.MaxItems = genai.Ptr(n)
	}
	return s
}

func geminiType(t string) genai.Type {
	switch t {
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func stringList(v any) []string {
	list, _ := v.([]any)
	var out []string
	for _, x := range list {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intKeyword(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}
