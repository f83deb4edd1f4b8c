package llm

import (
	"context"
	"encoding/json"
)

// DefaultMaxTokens caps a completion when the prompt sets no limit.
const DefaultMaxTokens = 1024

// Provider completes single-turn prompts. When the prompt carries a Schema
// the completion is JSON that has already been validated against it.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// Name is the vendor behind the provider, e.g. "anthropic".
	Name() string

	// Model is the configured model ID.
	Model() string
}

// Prompt is one instruction/input pair sent to a model.
type Prompt struct {
	// Purpose labels the call in the event log, e.g. "resource-curation".
	Purpose string

	// Instructions become the system prompt.
	Instructions string

	// Input is the single user turn.
	Input string

	// Schema constrains the output. Vendors that support native
	// structured output receive it directly.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Completion is the model's answer to a Prompt.
type Completion struct {
	// JSON holds the validated object when a Schema was given. Without a
	// schema, plain text is wrapped as a JSON string.
	JSON json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage counts the tokens billed for one completion.
type Usage struct {
	Input  int
	Output int
}

func (u Usage) Total() int { return u.Input + u.Output }
