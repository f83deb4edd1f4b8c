package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// reply is what a vendor adapter extracts from its SDK response.
type reply struct {
	text      string
	usage     Usage
	model     string
	truncated bool
}

// endpoint adapts one vendor SDK call to Provider. The vendor files only
// map Prompt to the SDK request and the SDK response to reply; output
// checks live in finish.
type endpoint struct {
	vendor string
	model  string
	send   func(ctx context.Context, model string, p Prompt) (reply, error)
}

func (e *endpoint) Name() string  { return e.vendor }
func (e *endpoint) Model() string { return e.model }

func (e *endpoint) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	if p.MaxTokens <= 0 {
		p.MaxTokens = DefaultMaxTokens
	}
	r, err := e.send(ctx, e.model, p)
	if err != nil {
		return nil, err
	}
	if r.model == "" {
		r.model = e.model
	}
	return finish(e.vendor, p, r)
}

// finish applies the vendor-independent output rules: truncation is an
// error, fenced JSON is unwrapped, and schema prompts must validate.
func finish(vendor string, p Prompt, r reply) (*Completion, error) {
	text := unfence(r.text)
	if r.truncated {
		return nil, &Error{Kind: KindTruncated, Vendor: vendor, Output: json.RawMessage(text)}
	}
	if text == "" {
		return nil, &Error{Kind: KindInvalidOutput, Vendor: vendor, Err: errors.New("empty output")}
	}

	out := json.RawMessage(text)
	if p.Schema == nil {
		if !json.Valid(out) {
			out, _ = json.Marshal(text)
		}
	} else if err := p.Schema.Validate(out); err != nil {
		return nil, &Error{Kind: KindInvalidOutput, Vendor: vendor, Output: out, Err: err}
	}
	return &Completion{JSON: out, Usage: r.usage, Model: r.model}, nil
}

// unfence strips a markdown code fence some models wrap around JSON.
func unfence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// resolveModel maps a short model alias to the vendor model ID. Unknown
// names are used as given.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
