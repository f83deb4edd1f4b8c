package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func lessonSchema() *Schema {
	return &Schema{
		Name:        "test-lesson",
		Description: "A lesson summary",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":   map[string]any{"type": "string"},
				"minutes": map[string]any{"type": "integer", "minimum": 0},
				"level":   map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
			},
			"required": []any{"title", "minutes"},
		},
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"title":"Tour of Go","minutes":90,"level":"beginner"}`, false},
		{"optional omitted", `{"title":"Effective Go","minutes":120}`, false},
		{"missing required", `{"title":"Go Blog"}`, true},
		{"wrong type", `{"title":"Go Spec","minutes":"ten"}`, true},
		{"bad enum", `{"title":"Go Wiki","minutes":30,"level":"expert"}`, true},
		{"negative", `{"title":"Go Wiki","minutes":-1}`, true},
		{"not json", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lessonSchema().Validate(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSchemaValidate_NilSchema(t *testing.T) {
	var s *Schema
	if err := s.Validate(json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}

func TestSchemaValidate_NestedArrays(t *testing.T) {
	s := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{
					"type":       "object",
					"properties": map[string]any{"title": map[string]any{"type": "string"}},
					"required":   []any{"title"},
				},
				"ratings": map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
			},
			"required": []any{"topic", "ratings"},
		},
	}
	if err := s.Validate(json.RawMessage(`{"topic":{"title":"Channels"},"ratings":[4,5,3]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Validate(json.RawMessage(`{"topic":{"title":"Channels"},"ratings":["a"]}`)); err == nil {
		t.Fatal("expected error for wrong item type")
	}
}

func TestFinish(t *testing.T) {
	p := Prompt{Schema: lessonSchema()}

	c, err := finish("test", p, reply{
		text:  "```json\n{\"title\":\"Tour of Go\",\"minutes\":90}\n```",
		usage: Usage{Input: 10, Output: 4},
		model: "m",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(c.JSON) != `{"title":"Tour of Go","minutes":90}` {
		t.Fatalf("fence not stripped: %s", c.JSON)
	}
	if c.Usage.Total() != 14 || c.Model != "m" {
		t.Fatalf("unexpected completion: %+v", c)
	}

	_, err = finish("test", p, reply{text: `{"title":"x"}`})
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindInvalidOutput || string(e.Output) != `{"title":"x"}` {
		t.Fatalf("expected invalid output error carrying the output, got %v", err)
	}

	_, err = finish("test", p, reply{text: `{"title":`, truncated: true})
	if !IsKind(err, KindTruncated) {
		t.Fatalf("expected truncated error, got %v", err)
	}

	_, err = finish("test", Prompt{}, reply{text: "   "})
	if !IsKind(err, KindInvalidOutput) {
		t.Fatalf("expected empty output to be invalid, got %v", err)
	}
}

func TestFinish_PlainTextWithoutSchema(t *testing.T) {
	c, err := finish("test", Prompt{}, reply{text: "Start with the Go tour."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s string
	if err := json.Unmarshal(c.JSON, &s); err != nil || s != "Start with the Go tour." {
		t.Fatalf("expected text wrapped as a JSON string, got %s", c.JSON)
	}
}

func TestUnfence(t *testing.T) {
	tests := map[string]string{
		`{"a":1}`:                 `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"  {\"a\":1}\n":           `{"a":1}`,
	}
	for in, want := range tests {
		if got := unfence(in); got != want {
			t.Errorf("unfence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		status    int
		kind      Kind
		retryable bool
	}{
		{0, KindUnavailable, true},
		{429, KindRateLimited, true},
		{400, KindRejected, false},
		{401, KindRejected, false},
		{503, KindUnavailable, true},
	}
	for _, tt := range tests {
		err := classify("test", tt.status, nil, cause)
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("status %d: expected *Error, got %T", tt.status, err)
		}
		if e.Kind != tt.kind || e.Retryable() != tt.retryable {
			t.Errorf("status %d: kind=%s retryable=%v", tt.status, e.Kind, e.Retryable())
		}
		if !errors.Is(err, cause) {
			t.Errorf("status %d: cause not wrapped", tt.status)
		}
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		aliases map[string]string
		in      string
		want    string
	}{
		{anthropicModels, "claude-haiku", "claude-haiku-4-5-20251001"},
		{anthropicModels, "claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{openaiModels, "gpt-mini", "gpt-4o-mini"},
		{geminiModels, "gemini-flash", "gemini-2.0-flash"},
		{geminiModels, "gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, tt.aliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
