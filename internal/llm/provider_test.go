package llm

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockReply{JSON: json.RawMessage(`{"a":1}`), Usage: Usage{Input: 10, Output: 5}},
		MockReply{JSON: json.RawMessage(`{"b":2}`)},
	)

	c1, err := mock.Complete(context.Background(), Prompt{Input: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(c1.JSON) != `{"a":1}` || c1.Usage.Total() != 15 || c1.Model != ProviderMock {
		t.Fatalf("unexpected first completion: %+v", c1)
	}
	c2, err := mock.Complete(context.Background(), Prompt{Input: "second"})
	if err != nil || string(c2.JSON) != `{"b":2}` {
		t.Fatalf("unexpected second completion: %v, %v", c2, err)
	}
	if mock.Prompts[1].Input != "second" {
		t.Fatalf("prompts not recorded: %+v", mock.Prompts)
	}
}

func TestMockProvider_Exhausted(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Complete(context.Background(), Prompt{})
	if !IsKind(err, KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}

	mock.Script(okReply)
	if _, err := mock.Complete(context.Background(), Prompt{}); err != nil {
		t.Fatalf("scripted reply not used: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestMockProvider_ChecksSchema(t *testing.T) {
	mock := NewMockProvider(MockReply{JSON: json.RawMessage(`{"title":"x"}`)})
	_, err := mock.Complete(context.Background(), Prompt{Schema: lessonSchema()})
	if !IsKind(err, KindInvalidOutput) {
		t.Fatalf("expected invalid output, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_DisabledIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Enabled() {
		t.Fatal("default config should be disabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestConfigFromEnv_Prefixed(t *testing.T) {
	t.Setenv("PATHWISE_LLM_PROVIDER", "openai")
	t.Setenv("PATHWISE_OPENAI_API_KEY", "sk-env")
	t.Setenv("PATHWISE_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("PATHWISE_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-4.1-mini" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Timeout.Seconds() != 5 {
		t.Fatalf("timeout = %s, want 5s", cfg.Timeout)
	}
}

func TestConfigFromEnv_DiscoversVendorKey(t *testing.T) {
	t.Setenv("PATHWISE_LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Model() != ProviderMock {
		t.Fatalf("expected mock, got %q", p.Model())
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: "gemini"}, nil, nil); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("cost = %v, want 0.75", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}

func TestNewProvider_WrapsVendor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or-test"
	cfg.Timeout = time.Second

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(bounded); !ok {
		t.Fatalf("expected a deadline-bounded provider, got %T", p)
	}
	if p.Name() != ProviderOpenRouter || p.Model() != cfg.OpenRouter.Model {
		t.Fatalf("unexpected identity %s/%s", p.Name(), p.Model())
	}
}
