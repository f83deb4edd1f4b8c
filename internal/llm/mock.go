package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one scripted answer for MockProvider. Err, when set, is
// returned instead of a completion.
type MockReply struct {
	JSON      json.RawMessage
	Usage     Usage
	Truncated bool
	Err       error
}

// MockProvider replays scripted replies in order and records every prompt.
// Replies go through the same output checks as real vendors, so a reply
// that breaks the prompt's schema fails with KindInvalidOutput.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Prompts []Prompt
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Name() string  { return ProviderMock }
func (m *MockProvider) Model() string { return ProviderMock }

// Complete returns the next scripted reply. An exhausted script reports
// the provider as unavailable.
func (m *MockProvider) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, p)
	if len(m.replies) == 0 {
		m.mu.Unlock()
		return nil, &Error{Kind: KindUnavailable, Vendor: ProviderMock}
	}
	next := m.replies[0]
	m.replies = m.replies[1:]
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}
	return finish(ProviderMock, p, reply{
		text:      string(next.JSON),
		usage:     next.Usage,
		model:     ProviderMock,
		truncated: next.Truncated,
	})
}

// Script appends replies to the queue.
func (m *MockProvider) Script(replies ...MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
