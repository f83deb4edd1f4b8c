package resources

import (
	"context"
	"sync"
)

// MockProvider is a deterministic Provider for tests. It answers every
// search from Results (or Err), honoring MaxResults, and records requests.
type MockProvider struct {
	ProviderName string
	Results      func(req SearchRequest) []Resource
	Err          error

	mu    sync.Mutex
	Calls []SearchRequest
}

// NewMockProvider returns a provider named name that always returns rs.
func NewMockProvider(name string, rs ...Resource) *MockProvider {
	return &MockProvider{
		ProviderName: name,
		Results:      func(SearchRequest) []Resource { return rs },
	}
}

func (m *MockProvider) Name() string { return m.ProviderName }

func (m *MockProvider) Search(ctx context.Context, req SearchRequest) ([]Resource, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Results == nil {
		return nil, nil
	}
	rs := m.Results(req)
	if req.MaxResults > 0 && len(rs) > req.MaxResults {
		rs = rs[:req.MaxResults]
	}
	return rs, nil
}

// CallCount returns the number of Search calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
