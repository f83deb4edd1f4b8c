package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures list queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // created_at >= From
	To    time.Time // created_at <= To

	// Purpose restricts LLM event queries to one purpose label.
	Purpose string
}

// PathwayRecord is a stored pathway. Body is the pathway JSON document.
type PathwayRecord struct {
	ID         string
	Title      string
	TargetRole string
	CreatedAt  time.Time
	Body       json.RawMessage
}

// PathwaySummary is a pathway listing row without the body.
type PathwaySummary struct {
	ID         string
	Title      string
	TargetRole string
	CreatedAt  time.Time
}

// PathwayRepo stores generated pathways. Saving an existing ID replaces it.
type PathwayRepo interface {
	Save(ctx context.Context, rec PathwayRecord) error

	// Get returns ErrNotFound if no pathway has the given ID.
	Get(ctx context.Context, id string) (*PathwayRecord, error)

	// List returns summaries, newest first.
	List(ctx context.Context, opts QueryOpts) ([]PathwaySummary, error)
}

// AdaptationRecord is one stored adaptation report for a pathway.
type AdaptationRecord struct {
	PathwayID string
	CreatedAt time.Time
	Body      json.RawMessage
}

// AdaptationRepo keeps an append-only history of adaptation reports.
type AdaptationRepo interface {
	Append(ctx context.Context, rec AdaptationRecord) error

	// ListFor returns reports for a pathway, oldest first.
	ListFor(ctx context.Context, pathwayID string) ([]AdaptationRecord, error)
}

// ProviderCallEventData captures a single resource-provider search call.
type ProviderCallEventData struct {
	Provider     string
	Term         string
	Results      int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// ProviderStat aggregates provider_calls per provider.
type ProviderStat struct {
	Provider     string
	Calls        int
	Failures     int
	Results      int
	AvgLatencyMs float64
}

// LLMEvent is a stored llm_requests row.
type LLMEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// ModelUsage aggregates llm_requests per served model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to call events.
type EventRepo interface {
	// AppendProviderCall records a resource-provider search.
	AppendProviderCall(ctx context.Context, data ProviderCallEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ProviderStats summarizes provider calls, ordered by provider name.
	ProviderStats(ctx context.Context) ([]ProviderStat, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// LLMUsageByModel sums token usage per model, ordered by model name.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
