package resources

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// maxSearchResults is the Custom Search API page-size limit.
const maxSearchResults = 10

// WebSearchProvider finds articles through the Google Custom Search API.
type WebSearchProvider struct {
	svc *customsearch.Service
	cx  string
}

// NewWebSearchProvider creates a provider for the search engine cx.
// Extra options are passed to the API client.
func NewWebSearchProvider(ctx context.Context, apiKey, cx string, opts ...option.ClientOption) (*WebSearchProvider, error) {
	if apiKey == "" || cx == "" {
		return nil, fmt.Errorf("web search needs both an API key and a search engine ID")
	}
	svc, err := customsearch.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &WebSearchProvider{svc: svc, cx: cx}, nil
}

func (w *WebSearchProvider) Name() string { return PlatformWeb }

func (w *WebSearchProvider) Search(ctx context.Context, req SearchRequest) ([]Resource, error) {
	if !req.wants(TypeArticle) {
		return nil, nil
	}
	n := req.MaxResults
	if n <= 0 || n > maxSearchResults {
		n = maxSearchResults
	}

	q := req.Term + " tutorial"
	if req.Difficulty.Valid() {
		q += " " + string(req.Difficulty)
	}
	resp, err := w.svc.Cse.List().Cx(w.cx).Q(q).Num(int64(n)).Context(ctx).Do()
	if err != nil {
		return nil, &ProviderError{Provider: PlatformWeb, Term: req.Term, Err: err}
	}

	out := make([]Resource, 0, len(resp.Items))
	for i, item := range resp.Items {
		out = append(out, Resource{
			ID:          NewID(PlatformWeb, req.Term, i),
			Title:       strings.TrimSpace(item.Title),
			Description: strings.TrimSpace(item.Snippet),
			URL:         item.Link,
			Platform:    PlatformWeb,
			Type:        TypeArticle,
			Difficulty:  inferDifficulty(item.Title, difficultyOr(req.Difficulty)),
			Tags:        []string{req.Term, item.DisplayLink},
		}.normalize())
	}
	return out, nil
}
