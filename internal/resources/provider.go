package resources

import (
	"context"
	"fmt"
	"slices"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// SearchRequest is a single provider query.
type SearchRequest struct {
	Term         string
	Difficulty   skillgraph.Difficulty
	ContentTypes []Type
	MaxResults   int
}

// wants reports whether t is in the request's content-type filter.
// An empty filter accepts everything.
func (r SearchRequest) wants(t Type) bool {
	return len(r.ContentTypes) == 0 || slices.Contains(r.ContentTypes, t)
}

// Provider searches one platform for learning resources.
type Provider interface {
	// Name returns the platform name, e.g. "youtube".
	Name() string

	// Search returns up to req.MaxResults resources for req.Term.
	Search(ctx context.Context, req SearchRequest) ([]Resource, error)
}

// ProviderError wraps a failure from a named provider.
type ProviderError struct {
	Provider string
	Term     string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (term %q): %v", e.Provider, e.Term, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Registry is an ordered set of providers. Query order follows
// registration order.
type Registry struct {
	providers []Provider
}

// NewRegistry returns a registry holding ps in order.
func NewRegistry(ps ...Provider) *Registry {
	r := &Registry{}
	for _, p := range ps {
		r.Register(p)
	}
	return r
}

// Register appends p, replacing any provider with the same name in place.
func (r *Registry) Register(p Provider) {
	for i, existing := range r.providers {
		if existing.Name() == p.Name() {
			r.providers[i] = p
			return
		}
	}
	r.providers = append(r.providers, p)
}

// Providers returns the registered providers in query order.
func (r *Registry) Providers() []Provider {
	return slices.Clone(r.providers)
}

// Names returns provider names in query order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name()
	}
	return names
}

// Wrap applies decorate to every registered provider.
func (r *Registry) Wrap(decorate func(Provider) Provider) {
	for i, p := range r.providers {
		r.providers[i] = decorate(p)
	}
}
