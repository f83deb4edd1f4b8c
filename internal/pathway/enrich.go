package pathway

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/resources"
	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Resource counts per topic.
const (
	DefaultTopicCap = 6
	minTopicFill    = 3
)

// Finder is the part of resources.Ranker used by the Enricher.
type Finder interface {
	FindResources(ctx context.Context, q resources.Query, seen *resources.SeenSet) []resources.Resource
}

// Enricher attaches resources to every topic of a pathway.
type Enricher struct {
	finder  Finder
	curated *resources.Curated
	cap     int
	logger  *zap.Logger
}

// EnricherOption configures an Enricher.
type EnricherOption func(*Enricher)

// WithTopicCap sets the number of resources attached per topic.
func WithTopicCap(n int) EnricherOption {
	return func(e *Enricher) {
		if n > 0 {
			e.cap = n
		}
	}
}

// WithEnrichLogger sets the logger.
func WithEnrichLogger(l *zap.Logger) EnricherOption {
	return func(e *Enricher) { e.logger = l }
}

// NewEnricher returns an Enricher backed by finder and the curated table.
// A nil curated table disables seeding.
func NewEnricher(finder Finder, curated *resources.Curated, opts ...EnricherOption) *Enricher {
	e := &Enricher{
		finder:  finder,
		curated: curated,
		cap:     DefaultTopicCap,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich fills every topic's resources in module order. A single seen set
// spans the whole pathway so no resource is attached twice. Topics that end
// up short are re-queried without the role and skill affinity.
func (e *Enricher) Enrich(ctx context.Context, p *Pathway) {
	seen := resources.NewSeenSet()
	for mi := range p.Modules {
		m := &p.Modules[mi]
		for ti := range m.Topics {
			if ctx.Err() != nil {
				e.ensureSlices(p)
				return
			}
			t := &m.Topics[ti]
			t.Resources = e.topicResources(ctx, p, t.Name, t.Difficulty, seen)
		}
	}
	e.ensureSlices(p)
	e.logger.Info("pathway enriched",
		zap.String("id", p.ID),
		zap.Int("resources", p.ResourceCount()),
		zap.Int("unique_urls", seen.Len()))
}

func (e *Enricher) topicResources(ctx context.Context, p *Pathway, topic string, d skillgraph.Difficulty, seen *resources.SeenSet) []resources.Resource {
	out := make([]resources.Resource, 0, e.cap)
	for _, r := range e.curated.For(topic) {
		if len(out) == e.cap {
			return out
		}
		if seen.Seen(r) {
			continue
		}
		seen.Add(r)
		out = append(out, r)
	}

	if remaining := e.cap - len(out); remaining > 0 {
		out = append(out, e.finder.FindResources(ctx, resources.Query{
			Topic:      topic,
			Difficulty: d,
			Role:       p.TargetRole,
			Skills:     p.SkillsCovered,
			Limit:      remaining,
		}, seen)...)
	}

	if len(out) < minTopicFill {
		extra := e.finder.FindResources(ctx, resources.Query{
			Topic:      topic,
			Difficulty: d,
			Limit:      e.cap - len(out),
		}, seen)
		e.logger.Debug("topic under-resourced, relaxed query",
			zap.String("topic", topic),
			zap.Int("had", len(out)),
			zap.Int("added", len(extra)))
		out = append(out, extra...)
	}
	return out
}

func (e *Enricher) ensureSlices(p *Pathway) {
	for mi := range p.Modules {
		for ti := range p.Modules[mi].Topics {
			if p.Modules[mi].Topics[ti].Resources == nil {
				p.Modules[mi].Topics[ti].Resources = []resources.Resource{}
			}
		}
	}
}
