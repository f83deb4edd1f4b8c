package resources

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// DefaultLimit is used when a query does not set one.
const DefaultLimit = 10

// maxTerms bounds provider fan-out per query.
const maxTerms = 3

// Config holds ranker tables and behavior switches.
type Config struct {
	// Delay is the minimum spacing between provider calls. Zero disables
	// throttling.
	Delay time.Duration

	// StrictURLs enables live reachability probes through Prober.
	StrictURLs bool
	Prober     URLProber

	// ContentTypes filters provider results. Empty means DefaultContentTypes.
	ContentTypes []Type

	Keywords  []SkillKeywords
	Relevance []RelevanceRule
	Trust     map[string]float64
}

// DefaultConfig returns the built-in tables with no throttling.
func DefaultConfig() Config {
	return Config{
		ContentTypes: DefaultContentTypes(),
		Keywords:     DefaultSkillKeywords(),
		Relevance:    DefaultRelevanceRules(),
		Trust:        DefaultPlatformTrust(),
	}
}

// Query describes the resources wanted for one topic.
type Query struct {
	Topic      string
	Difficulty skillgraph.Difficulty
	Role       string
	Skills     []string
	Limit      int
}

// Ranker finds, deduplicates and ranks resources across providers.
// A Ranker holds only read-only tables and is safe to reuse; the throttle
// is shared by every call.
type Ranker struct {
	registry *Registry
	cfg      Config
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewRanker returns a Ranker over reg. A nil logger discards output.
func NewRanker(reg *Registry, cfg Config, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.ContentTypes) == 0 {
		cfg.ContentTypes = DefaultContentTypes()
	}
	if cfg.Trust == nil {
		cfg.Trust = DefaultPlatformTrust()
	}
	r := &Ranker{registry: reg, cfg: cfg, logger: logger}
	if cfg.Delay > 0 {
		r.limiter = rate.NewLimiter(rate.Every(cfg.Delay), 1)
	}
	return r
}

// FindResources returns up to q.Limit resources for q.Topic that are not
// already in seen, and records the returned ones into seen. Provider
// failures are logged and skipped; the result is never nil.
func (rk *Ranker) FindResources(ctx context.Context, q Query, seen *SeenSet) []Resource {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if seen == nil {
		seen = NewSeenSet()
	}

	terms := rk.expandTerms(q.Topic, q.Role)
	if len(terms) == 0 {
		return []Resource{}
	}
	candidates := rk.gather(ctx, terms, q)
	unique := dedupe(candidates, seen)
	ranked := rank(unique, newScorer(q, rk.cfg.Trust))
	rel := newRelevance(q.Topic, rk.cfg.Relevance)
	selected := selectResources(ranked, rel, affinityWords(q.Role, q.Skills), q.Limit)

	out := make([]Resource, 0, len(selected))
	for _, r := range selected {
		r, healed := heal(ctx, r, q.Topic, rk.cfg.StrictURLs, rk.cfg.Prober)
		if healed {
			if seen.seenIdentity(r) {
				continue
			}
			seen.addIdentity(r)
		} else {
			seen.Add(r)
		}
		out = append(out, r)
	}

	rk.logger.Debug("resources selected",
		zap.String("topic", q.Topic),
		zap.Strings("terms", terms),
		zap.Int("candidates", len(candidates)),
		zap.Int("unique", len(unique)),
		zap.Int("returned", len(out)))
	return out
}

// expandTerms turns a topic into at most maxTerms search terms. The topic
// itself is always first; duplicates are dropped.
func (rk *Ranker) expandTerms(topic, role string) []string {
	terms := []string{topic}
	lower := strings.ToLower(topic)

	for _, sk := range rk.cfg.Keywords {
		if keywordMatch(lower, sk) {
			terms = append(terms, sk.Keywords[:min(2, len(sk.Keywords))]...)
			break
		}
	}

	if role = strings.TrimSpace(role); role != "" {
		terms = append(terms, topic+" for "+role)
		words := tokens(role)
		for _, w := range words[:min(2, len(words))] {
			terms = append(terms, topic+" "+w)
		}
	}

	out := make([]string, 0, maxTerms)
	seen := map[string]bool{}
	for _, t := range terms {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
		if len(out) == maxTerms {
			break
		}
	}
	return out
}

func keywordMatch(lowerTopic string, sk SkillKeywords) bool {
	if containsWord(lowerTopic, strings.ReplaceAll(sk.Skill, "_", " ")) {
		return true
	}
	for _, kw := range sk.Keywords {
		if containsWord(lowerTopic, kw) {
			return true
		}
	}
	return false
}

// gather queries every provider with every term, in registry order.
func (rk *Ranker) gather(ctx context.Context, terms []string, q Query) []Resource {
	if len(terms) == 0 {
		return nil
	}
	perCall := max(1, q.Limit/len(terms))
	var all []Resource
	for _, p := range rk.registry.Providers() {
		for _, term := range terms {
			if rk.limiter != nil {
				if err := rk.limiter.Wait(ctx); err != nil {
					return all
				}
			}
			rs, err := p.Search(ctx, SearchRequest{
				Term:         term,
				Difficulty:   q.Difficulty,
				ContentTypes: rk.cfg.ContentTypes,
				MaxResults:   perCall,
			})
			if err != nil {
				rk.logger.Warn("resource provider failed",
					zap.String("provider", p.Name()),
					zap.String("term", term),
					zap.Error(err))
				continue
			}
			for _, r := range rs {
				all = append(all, r.normalize())
			}
		}
	}
	return all
}
