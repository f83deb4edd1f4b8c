// Package app wires configuration, storage, providers and the pathway
// services into one container used by the CLI.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/adapt"
	"github.com/abhisek/pathwise/internal/careers"
	"github.com/abhisek/pathwise/internal/config"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/pathway"
	"github.com/abhisek/pathwise/internal/resources"
	"github.com/abhisek/pathwise/internal/skillgraph"
	"github.com/abhisek/pathwise/internal/store"
)

// App holds the long-lived services for one process.
type App struct {
	Config   config.Config
	Logger   *zap.Logger
	Store    *store.Store
	Graph    *skillgraph.Graph
	Careers  *careers.Catalog
	Registry *resources.Registry

	Generator *pathway.Generator
	Enricher  *pathway.Enricher
	Adapter   *adapt.Adapter

	redis *resources.RedisCache
}

// New opens the record store and builds every service from cfg.
// Close must be called when done.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		dbPath = p
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	graph, err := skillgraph.Default()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("skill graph: %w", err)
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   st,
		Graph:   graph,
		Careers: careers.Default(),
	}

	if err := a.buildRegistry(ctx); err != nil {
		a.Close()
		return nil, err
	}

	ranker := resources.NewRanker(a.Registry, cfg.Ranker(), logger.Named("ranker"))
	a.Generator = pathway.NewGenerator(graph, a.Careers, pathway.WithLogger(logger.Named("generator")))
	a.Enricher = pathway.NewEnricher(ranker, resources.DefaultCurated(),
		pathway.WithTopicCap(cfg.TopicCap),
		pathway.WithEnrichLogger(logger.Named("enricher")))
	a.Adapter = adapt.New(
		adapt.WithRepo(st.AdaptationRepo()),
		adapt.WithLogger(logger.Named("adapt")))
	return a, nil
}

// buildRegistry registers the static catalogs plus any configured network
// providers, then wraps each as cache → logging → retry → timeout → provider.
func (a *App) buildRegistry(ctx context.Context) error {
	cfg := a.Config
	reg := resources.DefaultRegistry()

	if cfg.WebSearchEnabled() {
		web, err := resources.NewWebSearchProvider(ctx, cfg.SearchAPIKey, cfg.SearchCX)
		if err != nil {
			return fmt.Errorf("web search provider: %w", err)
		}
		reg.Register(web)
	}

	if cfg.LLM.Enabled() {
		p, err := llm.NewProvider(ctx, cfg.LLM, a.Store.EventRepo(), a.Logger.Named("llm"))
		if err != nil {
			return fmt.Errorf("llm provider: %w", err)
		}
		reg.Register(resources.NewCuratorProvider(p))
	}

	var cache resources.Cache = resources.NewMemoryCache()
	if cfg.RedisURL != "" {
		rc, err := resources.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis cache: %w", err)
		}
		a.redis = rc
		cache = rc
	}

	events := a.Store.EventRepo()
	logger := a.Logger.Named("providers")
	reg.Wrap(func(p resources.Provider) resources.Provider {
		p = resources.WithTimeout(p, cfg.ProviderTimeout)
		p = resources.WithRetry(p, resources.DefaultRetryConfig())
		p = resources.WithLogging(p, events, logger)
		return resources.WithCache(p, cache, cfg.CacheTTL, logger)
	})
	a.Registry = reg
	return nil
}

// Close releases the store and any cache connection.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	return errors.Join(errs...)
}

// SavePathway stores p under its ID, replacing any earlier copy.
func (a *App) SavePathway(ctx context.Context, p *pathway.Pathway) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode pathway: %w", err)
	}
	return a.Store.PathwayRepo().Save(ctx, store.PathwayRecord{
		ID:         p.ID,
		Title:      p.Title,
		TargetRole: p.TargetRole,
		CreatedAt:  p.AdaptationMetadata.CreatedAt,
		Body:       body,
	})
}

// LoadPathway returns the stored pathway with the given ID.
func (a *App) LoadPathway(ctx context.Context, id string) (*pathway.Pathway, error) {
	rec, err := a.Store.PathwayRepo().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var p pathway.Pathway
	if err := json.Unmarshal(rec.Body, &p); err != nil {
		return nil, fmt.Errorf("decode pathway %s: %w", id, err)
	}
	return &p, nil
}
