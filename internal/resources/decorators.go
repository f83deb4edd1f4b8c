package resources

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/store"
)

// DefaultTimeout bounds a single provider search.
const DefaultTimeout = 5 * time.Second

// timeoutProvider bounds every search with a deadline.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p so each search is cancelled after d.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &timeoutProvider{inner: p, timeout: d}
}

func (t *timeoutProvider) Name() string { return t.inner.Name() }

func (t *timeoutProvider) Search(ctx context.Context, req SearchRequest) ([]Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Search(ctx, req)
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig retries twice with a short backoff.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 200 * time.Millisecond,
		MaxWait:     2 * time.Second,
		Multiplier:  2.0,
	}
}

// retryProvider retries failed searches with exponential backoff and jitter.
type retryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{inner: p, config: cfg}
}

func (r *retryProvider) Name() string { return r.inner.Name() }

func (r *retryProvider) Search(ctx context.Context, req SearchRequest) ([]Resource, error) {
	var lastErr error
	for attempt := range r.config.MaxAttempts {
		rs, err := r.inner.Search(ctx, req)
		if err == nil {
			return rs, nil
		}
		lastErr = err

		// Context errors are never retried.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}
	return nil, &ProviderError{Provider: r.inner.Name(), Term: req.Term, Err: lastErr}
}

func (r *retryProvider) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}

// loggingProvider records every search as a provider_calls event.
type loggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
	logger    *zap.Logger
}

// WithLogging wraps p so each search is logged and persisted. A nil repo
// only logs.
func WithLogging(p Provider, repo store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &loggingProvider{inner: p, eventRepo: repo, logger: logger}
}

func (l *loggingProvider) Name() string { return l.inner.Name() }

func (l *loggingProvider) Search(ctx context.Context, req SearchRequest) ([]Resource, error) {
	start := time.Now()
	rs, err := l.inner.Search(ctx, req)
	latency := time.Since(start)

	data := store.ProviderCallEventData{
		Provider:  l.inner.Name(),
		Term:      req.Term,
		Results:   len(rs),
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.logger.Debug("provider search",
		zap.String("provider", data.Provider),
		zap.String("term", data.Term),
		zap.Int("results", data.Results),
		zap.Duration("latency", latency),
		zap.Bool("success", data.Success))

	// A failed event write never fails the search.
	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendProviderCall(ctx, data); logErr != nil {
			l.logger.Warn("failed to record provider call", zap.Error(logErr))
		}
	}
	return rs, err
}
