package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

type retrying struct {
	inner  Provider
	cfg    RetryConfig
	logger *zap.Logger
}

// WithRetry retries retryable failures of p with jittered exponential
// backoff. A rate limit's RetryAfter overrides the backoff. Invalid output
// is retried once, since a second sample often parses. Context errors and
// non-retryable kinds return immediately.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	return &retrying{inner: p, cfg: cfg, logger: logger}
}

func (r *retrying) Name() string  { return r.inner.Name() }
func (r *retrying) Model() string { return r.inner.Model() }

func (r *retrying) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	invalidSeen := false
	for attempt := 0; ; attempt++ {
		c, err := r.inner.Complete(ctx, p)
		if err == nil {
			return c, nil
		}
		if attempt+1 >= r.cfg.MaxAttempts || !r.again(err, &invalidSeen) {
			return nil, err
		}

		wait := r.wait(attempt, err)
		r.logger.Debug("retrying llm request",
			zap.String("vendor", r.inner.Name()),
			zap.String("purpose", p.Purpose),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

func (r *retrying) again(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return true
	}
	if e.Kind == KindInvalidOutput {
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}
	return e.Retryable()
}

func (r *retrying) wait(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = min(d, float64(r.cfg.MaxWait))
	// ±20% jitter
	d *= 0.8 + 0.4*rand.Float64()
	return time.Duration(max(d, 0))
}
