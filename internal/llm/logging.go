package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/store"
)

type logging struct {
	inner  Provider
	events store.EventRepo
	logger *zap.Logger
}

// WithLogging records every call of p as an llm_request event and logs it
// with its estimated cost. A nil repo only logs. Event write failures are
// logged and never fail the call.
func WithLogging(p Provider, events store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logging{inner: p, events: events, logger: logger}
}

func (l *logging) Name() string  { return l.inner.Name() }
func (l *logging) Model() string { return l.inner.Model() }

func (l *logging) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	start := time.Now()
	c, err := l.inner.Complete(ctx, p)
	elapsed := time.Since(start)

	ev := store.LLMRequestEventData{
		Provider:    l.inner.Name(),
		Model:       l.inner.Model(),
		Purpose:     purposeOf(p),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(p),
	}
	if c != nil {
		ev.Model = c.Model
		ev.InputTokens = c.Usage.Input
		ev.OutputTokens = c.Usage.Output
		ev.ResponseBody = string(c.JSON)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	fields := []zap.Field{
		zap.String("vendor", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Duration("latency", elapsed),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
	}
	if cost := LookupCost(ev.Model); cost != nil {
		fields = append(fields, zap.Float64("cost_usd", cost.Cost(ev.InputTokens, ev.OutputTokens)))
	}
	if err != nil {
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Debug("llm request", fields...)
	}

	if l.events != nil {
		if werr := l.events.AppendLLMRequest(ctx, ev); werr != nil {
			l.logger.Warn("failed to record llm request event", zap.Error(werr))
		}
	}
	return c, err
}

func purposeOf(p Prompt) string {
	if p.Purpose == "" {
		return "unknown"
	}
	return p.Purpose
}

// transcript renders a prompt for the event log.
func transcript(p Prompt) string {
	var b strings.Builder
	if p.Instructions != "" {
		fmt.Fprintf(&b, "[instructions]\n%s\n\n", p.Instructions)
	}
	fmt.Fprintf(&b, "[input]\n%s\n", p.Input)
	if p.Schema != nil {
		if def, err := json.Marshal(p.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema %s]\n%s\n", p.Schema.Name, def)
		}
	}
	return b.String()
}
