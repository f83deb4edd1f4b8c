package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter hands out one monotonic sequence shared by provider_calls
// and llm_requests, so events from both tables can be interleaved in the
// order they happened. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on plain SQL and the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendProviderCall(ctx context.Context, data ProviderCallEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO provider_calls (sequence, timestamp, provider, term, results, latency_ms, success, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, formatTime(time.Now()), data.Provider, data.Term, data.Results,
		data.LatencyMs, data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save provider call event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO llm_requests (sequence, timestamp, provider, model, purpose, input_tokens,
			output_tokens, latency_ms, success, error, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, formatTime(time.Now()), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ProviderStats(ctx context.Context) ([]ProviderStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT provider, COUNT(*), SUM(CASE WHEN success THEN 0 ELSE 1 END),
			SUM(results), AVG(latency_ms)
		 FROM provider_calls GROUP BY provider ORDER BY provider`)
	if err != nil {
		return nil, fmt.Errorf("query provider stats: %w", err)
	}
	defer rows.Close()

	var stats []ProviderStat
	for rows.Next() {
		var s ProviderStat
		if err := rows.Scan(&s.Provider, &s.Calls, &s.Failures, &s.Results, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan provider stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		 FROM llm_requests GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query model usage: %w", err)
	}
	defer rows.Close()

	var usage []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	query := `SELECT sequence, timestamp, provider, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error, request_body, response_body
		 FROM llm_requests WHERE 1=1`
	var args []any
	if !opts.From.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, formatTime(opts.From))
	}
	if !opts.To.IsZero() {
		query += " AND timestamp <= ?"
		args = append(args, formatTime(opts.To))
	}
	if opts.Purpose != "" {
		query += " AND purpose = ?"
		args = append(args, opts.Purpose)
	}
	query += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		var e LLMEvent
		var ts string
		if err := rows.Scan(&e.Sequence, &ts, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
			&e.ErrorMessage, &e.RequestBody, &e.ResponseBody); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		if e.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
