package store

import (
	"context"
	"database/sql"
	"fmt"
)

type adaptationRepo struct {
	db *sql.DB
}

func (r *adaptationRepo) Append(ctx context.Context, rec AdaptationRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO adaptations (pathway_id, created_at, body) VALUES (?, ?, ?)`,
		rec.PathwayID, formatTime(rec.CreatedAt), string(rec.Body),
	)
	if err != nil {
		return fmt.Errorf("append adaptation for %s: %w", rec.PathwayID, err)
	}
	return nil
}

func (r *adaptationRepo) ListFor(ctx context.Context, pathwayID string) ([]AdaptationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT pathway_id, created_at, body FROM adaptations WHERE pathway_id = ? ORDER BY id`,
		pathwayID,
	)
	if err != nil {
		return nil, fmt.Errorf("list adaptations: %w", err)
	}
	defer rows.Close()

	var out []AdaptationRecord
	for rows.Next() {
		var (
			rec           AdaptationRecord
			created, body string
		)
		if err := rows.Scan(&rec.PathwayID, &created, &body); err != nil {
			return nil, fmt.Errorf("scan adaptation: %w", err)
		}
		if rec.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		rec.Body = []byte(body)
		out = append(out, rec)
	}
	return out, rows.Err()
}
