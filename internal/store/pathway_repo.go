package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type pathwayRepo struct {
	db *sql.DB
}

func (r *pathwayRepo) Save(ctx context.Context, rec PathwayRecord) error {
	if rec.ID == "" {
		return errors.New("save pathway: empty id")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pathways (id, title, target_role, created_at, body) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			target_role = excluded.target_role,
			created_at = excluded.created_at,
			body = excluded.body`,
		rec.ID, rec.Title, rec.TargetRole, formatTime(rec.CreatedAt), string(rec.Body),
	)
	if err != nil {
		return fmt.Errorf("save pathway %s: %w", rec.ID, err)
	}
	return nil
}

func (r *pathwayRepo) Get(ctx context.Context, id string) (*PathwayRecord, error) {
	var (
		rec     PathwayRecord
		created string
		body    string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, target_role, created_at, body FROM pathways WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Title, &rec.TargetRole, &created, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pathway %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get pathway %s: %w", id, err)
	}

	if rec.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	rec.Body = []byte(body)
	return &rec, nil
}

func (r *pathwayRepo) List(ctx context.Context, opts QueryOpts) ([]PathwaySummary, error) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, formatTime(opts.From))
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, formatTime(opts.To))
	}

	q := `SELECT id, title, target_role, created_at FROM pathways`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, id"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list pathways: %w", err)
	}
	defer rows.Close()

	var out []PathwaySummary
	for rows.Next() {
		var (
			s       PathwaySummary
			created string
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.TargetRole, &created); err != nil {
			return nil, fmt.Errorf("scan pathway: %w", err)
		}
		if s.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
