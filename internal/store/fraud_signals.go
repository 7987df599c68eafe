// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const fraudSignalColumns = `id, signal, category, position, is_active, version, created_at, updated_at`

func scanFraudSignal(row interface{ Scan(...any) error }) (model.FraudSignal, error) {
	var f model.FraudSignal
	err := row.Scan(
		&f.ID, &f.Signal, &f.Category,
		&f.Position, &f.IsActive, &f.Version, &f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}

// ListFraudSignals returns active fraud signals ordered by position,
// optionally narrowed to one category. An unknown category yields an empty
// list, not an error.
func (q *Queries) ListFraudSignals(ctx context.Context, category string) ([]model.FraudSignal, error) {
	query := `SELECT ` + fraudSignalColumns + ` FROM fraud_signals WHERE is_active = 1`
	args := []any{}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY position, id`

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signals []model.FraudSignal
	for rows.Next() {
		f, err := scanFraudSignal(rows)
		if err != nil {
			return nil, err
		}
		signals = append(signals, f)
	}
	return signals, rows.Err()
}

// GetFraudSignal returns a fraud signal by id, including soft-deleted rows.
func (q *Queries) GetFraudSignal(ctx context.Context, id int64) (model.FraudSignal, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+fraudSignalColumns+` FROM fraud_signals WHERE id = ?`, id)
	return scanFraudSignal(row)
}

// CreateFraudSignalParams holds the validated input for a new fraud signal.
type CreateFraudSignalParams struct {
	Signal   string
	Category string
	Position int64
}

// CreateFraudSignal inserts a fraud signal and returns the stored row.
func (q *Queries) CreateFraudSignal(ctx context.Context, p CreateFraudSignalParams) (model.FraudSignal, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO fraud_signals (signal, category, position, is_active, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		RETURNING `+fraudSignalColumns,
		p.Signal, p.Category, p.Position, now, now,
	)
	return scanFraudSignal(row)
}

// UpdateFraudSignalParams holds a partial update; nil fields are untouched.
type UpdateFraudSignalParams struct {
	Signal          *string
	Category        *string
	Position        *int64
	ExpectedVersion *int64
}

// UpdateFraudSignal applies supplied fields to the row. A missing id is a
// silent no-op; a stale ExpectedVersion yields ErrVersionConflict.
func (q *Queries) UpdateFraudSignal(ctx context.Context, id int64, p UpdateFraudSignalParams) (int64, error) {
	sets := &setClause{}
	if p.Signal != nil {
		sets.add("signal", *p.Signal)
	}
	if p.Category != nil {
		sets.add("category", *p.Category)
	}
	if p.Position != nil {
		sets.add("position", *p.Position)
	}
	return q.execVersionedUpdate(ctx, "fraud_signals", "id", id, sets, p.ExpectedVersion)
}

// SoftDeleteFraudSignal marks the row inactive.
func (q *Queries) SoftDeleteFraudSignal(ctx context.Context, id int64) (int64, error) {
	sets := &setClause{}
	sets.add("is_active", 0)
	return q.execVersionedUpdate(ctx, "fraud_signals", "id", id, sets, nil)
}

// CountFraudSignals counts all fraud signals, soft-deleted rows included.
func (q *Queries) CountFraudSignals(ctx context.Context) (int64, error) {
	return q.countRows(ctx, "fraud_signals")
}
