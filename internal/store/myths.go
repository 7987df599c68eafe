// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const mythColumns = `id, title, verdict, short_description, detailed_explanation, details, position, is_active, version, created_at, updated_at`

func scanMyth(row interface{ Scan(...any) error }) (model.Myth, error) {
	var m model.Myth
	err := row.Scan(
		&m.ID, &m.Title, &m.Verdict, &m.ShortDescription, &m.DetailedExplanation, &m.Details,
		&m.Position, &m.IsActive, &m.Version, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// ListMyths returns active myths ordered by position.
func (q *Queries) ListMyths(ctx context.Context) ([]model.Myth, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+mythColumns+` FROM myths WHERE is_active = 1 ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var myths []model.Myth
	for rows.Next() {
		m, err := scanMyth(rows)
		if err != nil {
			return nil, err
		}
		myths = append(myths, m)
	}
	return myths, rows.Err()
}

// GetMyth returns a myth by id, including soft-deleted rows.
func (q *Queries) GetMyth(ctx context.Context, id int64) (model.Myth, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+mythColumns+` FROM myths WHERE id = ?`, id)
	return scanMyth(row)
}

// CreateMythParams holds the validated input for a new myth.
type CreateMythParams struct {
	Title               string
	Verdict             string
	ShortDescription    string
	DetailedExplanation string
	Details             model.StringList
	Position            int64
}

// CreateMyth inserts a myth and returns the stored row.
func (q *Queries) CreateMyth(ctx context.Context, p CreateMythParams) (model.Myth, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO myths (title, verdict, short_description, detailed_explanation, details, position, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+mythColumns,
		p.Title, p.Verdict, p.ShortDescription, p.DetailedExplanation, p.Details, p.Position, now, now,
	)
	return scanMyth(row)
}

// UpdateMythParams holds a partial update; nil fields are untouched.
type UpdateMythParams struct {
	Title               *string
	Verdict             *string
	ShortDescription    *string
	DetailedExplanation *string
	Details             *model.StringList
	Position            *int64
	ExpectedVersion     *int64
}

// UpdateMyth applies supplied fields to the row. A missing id is a silent
// no-op; a stale ExpectedVersion yields ErrVersionConflict.
func (q *Queries) UpdateMyth(ctx context.Context, id int64, p UpdateMythParams) (int64, error) {
	sets := &setClause{}
	if p.Title != nil {
		sets.add("title", *p.Title)
	}
	if p.Verdict != nil {
		sets.add("verdict", *p.Verdict)
	}
	if p.ShortDescription != nil {
		sets.add("short_description", *p.ShortDescription)
	}
	if p.DetailedExplanation != nil {
		sets.add("detailed_explanation", *p.DetailedExplanation)
	}
	if p.Details != nil {
		sets.add("details", *p.Details)
	}
	if p.Position != nil {
		sets.add("position", *p.Position)
	}
	return q.execVersionedUpdate(ctx, "myths", "id", id, sets, p.ExpectedVersion)
}

// SoftDeleteMyth marks the row inactive.
func (q *Queries) SoftDeleteMyth(ctx context.Context, id int64) (int64, error) {
	sets := &setClause{}
	sets.add("is_active", 0)
	return q.execVersionedUpdate(ctx, "myths", "id", id, sets, nil)
}

// CountMyths counts all myths, soft-deleted rows included.
func (q *Queries) CountMyths(ctx context.Context) (int64, error) {
	return q.countRows(ctx, "myths")
}
