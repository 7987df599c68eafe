// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const requirementColumns = `id, category, title, description, position, is_active, version, created_at, updated_at`

func scanRequirement(row interface{ Scan(...any) error }) (model.Requirement, error) {
	var r model.Requirement
	err := row.Scan(
		&r.ID, &r.Category, &r.Title, &r.Description,
		&r.Position, &r.IsActive, &r.Version, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// ListRequirements returns active requirements ordered by position. A
// non-empty category narrows the result; an unknown category simply yields
// an empty list.
func (q *Queries) ListRequirements(ctx context.Context, category string) ([]model.Requirement, error) {
	query := `SELECT ` + requirementColumns + ` FROM requirements WHERE is_active = 1`
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

	var reqs []model.Requirement
	for rows.Next() {
		r, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

// GetRequirement returns a requirement by id, including soft-deleted rows.
func (q *Queries) GetRequirement(ctx context.Context, id int64) (model.Requirement, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+requirementColumns+` FROM requirements WHERE id = ?`, id)
	return scanRequirement(row)
}

// CreateRequirementParams holds the validated input for a new requirement.
type CreateRequirementParams struct {
	Category    string
	Title       string
	Description string
	Position    int64
}

// CreateRequirement inserts a requirement and returns the stored row.
func (q *Queries) CreateRequirement(ctx context.Context, p CreateRequirementParams) (model.Requirement, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO requirements (category, title, description, position, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)
		RETURNING `+requirementColumns,
		p.Category, p.Title, p.Description, p.Position, now, now,
	)
	return scanRequirement(row)
}

// UpdateRequirementParams holds a partial update; nil fields are untouched.
type UpdateRequirementParams struct {
	Category        *string
	Title           *string
	Description     *string
	Position        *int64
	ExpectedVersion *int64
}

// UpdateRequirement applies supplied fields to the row. A missing id is a
// silent no-op; a stale ExpectedVersion yields ErrVersionConflict.
func (q *Queries) UpdateRequirement(ctx context.Context, id int64, p UpdateRequirementParams) (int64, error) {
	sets := &setClause{}
	if p.Category != nil {
		sets.add("category", *p.Category)
	}
	if p.Title != nil {
		sets.add("title", *p.Title)
	}
	if p.Description != nil {
		sets.add("description", *p.Description)
	}
	if p.Position != nil {
		sets.add("position", *p.Position)
	}
	return q.execVersionedUpdate(ctx, "requirements", "id", id, sets, p.ExpectedVersion)
}

// SoftDeleteRequirement marks the row inactive.
func (q *Queries) SoftDeleteRequirement(ctx context.Context, id int64) (int64, error) {
	sets := &setClause{}
	sets.add("is_active", 0)
	return q.execVersionedUpdate(ctx, "requirements", "id", id, sets, nil)
}

// CountRequirements counts all requirements, soft-deleted rows included.
func (q *Queries) CountRequirements(ctx context.Context) (int64, error) {
	return q.countRows(ctx, "requirements")
}
