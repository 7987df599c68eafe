// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const workAreaColumns = `id, name, description, functions, requirements, entry_level, position, is_active, version, created_at, updated_at`

func scanWorkArea(row interface{ Scan(...any) error }) (model.WorkArea, error) {
	var a model.WorkArea
	err := row.Scan(
		&a.ID, &a.Name, &a.Description, &a.Functions, &a.Requirements,
		&a.EntryLevel, &a.Position, &a.IsActive, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// ListWorkAreas returns active work areas ordered by position.
func (q *Queries) ListWorkAreas(ctx context.Context) ([]model.WorkArea, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+workAreaColumns+` FROM work_areas WHERE is_active = 1 ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []model.WorkArea
	for rows.Next() {
		a, err := scanWorkArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

// GetWorkArea returns a work area by id, including soft-deleted rows.
func (q *Queries) GetWorkArea(ctx context.Context, id int64) (model.WorkArea, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+workAreaColumns+` FROM work_areas WHERE id = ?`, id)
	return scanWorkArea(row)
}

// CreateWorkAreaParams holds the validated input for a new work area.
type CreateWorkAreaParams struct {
	Name         string
	Description  string
	Functions    model.StringList
	Requirements model.StringList
	EntryLevel   string
	Position     int64
}

// CreateWorkArea inserts a work area and returns the stored row.
func (q *Queries) CreateWorkArea(ctx context.Context, p CreateWorkAreaParams) (model.WorkArea, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO work_areas (name, description, functions, requirements, entry_level, position, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+workAreaColumns,
		p.Name, p.Description, p.Functions, p.Requirements, p.EntryLevel, p.Position, now, now,
	)
	return scanWorkArea(row)
}

// UpdateWorkAreaParams holds a partial update; nil fields are untouched.
type UpdateWorkAreaParams struct {
	Name            *string
	Description     *string
	Functions       *model.StringList
	Requirements    *model.StringList
	EntryLevel      *string
	Position        *int64
	ExpectedVersion *int64
}

// UpdateWorkArea applies supplied fields to the row. A missing id is a
// silent no-op; a stale ExpectedVersion yields ErrVersionConflict.
func (q *Queries) UpdateWorkArea(ctx context.Context, id int64, p UpdateWorkAreaParams) (int64, error) {
	sets := &setClause{}
	if p.Name != nil {
		sets.add("name", *p.Name)
	}
	if p.Description != nil {
		sets.add("description", *p.Description)
	}
	if p.Functions != nil {
		sets.add("functions", *p.Functions)
	}
	if p.Requirements != nil {
		sets.add("requirements", *p.Requirements)
	}
	if p.EntryLevel != nil {
		sets.add("entry_level", *p.EntryLevel)
	}
	if p.Position != nil {
		sets.add("position", *p.Position)
	}
	return q.execVersionedUpdate(ctx, "work_areas", "id", id, sets, p.ExpectedVersion)
}

// SoftDeleteWorkArea marks the row inactive; the row stays queryable by id.
func (q *Queries) SoftDeleteWorkArea(ctx context.Context, id int64) (int64, error) {
	sets := &setClause{}
	sets.add("is_active", 0)
	return q.execVersionedUpdate(ctx, "work_areas", "id", id, sets, nil)
}

// CountWorkAreas counts all work areas, soft-deleted rows included.
func (q *Queries) CountWorkAreas(ctx context.Context) (int64, error) {
	return q.countRows(ctx, "work_areas")
}
