// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const salaryColumns = `id, department, position_title, min_salary, max_salary, tips, notes, position, is_active, version, created_at, updated_at`

func scanSalaryEntry(row interface{ Scan(...any) error }) (model.SalaryEntry, error) {
	var s model.SalaryEntry
	err := row.Scan(
		&s.ID, &s.Department, &s.Position, &s.MinSalary, &s.MaxSalary,
		&s.Tips, &s.Notes, &s.SortOrder, &s.IsActive, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// ListSalaryEntries returns active salary entries ordered by position.
func (q *Queries) ListSalaryEntries(ctx context.Context) ([]model.SalaryEntry, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+salaryColumns+` FROM salary_data WHERE is_active = 1 ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.SalaryEntry
	for rows.Next() {
		s, err := scanSalaryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, s)
	}
	return entries, rows.Err()
}

// GetSalaryEntry returns a salary entry by id, including soft-deleted rows.
func (q *Queries) GetSalaryEntry(ctx context.Context, id int64) (model.SalaryEntry, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+salaryColumns+` FROM salary_data WHERE id = ?`, id)
	return scanSalaryEntry(row)
}

// CreateSalaryEntryParams holds the validated input for a new salary entry.
type CreateSalaryEntryParams struct {
	Department string
	Position   string
	MinSalary  int64
	MaxSalary  int64
	Tips       *string
	Notes      *string
	SortOrder  int64
}

// CreateSalaryEntry inserts a salary entry and returns the stored row.
func (q *Queries) CreateSalaryEntry(ctx context.Context, p CreateSalaryEntryParams) (model.SalaryEntry, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO salary_data (department, position_title, min_salary, max_salary, tips, notes, position, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+salaryColumns,
		p.Department, p.Position, p.MinSalary, p.MaxSalary, nullStr(p.Tips), nullStr(p.Notes), p.SortOrder, now, now,
	)
	return scanSalaryEntry(row)
}

// UpdateSalaryEntryParams holds a partial update; nil fields are untouched.
type UpdateSalaryEntryParams struct {
	Department      *string
	Position        *string
	MinSalary       *int64
	MaxSalary       *int64
	Tips            *string
	Notes           *string
	SortOrder       *int64
	ExpectedVersion *int64
}

// UpdateSalaryEntry applies supplied fields to the row. A missing id is a
// silent no-op; a stale ExpectedVersion yields ErrVersionConflict.
func (q *Queries) UpdateSalaryEntry(ctx context.Context, id int64, p UpdateSalaryEntryParams) (int64, error) {
	sets := &setClause{}
	if p.Department != nil {
		sets.add("department", *p.Department)
	}
	if p.Position != nil {
		sets.add("position_title", *p.Position)
	}
	if p.MinSalary != nil {
		sets.add("min_salary", *p.MinSalary)
	}
	if p.MaxSalary != nil {
		sets.add("max_salary", *p.MaxSalary)
	}
	if p.Tips != nil {
		sets.add("tips", *p.Tips)
	}
	if p.Notes != nil {
		sets.add("notes", *p.Notes)
	}
	if p.SortOrder != nil {
		sets.add("position", *p.SortOrder)
	}
	return q.execVersionedUpdate(ctx, "salary_data", "id", id, sets, p.ExpectedVersion)
}

// SoftDeleteSalaryEntry marks the row inactive.
func (q *Queries) SoftDeleteSalaryEntry(ctx context.Context, id int64) (int64, error) {
	sets := &setClause{}
	sets.add("is_active", 0)
	return q.execVersionedUpdate(ctx, "salary_data", "id", id, sets, nil)
}

// CountSalaryEntries counts all salary entries, soft-deleted rows included.
func (q *Queries) CountSalaryEntries(ctx context.Context) (int64, error) {
	return q.countRows(ctx, "salary_data")
}
