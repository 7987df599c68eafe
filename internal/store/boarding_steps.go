// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const boardingStepColumns = `id, title, description, approximate_time, common_errors, candidate_actions, shipper_requests, position, is_active, version, created_at, updated_at`

func scanBoardingStep(row interface{ Scan(...any) error }) (model.BoardingStep, error) {
	var s model.BoardingStep
	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.ApproximateTime,
		&s.CommonErrors, &s.CandidateActions, &s.ShipperRequests,
		&s.Position, &s.IsActive, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// ListBoardingSteps returns active boarding steps ordered by position.
func (q *Queries) ListBoardingSteps(ctx context.Context) ([]model.BoardingStep, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+boardingStepColumns+` FROM boarding_steps WHERE is_active = 1 ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []model.BoardingStep
	for rows.Next() {
		s, err := scanBoardingStep(rows)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

// GetBoardingStep returns a boarding step by id, including soft-deleted rows.
func (q *Queries) GetBoardingStep(ctx context.Context, id int64) (model.BoardingStep, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+boardingStepColumns+` FROM boarding_steps WHERE id = ?`, id)
	return scanBoardingStep(row)
}

// CreateBoardingStepParams holds the validated input for a new boarding step.
type CreateBoardingStepParams struct {
	Title            string
	Description      string
	ApproximateTime  string
	CommonErrors     model.StringList
	CandidateActions model.StringList
	ShipperRequests  model.StringList
	Position         int64
}

// CreateBoardingStep inserts a boarding step and returns the stored row.
func (q *Queries) CreateBoardingStep(ctx context.Context, p CreateBoardingStepParams) (model.BoardingStep, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO boarding_steps (title, description, approximate_time, common_errors, candidate_actions, shipper_requests, position, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+boardingStepColumns,
		p.Title, p.Description, p.ApproximateTime, p.CommonErrors, p.CandidateActions, p.ShipperRequests, p.Position, now, now,
	)
	return scanBoardingStep(row)
}

// UpdateBoardingStepParams holds a partial update; nil fields are untouched.
type UpdateBoardingStepParams struct {
	Title            *string
	Description      *string
	ApproximateTime  *string
	CommonErrors     *model.StringList
	CandidateActions *model.StringList
	ShipperRequests  *model.StringList
	Position         *int64
	ExpectedVersion  *int64
}

// UpdateBoardingStep applies supplied fields to the row. A missing id is a
// silent no-op; a stale ExpectedVersion yields ErrVersionConflict.
func (q *Queries) UpdateBoardingStep(ctx context.Context, id int64, p UpdateBoardingStepParams) (int64, error) {
	sets := &setClause{}
	if p.Title != nil {
		sets.add("title", *p.Title)
	}
	if p.Description != nil {
		sets.add("description", *p.Description)
	}
	if p.ApproximateTime != nil {
		sets.add("approximate_time", *p.ApproximateTime)
	}
	if p.CommonErrors != nil {
		sets.add("common_errors", *p.CommonErrors)
	}
	if p.CandidateActions != nil {
		sets.add("candidate_actions", *p.CandidateActions)
	}
	if p.ShipperRequests != nil {
		sets.add("shipper_requests", *p.ShipperRequests)
	}
	if p.Position != nil {
		sets.add("position", *p.Position)
	}
	return q.execVersionedUpdate(ctx, "boarding_steps", "id", id, sets, p.ExpectedVersion)
}

// SoftDeleteBoardingStep marks the row inactive.
func (q *Queries) SoftDeleteBoardingStep(ctx context.Context, id int64) (int64, error) {
	sets := &setClause{}
	sets.add("is_active", 0)
	return q.execVersionedUpdate(ctx, "boarding_steps", "id", id, sets, nil)
}

// CountBoardingSteps counts all boarding steps, soft-deleted rows included.
func (q *Queries) CountBoardingSteps(ctx context.Context) (int64, error) {
	return q.countRows(ctx, "boarding_steps")
}
