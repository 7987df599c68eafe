// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const disclaimerColumns = `id, key, title, content, is_active, version, created_at, updated_at`

func scanDisclaimer(row interface{ Scan(...any) error }) (model.LegalDisclaimer, error) {
	var d model.LegalDisclaimer
	err := row.Scan(
		&d.ID, &d.Key, &d.Title, &d.Content, &d.IsActive, &d.Version, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// ListDisclaimers returns active disclaimers ordered by key.
func (q *Queries) ListDisclaimers(ctx context.Context) ([]model.LegalDisclaimer, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+disclaimerColumns+` FROM legal_disclaimers WHERE is_active = 1 ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disclaimers []model.LegalDisclaimer
	for rows.Next() {
		d, err := scanDisclaimer(rows)
		if err != nil {
			return nil, err
		}
		disclaimers = append(disclaimers, d)
	}
	return disclaimers, rows.Err()
}

// GetDisclaimerByKey returns a disclaimer by its section key, including
// soft-deleted rows.
func (q *Queries) GetDisclaimerByKey(ctx context.Context, key string) (model.LegalDisclaimer, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+disclaimerColumns+` FROM legal_disclaimers WHERE key = ?`, key)
	return scanDisclaimer(row)
}

// CreateDisclaimerParams holds the validated input for a new disclaimer.
type CreateDisclaimerParams struct {
	Key     string
	Title   string
	Content string
}

// CreateDisclaimer inserts a disclaimer and returns the stored row. The key
// is unique; inserting a duplicate fails with a constraint error.
func (q *Queries) CreateDisclaimer(ctx context.Context, p CreateDisclaimerParams) (model.LegalDisclaimer, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO legal_disclaimers (key, title, content, is_active, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		RETURNING `+disclaimerColumns,
		p.Key, p.Title, p.Content, now, now,
	)
	return scanDisclaimer(row)
}

// UpdateDisclaimerParams holds a partial update; nil fields are untouched.
type UpdateDisclaimerParams struct {
	Title           *string
	Content         *string
	ExpectedVersion *int64
}

// UpdateDisclaimerByKey applies supplied fields to the row addressed by its
// section key. A missing key is a silent no-op.
func (q *Queries) UpdateDisclaimerByKey(ctx context.Context, key string, p UpdateDisclaimerParams) (int64, error) {
	sets := &setClause{}
	if p.Title != nil {
		sets.add("title", *p.Title)
	}
	if p.Content != nil {
		sets.add("content", *p.Content)
	}
	return q.execVersionedUpdate(ctx, "legal_disclaimers", "key", key, sets, p.ExpectedVersion)
}

// SoftDeleteDisclaimerByKey marks the row inactive.
func (q *Queries) SoftDeleteDisclaimerByKey(ctx context.Context, key string) (int64, error) {
	sets := &setClause{}
	sets.add("is_active", 0)
	return q.execVersionedUpdate(ctx, "legal_disclaimers", "key", key, sets, nil)
}

// CountDisclaimers counts all disclaimers, soft-deleted rows included.
func (q *Queries) CountDisclaimers(ctx context.Context) (int64, error) {
	return q.countRows(ctx, "legal_disclaimers")
}
