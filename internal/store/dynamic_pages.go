// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const dynamicPageColumns = `id, slug, title, subtitle, content, image_url, position, show_in_menu, is_active, version, created_at, updated_at`

func scanDynamicPage(row interface{ Scan(...any) error }) (model.DynamicPage, error) {
	var p model.DynamicPage
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Subtitle, &p.Content, &p.ImageURL,
		&p.Position, &p.ShowInMenu, &p.IsActive, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// ListDynamicPages returns active pages ordered by position.
func (q *Queries) ListDynamicPages(ctx context.Context) ([]model.DynamicPage, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+dynamicPageColumns+` FROM dynamic_pages WHERE is_active = 1 ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []model.DynamicPage
	for rows.Next() {
		p, err := scanDynamicPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// ListMenuPages returns active pages flagged for the public navigation menu.
func (q *Queries) ListMenuPages(ctx context.Context) ([]model.DynamicPage, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+dynamicPageColumns+` FROM dynamic_pages WHERE is_active = 1 AND show_in_menu = 1 ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []model.DynamicPage
	for rows.Next() {
		p, err := scanDynamicPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// GetDynamicPage returns a page by id, including soft-deleted rows.
func (q *Queries) GetDynamicPage(ctx context.Context, id int64) (model.DynamicPage, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+dynamicPageColumns+` FROM dynamic_pages WHERE id = ?`, id)
	return scanDynamicPage(row)
}

// GetDynamicPageBySlug returns an active page by slug. Soft-deleted pages
// are invisible here: slug lookup is the public read path.
func (q *Queries) GetDynamicPageBySlug(ctx context.Context, slug string) (model.DynamicPage, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+dynamicPageColumns+` FROM dynamic_pages WHERE slug = ? AND is_active = 1`, slug)
	return scanDynamicPage(row)
}

// DynamicPageSlugExists reports whether any page, active or soft-deleted,
// holds the slug. Soft deletion keeps the slug reserved.
func (q *Queries) DynamicPageSlugExists(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dynamic_pages WHERE slug = ?`, slug).Scan(&n)
	return n > 0, err
}

// CreateDynamicPageParams holds the validated input for a new page.
type CreateDynamicPageParams struct {
	Slug       string
	Title      string
	Subtitle   *string
	Content    string
	ImageURL   *string
	Position   int64
	ShowInMenu bool
}

// CreateDynamicPage inserts a page and returns the stored row. The slug is
// unique; inserting a duplicate fails with a constraint error.
func (q *Queries) CreateDynamicPage(ctx context.Context, p CreateDynamicPageParams) (model.DynamicPage, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO dynamic_pages (slug, title, subtitle, content, image_url, position, show_in_menu, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+dynamicPageColumns,
		p.Slug, p.Title, nullStr(p.Subtitle), p.Content, nullStr(p.ImageURL), p.Position, p.ShowInMenu, now, now,
	)
	return scanDynamicPage(row)
}

// UpdateDynamicPageParams holds a partial update; nil fields are untouched.
type UpdateDynamicPageParams struct {
	Slug            *string
	Title           *string
	Subtitle        *string
	Content         *string
	ImageURL        *string
	Position        *int64
	ShowInMenu      *bool
	ExpectedVersion *int64
}

// UpdateDynamicPage applies supplied fields to the row. A missing id is a
// silent no-op; a stale ExpectedVersion yields ErrVersionConflict.
func (q *Queries) UpdateDynamicPage(ctx context.Context, id int64, p UpdateDynamicPageParams) (int64, error) {
	sets := &setClause{}
	if p.Slug != nil {
		sets.add("slug", *p.Slug)
	}
	if p.Title != nil {
		sets.add("title", *p.Title)
	}
	if p.Subtitle != nil {
		sets.add("subtitle", *p.Subtitle)
	}
	if p.Content != nil {
		sets.add("content", *p.Content)
	}
	if p.ImageURL != nil {
		sets.add("image_url", *p.ImageURL)
	}
	if p.Position != nil {
		sets.add("position", *p.Position)
	}
	if p.ShowInMenu != nil {
		sets.add("show_in_menu", *p.ShowInMenu)
	}
	return q.execVersionedUpdate(ctx, "dynamic_pages", "id", id, sets, p.ExpectedVersion)
}

// SoftDeleteDynamicPage marks the row inactive. The slug stays reserved.
func (q *Queries) SoftDeleteDynamicPage(ctx context.Context, id int64) (int64, error) {
	sets := &setClause{}
	sets.add("is_active", 0)
	return q.execVersionedUpdate(ctx, "dynamic_pages", "id", id, sets, nil)
}

// CountDynamicPages counts all pages, soft-deleted rows included.
func (q *Queries) CountDynamicPages(ctx context.Context) (int64, error) {
	return q.countRows(ctx, "dynamic_pages")
}
