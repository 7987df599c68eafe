// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const eventColumns = `id, level, category, message, user_id, metadata, created_at`

func scanEvent(row interface{ Scan(...any) error }) (model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.Level, &e.Category, &e.Message, &e.UserID, &e.Metadata, &e.CreatedAt,
	)
	return e, err
}

// CreateEventParams holds one system event record.
type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	UserID   *int64
	Metadata string
}

// CreateEvent appends a system event.
func (q *Queries) CreateEvent(ctx context.Context, p CreateEventParams) error {
	meta := p.Metadata
	if meta == "" {
		meta = "{}"
	}
	var userID any
	if p.UserID != nil {
		userID = *p.UserID
	}
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO events (level, category, message, user_id, metadata)
		VALUES (?, ?, ?, ?, ?)`,
		p.Level, p.Category, p.Message, userID, meta,
	)
	return err
}

// ListEventsParams filters the event log. Zero values mean no filter.
type ListEventsParams struct {
	Level    string
	Category string
	Limit    int64
}

// ListEvents returns events newest first, optionally filtered by level and
// category.
func (q *Queries) ListEvents(ctx context.Context, p ListEventsParams) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1 = 1`
	args := []any{}
	if p.Level != "" {
		query += ` AND level = ?`
		args = append(args, p.Level)
	}
	if p.Category != "" {
		query += ` AND category = ?`
		args = append(args, p.Category)
	}
	query += ` ORDER BY id DESC`
	if p.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, p.Limit)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// PurgeEventsBefore deletes events older than the cutoff. Run by the nightly
// maintenance job to keep the log bounded.
func (q *Queries) PurgeEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
