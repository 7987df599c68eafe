// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/dockly/dockly-go/internal/model"
)

const auditColumns = `id, user_id, action, entity_type, entity_id, changes, created_at`

func scanAuditEntry(row interface{ Scan(...any) error }) (model.AuditEntry, error) {
	var e model.AuditEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID, &e.Changes, &e.CreatedAt,
	)
	return e, err
}

// CreateAuditEntryParams holds one admin mutation record.
type CreateAuditEntryParams struct {
	UserID     int64
	Action     string
	EntityType string
	EntityID   int64
	Changes    string
}

// CreateAuditEntry appends a mutation record to the audit log.
func (q *Queries) CreateAuditEntry(ctx context.Context, p CreateAuditEntryParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO audit_log (user_id, action, entity_type, entity_id, changes)
		VALUES (?, ?, ?, ?, ?)`,
		p.UserID, p.Action, p.EntityType, p.EntityID, p.Changes,
	)
	return err
}

// ListAuditEntriesParams filters the audit log. Zero values mean no filter.
type ListAuditEntriesParams struct {
	EntityType string
	EntityID   int64
	Limit      int64
}

// ListAuditEntries returns audit entries newest first, optionally filtered
// by entity type and id.
func (q *Queries) ListAuditEntries(ctx context.Context, p ListAuditEntriesParams) ([]model.AuditEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_log`
	args := []any{}
	if p.EntityType != "" {
		query += ` WHERE entity_type = ?`
		args = append(args, p.EntityType)
		if p.EntityID != 0 {
			query += ` AND entity_id = ?`
			args = append(args, p.EntityID)
		}
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

	var entries []model.AuditEntry
	for rows.Next() {
		e, err := scanAuditEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
