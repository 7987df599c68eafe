// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrVersionConflict is returned by update operations when the caller
// supplied an expected version that no longer matches the stored row.
var ErrVersionConflict = errors.New("store: version conflict")

// DBTX is the subset of *sql.DB and *sql.Tx the queries need.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries provides typed access to the database.
type Queries struct {
	db DBTX
}

// New creates a Queries instance backed by the given database or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries instance bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// setClause accumulates SET fragments and args for a partial UPDATE.
type setClause struct {
	frags []string
	args  []any
}

func (s *setClause) add(col string, val any) {
	s.frags = append(s.frags, col+" = ?")
	s.args = append(s.args, val)
}

func (s *setClause) empty() bool {
	return len(s.frags) == 0
}

// execVersionedUpdate runs a partial UPDATE against one row, bumping its
// version and updated_at. When expected is non-nil the update only applies
// if the stored version matches; a live row with a different version yields
// ErrVersionConflict. A missing row is a silent no-op: zero rows, no error.
func (q *Queries) execVersionedUpdate(ctx context.Context, table, idCol string, id any, sets *setClause, expected *int64) (int64, error) {
	sets.add("updated_at", time.Now())
	sets.frags = append(sets.frags, "version = version + 1")

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(sets.frags, ", "), idCol)
	args := append(sets.args, id)
	if expected != nil {
		query += " AND version = ?"
		args = append(args, *expected)
	}

	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if affected == 0 && expected != nil {
		// Distinguish "row gone" (no-op) from "row moved on" (conflict).
		var exists int64
		row := q.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", table, idCol), id)
		if err := row.Scan(&exists); err != nil {
			return 0, err
		}
		if exists > 0 {
			return 0, ErrVersionConflict
		}
	}

	return affected, nil
}

// countRows counts every row in a table, active or not. Used by the seed
// procedure, which must see soft-deleted rows too.
func (q *Queries) countRows(ctx context.Context, table string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}
