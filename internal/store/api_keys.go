// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const apiKeyColumns = `id, name, key_hash, key_prefix, role, last_used_at, expires_at, is_active, created_by, created_at, updated_at`

func scanAPIKey(row interface{ Scan(...any) error }) (model.APIKey, error) {
	var k model.APIKey
	err := row.Scan(
		&k.ID, &k.Name, &k.KeyHash, &k.KeyPrefix, &k.Role,
		&k.LastUsedAt, &k.ExpiresAt, &k.IsActive, &k.CreatedBy, &k.CreatedAt, &k.UpdatedAt,
	)
	return k, err
}

// ListAPIKeys returns every key, active or not, newest first. Hashes are
// stripped from JSON at the model level.
func (q *Queries) ListAPIKeys(ctx context.Context) ([]model.APIKey, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+apiKeyColumns+` FROM api_keys ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []model.APIKey
	for rows.Next() {
		k, err := scanAPIKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// GetAPIKeyByHash looks up a key by the SHA-256 hash of the presented
// credential. Used on every API-key authenticated request.
func (q *Queries) GetAPIKeyByHash(ctx context.Context, hash string) (model.APIKey, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+apiKeyColumns+` FROM api_keys WHERE key_hash = ?`, hash)
	return scanAPIKey(row)
}

// CreateAPIKeyParams holds the stored portion of a new key; the raw secret
// never reaches the database.
type CreateAPIKeyParams struct {
	Name      string
	KeyHash   string
	KeyPrefix string
	Role      string
	ExpiresAt *time.Time
	CreatedBy int64
}

// CreateAPIKey inserts a key record and returns the stored row.
func (q *Queries) CreateAPIKey(ctx context.Context, p CreateAPIKeyParams) (model.APIKey, error) {
	now := time.Now()
	var expires any
	if p.ExpiresAt != nil {
		expires = *p.ExpiresAt
	}
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO api_keys (name, key_hash, key_prefix, role, expires_at, is_active, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?, ?)
		RETURNING `+apiKeyColumns,
		p.Name, p.KeyHash, p.KeyPrefix, p.Role, expires, p.CreatedBy, now, now,
	)
	return scanAPIKey(row)
}

// TouchAPIKey records that the key was just used.
func (q *Queries) TouchAPIKey(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE api_keys SET last_used_at = ? WHERE id = ?`, time.Now(), id)
	return err
}

// RevokeAPIKey deactivates a key. Revocation is permanent; a new key must be
// issued instead.
func (q *Queries) RevokeAPIKey(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`UPDATE api_keys SET is_active = 0, updated_at = ? WHERE id = ?`, time.Now(), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
