// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// APIKey represents a machine credential for the admin API. Keys carry a
// role with the same semantics as user roles: mutations require admin.
type APIKey struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	KeyHash    string       `json:"-"` // Never expose hash in JSON
	KeyPrefix  string       `json:"key_prefix"`
	Role       string       `json:"role"`
	LastUsedAt sql.NullTime `json:"last_used_at,omitempty"`
	ExpiresAt  sql.NullTime `json:"expires_at,omitempty"`
	IsActive   bool         `json:"is_active"`
	CreatedBy  int64        `json:"created_by"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// GenerateAPIKey generates a new random API key.
// Returns the raw key (shown to the caller once) and the key prefix.
func GenerateAPIKey() (rawKey string, prefix string) {
	// Two UUIDs give 32 random bytes without pulling in a second RNG path.
	a := uuid.New()
	b := uuid.New()
	raw := append(a[:], b[:]...)

	rawKey = base64.URLEncoding.EncodeToString(raw)
	prefix = rawKey[:8]
	return rawKey, prefix
}

// HashAPIKey creates a SHA-256 hash of the API key for storage.
func HashAPIKey(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:])
}

// IsExpired checks if the API key has expired.
func (k *APIKey) IsExpired() bool {
	if !k.ExpiresAt.Valid {
		return false
	}
	return time.Now().After(k.ExpiresAt.Time)
}

// IsValid checks if the API key is active and not expired.
func (k *APIKey) IsValid() bool {
	return k.IsActive && !k.IsExpired()
}

// IsAdmin returns true if the key carries the admin role.
func (k *APIKey) IsAdmin() bool {
	return k.Role == RoleAdmin
}
