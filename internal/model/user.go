// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application including User, the content entities, and audit records.
package model

import (
	"database/sql"
	"time"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Login methods
const (
	LoginMethodEmail = "email"
	LoginMethodOAuth = "oauth"
)

// User represents a Dockly user. Identity originates from the external
// auth provider and is keyed by OpenID; local email+password login is
// available for accounts with a password hash set.
type User struct {
	ID           int64          `json:"id"`
	OpenID       string         `json:"open_id"`
	Name         sql.NullString `json:"name,omitempty"`
	Email        sql.NullString `json:"email,omitempty"`
	LoginMethod  sql.NullString `json:"login_method,omitempty"`
	Role         string         `json:"role"`
	PasswordHash sql.NullString `json:"-"` // Never expose in JSON
	LastSignedIn time.Time      `json:"last_signed_in"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsAdmin returns true if the user has admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsValidRole reports whether s is a recognized user role.
func IsValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}
