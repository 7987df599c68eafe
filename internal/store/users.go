// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const userColumns = `id, open_id, name, email, login_method, role, password_hash, last_signed_in, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.OpenID, &u.Name, &u.Email, &u.LoginMethod,
		&u.Role, &u.PasswordHash, &u.LastSignedIn, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetUserByID returns a user by surrogate id.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByOpenID returns a user by the external provider identity.
func (q *Queries) GetUserByOpenID(ctx context.Context, openID string) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE open_id = ?`, openID)
	return scanUser(row)
}

// GetUserByEmail returns a user by email address.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// UpsertUserParams carries the identity fields asserted at login. Nil
// pointer fields are left untouched on an existing row; in particular the
// role is only written when explicitly supplied, so a user is never
// silently downgraded by a later login.
type UpsertUserParams struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	PasswordHash *string
	LastSignedIn time.Time
}

// UpsertUser creates or refreshes the user row keyed by OpenID and returns
// the stored row.
func (q *Queries) UpsertUser(ctx context.Context, p UpsertUserParams) (model.User, error) {
	if p.LastSignedIn.IsZero() {
		p.LastSignedIn = time.Now()
	}
	now := time.Now()

	_, err := q.GetUserByOpenID(ctx, p.OpenID)
	if err != nil && err != sql.ErrNoRows {
		return model.User{}, err
	}

	if err == sql.ErrNoRows {
		role := model.RoleUser
		if p.Role != nil {
			role = *p.Role
		}
		row := q.db.QueryRowContext(ctx, `
			INSERT INTO users (open_id, name, email, login_method, role, password_hash, last_signed_in, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING `+userColumns,
			p.OpenID, nullStr(p.Name), nullStr(p.Email), nullStr(p.LoginMethod),
			role, nullStr(p.PasswordHash), p.LastSignedIn, now, now,
		)
		return scanUser(row)
	}

	sets := &setClause{}
	if p.Name != nil {
		sets.add("name", *p.Name)
	}
	if p.Email != nil {
		sets.add("email", *p.Email)
	}
	if p.LoginMethod != nil {
		sets.add("login_method", *p.LoginMethod)
	}
	if p.Role != nil {
		sets.add("role", *p.Role)
	}
	if p.PasswordHash != nil {
		sets.add("password_hash", *p.PasswordHash)
	}
	sets.add("last_signed_in", p.LastSignedIn)
	sets.add("updated_at", now)

	query := "UPDATE users SET " + strings.Join(sets.frags, ", ") + " WHERE open_id = ?"
	args := append(sets.args, p.OpenID)
	if _, err := q.db.ExecContext(ctx, query, args...); err != nil {
		return model.User{}, err
	}

	return q.GetUserByOpenID(ctx, p.OpenID)
}

func nullStr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
