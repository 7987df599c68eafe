// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"testing"

	"github.com/dockly/dockly-go/internal/model"
)

func TestUpsertUserInsert(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	user, err := q.UpsertUser(ctx, UpsertUserParams{
		OpenID: "oauth|123",
		Name:   strPtr("Ana"),
		Email:  strPtr("ana@example.com"),
	})
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}

	if user.ID == 0 {
		t.Error("user.ID should not be 0")
	}
	if user.Role != model.RoleUser {
		t.Errorf("Role = %q, want default %q", user.Role, model.RoleUser)
	}
	if !user.Name.Valid || user.Name.String != "Ana" {
		t.Errorf("Name = %+v, want Ana", user.Name)
	}
}

func TestUpsertUserPartialUpdate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if _, err := q.UpsertUser(ctx, UpsertUserParams{
		OpenID: "oauth|456",
		Name:   strPtr("Bruno"),
		Email:  strPtr("bruno@example.com"),
	}); err != nil {
		t.Fatalf("first UpsertUser: %v", err)
	}

	// A later login asserting only the name leaves the email alone.
	updated, err := q.UpsertUser(ctx, UpsertUserParams{
		OpenID: "oauth|456",
		Name:   strPtr("Bruno R."),
	})
	if err != nil {
		t.Fatalf("second UpsertUser: %v", err)
	}

	if !updated.Name.Valid || updated.Name.String != "Bruno R." {
		t.Errorf("Name = %+v, want Bruno R.", updated.Name)
	}
	if !updated.Email.Valid || updated.Email.String != "bruno@example.com" {
		t.Errorf("Email = %+v, want unchanged", updated.Email)
	}
}

func TestUpsertUserNeverDowngradesRole(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	admin := model.RoleAdmin
	if _, err := q.UpsertUser(ctx, UpsertUserParams{
		OpenID: "oauth|admin",
		Role:   &admin,
	}); err != nil {
		t.Fatalf("first UpsertUser: %v", err)
	}

	// A login that does not assert a role keeps the stored one.
	user, err := q.UpsertUser(ctx, UpsertUserParams{
		OpenID: "oauth|admin",
		Name:   strPtr("Carla"),
	})
	if err != nil {
		t.Fatalf("second UpsertUser: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("Role = %q, want %q", user.Role, model.RoleAdmin)
	}
}

func TestGetUserByEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	created, err := q.UpsertUser(ctx, UpsertUserParams{
		OpenID:       "local|dario",
		Email:        strPtr("dario@example.com"),
		PasswordHash: strPtr("$argon2id$..."),
	})
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}

	found, err := q.GetUserByEmail(ctx, "dario@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}
}
