// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"testing"
)

func TestDisclaimerKeyAddressing(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	created, err := q.CreateDisclaimer(ctx, CreateDisclaimerParams{
		Key:     "salarios",
		Title:   "Sobre los salarios",
		Content: "Los montos son estimados.",
	})
	if err != nil {
		t.Fatalf("CreateDisclaimer: %v", err)
	}
	if created.Key != "salarios" {
		t.Errorf("Key = %q, want %q", created.Key, "salarios")
	}

	got, err := q.GetDisclaimerByKey(ctx, "salarios")
	if err != nil {
		t.Fatalf("GetDisclaimerByKey: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %d, want %d", got.ID, created.ID)
	}

	newContent := "Los montos son estimados y varían por naviera."
	affected, err := q.UpdateDisclaimerByKey(ctx, "salarios", UpdateDisclaimerParams{Content: &newContent})
	if err != nil {
		t.Fatalf("UpdateDisclaimerByKey: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	got, err = q.GetDisclaimerByKey(ctx, "salarios")
	if err != nil {
		t.Fatalf("GetDisclaimerByKey after update: %v", err)
	}
	if got.Content != newContent {
		t.Errorf("Content = %q, want %q", got.Content, newContent)
	}
	if got.Version != 2 {
		t.Errorf("Version = %d, want 2", got.Version)
	}
}

func TestCreateDisclaimerDuplicateKey(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if _, err := q.CreateDisclaimer(ctx, CreateDisclaimerParams{Key: "estafas", Title: "Estafas", Content: "..."}); err != nil {
		t.Fatalf("CreateDisclaimer: %v", err)
	}
	if _, err := q.CreateDisclaimer(ctx, CreateDisclaimerParams{Key: "estafas", Title: "Otra vez", Content: "..."}); err == nil {
		t.Error("duplicate key insert should fail")
	}
}

func TestSoftDeleteDisclaimerByKey(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if _, err := q.CreateDisclaimer(ctx, CreateDisclaimerParams{Key: "privacidad", Title: "Privacidad", Content: "..."}); err != nil {
		t.Fatalf("CreateDisclaimer: %v", err)
	}

	affected, err := q.SoftDeleteDisclaimerByKey(ctx, "privacidad")
	if err != nil {
		t.Fatalf("SoftDeleteDisclaimerByKey: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	list, err := q.ListDisclaimers(ctx)
	if err != nil {
		t.Fatalf("ListDisclaimers: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("list length = %d, want 0", len(list))
	}

	// Still reachable by key for admin reads.
	got, err := q.GetDisclaimerByKey(ctx, "privacidad")
	if err != nil {
		t.Fatalf("GetDisclaimerByKey after delete: %v", err)
	}
	if got.IsActive {
		t.Error("soft-deleted disclaimer should not be active")
	}
}
