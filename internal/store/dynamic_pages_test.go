// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestDynamicPageSlugLookup(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	page, err := q.CreateDynamicPage(ctx, CreateDynamicPageParams{
		Slug:    "vida-a-bordo",
		Title:   "Vida a bordo",
		Content: "## Camarotes\n\nCompartidos en la mayoría de los casos.",
	})
	if err != nil {
		t.Fatalf("CreateDynamicPage: %v", err)
	}

	got, err := q.GetDynamicPageBySlug(ctx, "vida-a-bordo")
	if err != nil {
		t.Fatalf("GetDynamicPageBySlug: %v", err)
	}
	if got.ID != page.ID {
		t.Errorf("ID = %d, want %d", got.ID, page.ID)
	}
}

func TestDynamicPageSlugReservedAfterSoftDelete(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	page, err := q.CreateDynamicPage(ctx, CreateDynamicPageParams{
		Slug:    "contratos",
		Title:   "Contratos",
		Content: "...",
	})
	if err != nil {
		t.Fatalf("CreateDynamicPage: %v", err)
	}
	if _, err := q.SoftDeleteDynamicPage(ctx, page.ID); err != nil {
		t.Fatalf("SoftDeleteDynamicPage: %v", err)
	}

	// Slug lookup is the public path: the page is gone.
	_, err = q.GetDynamicPageBySlug(ctx, "contratos")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}

	// But the slug stays taken.
	exists, err := q.DynamicPageSlugExists(ctx, "contratos")
	if err != nil {
		t.Fatalf("DynamicPageSlugExists: %v", err)
	}
	if !exists {
		t.Error("slug should remain reserved after soft delete")
	}
}

func TestListMenuPages(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for _, p := range []CreateDynamicPageParams{
		{Slug: "en-menu", Title: "En menú", Content: "...", ShowInMenu: true, Position: 2},
		{Slug: "fuera-de-menu", Title: "Fuera de menú", Content: "...", ShowInMenu: false, Position: 1},
		{Slug: "tambien-en-menu", Title: "También en menú", Content: "...", ShowInMenu: true, Position: 1},
	} {
		if _, err := q.CreateDynamicPage(ctx, p); err != nil {
			t.Fatalf("CreateDynamicPage: %v", err)
		}
	}

	menu, err := q.ListMenuPages(ctx)
	if err != nil {
		t.Fatalf("ListMenuPages: %v", err)
	}
	if len(menu) != 2 {
		t.Fatalf("menu length = %d, want 2", len(menu))
	}
	if menu[0].Slug != "tambien-en-menu" || menu[1].Slug != "en-menu" {
		t.Errorf("menu order = %q, %q", menu[0].Slug, menu[1].Slug)
	}

	all, err := q.ListDynamicPages(ctx)
	if err != nil {
		t.Fatalf("ListDynamicPages: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all length = %d, want 3", len(all))
	}
}
