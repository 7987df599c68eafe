// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dockly/dockly-go/internal/model"
)

func TestUpsertAboutPageCreatesSingleton(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	text := "Dockly es una guía para trabajar en cruceros."
	about, err := q.UpsertAboutPage(ctx, UpsertAboutPageParams{WhatIsDockly: &text})
	if err != nil {
		t.Fatalf("UpsertAboutPage: %v", err)
	}

	if about.ID != model.AboutPageID {
		t.Errorf("ID = %d, want %d", about.ID, model.AboutPageID)
	}
	if about.WhatIsDockly != text {
		t.Errorf("WhatIsDockly = %q, want %q", about.WhatIsDockly, text)
	}

	got, err := q.GetAboutPage(ctx)
	if err != nil {
		t.Fatalf("GetAboutPage: %v", err)
	}
	if got.WhatIsDockly != text {
		t.Errorf("GetAboutPage WhatIsDockly = %q, want %q", got.WhatIsDockly, text)
	}
}

func TestUpsertAboutPagePartialUpdate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	first := "Texto inicial"
	if _, err := q.UpsertAboutPage(ctx, UpsertAboutPageParams{WhatIsDockly: &first}); err != nil {
		t.Fatalf("first UpsertAboutPage: %v", err)
	}

	does := model.StringList{"Informa", "Orienta"}
	about, err := q.UpsertAboutPage(ctx, UpsertAboutPageParams{WhatDocklyDoes: &does})
	if err != nil {
		t.Fatalf("second UpsertAboutPage: %v", err)
	}

	if about.WhatIsDockly != first {
		t.Errorf("WhatIsDockly = %q, want unchanged %q", about.WhatIsDockly, first)
	}
	if len(about.WhatDocklyDoes) != 2 {
		t.Errorf("WhatDocklyDoes length = %d, want 2", len(about.WhatDocklyDoes))
	}
}

func TestUpsertAboutPageVersionConflict(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	text := "v1"
	about, err := q.UpsertAboutPage(ctx, UpsertAboutPageParams{WhatIsDockly: &text})
	if err != nil {
		t.Fatalf("UpsertAboutPage: %v", err)
	}

	// Move the row forward.
	next := "v2"
	if _, err := q.UpsertAboutPage(ctx, UpsertAboutPageParams{WhatIsDockly: &next}); err != nil {
		t.Fatalf("second UpsertAboutPage: %v", err)
	}

	// A writer holding the stale version must be rejected.
	stale := about.Version
	loser := "v2-perdedor"
	_, err = q.UpsertAboutPage(ctx, UpsertAboutPageParams{WhatIsDockly: &loser, ExpectedVersion: &stale})
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("err = %v, want ErrVersionConflict", err)
	}

	got, err := q.GetAboutPage(ctx)
	if err != nil {
		t.Fatalf("GetAboutPage: %v", err)
	}
	if got.WhatIsDockly != next {
		t.Errorf("WhatIsDockly = %q, want %q", got.WhatIsDockly, next)
	}
}
