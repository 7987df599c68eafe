// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"testing"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

func TestListEventsFilters(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for _, p := range []CreateEventParams{
		{Level: model.EventLevelWarning, Category: model.EventCategoryAuth, Message: "failed login"},
		{Level: model.EventLevelError, Category: model.EventCategoryContent, Message: "audit write failed"},
		{Level: model.EventLevelWarning, Category: model.EventCategoryCache, Message: "redis unavailable"},
	} {
		if err := q.CreateEvent(ctx, p); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	warnings, err := q.ListEvents(ctx, ListEventsParams{Level: model.EventLevelWarning})
	if err != nil {
		t.Fatalf("ListEvents(level): %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("warnings length = %d, want 2", len(warnings))
	}

	auth, err := q.ListEvents(ctx, ListEventsParams{Category: model.EventCategoryAuth})
	if err != nil {
		t.Fatalf("ListEvents(category): %v", err)
	}
	if len(auth) != 1 {
		t.Fatalf("auth length = %d, want 1", len(auth))
	}
	if auth[0].Message != "failed login" {
		t.Errorf("Message = %q", auth[0].Message)
	}

	limited, err := q.ListEvents(ctx, ListEventsParams{Limit: 1})
	if err != nil {
		t.Fatalf("ListEvents(limit): %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited length = %d, want 1", len(limited))
	}
	// Newest first.
	if limited[0].Message != "redis unavailable" {
		t.Errorf("newest Message = %q", limited[0].Message)
	}
}

func TestPurgeEventsBefore(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := q.CreateEvent(ctx, CreateEventParams{
		Level: model.EventLevelInfo, Category: model.EventCategorySystem, Message: "recent",
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	// A cutoff in the past removes nothing.
	purged, err := q.PurgeEventsBefore(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("PurgeEventsBefore: %v", err)
	}
	if purged != 0 {
		t.Errorf("purged = %d, want 0", purged)
	}

	// A cutoff in the future removes everything.
	purged, err = q.PurgeEventsBefore(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("PurgeEventsBefore: %v", err)
	}
	if purged != 1 {
		t.Errorf("purged = %d, want 1", purged)
	}

	left, err := q.ListEvents(ctx, ListEventsParams{})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("remaining events = %d, want 0", len(left))
	}
}
