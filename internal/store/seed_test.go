// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func seedLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedFillsEmptyTables(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := q.Seed(ctx, seedLogger()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	counts := []struct {
		name  string
		count func(context.Context) (int64, error)
	}{
		{"work_areas", q.CountWorkAreas},
		{"boarding_steps", q.CountBoardingSteps},
		{"requirements", q.CountRequirements},
		{"salary_data", q.CountSalaryEntries},
		{"fraud_signals", q.CountFraudSignals},
		{"myths", q.CountMyths},
		{"legal_disclaimers", q.CountDisclaimers},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			t.Fatalf("count %s: %v", c.name, err)
		}
		if n == 0 {
			t.Errorf("%s is empty after seed", c.name)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := q.Seed(ctx, seedLogger()); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	before, err := q.CountWorkAreas(ctx)
	if err != nil {
		t.Fatalf("CountWorkAreas: %v", err)
	}

	if err := q.Seed(ctx, seedLogger()); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	after, err := q.CountWorkAreas(ctx)
	if err != nil {
		t.Fatalf("CountWorkAreas: %v", err)
	}

	if before != after {
		t.Errorf("work area count changed on reseed: %d -> %d", before, after)
	}
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	// A single pre-existing row, even a soft-deleted one, keeps the seed
	// away from that table.
	area, err := q.CreateWorkArea(ctx, CreateWorkAreaParams{Name: "Existente", EntryLevel: "entry-level"})
	if err != nil {
		t.Fatalf("CreateWorkArea: %v", err)
	}
	if _, err := q.SoftDeleteWorkArea(ctx, area.ID); err != nil {
		t.Fatalf("SoftDeleteWorkArea: %v", err)
	}

	if err := q.Seed(ctx, seedLogger()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	n, err := q.CountWorkAreas(ctx)
	if err != nil {
		t.Fatalf("CountWorkAreas: %v", err)
	}
	if n != 1 {
		t.Errorf("work area count = %d, want 1 (table was not empty)", n)
	}

	// Other tables were still seeded independently.
	myths, err := q.CountMyths(ctx)
	if err != nil {
		t.Fatalf("CountMyths: %v", err)
	}
	if myths == 0 {
		t.Error("myths should have been seeded")
	}
}
