// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/dockly/dockly-go/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "dockly-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() {
		db.Close()
		os.Remove(dbPath)
	}
}

func TestCreateWorkArea(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	area, err := q.CreateWorkArea(ctx, CreateWorkAreaParams{
		Name:         "Cocina",
		Description:  "Preparación de alimentos",
		Functions:    model.StringList{"Cocinar", "Limpieza de estación"},
		Requirements: model.StringList{"Experiencia en cocina"},
		EntryLevel:   model.EntryLevelEntry,
		Position:     1,
	})
	if err != nil {
		t.Fatalf("CreateWorkArea: %v", err)
	}

	if area.ID == 0 {
		t.Error("area.ID should not be 0")
	}
	if area.Name != "Cocina" {
		t.Errorf("Name = %q, want %q", area.Name, "Cocina")
	}
	if area.Version != 1 {
		t.Errorf("Version = %d, want 1", area.Version)
	}
	if !area.IsActive {
		t.Error("new work area should be active")
	}
	if len(area.Functions) != 2 {
		t.Errorf("Functions length = %d, want 2", len(area.Functions))
	}
}

func TestListWorkAreasOrder(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	// Insert out of order; listing must come back by position, then id.
	for _, p := range []CreateWorkAreaParams{
		{Name: "Tercero", EntryLevel: model.EntryLevelEntry, Position: 3},
		{Name: "Primero", EntryLevel: model.EntryLevelEntry, Position: 1},
		{Name: "Segundo A", EntryLevel: model.EntryLevelEntry, Position: 2},
		{Name: "Segundo B", EntryLevel: model.EntryLevelEntry, Position: 2},
	} {
		if _, err := q.CreateWorkArea(ctx, p); err != nil {
			t.Fatalf("CreateWorkArea: %v", err)
		}
	}

	areas, err := q.ListWorkAreas(ctx)
	if err != nil {
		t.Fatalf("ListWorkAreas: %v", err)
	}

	want := []string{"Primero", "Segundo A", "Segundo B", "Tercero"}
	if len(areas) != len(want) {
		t.Fatalf("len = %d, want %d", len(areas), len(want))
	}
	for i, name := range want {
		if areas[i].Name != name {
			t.Errorf("areas[%d].Name = %q, want %q", i, areas[i].Name, name)
		}
	}
}

func TestUpdateWorkAreaPartial(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	area, err := q.CreateWorkArea(ctx, CreateWorkAreaParams{
		Name:        "Bar",
		Description: "Servicio de bebidas",
		EntryLevel:  model.EntryLevelEntry,
		Position:    1,
	})
	if err != nil {
		t.Fatalf("CreateWorkArea: %v", err)
	}

	newName := "Bares y Lounges"
	affected, err := q.UpdateWorkArea(ctx, area.ID, UpdateWorkAreaParams{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateWorkArea: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	got, err := q.GetWorkArea(ctx, area.ID)
	if err != nil {
		t.Fatalf("GetWorkArea: %v", err)
	}
	if got.Name != newName {
		t.Errorf("Name = %q, want %q", got.Name, newName)
	}
	// Untouched fields survive a partial update.
	if got.Description != "Servicio de bebidas" {
		t.Errorf("Description = %q, want unchanged", got.Description)
	}
	if got.Version != 2 {
		t.Errorf("Version = %d, want 2", got.Version)
	}
	if !got.CreatedAt.Equal(area.CreatedAt) {
		t.Error("CreatedAt must not change on update")
	}
}

func TestUpdateWorkAreaMissingIDIsNoOp(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	name := "Nadie"
	affected, err := q.UpdateWorkArea(ctx, 9999, UpdateWorkAreaParams{Name: &name})
	if err != nil {
		t.Fatalf("UpdateWorkArea: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}
}

func TestUpdateWorkAreaVersionConflict(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	area, err := q.CreateWorkArea(ctx, CreateWorkAreaParams{
		Name:       "Cubierta",
		EntryLevel: model.EntryLevelExperienced,
	})
	if err != nil {
		t.Fatalf("CreateWorkArea: %v", err)
	}

	// First writer succeeds with the version it read.
	name := "Cubierta y Navegación"
	expected := area.Version
	if _, err := q.UpdateWorkArea(ctx, area.ID, UpdateWorkAreaParams{Name: &name, ExpectedVersion: &expected}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Second writer still holds the stale version.
	stale := area.Version
	other := "Cubierta vieja"
	_, err = q.UpdateWorkArea(ctx, area.ID, UpdateWorkAreaParams{Name: &other, ExpectedVersion: &stale})
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("err = %v, want ErrVersionConflict", err)
	}

	// The conflicting write must not have changed anything.
	got, err := q.GetWorkArea(ctx, area.ID)
	if err != nil {
		t.Fatalf("GetWorkArea: %v", err)
	}
	if got.Name != name {
		t.Errorf("Name = %q, want %q", got.Name, name)
	}
}

func TestUpdateWorkAreaConflictOnMissingRowIsNoOp(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	// Expected version on a row that does not exist is a no-op, not a
	// conflict.
	name := "Fantasma"
	expected := int64(1)
	affected, err := q.UpdateWorkArea(ctx, 424242, UpdateWorkAreaParams{Name: &name, ExpectedVersion: &expected})
	if err != nil {
		t.Fatalf("UpdateWorkArea: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}
}

func TestSoftDeleteWorkArea(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	area, err := q.CreateWorkArea(ctx, CreateWorkAreaParams{
		Name:       "Spa",
		EntryLevel: model.EntryLevelEntry,
	})
	if err != nil {
		t.Fatalf("CreateWorkArea: %v", err)
	}

	affected, err := q.SoftDeleteWorkArea(ctx, area.ID)
	if err != nil {
		t.Fatalf("SoftDeleteWorkArea: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	// Gone from the list...
	areas, err := q.ListWorkAreas(ctx)
	if err != nil {
		t.Fatalf("ListWorkAreas: %v", err)
	}
	if len(areas) != 0 {
		t.Errorf("list length = %d, want 0", len(areas))
	}

	// ...but still fetchable by id.
	got, err := q.GetWorkArea(ctx, area.ID)
	if err != nil {
		t.Fatalf("GetWorkArea after delete: %v", err)
	}
	if got.IsActive {
		t.Error("soft-deleted row should not be active")
	}

	// And still counted.
	n, err := q.CountWorkAreas(ctx)
	if err != nil {
		t.Fatalf("CountWorkAreas: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestListRequirementsCategoryFilter(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for _, p := range []CreateRequirementParams{
		{Category: "general", Title: "Pasaporte vigente", Position: 1},
		{Category: "general", Title: "Certificado médico", Position: 2},
		{Category: "cocina", Title: "Curso de manipulación de alimentos", Position: 1},
	} {
		if _, err := q.CreateRequirement(ctx, p); err != nil {
			t.Fatalf("CreateRequirement: %v", err)
		}
	}

	general, err := q.ListRequirements(ctx, "general")
	if err != nil {
		t.Fatalf("ListRequirements(general): %v", err)
	}
	if len(general) != 2 {
		t.Errorf("general length = %d, want 2", len(general))
	}

	all, err := q.ListRequirements(ctx, "")
	if err != nil {
		t.Fatalf("ListRequirements(all): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all length = %d, want 3", len(all))
	}

	// Unknown category filters to an empty list, not an error.
	none, err := q.ListRequirements(ctx, "no-existe")
	if err != nil {
		t.Fatalf("ListRequirements(unknown): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown category length = %d, want 0", len(none))
	}
}

func TestListFraudSignalsCategoryFilter(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for _, p := range []CreateFraudSignalParams{
		{Signal: "Piden dinero por la entrevista", Category: model.FraudCategoryIllegalCharge, Position: 1},
		{Signal: "Correo desde dominio gratuito", Category: model.FraudCategoryRedFlag, Position: 1},
	} {
		if _, err := q.CreateFraudSignal(ctx, p); err != nil {
			t.Fatalf("CreateFraudSignal: %v", err)
		}
	}

	flagged, err := q.ListFraudSignals(ctx, model.FraudCategoryRedFlag)
	if err != nil {
		t.Fatalf("ListFraudSignals: %v", err)
	}
	if len(flagged) != 1 {
		t.Fatalf("length = %d, want 1", len(flagged))
	}
	if flagged[0].Category != model.FraudCategoryRedFlag {
		t.Errorf("Category = %q, want %q", flagged[0].Category, model.FraudCategoryRedFlag)
	}
}
