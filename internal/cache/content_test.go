// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"testing"
	"time"
)

func newTestContentCache() *ContentCache {
	mem := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	return NewContentCache(mem, time.Minute)
}

func TestContentCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestContentCache()

	type item struct {
		Name string `json:"name"`
	}

	if err := c.SetJSON(ctx, SectionMyths, []item{{Name: "mito"}}); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var got []item
	if err := c.GetJSON(ctx, SectionMyths, &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if len(got) != 1 || got[0].Name != "mito" {
		t.Errorf("got = %v", got)
	}
}

func TestContentCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := newTestContentCache()

	var got []string
	err := c.GetJSON(ctx, SectionSalaries, &got)
	if !IsMiss(err) {
		t.Errorf("err = %v, want cache miss", err)
	}
}

func TestContentCacheCorruptEntryBehavesLikeMiss(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	c := NewContentCache(mem, time.Minute)

	if err := mem.Set(ctx, SectionPages, []byte("{not json"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got []string
	err := c.GetJSON(ctx, SectionPages, &got)
	if !IsMiss(err) {
		t.Fatalf("err = %v, want cache miss", err)
	}

	// The corrupt entry is evicted on the way out.
	if _, err := mem.Get(ctx, SectionPages); !IsMiss(err) {
		t.Errorf("corrupt entry should have been deleted, got %v", err)
	}
}

func TestInvalidateSectionLeavesOthersAlone(t *testing.T) {
	ctx := context.Background()
	c := newTestContentCache()

	if err := c.SetJSON(ctx, SectionRequirements, []string{"a"}); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	if err := c.SetJSON(ctx, SubKey(SectionRequirements, "cocina"), []string{"b"}); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	if err := c.SetJSON(ctx, SectionMyths, []string{"c"}); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	if err := c.InvalidateSection(ctx, SectionRequirements); err != nil {
		t.Fatalf("InvalidateSection: %v", err)
	}

	var got []string
	if err := c.GetJSON(ctx, SectionRequirements, &got); !IsMiss(err) {
		t.Error("base section key should be gone")
	}
	if err := c.GetJSON(ctx, SubKey(SectionRequirements, "cocina"), &got); !IsMiss(err) {
		t.Error("per-category sub-key should be gone")
	}
	if err := c.GetJSON(ctx, SectionMyths, &got); err != nil {
		t.Errorf("unrelated section should survive, got %v", err)
	}
}

func TestInvalidateAll(t *testing.T) {
	ctx := context.Background()
	c := newTestContentCache()

	for _, key := range []string{SectionWorkAreas, SectionAbout, SubKey(SectionPages, "menu")} {
		if err := c.SetJSON(ctx, key, "x"); err != nil {
			t.Fatalf("SetJSON(%s): %v", key, err)
		}
	}

	if err := c.InvalidateAll(ctx); err != nil {
		t.Fatalf("InvalidateAll: %v", err)
	}

	for _, key := range []string{SectionWorkAreas, SectionAbout, SubKey(SectionPages, "menu")} {
		var got string
		if err := c.GetJSON(ctx, key, &got); !IsMiss(err) {
			t.Errorf("key %s should be gone, got %v", key, err)
		}
	}
}

func TestSubKey(t *testing.T) {
	if got := SubKey(SectionFraudSignals, "red_flag"); got != "content:fraud_signals:red_flag" {
		t.Errorf("SubKey = %q", got)
	}
	if got := SubKey(SectionFraudSignals, ""); got != SectionFraudSignals {
		t.Errorf("SubKey with empty variant = %q, want base key", got)
	}
}
