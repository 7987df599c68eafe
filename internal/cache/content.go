// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Content section keys. Admin mutations invalidate by section so an edit to
// one content kind never evicts the others.
const (
	SectionWorkAreas     = "content:work_areas"
	SectionBoardingSteps = "content:boarding_steps"
	SectionRequirements  = "content:requirements"
	SectionSalaries      = "content:salaries"
	SectionFraudSignals  = "content:fraud_signals"
	SectionMyths         = "content:myths"
	SectionDisclaimers   = "content:disclaimers"
	SectionPages         = "content:pages"
	SectionAbout         = "content:about"
)

// ContentCache wraps a Cacher with JSON serialization for public content
// payloads.
type ContentCache struct {
	cache Cacher
	ttl   time.Duration
}

// NewContentCache creates a content cache over the given backend.
func NewContentCache(cache Cacher, ttl time.Duration) *ContentCache {
	return &ContentCache{cache: cache, ttl: ttl}
}

// GetJSON loads and unmarshals a cached payload into dest.
// Returns ErrCacheMiss when absent.
func (c *ContentCache) GetJSON(ctx context.Context, key string, dest any) error {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// A corrupt entry behaves like a miss; the caller refills it.
		_ = c.cache.Delete(ctx, key)
		return ErrCacheMiss
	}
	return nil
}

// SetJSON marshals and stores a payload.
func (c *ContentCache) SetJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, key, data, c.ttl)
}

// IsMiss reports whether err is a cache miss.
func IsMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

// InvalidateSection evicts one content section and its sub-keys
// (e.g. per-category requirement lists).
func (c *ContentCache) InvalidateSection(ctx context.Context, section string) error {
	return c.cache.DeleteByPrefix(ctx, section)
}

// InvalidateAll evicts every content section.
func (c *ContentCache) InvalidateAll(ctx context.Context) error {
	return c.cache.DeleteByPrefix(ctx, "content:")
}

// SubKey builds a section sub-key, e.g. a per-category or per-slug variant.
func SubKey(section, variant string) string {
	if variant == "" {
		return section
	}
	return section + ":" + variant
}
