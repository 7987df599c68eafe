// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs recurring background maintenance: event log
// retention, SQLite housekeeping, and content cache warming.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dockly/dockly-go/internal/cache"
	"github.com/dockly/dockly-go/internal/model"
	"github.com/dockly/dockly-go/internal/store"
)

// eventRetention is how long system events are kept before the nightly
// purge removes them.
const eventRetention = 90 * 24 * time.Hour

// Scheduler handles recurring maintenance jobs.
type Scheduler struct {
	db      *sql.DB
	queries *store.Queries
	content *cache.ContentCache
	cron    *cron.Cron
	logger  *slog.Logger
}

// New creates a new scheduler instance. The content cache may be nil; cache
// warming is skipped then.
func New(db *sql.DB, content *cache.ContentCache, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:      db,
		queries: store.New(db),
		content: content,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start registers the maintenance jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	// Nightly maintenance during the quiet hours
	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		if err := s.runMaintenance(); err != nil {
			s.logger.Error("nightly maintenance failed", "category", "scheduler", "error", err)
		}
	}); err != nil {
		return err
	}

	// Keep the public content lists warm so cache expiry never lands on a
	// visitor request
	if s.content != nil {
		if _, err := s.cron.AddFunc("*/15 * * * *", func() {
			s.warmContentCache()
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// runMaintenance purges expired events and lets SQLite re-evaluate its
// query plans.
func (s *Scheduler) runMaintenance() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-eventRetention)
	purged, err := s.queries.PurgeEventsBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if purged > 0 {
		s.logger.Info("purged old events", "category", "scheduler", "count", purged, "cutoff", cutoff.Format(time.RFC3339))
	}

	if _, err := s.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
		return err
	}

	return nil
}

// warmContentCache refreshes the cached public content lists. Failures are
// logged and skipped; the next request fills the cache on demand.
func (s *Scheduler) warmContentCache() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	warmList(ctx, s, cache.SectionWorkAreas, s.queries.ListWorkAreas)
	warmList(ctx, s, cache.SectionBoardingSteps, s.queries.ListBoardingSteps)
	warmList(ctx, s, cache.SectionSalaries, s.queries.ListSalaryEntries)
	warmList(ctx, s, cache.SectionMyths, s.queries.ListMyths)
	warmList(ctx, s, cache.SectionDisclaimers, s.queries.ListDisclaimers)
	warmList(ctx, s, cache.SectionPages, s.queries.ListDynamicPages)
	warmList(ctx, s, cache.SubKey(cache.SectionPages, "menu"), s.queries.ListMenuPages)

	// Unfiltered requirement and fraud signal lists; per-category variants
	// fill on demand.
	warmList(ctx, s, cache.SectionRequirements, func(ctx context.Context) ([]model.Requirement, error) {
		return s.queries.ListRequirements(ctx, "")
	})
	warmList(ctx, s, cache.SectionFraudSignals, func(ctx context.Context) ([]model.FraudSignal, error) {
		return s.queries.ListFraudSignals(ctx, "")
	})

	if about, err := s.queries.GetAboutPage(ctx); err == nil {
		if err := s.content.SetJSON(ctx, cache.SectionAbout, about); err != nil {
			s.logger.Warn("cache warm failed", "category", "scheduler", "key", cache.SectionAbout, "error", err)
		}
	}
}

// warmList fetches one content list and writes it into the cache.
func warmList[T any](ctx context.Context, s *Scheduler, key string, fetch func(context.Context) ([]T, error)) {
	items, err := fetch(ctx)
	if err != nil {
		s.logger.Warn("cache warm fetch failed", "category", "scheduler", "key", key, "error", err)
		return
	}
	if items == nil {
		items = []T{}
	}
	if err := s.content.SetJSON(ctx, key, items); err != nil {
		s.logger.Warn("cache warm failed", "category", "scheduler", "key", key, "error", err)
	}
}
