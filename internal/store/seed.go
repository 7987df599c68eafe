// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"
)

// Seed populates empty content tables with the default Spanish datasets.
// Each table is gated on its own row count, so a table that already holds
// rows (active or soft-deleted) is left untouched. Running Seed repeatedly
// is safe.
func (q *Queries) Seed(ctx context.Context, log *slog.Logger) error {
	type table struct {
		name  string
		count func(context.Context) (int64, error)
		fill  func(context.Context) error
	}

	tables := []table{
		{"work_areas", q.CountWorkAreas, func(ctx context.Context) error {
			for _, p := range seedWorkAreas {
				if _, err := q.CreateWorkArea(ctx, p); err != nil {
					return err
				}
			}
			return nil
		}},
		{"boarding_steps", q.CountBoardingSteps, func(ctx context.Context) error {
			for _, p := range seedBoardingSteps {
				if _, err := q.CreateBoardingStep(ctx, p); err != nil {
					return err
				}
			}
			return nil
		}},
		{"requirements", q.CountRequirements, func(ctx context.Context) error {
			for _, p := range seedRequirements {
				if _, err := q.CreateRequirement(ctx, p); err != nil {
					return err
				}
			}
			return nil
		}},
		{"salary_data", q.CountSalaryEntries, func(ctx context.Context) error {
			for _, p := range seedSalaryEntries {
				if _, err := q.CreateSalaryEntry(ctx, p); err != nil {
					return err
				}
			}
			return nil
		}},
		{"fraud_signals", q.CountFraudSignals, func(ctx context.Context) error {
			for _, p := range seedFraudSignals() {
				if _, err := q.CreateFraudSignal(ctx, p); err != nil {
					return err
				}
			}
			return nil
		}},
		{"myths", q.CountMyths, func(ctx context.Context) error {
			for _, p := range seedMyths {
				if _, err := q.CreateMyth(ctx, p); err != nil {
					return err
				}
			}
			return nil
		}},
		{"legal_disclaimers", q.CountDisclaimers, func(ctx context.Context) error {
			for _, p := range seedDisclaimers {
				if _, err := q.CreateDisclaimer(ctx, p); err != nil {
					return err
				}
			}
			return nil
		}},
	}

	for _, t := range tables {
		n, err := t.count(ctx)
		if err != nil {
			return fmt.Errorf("seed: count %s: %w", t.name, err)
		}
		if n > 0 {
			log.Debug("seed: table not empty, skipping", "table", t.name, "rows", n)
			continue
		}
		if err := t.fill(ctx); err != nil {
			return fmt.Errorf("seed: fill %s: %w", t.name, err)
		}
		log.Info("seed: table seeded", "table", t.name)
	}

	return nil
}
