// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"
)

// Seed handles POST /api/v1/seed. The procedure fills each empty content
// table with its default dataset and leaves non-empty tables alone, so
// running it repeatedly is safe.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.queries.Seed(r.Context(), slog.Default()); err != nil {
		slog.Error("seed failed", "category", "seed", "error", err)
		WriteInternalError(w, "Seeding failed")
		return
	}

	if h.content != nil {
		if err := h.content.InvalidateAll(r.Context()); err != nil {
			slog.Warn("cache invalidation after seed failed", "category", "cache", "error", err)
		}
	}

	WriteSuccess(w, map[string]bool{"seeded": true}, nil)
}
