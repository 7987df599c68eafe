// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/dockly/dockly-go/internal/store"
)

// defaultEventLimit bounds unfiltered event listings.
const defaultEventLimit = 100

// ListEvents handles GET /api/v1/events. Optional ?level=, ?category= and
// ?limit= narrow the listing; events come back newest first.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := store.ListEventsParams{
		Level:    r.URL.Query().Get("level"),
		Category: r.URL.Query().Get("category"),
		Limit:    defaultEventLimit,
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 || limit > 1000 {
			WriteBadRequest(w, "Limit must be between 1 and 1000", nil)
			return
		}
		params.Limit = limit
	}

	events, err := h.queries.ListEvents(r.Context(), params)
	if err != nil {
		WriteInternalError(w, "Failed to list events")
		return
	}
	WriteSuccess(w, events, &Meta{Total: int64(len(events))})
}
