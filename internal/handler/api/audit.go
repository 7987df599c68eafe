// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/dockly/dockly-go/internal/store"
)

// defaultAuditLimit bounds unfiltered audit listings.
const defaultAuditLimit = 100

// ListAuditEntries handles GET /api/v1/audit. Optional ?entity_type=,
// ?entity_id= and ?limit= narrow the listing; entries come back newest
// first.
func (h *Handler) ListAuditEntries(w http.ResponseWriter, r *http.Request) {
	params := store.ListAuditEntriesParams{
		EntityType: r.URL.Query().Get("entity_type"),
		Limit:      defaultAuditLimit,
	}

	if raw := r.URL.Query().Get("entity_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteBadRequest(w, "Invalid entity_id", nil)
			return
		}
		params.EntityID = id
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 || limit > 1000 {
			WriteBadRequest(w, "Limit must be between 1 and 1000", nil)
			return
		}
		params.Limit = limit
	}

	entries, err := h.queries.ListAuditEntries(r.Context(), params)
	if err != nil {
		WriteInternalError(w, "Failed to list audit entries")
		return
	}
	WriteSuccess(w, entries, &Meta{Total: int64(len(entries))})
}
