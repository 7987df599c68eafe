// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/dockly/dockly-go/internal/cache"
	"github.com/dockly/dockly-go/internal/model"
	"github.com/dockly/dockly-go/internal/store"
)

// UpdateAboutPageRequest is the request body for updating the about page
// singleton. All fields are optional; supplied fields replace stored ones.
type UpdateAboutPageRequest struct {
	WhatIsDockly      *string           `json:"what_is_dockly,omitempty"`
	WhatDocklyDoes    *model.StringList `json:"what_dockly_does,omitempty"`
	WhatDocklyDoesNot *model.StringList `json:"what_dockly_does_not,omitempty"`
	EthicalCommitment *string           `json:"ethical_commitment,omitempty"`
	ExpectedVersion   *int64            `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdateAboutPageRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.WhatIsDockly != nil && strings.TrimSpace(*req.WhatIsDockly) == "" {
		errs["what_is_dockly"] = "Must not be empty"
	}
	if req.EthicalCommitment != nil && strings.TrimSpace(*req.EthicalCommitment) == "" {
		errs["ethical_commitment"] = "Must not be empty"
	}
	return errs
}

func (req *UpdateAboutPageRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.WhatIsDockly != nil {
		fields["what_is_dockly"] = *req.WhatIsDockly
	}
	if req.WhatDocklyDoes != nil {
		fields["what_dockly_does"] = *req.WhatDocklyDoes
	}
	if req.WhatDocklyDoesNot != nil {
		fields["what_dockly_does_not"] = *req.WhatDocklyDoesNot
	}
	if req.EthicalCommitment != nil {
		fields["ethical_commitment"] = *req.EthicalCommitment
	}
	return fields
}

// GetAboutPage handles GET /api/v1/about.
func (h *Handler) GetAboutPage(w http.ResponseWriter, r *http.Request) {
	about, err := h.queries.GetAboutPage(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Not found")
		} else {
			WriteInternalError(w, "Failed to retrieve about page")
		}
		return
	}
	WriteSuccess(w, about, nil)
}

// UpdateAboutPage handles PUT /api/v1/about. The row is upserted against the
// fixed singleton id.
func (h *Handler) UpdateAboutPage(w http.ResponseWriter, r *http.Request) {
	var req UpdateAboutPageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	about, err := h.queries.UpsertAboutPage(r.Context(), store.UpsertAboutPageParams{
		WhatIsDockly:      req.WhatIsDockly,
		WhatDocklyDoes:    req.WhatDocklyDoes,
		WhatDocklyDoesNot: req.WhatDocklyDoesNot,
		EthicalCommitment: req.EthicalCommitment,
		ExpectedVersion:   req.ExpectedVersion,
	})
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			WriteConflict(w, "The about page was modified by someone else. Reload and retry.")
			return
		}
		WriteInternalError(w, "Failed to update about page")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntityAboutPage, model.AboutPageID, req.changes())
	h.invalidate(r, cache.SectionAbout)
	WriteSuccess(w, about, nil)
}
