// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"

	"github.com/dockly/dockly-go/internal/cache"
	"github.com/dockly/dockly-go/internal/model"
	"github.com/dockly/dockly-go/internal/store"
)

// CreateMythRequest is the request body for creating a myth.
type CreateMythRequest struct {
	Title               string           `json:"title"`
	Verdict             string           `json:"verdict"`
	ShortDescription    string           `json:"short_description"`
	DetailedExplanation string           `json:"detailed_explanation"`
	Details             model.StringList `json:"details"`
	Position            int64            `json:"position"`
}

// Validate checks required fields and the verdict enum.
func (req *CreateMythRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "Title is required"
	}
	if !model.IsValidVerdict(req.Verdict) {
		errs["verdict"] = "Verdict must be 'Verdadero' or 'Falso'"
	}
	if strings.TrimSpace(req.ShortDescription) == "" {
		errs["short_description"] = "Short description is required"
	}
	if strings.TrimSpace(req.DetailedExplanation) == "" {
		errs["detailed_explanation"] = "Detailed explanation is required"
	}
	if req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

// UpdateMythRequest is the request body for a partial update.
type UpdateMythRequest struct {
	Title               *string           `json:"title,omitempty"`
	Verdict             *string           `json:"verdict,omitempty"`
	ShortDescription    *string           `json:"short_description,omitempty"`
	DetailedExplanation *string           `json:"detailed_explanation,omitempty"`
	Details             *model.StringList `json:"details,omitempty"`
	Position            *int64            `json:"position,omitempty"`
	ExpectedVersion     *int64            `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdateMythRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs["title"] = "Title must not be empty"
	}
	if req.Verdict != nil && !model.IsValidVerdict(*req.Verdict) {
		errs["verdict"] = "Verdict must be 'Verdadero' or 'Falso'"
	}
	if req.ShortDescription != nil && strings.TrimSpace(*req.ShortDescription) == "" {
		errs["short_description"] = "Short description must not be empty"
	}
	if req.DetailedExplanation != nil && strings.TrimSpace(*req.DetailedExplanation) == "" {
		errs["detailed_explanation"] = "Detailed explanation must not be empty"
	}
	if req.Position != nil && *req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

func (req *UpdateMythRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Verdict != nil {
		fields["verdict"] = *req.Verdict
	}
	if req.ShortDescription != nil {
		fields["short_description"] = *req.ShortDescription
	}
	if req.DetailedExplanation != nil {
		fields["detailed_explanation"] = *req.DetailedExplanation
	}
	if req.Details != nil {
		fields["details"] = *req.Details
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	return fields
}

// ListMyths handles GET /api/v1/myths.
func (h *Handler) ListMyths(w http.ResponseWriter, r *http.Request) {
	myths, err := h.queries.ListMyths(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list myths")
		return
	}
	WriteSuccess(w, myths, &Meta{Total: int64(len(myths))})
}

// GetMyth handles GET /api/v1/myths/{id}.
func (h *Handler) GetMyth(w http.ResponseWriter, r *http.Request) {
	myth, ok := requireEntityByID(w, r, "myth", func(id int64) (model.Myth, error) {
		return h.queries.GetMyth(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, myth, nil)
}

// CreateMyth handles POST /api/v1/myths.
func (h *Handler) CreateMyth(w http.ResponseWriter, r *http.Request) {
	var req CreateMythRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	myth, err := h.queries.CreateMyth(r.Context(), store.CreateMythParams{
		Title:               req.Title,
		Verdict:             req.Verdict,
		ShortDescription:    req.ShortDescription,
		DetailedExplanation: req.DetailedExplanation,
		Details:             req.Details,
		Position:            req.Position,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create myth")
		return
	}

	h.audit(r, model.AuditActionCreate, model.EntityMyth, myth.ID, map[string]any{
		"title": req.Title, "verdict": req.Verdict, "position": req.Position,
	})
	h.invalidate(r, cache.SectionMyths)
	WriteCreated(w, myth)
}

// UpdateMyth handles PUT /api/v1/myths/{id}.
func (h *Handler) UpdateMyth(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid myth ID", nil)
		return
	}

	var req UpdateMythRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	affected, err := h.queries.UpdateMyth(r.Context(), id, store.UpdateMythParams{
		Title:               req.Title,
		Verdict:             req.Verdict,
		ShortDescription:    req.ShortDescription,
		DetailedExplanation: req.DetailedExplanation,
		Details:             req.Details,
		Position:            req.Position,
		ExpectedVersion:     req.ExpectedVersion,
	})
	if !finishUpdate(w, affected, err, "myth") {
		return
	}

	myth, err := h.queries.GetMyth(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve myth")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntityMyth, id, req.changes())
	h.invalidate(r, cache.SectionMyths)
	WriteSuccess(w, myth, nil)
}

// DeleteMyth handles DELETE /api/v1/myths/{id}.
func (h *Handler) DeleteMyth(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid myth ID", nil)
		return
	}

	affected, err := h.queries.SoftDeleteMyth(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to delete myth")
		return
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return
	}

	h.audit(r, model.AuditActionDelete, model.EntityMyth, id, nil)
	h.invalidate(r, cache.SectionMyths)
	w.WriteHeader(http.StatusNoContent)
}
