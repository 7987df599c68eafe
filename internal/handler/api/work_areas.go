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

// CreateWorkAreaRequest is the request body for creating a work area.
type CreateWorkAreaRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Functions    model.StringList `json:"functions"`
	Requirements model.StringList `json:"requirements"`
	EntryLevel   string           `json:"entry_level"`
	Position     int64            `json:"position"`
}

// Validate checks required fields and enums.
func (req *CreateWorkAreaRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "Description is required"
	}
	if !model.IsValidEntryLevel(req.EntryLevel) {
		errs["entry_level"] = "Entry level must be 'entry-level' or 'experienced'"
	}
	if req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

// UpdateWorkAreaRequest is the request body for a partial work area update.
type UpdateWorkAreaRequest struct {
	Name            *string           `json:"name,omitempty"`
	Description     *string           `json:"description,omitempty"`
	Functions       *model.StringList `json:"functions,omitempty"`
	Requirements    *model.StringList `json:"requirements,omitempty"`
	EntryLevel      *string           `json:"entry_level,omitempty"`
	Position        *int64            `json:"position,omitempty"`
	ExpectedVersion *int64            `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdateWorkAreaRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs["name"] = "Name must not be empty"
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		errs["description"] = "Description must not be empty"
	}
	if req.EntryLevel != nil && !model.IsValidEntryLevel(*req.EntryLevel) {
		errs["entry_level"] = "Entry level must be 'entry-level' or 'experienced'"
	}
	if req.Position != nil && *req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

// changes returns the submitted fields for the audit log.
func (req *UpdateWorkAreaRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Functions != nil {
		fields["functions"] = *req.Functions
	}
	if req.Requirements != nil {
		fields["requirements"] = *req.Requirements
	}
	if req.EntryLevel != nil {
		fields["entry_level"] = *req.EntryLevel
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	return fields
}

// ListWorkAreas handles GET /api/v1/work-areas.
func (h *Handler) ListWorkAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.queries.ListWorkAreas(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list work areas")
		return
	}
	WriteSuccess(w, areas, &Meta{Total: int64(len(areas))})
}

// GetWorkArea handles GET /api/v1/work-areas/{id}.
func (h *Handler) GetWorkArea(w http.ResponseWriter, r *http.Request) {
	area, ok := requireEntityByID(w, r, "work area", func(id int64) (model.WorkArea, error) {
		return h.queries.GetWorkArea(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, area, nil)
}

// CreateWorkArea handles POST /api/v1/work-areas.
func (h *Handler) CreateWorkArea(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkAreaRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	area, err := h.queries.CreateWorkArea(r.Context(), store.CreateWorkAreaParams{
		Name:         req.Name,
		Description:  req.Description,
		Functions:    req.Functions,
		Requirements: req.Requirements,
		EntryLevel:   req.EntryLevel,
		Position:     req.Position,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create work area")
		return
	}

	h.audit(r, model.AuditActionCreate, model.EntityWorkArea, area.ID, map[string]any{
		"name": req.Name, "entry_level": req.EntryLevel, "position": req.Position,
	})
	h.invalidate(r, cache.SectionWorkAreas)
	WriteCreated(w, area)
}

// UpdateWorkArea handles PUT /api/v1/work-areas/{id}.
func (h *Handler) UpdateWorkArea(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid work area ID", nil)
		return
	}

	var req UpdateWorkAreaRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	affected, err := h.queries.UpdateWorkArea(r.Context(), id, store.UpdateWorkAreaParams{
		Name:            req.Name,
		Description:     req.Description,
		Functions:       req.Functions,
		Requirements:    req.Requirements,
		EntryLevel:      req.EntryLevel,
		Position:        req.Position,
		ExpectedVersion: req.ExpectedVersion,
	})
	if !finishUpdate(w, affected, err, "work area") {
		return
	}

	area, err := h.queries.GetWorkArea(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve work area")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntityWorkArea, id, req.changes())
	h.invalidate(r, cache.SectionWorkAreas)
	WriteSuccess(w, area, nil)
}

// DeleteWorkArea handles DELETE /api/v1/work-areas/{id}. Deletion is soft:
// the row stays fetchable by id.
func (h *Handler) DeleteWorkArea(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid work area ID", nil)
		return
	}

	affected, err := h.queries.SoftDeleteWorkArea(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to delete work area")
		return
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return
	}

	h.audit(r, model.AuditActionDelete, model.EntityWorkArea, id, nil)
	h.invalidate(r, cache.SectionWorkAreas)
	w.WriteHeader(http.StatusNoContent)
}
