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

// CreateRequirementRequest is the request body for creating a requirement.
// Category is free text: "general" or a department name.
type CreateRequirementRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int64  `json:"position"`
}

// Validate checks required fields.
func (req *CreateRequirementRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Category) == "" {
		errs["category"] = "Category is required"
	}
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "Description is required"
	}
	if req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

// UpdateRequirementRequest is the request body for a partial update.
type UpdateRequirementRequest struct {
	Category        *string `json:"category,omitempty"`
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Position        *int64  `json:"position,omitempty"`
	ExpectedVersion *int64  `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdateRequirementRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		errs["category"] = "Category must not be empty"
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs["title"] = "Title must not be empty"
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		errs["description"] = "Description must not be empty"
	}
	if req.Position != nil && *req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

func (req *UpdateRequirementRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	return fields
}

// ListRequirements handles GET /api/v1/requirements. An optional ?category=
// filter narrows the list; an unknown category yields an empty list.
func (h *Handler) ListRequirements(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	reqs, err := h.queries.ListRequirements(r.Context(), category)
	if err != nil {
		WriteInternalError(w, "Failed to list requirements")
		return
	}
	WriteSuccess(w, reqs, &Meta{Total: int64(len(reqs))})
}

// GetRequirement handles GET /api/v1/requirements/{id}.
func (h *Handler) GetRequirement(w http.ResponseWriter, r *http.Request) {
	requirement, ok := requireEntityByID(w, r, "requirement", func(id int64) (model.Requirement, error) {
		return h.queries.GetRequirement(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, requirement, nil)
}

// CreateRequirement handles POST /api/v1/requirements.
func (h *Handler) CreateRequirement(w http.ResponseWriter, r *http.Request) {
	var req CreateRequirementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	requirement, err := h.queries.CreateRequirement(r.Context(), store.CreateRequirementParams{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create requirement")
		return
	}

	h.audit(r, model.AuditActionCreate, model.EntityRequirement, requirement.ID, map[string]any{
		"category": req.Category, "title": req.Title, "position": req.Position,
	})
	h.invalidate(r, cache.SectionRequirements)
	WriteCreated(w, requirement)
}

// UpdateRequirement handles PUT /api/v1/requirements/{id}.
func (h *Handler) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid requirement ID", nil)
		return
	}

	var req UpdateRequirementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	affected, err := h.queries.UpdateRequirement(r.Context(), id, store.UpdateRequirementParams{
		Category:        req.Category,
		Title:           req.Title,
		Description:     req.Description,
		Position:        req.Position,
		ExpectedVersion: req.ExpectedVersion,
	})
	if !finishUpdate(w, affected, err, "requirement") {
		return
	}

	requirement, err := h.queries.GetRequirement(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve requirement")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntityRequirement, id, req.changes())
	h.invalidate(r, cache.SectionRequirements)
	WriteSuccess(w, requirement, nil)
}

// DeleteRequirement handles DELETE /api/v1/requirements/{id}.
func (h *Handler) DeleteRequirement(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid requirement ID", nil)
		return
	}

	affected, err := h.queries.SoftDeleteRequirement(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to delete requirement")
		return
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return
	}

	h.audit(r, model.AuditActionDelete, model.EntityRequirement, id, nil)
	h.invalidate(r, cache.SectionRequirements)
	w.WriteHeader(http.StatusNoContent)
}
