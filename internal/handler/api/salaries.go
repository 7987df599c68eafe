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

// CreateSalaryEntryRequest is the request body for creating a salary entry.
// Amounts are estimated monthly USD.
type CreateSalaryEntryRequest struct {
	Department string  `json:"department"`
	Position   string  `json:"position_title"`
	MinSalary  int64   `json:"min_salary"`
	MaxSalary  int64   `json:"max_salary"`
	Tips       *string `json:"tips,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	SortOrder  int64   `json:"position"`
}

// Validate checks required fields and salary bounds.
func (req *CreateSalaryEntryRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Department) == "" {
		errs["department"] = "Department is required"
	}
	if strings.TrimSpace(req.Position) == "" {
		errs["position_title"] = "Position title is required"
	}
	if req.MinSalary < 0 {
		errs["min_salary"] = "Minimum salary must not be negative"
	}
	if req.MaxSalary < 0 {
		errs["max_salary"] = "Maximum salary must not be negative"
	}
	if req.MinSalary >= 0 && req.MaxSalary >= 0 && req.MaxSalary < req.MinSalary {
		errs["max_salary"] = "Maximum salary must not be below the minimum"
	}
	if req.SortOrder < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

// UpdateSalaryEntryRequest is the request body for a partial update.
type UpdateSalaryEntryRequest struct {
	Department      *string `json:"department,omitempty"`
	Position        *string `json:"position_title,omitempty"`
	MinSalary       *int64  `json:"min_salary,omitempty"`
	MaxSalary       *int64  `json:"max_salary,omitempty"`
	Tips            *string `json:"tips,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	SortOrder       *int64  `json:"position,omitempty"`
	ExpectedVersion *int64  `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdateSalaryEntryRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.Department != nil && strings.TrimSpace(*req.Department) == "" {
		errs["department"] = "Department must not be empty"
	}
	if req.Position != nil && strings.TrimSpace(*req.Position) == "" {
		errs["position_title"] = "Position title must not be empty"
	}
	if req.MinSalary != nil && *req.MinSalary < 0 {
		errs["min_salary"] = "Minimum salary must not be negative"
	}
	if req.MaxSalary != nil && *req.MaxSalary < 0 {
		errs["max_salary"] = "Maximum salary must not be negative"
	}
	if req.MinSalary != nil && req.MaxSalary != nil && *req.MaxSalary < *req.MinSalary {
		errs["max_salary"] = "Maximum salary must not be below the minimum"
	}
	if req.SortOrder != nil && *req.SortOrder < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

func (req *UpdateSalaryEntryRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Position != nil {
		fields["position_title"] = *req.Position
	}
	if req.MinSalary != nil {
		fields["min_salary"] = *req.MinSalary
	}
	if req.MaxSalary != nil {
		fields["max_salary"] = *req.MaxSalary
	}
	if req.Tips != nil {
		fields["tips"] = *req.Tips
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.SortOrder != nil {
		fields["position"] = *req.SortOrder
	}
	return fields
}

// ListSalaryEntries handles GET /api/v1/salaries.
func (h *Handler) ListSalaryEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.queries.ListSalaryEntries(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list salary entries")
		return
	}
	WriteSuccess(w, entries, &Meta{Total: int64(len(entries))})
}

// GetSalaryEntry handles GET /api/v1/salaries/{id}.
func (h *Handler) GetSalaryEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := requireEntityByID(w, r, "salary entry", func(id int64) (model.SalaryEntry, error) {
		return h.queries.GetSalaryEntry(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, entry, nil)
}

// CreateSalaryEntry handles POST /api/v1/salaries.
func (h *Handler) CreateSalaryEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateSalaryEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	entry, err := h.queries.CreateSalaryEntry(r.Context(), store.CreateSalaryEntryParams{
		Department: req.Department,
		Position:   req.Position,
		MinSalary:  req.MinSalary,
		MaxSalary:  req.MaxSalary,
		Tips:       req.Tips,
		Notes:      req.Notes,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create salary entry")
		return
	}

	h.audit(r, model.AuditActionCreate, model.EntitySalaryEntry, entry.ID, map[string]any{
		"department": req.Department, "position_title": req.Position,
		"min_salary": req.MinSalary, "max_salary": req.MaxSalary,
	})
	h.invalidate(r, cache.SectionSalaries)
	WriteCreated(w, entry)
}

// UpdateSalaryEntry handles PUT /api/v1/salaries/{id}.
func (h *Handler) UpdateSalaryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid salary entry ID", nil)
		return
	}

	var req UpdateSalaryEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	affected, err := h.queries.UpdateSalaryEntry(r.Context(), id, store.UpdateSalaryEntryParams{
		Department:      req.Department,
		Position:        req.Position,
		MinSalary:       req.MinSalary,
		MaxSalary:       req.MaxSalary,
		Tips:            req.Tips,
		Notes:           req.Notes,
		SortOrder:       req.SortOrder,
		ExpectedVersion: req.ExpectedVersion,
	})
	if !finishUpdate(w, affected, err, "salary entry") {
		return
	}

	entry, err := h.queries.GetSalaryEntry(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve salary entry")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntitySalaryEntry, id, req.changes())
	h.invalidate(r, cache.SectionSalaries)
	WriteSuccess(w, entry, nil)
}

// DeleteSalaryEntry handles DELETE /api/v1/salaries/{id}.
func (h *Handler) DeleteSalaryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid salary entry ID", nil)
		return
	}

	affected, err := h.queries.SoftDeleteSalaryEntry(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to delete salary entry")
		return
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return
	}

	h.audit(r, model.AuditActionDelete, model.EntitySalaryEntry, id, nil)
	h.invalidate(r, cache.SectionSalaries)
	w.WriteHeader(http.StatusNoContent)
}
