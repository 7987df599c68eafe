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

// CreateFraudSignalRequest is the request body for creating a fraud signal.
type CreateFraudSignalRequest struct {
	Signal   string `json:"signal"`
	Category string `json:"category"`
	Position int64  `json:"position"`
}

// Validate checks required fields and the category enum.
func (req *CreateFraudSignalRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Signal) == "" {
		errs["signal"] = "Signal is required"
	}
	if !model.IsValidFraudCategory(req.Category) {
		errs["category"] = "Category must be 'red_flag', 'illegal_charge' or 'verification_tip'"
	}
	if req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

// UpdateFraudSignalRequest is the request body for a partial update.
type UpdateFraudSignalRequest struct {
	Signal          *string `json:"signal,omitempty"`
	Category        *string `json:"category,omitempty"`
	Position        *int64  `json:"position,omitempty"`
	ExpectedVersion *int64  `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdateFraudSignalRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.Signal != nil && strings.TrimSpace(*req.Signal) == "" {
		errs["signal"] = "Signal must not be empty"
	}
	if req.Category != nil && !model.IsValidFraudCategory(*req.Category) {
		errs["category"] = "Category must be 'red_flag', 'illegal_charge' or 'verification_tip'"
	}
	if req.Position != nil && *req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

func (req *UpdateFraudSignalRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.Signal != nil {
		fields["signal"] = *req.Signal
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	return fields
}

// ListFraudSignals handles GET /api/v1/fraud-signals. An optional ?category=
// filter narrows the list; an unknown category yields an empty list.
func (h *Handler) ListFraudSignals(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	signals, err := h.queries.ListFraudSignals(r.Context(), category)
	if err != nil {
		WriteInternalError(w, "Failed to list fraud signals")
		return
	}
	WriteSuccess(w, signals, &Meta{Total: int64(len(signals))})
}

// GetFraudSignal handles GET /api/v1/fraud-signals/{id}.
func (h *Handler) GetFraudSignal(w http.ResponseWriter, r *http.Request) {
	signal, ok := requireEntityByID(w, r, "fraud signal", func(id int64) (model.FraudSignal, error) {
		return h.queries.GetFraudSignal(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, signal, nil)
}

// CreateFraudSignal handles POST /api/v1/fraud-signals.
func (h *Handler) CreateFraudSignal(w http.ResponseWriter, r *http.Request) {
	var req CreateFraudSignalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	signal, err := h.queries.CreateFraudSignal(r.Context(), store.CreateFraudSignalParams{
		Signal:   req.Signal,
		Category: req.Category,
		Position: req.Position,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create fraud signal")
		return
	}

	h.audit(r, model.AuditActionCreate, model.EntityFraudSignal, signal.ID, map[string]any{
		"signal": req.Signal, "category": req.Category, "position": req.Position,
	})
	h.invalidate(r, cache.SectionFraudSignals)
	WriteCreated(w, signal)
}

// UpdateFraudSignal handles PUT /api/v1/fraud-signals/{id}.
func (h *Handler) UpdateFraudSignal(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid fraud signal ID", nil)
		return
	}

	var req UpdateFraudSignalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	affected, err := h.queries.UpdateFraudSignal(r.Context(), id, store.UpdateFraudSignalParams{
		Signal:          req.Signal,
		Category:        req.Category,
		Position:        req.Position,
		ExpectedVersion: req.ExpectedVersion,
	})
	if !finishUpdate(w, affected, err, "fraud signal") {
		return
	}

	signal, err := h.queries.GetFraudSignal(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve fraud signal")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntityFraudSignal, id, req.changes())
	h.invalidate(r, cache.SectionFraudSignals)
	WriteSuccess(w, signal, nil)
}

// DeleteFraudSignal handles DELETE /api/v1/fraud-signals/{id}.
func (h *Handler) DeleteFraudSignal(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid fraud signal ID", nil)
		return
	}

	affected, err := h.queries.SoftDeleteFraudSignal(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to delete fraud signal")
		return
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return
	}

	h.audit(r, model.AuditActionDelete, model.EntityFraudSignal, id, nil)
	h.invalidate(r, cache.SectionFraudSignals)
	w.WriteHeader(http.StatusNoContent)
}
