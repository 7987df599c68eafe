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

// CreateBoardingStepRequest is the request body for creating a boarding step.
type CreateBoardingStepRequest struct {
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	ApproximateTime  string           `json:"approximate_time"`
	CommonErrors     model.StringList `json:"common_errors"`
	CandidateActions model.StringList `json:"candidate_actions"`
	ShipperRequests  model.StringList `json:"shipper_requests"`
	Position         int64            `json:"position"`
}

// Validate checks required fields.
func (req *CreateBoardingStepRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(req.ApproximateTime) == "" {
		errs["approximate_time"] = "Approximate time is required"
	}
	if req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

// UpdateBoardingStepRequest is the request body for a partial update.
type UpdateBoardingStepRequest struct {
	Title            *string           `json:"title,omitempty"`
	Description      *string           `json:"description,omitempty"`
	ApproximateTime  *string           `json:"approximate_time,omitempty"`
	CommonErrors     *model.StringList `json:"common_errors,omitempty"`
	CandidateActions *model.StringList `json:"candidate_actions,omitempty"`
	ShipperRequests  *model.StringList `json:"shipper_requests,omitempty"`
	Position         *int64            `json:"position,omitempty"`
	ExpectedVersion  *int64            `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdateBoardingStepRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs["title"] = "Title must not be empty"
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		errs["description"] = "Description must not be empty"
	}
	if req.ApproximateTime != nil && strings.TrimSpace(*req.ApproximateTime) == "" {
		errs["approximate_time"] = "Approximate time must not be empty"
	}
	if req.Position != nil && *req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

func (req *UpdateBoardingStepRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ApproximateTime != nil {
		fields["approximate_time"] = *req.ApproximateTime
	}
	if req.CommonErrors != nil {
		fields["common_errors"] = *req.CommonErrors
	}
	if req.CandidateActions != nil {
		fields["candidate_actions"] = *req.CandidateActions
	}
	if req.ShipperRequests != nil {
		fields["shipper_requests"] = *req.ShipperRequests
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	return fields
}

// ListBoardingSteps handles GET /api/v1/boarding-steps.
func (h *Handler) ListBoardingSteps(w http.ResponseWriter, r *http.Request) {
	steps, err := h.queries.ListBoardingSteps(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list boarding steps")
		return
	}
	WriteSuccess(w, steps, &Meta{Total: int64(len(steps))})
}

// GetBoardingStep handles GET /api/v1/boarding-steps/{id}.
func (h *Handler) GetBoardingStep(w http.ResponseWriter, r *http.Request) {
	step, ok := requireEntityByID(w, r, "boarding step", func(id int64) (model.BoardingStep, error) {
		return h.queries.GetBoardingStep(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, step, nil)
}

// CreateBoardingStep handles POST /api/v1/boarding-steps.
func (h *Handler) CreateBoardingStep(w http.ResponseWriter, r *http.Request) {
	var req CreateBoardingStepRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	step, err := h.queries.CreateBoardingStep(r.Context(), store.CreateBoardingStepParams{
		Title:            req.Title,
		Description:      req.Description,
		ApproximateTime:  req.ApproximateTime,
		CommonErrors:     req.CommonErrors,
		CandidateActions: req.CandidateActions,
		ShipperRequests:  req.ShipperRequests,
		Position:         req.Position,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create boarding step")
		return
	}

	h.audit(r, model.AuditActionCreate, model.EntityBoardingStep, step.ID, map[string]any{
		"title": req.Title, "position": req.Position,
	})
	h.invalidate(r, cache.SectionBoardingSteps)
	WriteCreated(w, step)
}

// UpdateBoardingStep handles PUT /api/v1/boarding-steps/{id}.
func (h *Handler) UpdateBoardingStep(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid boarding step ID", nil)
		return
	}

	var req UpdateBoardingStepRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	affected, err := h.queries.UpdateBoardingStep(r.Context(), id, store.UpdateBoardingStepParams{
		Title:            req.Title,
		Description:      req.Description,
		ApproximateTime:  req.ApproximateTime,
		CommonErrors:     req.CommonErrors,
		CandidateActions: req.CandidateActions,
		ShipperRequests:  req.ShipperRequests,
		Position:         req.Position,
		ExpectedVersion:  req.ExpectedVersion,
	})
	if !finishUpdate(w, affected, err, "boarding step") {
		return
	}

	step, err := h.queries.GetBoardingStep(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve boarding step")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntityBoardingStep, id, req.changes())
	h.invalidate(r, cache.SectionBoardingSteps)
	WriteSuccess(w, step, nil)
}

// DeleteBoardingStep handles DELETE /api/v1/boarding-steps/{id}.
func (h *Handler) DeleteBoardingStep(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid boarding step ID", nil)
		return
	}

	affected, err := h.queries.SoftDeleteBoardingStep(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to delete boarding step")
		return
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return
	}

	h.audit(r, model.AuditActionDelete, model.EntityBoardingStep, id, nil)
	h.invalidate(r, cache.SectionBoardingSteps)
	w.WriteHeader(http.StatusNoContent)
}
