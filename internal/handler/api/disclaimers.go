// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dockly/dockly-go/internal/cache"
	"github.com/dockly/dockly-go/internal/model"
	"github.com/dockly/dockly-go/internal/store"
	"github.com/dockly/dockly-go/internal/util"
)

// CreateDisclaimerRequest is the request body for creating a legal
// disclaimer. The key names the site section the text belongs to.
type CreateDisclaimerRequest struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks required fields and key format.
func (req *CreateDisclaimerRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Key) == "" {
		errs["key"] = "Key is required"
	} else if !util.IsValidSlug(req.Key) {
		errs["key"] = "Key must contain only lowercase letters, digits and hyphens"
	}
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		errs["content"] = "Content is required"
	}
	return errs
}

// UpdateDisclaimerRequest is the request body for a partial update. The key
// itself is immutable; it addresses the row.
type UpdateDisclaimerRequest struct {
	Title           *string `json:"title,omitempty"`
	Content         *string `json:"content,omitempty"`
	ExpectedVersion *int64  `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdateDisclaimerRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs["title"] = "Title must not be empty"
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		errs["content"] = "Content must not be empty"
	}
	return errs
}

func (req *UpdateDisclaimerRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	return fields
}

// ListDisclaimers handles GET /api/v1/disclaimers.
func (h *Handler) ListDisclaimers(w http.ResponseWriter, r *http.Request) {
	disclaimers, err := h.queries.ListDisclaimers(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list disclaimers")
		return
	}
	WriteSuccess(w, disclaimers, &Meta{Total: int64(len(disclaimers))})
}

// GetDisclaimer handles GET /api/v1/disclaimers/{key}.
func (h *Handler) GetDisclaimer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	disclaimer, err := h.queries.GetDisclaimerByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Not found")
		} else {
			WriteInternalError(w, "Failed to retrieve disclaimer")
		}
		return
	}
	WriteSuccess(w, disclaimer, nil)
}

// CreateDisclaimer handles POST /api/v1/disclaimers.
func (h *Handler) CreateDisclaimer(w http.ResponseWriter, r *http.Request) {
	var req CreateDisclaimerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	if _, err := h.queries.GetDisclaimerByKey(r.Context(), req.Key); err == nil {
		WriteValidationError(w, map[string]string{"key": "Key already exists"})
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		WriteInternalError(w, "Failed to check key")
		return
	}

	disclaimer, err := h.queries.CreateDisclaimer(r.Context(), store.CreateDisclaimerParams{
		Key:     req.Key,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create disclaimer")
		return
	}

	h.audit(r, model.AuditActionCreate, model.EntityDisclaimer, disclaimer.ID, map[string]any{
		"key": req.Key, "title": req.Title,
	})
	h.invalidate(r, cache.SectionDisclaimers)
	WriteCreated(w, disclaimer)
}

// UpdateDisclaimer handles PUT /api/v1/disclaimers/{key}.
func (h *Handler) UpdateDisclaimer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req UpdateDisclaimerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	affected, err := h.queries.UpdateDisclaimerByKey(r.Context(), key, store.UpdateDisclaimerParams{
		Title:           req.Title,
		Content:         req.Content,
		ExpectedVersion: req.ExpectedVersion,
	})
	if !finishUpdate(w, affected, err, "disclaimer") {
		return
	}

	disclaimer, err := h.queries.GetDisclaimerByKey(r.Context(), key)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve disclaimer")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntityDisclaimer, disclaimer.ID, req.changes())
	h.invalidate(r, cache.SectionDisclaimers)
	WriteSuccess(w, disclaimer, nil)
}

// DeleteDisclaimer handles DELETE /api/v1/disclaimers/{key}.
func (h *Handler) DeleteDisclaimer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	disclaimer, err := h.queries.GetDisclaimerByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Not found")
		} else {
			WriteInternalError(w, "Failed to retrieve disclaimer")
		}
		return
	}

	if _, err := h.queries.SoftDeleteDisclaimerByKey(r.Context(), key); err != nil {
		WriteInternalError(w, "Failed to delete disclaimer")
		return
	}

	h.audit(r, model.AuditActionDelete, model.EntityDisclaimer, disclaimer.ID, nil)
	h.invalidate(r, cache.SectionDisclaimers)
	w.WriteHeader(http.StatusNoContent)
}
