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

// CreatePageRequest is the request body for creating a dynamic page. An
// omitted slug is derived from the title.
type CreatePageRequest struct {
	Slug       string  `json:"slug"`
	Title      string  `json:"title"`
	Subtitle   *string `json:"subtitle,omitempty"`
	Content    string  `json:"content"`
	ImageURL   *string `json:"image_url,omitempty"`
	Position   int64   `json:"position"`
	ShowInMenu bool    `json:"show_in_menu"`
}

// Validate checks required fields and slug format.
func (req *CreatePageRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		errs["content"] = "Content is required"
	}
	if req.Slug != "" && !util.IsValidSlug(req.Slug) {
		errs["slug"] = "Slug must contain only lowercase letters, digits and hyphens"
	}
	if req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

// UpdatePageRequest is the request body for a partial update.
type UpdatePageRequest struct {
	Slug            *string `json:"slug,omitempty"`
	Title           *string `json:"title,omitempty"`
	Subtitle        *string `json:"subtitle,omitempty"`
	Content         *string `json:"content,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	Position        *int64  `json:"position,omitempty"`
	ShowInMenu      *bool   `json:"show_in_menu,omitempty"`
	ExpectedVersion *int64  `json:"expected_version,omitempty"`
}

// Validate checks only the supplied fields.
func (req *UpdatePageRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if req.Slug != nil && !util.IsValidSlug(*req.Slug) {
		errs["slug"] = "Slug must contain only lowercase letters, digits and hyphens"
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs["title"] = "Title must not be empty"
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		errs["content"] = "Content must not be empty"
	}
	if req.Position != nil && *req.Position < 0 {
		errs["position"] = "Position must not be negative"
	}
	return errs
}

func (req *UpdatePageRequest) changes() map[string]any {
	fields := make(map[string]any)
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Subtitle != nil {
		fields["subtitle"] = *req.Subtitle
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.ShowInMenu != nil {
		fields["show_in_menu"] = *req.ShowInMenu
	}
	return fields
}

// ListPages handles GET /api/v1/pages. With ?menu=true only pages flagged
// for the navigation menu are returned.
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	var (
		pages []model.DynamicPage
		err   error
	)
	if r.URL.Query().Get("menu") == "true" {
		pages, err = h.queries.ListMenuPages(r.Context())
	} else {
		pages, err = h.queries.ListDynamicPages(r.Context())
	}
	if err != nil {
		WriteInternalError(w, "Failed to list pages")
		return
	}
	WriteSuccess(w, pages, &Meta{Total: int64(len(pages))})
}

// GetPage handles GET /api/v1/pages/{id}.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, ok := requireEntityByID(w, r, "page", func(id int64) (model.DynamicPage, error) {
		return h.queries.GetDynamicPage(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, page, nil)
}

// GetPageBySlug handles GET /api/v1/pages/slug/{slug}. Only active pages are
// visible through slug lookup.
func (h *Handler) GetPageBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := h.queries.GetDynamicPageBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Not found")
		} else {
			WriteInternalError(w, "Failed to retrieve page")
		}
		return
	}
	WriteSuccess(w, page, nil)
}

// CreatePage handles POST /api/v1/pages.
func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req CreatePageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
		if slug == "" {
			WriteValidationError(w, map[string]string{"slug": "A slug could not be derived from the title"})
			return
		}
	}

	exists, err := h.queries.DynamicPageSlugExists(r.Context(), slug)
	if err != nil {
		WriteInternalError(w, "Failed to check slug")
		return
	}
	if exists {
		WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
		return
	}

	page, err := h.queries.CreateDynamicPage(r.Context(), store.CreateDynamicPageParams{
		Slug:       slug,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		Position:   req.Position,
		ShowInMenu: req.ShowInMenu,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create page")
		return
	}

	h.audit(r, model.AuditActionCreate, model.EntityDynamicPage, page.ID, map[string]any{
		"slug": slug, "title": req.Title, "show_in_menu": req.ShowInMenu,
	})
	h.invalidate(r, cache.SectionPages)
	WriteCreated(w, page)
}

// UpdatePage handles PUT /api/v1/pages/{id}.
func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid page ID", nil)
		return
	}

	var req UpdatePageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	if req.Slug != nil {
		current, curErr := h.queries.GetDynamicPage(r.Context(), id)
		if curErr != nil {
			if errors.Is(curErr, sql.ErrNoRows) {
				WriteNotFound(w, "Not found")
			} else {
				WriteInternalError(w, "Failed to check slug")
			}
			return
		}
		// Slugs of soft-deleted pages stay reserved, so the check must
		// cover all rows, not just active ones.
		if current.Slug != *req.Slug {
			exists, slugErr := h.queries.DynamicPageSlugExists(r.Context(), *req.Slug)
			if slugErr != nil {
				WriteInternalError(w, "Failed to check slug")
				return
			}
			if exists {
				WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
				return
			}
		}
	}

	affected, err := h.queries.UpdateDynamicPage(r.Context(), id, store.UpdateDynamicPageParams{
		Slug:            req.Slug,
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Content:         req.Content,
		ImageURL:        req.ImageURL,
		Position:        req.Position,
		ShowInMenu:      req.ShowInMenu,
		ExpectedVersion: req.ExpectedVersion,
	})
	if !finishUpdate(w, affected, err, "page") {
		return
	}

	page, err := h.queries.GetDynamicPage(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to retrieve page")
		return
	}

	h.audit(r, model.AuditActionUpdate, model.EntityDynamicPage, id, req.changes())
	h.invalidate(r, cache.SectionPages)
	WriteSuccess(w, page, nil)
}

// DeletePage handles DELETE /api/v1/pages/{id}. Deletion is soft and the
// slug stays reserved.
func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid page ID", nil)
		return
	}

	affected, err := h.queries.SoftDeleteDynamicPage(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to delete page")
		return
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return
	}

	h.audit(r, model.AuditActionDelete, model.EntityDynamicPage, id, nil)
	h.invalidate(r, cache.SectionPages)
	w.WriteHeader(http.StatusNoContent)
}
