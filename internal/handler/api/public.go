// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dockly/dockly-go/internal/cache"
	"github.com/dockly/dockly-go/internal/model"
)

// markdown renders page content for ?render=html responses.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// sanitizer strips anything dangerous from rendered HTML before it leaves
// the server.
var sanitizer = bluemonday.UGCPolicy()

// renderMarkdown converts markdown content to sanitized HTML.
func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// serveCachedList writes a public list response through the content cache.
// Cache failures degrade to a direct store read.
func serveCachedList[T any](h *Handler, w http.ResponseWriter, r *http.Request, key string, fetch func(ctx context.Context) ([]T, error)) {
	ctx := r.Context()

	if h.content != nil {
		var cached []T
		if err := h.content.GetJSON(ctx, key, &cached); err == nil {
			WriteSuccess(w, cached, &Meta{Total: int64(len(cached))})
			return
		} else if !cache.IsMiss(err) {
			slog.Warn("content cache read failed", "category", "cache", "key", key, "error", err)
		}
	}

	items, err := fetch(ctx)
	if err != nil {
		WriteInternalError(w, "Failed to load content")
		return
	}
	if items == nil {
		items = []T{}
	}

	if h.content != nil {
		if err := h.content.SetJSON(ctx, key, items); err != nil {
			slog.Warn("content cache write failed", "category", "cache", "key", key, "error", err)
		}
	}

	WriteSuccess(w, items, &Meta{Total: int64(len(items))})
}

// PublicListWorkAreas handles GET /api/v1/public/work-areas.
func (h *Handler) PublicListWorkAreas(w http.ResponseWriter, r *http.Request) {
	serveCachedList(h, w, r, cache.SectionWorkAreas, h.queries.ListWorkAreas)
}

// PublicListBoardingSteps handles GET /api/v1/public/boarding-steps.
func (h *Handler) PublicListBoardingSteps(w http.ResponseWriter, r *http.Request) {
	serveCachedList(h, w, r, cache.SectionBoardingSteps, h.queries.ListBoardingSteps)
}

// PublicListRequirements handles GET /api/v1/public/requirements.
func (h *Handler) PublicListRequirements(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	key := cache.SubKey(cache.SectionRequirements, category)
	serveCachedList(h, w, r, key, func(ctx context.Context) ([]model.Requirement, error) {
		return h.queries.ListRequirements(ctx, category)
	})
}

// PublicListSalaries handles GET /api/v1/public/salaries.
func (h *Handler) PublicListSalaries(w http.ResponseWriter, r *http.Request) {
	serveCachedList(h, w, r, cache.SectionSalaries, h.queries.ListSalaryEntries)
}

// PublicListFraudSignals handles GET /api/v1/public/fraud-signals.
func (h *Handler) PublicListFraudSignals(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	key := cache.SubKey(cache.SectionFraudSignals, category)
	serveCachedList(h, w, r, key, func(ctx context.Context) ([]model.FraudSignal, error) {
		return h.queries.ListFraudSignals(ctx, category)
	})
}

// PublicListMyths handles GET /api/v1/public/myths.
func (h *Handler) PublicListMyths(w http.ResponseWriter, r *http.Request) {
	serveCachedList(h, w, r, cache.SectionMyths, h.queries.ListMyths)
}

// PublicListDisclaimers handles GET /api/v1/public/disclaimers.
func (h *Handler) PublicListDisclaimers(w http.ResponseWriter, r *http.Request) {
	serveCachedList(h, w, r, cache.SectionDisclaimers, h.queries.ListDisclaimers)
}

// PublicGetDisclaimer handles GET /api/v1/public/disclaimers/{key}.
func (h *Handler) PublicGetDisclaimer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	disclaimer, err := h.queries.GetDisclaimerByKey(r.Context(), key)
	if err != nil || !disclaimer.IsActive {
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			WriteInternalError(w, "Failed to retrieve disclaimer")
			return
		}
		// Soft-deleted disclaimers are invisible on the public surface.
		WriteNotFound(w, "Not found")
		return
	}
	WriteSuccess(w, disclaimer, nil)
}

// PublicListPages handles GET /api/v1/public/pages. With ?menu=true only
// pages flagged for the navigation menu are returned.
func (h *Handler) PublicListPages(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("menu") == "true" {
		key := cache.SubKey(cache.SectionPages, "menu")
		serveCachedList(h, w, r, key, h.queries.ListMenuPages)
		return
	}
	serveCachedList(h, w, r, cache.SectionPages, h.queries.ListDynamicPages)
}

// pageWithHTML augments a page payload with its rendered content.
type pageWithHTML struct {
	model.DynamicPage
	ContentHTML string `json:"content_html"`
}

// PublicGetPageBySlug handles GET /api/v1/public/pages/{slug}. With
// ?render=html the markdown content is returned rendered and sanitized
// alongside the raw source.
func (h *Handler) PublicGetPageBySlug(w http.ResponseWriter, r *http.Request) {
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

	if r.URL.Query().Get("render") == "html" {
		rendered, renderErr := renderMarkdown(page.Content)
		if renderErr != nil {
			WriteInternalError(w, "Failed to render page")
			return
		}
		WriteSuccess(w, pageWithHTML{DynamicPage: page, ContentHTML: rendered}, nil)
		return
	}

	WriteSuccess(w, page, nil)
}

// PublicGetAboutPage handles GET /api/v1/public/about.
func (h *Handler) PublicGetAboutPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.content != nil {
		var cached model.AboutPage
		if err := h.content.GetJSON(ctx, cache.SectionAbout, &cached); err == nil {
			WriteSuccess(w, cached, nil)
			return
		}
	}

	about, err := h.queries.GetAboutPage(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Not found")
		} else {
			WriteInternalError(w, "Failed to retrieve about page")
		}
		return
	}

	if h.content != nil {
		_ = h.content.SetJSON(ctx, cache.SectionAbout, about)
	}
	WriteSuccess(w, about, nil)
}
