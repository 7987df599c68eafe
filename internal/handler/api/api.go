// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON API handlers for the Dockly content backend.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/dockly/dockly-go/internal/cache"
	"github.com/dockly/dockly-go/internal/config"
	"github.com/dockly/dockly-go/internal/middleware"
	"github.com/dockly/dockly-go/internal/model"
	"github.com/dockly/dockly-go/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db      *sql.DB
	queries *store.Queries
	cfg     *config.Config
	sm      *scs.SessionManager
	content *cache.ContentCache
	login   *middleware.LoginProtection
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, cfg *config.Config, sm *scs.SessionManager, content *cache.ContentCache) *Handler {
	return &Handler{
		db:      db,
		queries: store.New(db),
		cfg:     cfg,
		sm:      sm,
		content: content,
		login:   middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig()),
	}
}

// LoginProtection exposes the login limiter for route wiring.
func (h *Handler) LoginProtection() *middleware.LoginProtection {
	return h.login
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains list metadata.
type Meta struct {
	Total int64 `json:"total,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

// WriteForbidden writes a 403 Forbidden response.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, "forbidden", message, nil)
}

// WriteConflict writes a 409 Conflict response.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, "conflict", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// decodeJSON decodes the request body into dst. On failure it writes a
// 400 response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return false
	}
	return true
}

// parseIDParam extracts the {id} URL parameter as int64.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// EntityFetcher is a function that fetches an entity by ID.
type EntityFetcher[T any] func(id int64) (T, error)

// requireEntityByID parses an ID from the URL and fetches the entity.
// Returns the entity and true on success; on failure the response has
// already been written.
func requireEntityByID[T any](w http.ResponseWriter, r *http.Request, entityName string, fetch EntityFetcher[T]) (T, bool) {
	var zero T

	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid "+entityName+" ID", nil)
		return zero, false
	}

	entity, err := fetch(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Not found")
		} else {
			WriteInternalError(w, "Failed to retrieve "+entityName)
		}
		return zero, false
	}

	return entity, true
}

// finishUpdate maps the result of a versioned store update to a response.
// Returns true when the caller should proceed to write the updated entity.
func finishUpdate(w http.ResponseWriter, affected int64, err error, entityName string) bool {
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			WriteConflict(w, "The "+entityName+" was modified by someone else. Reload and retry.")
			return false
		}
		WriteInternalError(w, "Failed to update "+entityName)
		return false
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return false
	}
	return true
}

// actorID resolves the acting user for audit purposes. API-key callers are
// attributed to the key's creator.
func actorID(r *http.Request) int64 {
	if user := middleware.GetUser(r); user != nil {
		return user.ID
	}
	if key := middleware.GetAPIKey(r); key != nil {
		return key.CreatedBy
	}
	return 0
}

// audit appends an audit_log row for an admin mutation. Audit failures are
// logged but never fail the mutation itself.
func (h *Handler) audit(r *http.Request, action, entityType string, entityID int64, fields map[string]any) {
	err := h.queries.CreateAuditEntry(r.Context(), store.CreateAuditEntryParams{
		UserID:     actorID(r),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    model.EncodeChanges(fields),
	})
	if err != nil {
		slog.Error("failed to write audit entry",
			"category", "content",
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err,
		)
	}
}

// invalidate evicts a public content section after a mutation.
func (h *Handler) invalidate(r *http.Request, section string) {
	if h.content == nil {
		return
	}
	if err := h.content.InvalidateSection(r.Context(), section); err != nil {
		slog.Warn("cache invalidation failed", "category", "cache", "section", section, "error", err)
	}
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:  "ok",
		Version: "v1",
	}, nil)
}
