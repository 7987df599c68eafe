// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/dockly/dockly-go/internal/model"
	"github.com/dockly/dockly-go/internal/store"
)

// CreateAPIKeyRequest is the request body for issuing an API key.
type CreateAPIKeyRequest struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	ExpiresAt *string `json:"expires_at,omitempty"` // RFC3339
}

// Validate checks required fields, the role enum, and the expiry format.
func (req *CreateAPIKeyRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if req.Role == "" {
		req.Role = model.RoleUser
	}
	if !model.IsValidRole(req.Role) {
		errs["role"] = "Role must be 'user' or 'admin'"
	}
	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			errs["expires_at"] = "Invalid date format. Use RFC3339 (e.g., 2027-01-01T00:00:00Z)"
		} else if t.Before(time.Now()) {
			errs["expires_at"] = "Expiry must be in the future"
		}
	}
	return errs
}

// CreateAPIKeyResponse carries the one-time raw key alongside the stored
// record. The raw key is never shown again.
type CreateAPIKeyResponse struct {
	Key    string       `json:"key"`
	APIKey model.APIKey `json:"api_key"`
}

// ListAPIKeys handles GET /api/v1/api-keys.
func (h *Handler) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.queries.ListAPIKeys(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list API keys")
		return
	}
	WriteSuccess(w, keys, &Meta{Total: int64(len(keys))})
}

// CreateAPIKey handles POST /api/v1/api-keys. Only the SHA-256 hash of the
// generated secret is stored.
func (h *Handler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req CreateAPIKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	rawKey, prefix := model.GenerateAPIKey()

	params := store.CreateAPIKeyParams{
		Name:      req.Name,
		KeyHash:   model.HashAPIKey(rawKey),
		KeyPrefix: prefix,
		Role:      req.Role,
		CreatedBy: actorID(r),
	}
	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		t, _ := time.Parse(time.RFC3339, *req.ExpiresAt)
		params.ExpiresAt = &t
	}

	key, err := h.queries.CreateAPIKey(r.Context(), params)
	if err != nil {
		WriteInternalError(w, "Failed to create API key")
		return
	}

	WriteCreated(w, CreateAPIKeyResponse{Key: rawKey, APIKey: key})
}

// RevokeAPIKey handles DELETE /api/v1/api-keys/{id}. Revocation is
// permanent; issue a new key instead of reactivating.
func (h *Handler) RevokeAPIKey(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid API key ID", nil)
		return
	}

	affected, err := h.queries.RevokeAPIKey(r.Context(), id)
	if err != nil {
		WriteInternalError(w, "Failed to revoke API key")
		return
	}
	if affected == 0 {
		WriteNotFound(w, "Not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
