// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dockly/dockly-go/internal/auth"
	"github.com/dockly/dockly-go/internal/middleware"
	"github.com/dockly/dockly-go/internal/model"
	"github.com/dockly/dockly-go/internal/store"
)

// CallbackSecretHeader carries the shared secret asserted by the external
// OAuth collaborator on /auth/callback.
const CallbackSecretHeader = "X-Auth-Callback-Secret"

// LoginRequest is the request body for email+password login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login request fields.
func (req *LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	}
	if req.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// Login handles POST /api/v1/auth/login. Credentials are checked against the
// stored password hash; the route is wrapped by LoginProtection's IP limiter
// and accounts lock out after repeated failures.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if locked, remaining := h.login.IsAccountLocked(email); locked {
		slog.Warn("login attempt on locked account", "category", "auth", "email", email)
		WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded",
			"Account temporarily locked. Try again in "+remaining.Round(time.Minute).String()+".", nil)
		return
	}

	user, err := h.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			auth.DummyCheck(req.Password)
			h.failLogin(w, email)
			return
		}
		WriteInternalError(w, "Login failed")
		return
	}

	if !user.PasswordHash.Valid {
		// OAuth-only account; no local credential to check.
		auth.DummyCheck(req.Password)
		h.failLogin(w, email)
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash.String)
	if err != nil || !ok {
		h.failLogin(w, email)
		return
	}

	h.login.RecordSuccessfulLogin(email)

	if auth.NeedsRehash(user.PasswordHash.String) {
		if rehashed, rehashErr := auth.HashPassword(req.Password); rehashErr == nil {
			_, _ = h.queries.UpsertUser(ctx, store.UpsertUserParams{
				OpenID:       user.OpenID,
				PasswordHash: &rehashed,
			})
		}
	}

	user, err = h.signIn(w, r, user)
	if err != nil {
		WriteInternalError(w, "Login failed")
		return
	}

	slog.Info("user signed in", "category", "auth", "user_id", user.ID, "method", model.LoginMethodEmail)
	WriteSuccess(w, user, nil)
}

// failLogin records a failed attempt and writes a uniform 401 so the
// response does not reveal whether the account exists.
func (h *Handler) failLogin(w http.ResponseWriter, email string) {
	if locked, duration := h.login.RecordFailedAttempt(email); locked {
		slog.Warn("account locked", "category", "auth", "email", email, "duration", duration)
	}
	WriteUnauthorized(w, "Invalid email or password")
}

// CallbackRequest is the identity asserted by the external OAuth collaborator.
type CallbackRequest struct {
	OpenID string  `json:"open_id"`
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
}

// Validate checks the callback request fields.
func (req *CallbackRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.OpenID) == "" {
		errs["open_id"] = "open_id is required"
	}
	return errs
}

// Callback handles POST /api/v1/auth/callback. The collaborator proves
// itself with a shared secret; the asserted identity is upserted by open_id
// and signed in.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.cfg.AuthCallbackSecret == "" {
		WriteNotFound(w, "Not found")
		return
	}
	presented := r.Header.Get(CallbackSecretHeader)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(h.cfg.AuthCallbackSecret)) != 1 {
		slog.Warn("auth callback with bad secret", "category", "auth", "remote_addr", r.RemoteAddr)
		WriteUnauthorized(w, "Invalid callback secret")
		return
	}

	var req CallbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	method := model.LoginMethodOAuth
	user, err := h.queries.UpsertUser(ctx, store.UpsertUserParams{
		OpenID:      strings.TrimSpace(req.OpenID),
		Name:        req.Name,
		Email:       req.Email,
		LoginMethod: &method,
	})
	if err != nil {
		WriteInternalError(w, "Sign-in failed")
		return
	}

	user, err = h.signIn(w, r, user)
	if err != nil {
		WriteInternalError(w, "Sign-in failed")
		return
	}

	slog.Info("user signed in", "category", "auth", "user_id", user.ID, "method", method)
	WriteSuccess(w, user, nil)
}

// signIn promotes the owner when applicable and establishes the session.
// The session token is renewed to prevent fixation.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request, user model.User) (model.User, error) {
	ctx := r.Context()

	if h.cfg.OwnerOpenID != "" && user.OpenID == h.cfg.OwnerOpenID && !user.IsAdmin() {
		role := model.RoleAdmin
		promoted, err := h.queries.UpsertUser(ctx, store.UpsertUserParams{
			OpenID: user.OpenID,
			Role:   &role,
		})
		if err != nil {
			return user, err
		}
		slog.Info("owner promoted to admin", "category", "auth", "user_id", promoted.ID)
		user = promoted
	}

	if err := h.sm.RenewToken(ctx); err != nil {
		return user, err
	}
	h.sm.Put(ctx, middleware.SessionKeyUserID, user.ID)
	return user, nil
}

// Logout handles POST /api/v1/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sm.Destroy(r.Context()); err != nil {
		WriteInternalError(w, "Logout failed")
		return
	}
	WriteSuccess(w, map[string]bool{"signed_out": true}, nil)
}

// Me handles GET /api/v1/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, user, nil)
}
