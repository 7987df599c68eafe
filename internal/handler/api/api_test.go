// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/dockly/dockly-go/internal/auth"
	"github.com/dockly/dockly-go/internal/cache"
	"github.com/dockly/dockly-go/internal/config"
	"github.com/dockly/dockly-go/internal/middleware"
	"github.com/dockly/dockly-go/internal/model"
	"github.com/dockly/dockly-go/internal/session"
	"github.com/dockly/dockly-go/internal/store"
	"github.com/dockly/dockly-go/internal/testutil"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "una-contraseña-segura-123!"
)

// APISuite exercises the API handlers through the same middleware stack the
// server mounts, CSRF excepted.
type APISuite struct {
	suite.Suite

	db      *sql.DB
	cleanup func()
	queries *store.Queries
	handler *Handler
	server  http.Handler

	adminCookie string
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.db, s.cleanup = testutil.TestDB(s.T())
	s.queries = store.New(s.db)

	cfg := &config.Config{
		SessionSecret:      "test-secret-test-secret-test-secret!",
		Env:                "development",
		AuthCallbackSecret: "callback-secret",
	}

	sm := session.New(s.db, true)
	content := cache.NewContentCache(
		cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute}),
		time.Minute,
	)
	s.handler = NewHandler(s.db, cfg, sm, content)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handler.Status)

		r.Route("/public", func(r chi.Router) {
			r.Get("/work-areas", s.handler.PublicListWorkAreas)
			r.Get("/disclaimers/{key}", s.handler.PublicGetDisclaimer)
			r.Get("/pages/{slug}", s.handler.PublicGetPageBySlug)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.LoadUser(sm, s.db))
			r.Post("/login", s.handler.Login)
			r.Post("/callback", s.handler.Callback)
			r.Post("/logout", s.handler.Logout)
			r.Get("/me", s.handler.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.LoadUser(sm, s.db))
			r.Use(middleware.OptionalAPIKeyAuth(s.db))
			r.Use(middleware.RequireAuth())

			admin := middleware.RequireAdmin()

			r.Get("/work-areas", s.handler.ListWorkAreas)
			r.Get("/work-areas/{id}", s.handler.GetWorkArea)
			r.With(admin).Post("/work-areas", s.handler.CreateWorkArea)
			r.With(admin).Put("/work-areas/{id}", s.handler.UpdateWorkArea)
			r.With(admin).Delete("/work-areas/{id}", s.handler.DeleteWorkArea)

			r.With(admin).Post("/disclaimers", s.handler.CreateDisclaimer)
			r.With(admin).Delete("/disclaimers/{key}", s.handler.DeleteDisclaimer)

			r.With(admin).Post("/pages", s.handler.CreatePage)
			r.With(admin).Put("/pages/{id}", s.handler.UpdatePage)
			r.With(admin).Delete("/pages/{id}", s.handler.DeletePage)

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/seed", s.handler.Seed)
				r.Post("/api-keys", s.handler.CreateAPIKey)
			})
		})
	})
	s.server = r

	s.createUser(adminEmail, adminPassword, model.RoleAdmin)
	s.adminCookie = s.login(adminEmail, adminPassword)
}

func (s *APISuite) TearDownTest() {
	s.cleanup()
}

func (s *APISuite) createUser(email, password, role string) {
	hash, err := auth.HashPassword(password)
	s.Require().NoError(err)

	_, err = s.queries.UpsertUser(context.Background(), store.UpsertUserParams{
		OpenID:       "local|" + email,
		Email:        &email,
		Role:         &role,
		PasswordHash: &hash,
	})
	s.Require().NoError(err)
}

// login signs in and returns the session cookie for later requests.
func (s *APISuite) login(email, password string) string {
	rec := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": email, "password": password,
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	cookies := rec.Result().Cookies()
	s.Require().NotEmpty(cookies, "login should set a session cookie")
	return cookies[0].Name + "=" + cookies[0].Value
}

// do performs a JSON request, optionally with a session cookie.
func (s *APISuite) do(method, path string, body any, cookie string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)
	return rec
}

// doBearer performs a JSON request authenticated by API key.
func (s *APISuite) doBearer(method, path string, body any, rawKey string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+rawKey)

	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the envelope's data field into dst.
func (s *APISuite) decodeData(rec *httptest.ResponseRecorder, dst any) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, dst))
}

// errorCode extracts the error code from an error envelope.
func (s *APISuite) errorCode(rec *httptest.ResponseRecorder) string {
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func (s *APISuite) TestStatus() {
	rec := s.do(http.MethodGet, "/api/v1/status", nil, "")
	s.Equal(http.StatusOK, rec.Code)

	var status StatusResponse
	s.decodeData(rec, &status)
	s.Equal("ok", status.Status)
}

func (s *APISuite) TestAdminRoutesRequireAuth() {
	rec := s.do(http.MethodGet, "/api/v1/work-areas", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("unauthorized", s.errorCode(rec))
}

func (s *APISuite) TestSeedRequiresAdminRole() {
	s.createUser("usuario@example.com", adminPassword, model.RoleUser)
	cookie := s.login("usuario@example.com", adminPassword)

	rec := s.do(http.MethodPost, "/api/v1/seed", nil, cookie)
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("forbidden", s.errorCode(rec))

	// Non-admin sessions still reach the regular admin surface.
	rec = s.do(http.MethodGet, "/api/v1/work-areas", nil, cookie)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APISuite) TestContentMutationsRequireAdminRole() {
	s.createUser("usuario@example.com", adminPassword, model.RoleUser)
	cookie := s.login("usuario@example.com", adminPassword)

	body := map[string]any{
		"name":        "Intruso",
		"description": "No debería entrar",
		"entry_level": "entry-level",
	}

	rec := s.do(http.MethodPost, "/api/v1/work-areas", body, cookie)
	s.Equal(http.StatusForbidden, rec.Code, rec.Body.String())
	s.Equal("forbidden", s.errorCode(rec))

	rec = s.do(http.MethodPut, "/api/v1/work-areas/1", map[string]any{"name": "Intruso"}, cookie)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/work-areas/1", nil, cookie)
	s.Equal(http.StatusForbidden, rec.Code)

	// Reads stay open to any authenticated caller.
	rec = s.do(http.MethodGet, "/api/v1/work-areas", nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	var areas []model.WorkArea
	s.decodeData(rec, &areas)
	s.Empty(areas, "forbidden create must not have written a row")

	// A user-role API key is bound by the same rule.
	rec = s.do(http.MethodPost, "/api/v1/api-keys", map[string]any{
		"name": "solo-lectura",
		"role": "user",
	}, s.adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var key CreateAPIKeyResponse
	s.decodeData(rec, &key)

	rec = s.doBearer(http.MethodPost, "/api/v1/work-areas", body, key.Key)
	s.Equal(http.StatusForbidden, rec.Code)
	rec = s.doBearer(http.MethodGet, "/api/v1/work-areas", nil, key.Key)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APISuite) TestLoginWrongPasswordIsUniform() {
	rec := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": adminEmail, "password": "incorrecta",
	}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	// Unknown accounts get the same answer as bad passwords.
	rec2 := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "nadie@example.com", "password": "incorrecta",
	}, "")
	s.Equal(http.StatusUnauthorized, rec2.Code)
	s.JSONEq(rec.Body.String(), rec2.Body.String())
}

func (s *APISuite) TestMe() {
	rec := s.do(http.MethodGet, "/api/v1/auth/me", nil, s.adminCookie)
	s.Equal(http.StatusOK, rec.Code)

	var user model.User
	s.decodeData(rec, &user)
	s.Equal(adminEmail, user.Email.String)

	rec = s.do(http.MethodGet, "/api/v1/auth/me", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APISuite) TestCreateWorkAreaValidation() {
	rec := s.do(http.MethodPost, "/api/v1/work-areas", map[string]any{
		"description": "sin nombre",
		"entry_level": "no-es-un-nivel",
	}, s.adminCookie)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("validation_error", s.errorCode(rec))

	var envelope struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Contains(envelope.Error.Details, "name")
	s.Contains(envelope.Error.Details, "entry_level")
}

func (s *APISuite) TestWorkAreaCRUDFlow() {
	rec := s.do(http.MethodPost, "/api/v1/work-areas", map[string]any{
		"name":        "Cocina",
		"description": "Preparación de alimentos",
		"functions":   []string{"Cocinar"},
		"entry_level": "entry-level",
		"position":    1,
	}, s.adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created model.WorkArea
	s.decodeData(rec, &created)
	s.NotZero(created.ID)
	s.Equal(int64(1), created.Version)

	// Partial update touches only the supplied field.
	rec = s.do(http.MethodPut, "/api/v1/work-areas/"+itoa(created.ID), map[string]any{
		"name": "Cocina y Panadería",
	}, s.adminCookie)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var updated model.WorkArea
	s.decodeData(rec, &updated)
	s.Equal("Cocina y Panadería", updated.Name)
	s.Equal("Preparación de alimentos", updated.Description)
	s.Equal(int64(2), updated.Version)

	// A stale expected_version is rejected.
	rec = s.do(http.MethodPut, "/api/v1/work-areas/"+itoa(created.ID), map[string]any{
		"name":             "Perdedor",
		"expected_version": 1,
	}, s.adminCookie)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("conflict", s.errorCode(rec))

	// Soft delete hides the row from lists but keeps it fetchable.
	rec = s.do(http.MethodDelete, "/api/v1/work-areas/"+itoa(created.ID), nil, s.adminCookie)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/work-areas/"+itoa(created.ID), nil, s.adminCookie)
	s.Require().Equal(http.StatusOK, rec.Code)
	var deleted model.WorkArea
	s.decodeData(rec, &deleted)
	s.False(deleted.IsActive)

	rec = s.do(http.MethodGet, "/api/v1/public/work-areas", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var publicList []model.WorkArea
	s.decodeData(rec, &publicList)
	s.Empty(publicList)
}

func (s *APISuite) TestUpdateMissingWorkAreaIsNotFound() {
	rec := s.do(http.MethodPut, "/api/v1/work-areas/9999", map[string]any{
		"name": "Nadie",
	}, s.adminCookie)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", s.errorCode(rec))
}

func (s *APISuite) TestPageSlugDerivation() {
	rec := s.do(http.MethodPost, "/api/v1/pages", map[string]any{
		"title":   "Vida a bordo",
		"content": "## Camarotes",
	}, s.adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var page model.DynamicPage
	s.decodeData(rec, &page)
	s.Equal("vida-a-bordo", page.Slug)

	// The slug stays reserved; a second page deriving the same slug fails
	// validation.
	rec = s.do(http.MethodPost, "/api/v1/pages", map[string]any{
		"title":   "Vida a bordo",
		"content": "otro contenido",
	}, s.adminCookie)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("validation_error", s.errorCode(rec))
}

func (s *APISuite) TestUpdatePageSlugReservedBySoftDeletedPage() {
	rec := s.do(http.MethodPost, "/api/v1/pages", map[string]any{
		"title":   "Contratos",
		"content": "contenido",
	}, s.adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var reserved model.DynamicPage
	s.decodeData(rec, &reserved)

	rec = s.do(http.MethodDelete, "/api/v1/pages/"+itoa(reserved.ID), nil, s.adminCookie)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/pages", map[string]any{
		"title":   "Itinerarios",
		"content": "contenido",
	}, s.adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var page model.DynamicPage
	s.decodeData(rec, &page)

	// The soft-deleted page still owns its slug.
	rec = s.do(http.MethodPut, "/api/v1/pages/"+itoa(page.ID), map[string]any{
		"slug": "contratos",
	}, s.adminCookie)
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	s.Equal("validation_error", s.errorCode(rec))

	// Re-submitting the page's own slug is not a collision.
	rec = s.do(http.MethodPut, "/api/v1/pages/"+itoa(page.ID), map[string]any{
		"slug":  "itinerarios",
		"title": "Itinerarios y rutas",
	}, s.adminCookie)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *APISuite) TestPublicPageRenderHTML() {
	rec := s.do(http.MethodPost, "/api/v1/pages", map[string]any{
		"title":   "Contratos",
		"content": "## Duración\n\nEntre 4 y 9 meses.",
	}, s.adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/public/pages/contratos?render=html", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var rendered struct {
		Content     string `json:"content"`
		ContentHTML string `json:"content_html"`
	}
	s.decodeData(rec, &rendered)
	s.Contains(rendered.ContentHTML, "<h2")
	s.Contains(rendered.ContentHTML, "Duración")
	s.Equal("## Duración\n\nEntre 4 y 9 meses.", rendered.Content)
}

func (s *APISuite) TestPublicDisclaimerHiddenAfterDelete() {
	rec := s.do(http.MethodPost, "/api/v1/disclaimers", map[string]any{
		"key":     "salarios",
		"title":   "Sobre los salarios",
		"content": "Montos estimados.",
	}, s.adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/public/disclaimers/salarios", nil, "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/disclaimers/salarios", nil, s.adminCookie)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/public/disclaimers/salarios", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APISuite) TestCallbackRequiresSecret() {
	rec := s.do(http.MethodPost, "/api/v1/auth/callback", map[string]any{
		"open_id": "oauth|nuevo",
	}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback",
		bytes.NewBufferString(`{"open_id":"oauth|nuevo","name":"Nueva"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CallbackSecretHeader, "callback-secret")
	rec2 := httptest.NewRecorder()
	s.server.ServeHTTP(rec2, req)
	s.Require().Equal(http.StatusOK, rec2.Code, rec2.Body.String())

	var user model.User
	s.decodeData(rec2, &user)
	s.Equal("oauth|nuevo", user.OpenID)
}

func (s *APISuite) TestAPIKeyFlow() {
	rec := s.do(http.MethodPost, "/api/v1/api-keys", map[string]any{
		"name": "integración",
		"role": "admin",
	}, s.adminCookie)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created CreateAPIKeyResponse
	s.decodeData(rec, &created)
	s.NotEmpty(created.Key)
	s.Equal(created.Key[:8], created.APIKey.KeyPrefix)

	// The raw key authenticates without a session.
	rec = s.doBearer(http.MethodPost, "/api/v1/work-areas", map[string]any{
		"name":        "Recepción",
		"description": "Atención al huésped",
		"entry_level": "entry-level",
	}, created.Key)
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())

	// A bogus key does not.
	rec = s.doBearer(http.MethodGet, "/api/v1/work-areas", nil, "clave-falsa")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
