// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Context key for the resolved language code.
const ContextKeyLanguageCode ContextKey = "language_code"

// LanguageCookieName is the cookie name for language preference.
const LanguageCookieName = "dockly_lang"

// DefaultLanguage is the primary content language. The public site is
// Spanish-first with English as the secondary language.
const DefaultLanguage = "es"

// supported lists the languages the site serves, default first.
var supported = []language.Tag{
	language.Spanish,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Language creates middleware that resolves the request language.
// Priority order:
// 1. Query parameter ?lang=XX (explicit language switch, updates cookie)
// 2. Cookie preference
// 3. Accept-Language header
// 4. Default language (Spanish)
// The resolved code is stored in context and echoed in Content-Language.
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := resolveLanguage(w, r)
			w.Header().Set("Content-Language", code)
			ctx := context.WithValue(r.Context(), ContextKeyLanguageCode, code)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLanguage(w http.ResponseWriter, r *http.Request) string {
	// 1. Explicit switch via query parameter
	if queryLang := r.URL.Query().Get("lang"); queryLang != "" {
		if code, ok := matchCode(queryLang); ok {
			SetLanguageCookie(w, code)
			return code
		}
	}

	// 2. Cookie preference
	if cookie, err := r.Cookie(LanguageCookieName); err == nil {
		if code, ok := matchCode(cookie.Value); ok {
			return code
		}
	}

	// 3. Accept-Language header
	if acceptLang := r.Header.Get("Accept-Language"); acceptLang != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLang); err == nil {
			_, idx, conf := matcher.Match(tags...)
			if conf > language.No {
				base, _ := supported[idx].Base()
				return base.String()
			}
		}
	}

	// 4. Default
	return DefaultLanguage
}

// matchCode matches a raw code like "es", "en-US" against the supported set.
func matchCode(raw string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	base, _ := supported[idx].Base()
	return base.String(), true
}

// GetLanguage retrieves the resolved language code from the request context.
// Returns the default language if none was resolved.
func GetLanguage(r *http.Request) string {
	code, ok := r.Context().Value(ContextKeyLanguageCode).(string)
	if !ok || code == "" {
		return DefaultLanguage
	}
	return code
}

// SetLanguageCookie sets the language preference cookie.
func SetLanguageCookie(w http.ResponseWriter, langCode string) {
	cookie := &http.Cookie{
		Name:     LanguageCookieName,
		Value:    langCode,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
