// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Vida a bordo", "vida-a-bordo"},
		{"Áreas de Trabajo", "areas-de-trabajo"},
		{"Señales de estafa", "senales-de-estafa"},
		{"  Contratos  y  visas  ", "contratos-y-visas"},
		{"¿Cuánto se gana?", "cuanto-se-gana"},
		{"100% real", "100-real"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"vida-a-bordo", "salarios", "faq-2026", "a"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "-empieza", "termina-", "doble--guion", "Mayúsculas", "con espacio", "acentós"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}

func TestSlugifyProducesValidSlug(t *testing.T) {
	inputs := []string{"Vida a bordo", "Señales", "¡Hola, mundo!", "Tarifas 2026"}
	for _, in := range inputs {
		slug := Slugify(in)
		if slug == "" {
			t.Errorf("Slugify(%q) produced empty slug", in)
			continue
		}
		if !IsValidSlug(slug) {
			t.Errorf("Slugify(%q) = %q, which fails IsValidSlug", in, slug)
		}
	}
}
