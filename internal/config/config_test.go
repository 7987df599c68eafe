// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"strings"
	"testing"
)

const testSecret = "Abc123!xyz-valid-session-secret-0042"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DOCKLY_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/dockly.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if cfg.UseRedisCache() {
		t.Error("Redis should be off by default")
	}
	if cfg.DoSeed {
		t.Error("seeding should be off by default")
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("DOCKLY_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("missing session secret should fail")
	}
}

func TestLoadShortSecret(t *testing.T) {
	t.Setenv("DOCKLY_SESSION_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("short session secret should fail")
	}
	if !strings.Contains(err.Error(), "32") {
		t.Errorf("error should mention the length requirement: %v", err)
	}
}

func TestLoadRejectsKnownWeakSecret(t *testing.T) {
	t.Setenv("DOCKLY_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Error("known default secret should be rejected")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DOCKLY_SESSION_SECRET", testSecret)
	t.Setenv("DOCKLY_ENV", "production")
	t.Setenv("DOCKLY_SERVER_PORT", "9090")
	t.Setenv("DOCKLY_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DOCKLY_DO_SEED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want 9090", cfg.ServerPort)
	}
	if !cfg.UseRedisCache() {
		t.Error("Redis URL set but UseRedisCache is false")
	}
	if !cfg.DoSeed {
		t.Error("DoSeed should be true")
	}
}
