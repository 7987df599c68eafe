// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"testing"
	"time"
)

func TestAccountLockoutAfterMaxFailures(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	email := "objetivo@example.com"

	if locked, _ := lp.IsAccountLocked(email); locked {
		t.Fatal("account should start unlocked")
	}

	lp.RecordFailedAttempt(email)
	lp.RecordFailedAttempt(email)
	if locked, _ := lp.IsAccountLocked(email); locked {
		t.Fatal("account should not lock before the threshold")
	}

	locked, duration := lp.RecordFailedAttempt(email)
	if !locked {
		t.Fatal("third failure should lock the account")
	}
	if duration != time.Minute {
		t.Errorf("lock duration = %v, want 1m", duration)
	}

	if locked, remaining := lp.IsAccountLocked(email); !locked || remaining <= 0 {
		t.Errorf("locked = %v remaining = %v", locked, remaining)
	}
}

func TestSuccessfulLoginClearsAttempts(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	email := "persona@example.com"
	lp.RecordFailedAttempt(email)
	lp.RecordFailedAttempt(email)

	if got := lp.GetRemainingAttempts(email); got != 1 {
		t.Errorf("remaining = %d, want 1", got)
	}

	lp.RecordSuccessfulLogin(email)

	if got := lp.GetRemainingAttempts(email); got != 3 {
		t.Errorf("remaining after success = %d, want 3", got)
	}
}

func TestLockoutBackoffDoubles(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 1,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Hour,
	})

	email := "repetido@example.com"

	// First lockout needs an existing attempt record, so two failures.
	lp.RecordFailedAttempt(email)
	locked, first := lp.RecordFailedAttempt(email)
	if !locked {
		t.Fatal("expected first lockout")
	}

	locked, second := lp.RecordFailedAttempt(email)
	if !locked {
		t.Fatal("expected second lockout")
	}
	if second != 2*first {
		t.Errorf("second lockout = %v, want double %v", second, first)
	}
}

func TestIPRateLimitBurst(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit: 0.001, // effectively no refill during the test
		IPBurst:     3,
	})

	ip := "203.0.113.7"
	for i := 0; i < 3; i++ {
		if !lp.CheckIPRateLimit(ip) {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if lp.CheckIPRateLimit(ip) {
		t.Error("request beyond burst should be limited")
	}

	// A different IP has its own limiter.
	if !lp.CheckIPRateLimit("203.0.113.8") {
		t.Error("other IP should not be affected")
	}
}
