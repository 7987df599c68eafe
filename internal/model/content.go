// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Work area entry levels
const (
	EntryLevelEntry       = "entry-level"
	EntryLevelExperienced = "experienced"
)

// Fraud signal categories
const (
	FraudCategoryRedFlag         = "red_flag"
	FraudCategoryIllegalCharge   = "illegal_charge"
	FraudCategoryVerificationTip = "verification_tip"
)

// Myth verdicts. Earlier content variants also used lowercase and
// three-value verdicts; stored values are migrated to this two-value set.
const (
	VerdictTrue  = "Verdadero"
	VerdictFalse = "Falso"
)

// IsValidEntryLevel reports whether s is a recognized entry level.
func IsValidEntryLevel(s string) bool {
	return s == EntryLevelEntry || s == EntryLevelExperienced
}

// IsValidFraudCategory reports whether s is a recognized fraud signal category.
func IsValidFraudCategory(s string) bool {
	switch s {
	case FraudCategoryRedFlag, FraudCategoryIllegalCharge, FraudCategoryVerificationTip:
		return true
	}
	return false
}

// IsValidVerdict reports whether s is a recognized myth verdict.
func IsValidVerdict(s string) bool {
	return s == VerdictTrue || s == VerdictFalse
}

// WorkArea describes one shipboard department.
type WorkArea struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Functions    StringList `json:"functions"`
	Requirements StringList `json:"requirements"`
	EntryLevel   string     `json:"entry_level"`
	Position     int64      `json:"position"`
	IsActive     bool       `json:"is_active"`
	Version      int64      `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BoardingStep is one step of the boarding-process timeline.
type BoardingStep struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ApproximateTime  string     `json:"approximate_time"`
	CommonErrors     StringList `json:"common_errors"`
	CandidateActions StringList `json:"candidate_actions"`
	ShipperRequests  StringList `json:"shipper_requests"`
	Position         int64      `json:"position"`
	IsActive         bool       `json:"is_active"`
	Version          int64      `json:"version"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Requirement is a prerequisite grouped into a free-text category such as
// "general" or a department name.
type Requirement struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int64     `json:"position"`
	IsActive    bool      `json:"is_active"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SalaryEntry is an estimated monthly USD salary range for one position.
type SalaryEntry struct {
	ID         int64          `json:"id"`
	Department string         `json:"department"`
	Position   string         `json:"position_title"`
	MinSalary  int64          `json:"min_salary"`
	MaxSalary  int64          `json:"max_salary"`
	Tips       sql.NullString `json:"tips,omitempty"`
	Notes      sql.NullString `json:"notes,omitempty"`
	SortOrder  int64          `json:"position"`
	IsActive   bool           `json:"is_active"`
	Version    int64          `json:"version"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// FraudSignal is one recruitment-fraud warning.
type FraudSignal struct {
	ID        int64     `json:"id"`
	Signal    string    `json:"signal"`
	Category  string    `json:"category"`
	Position  int64     `json:"position"`
	IsActive  bool      `json:"is_active"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Myth is one myth-busting article.
type Myth struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	Verdict             string     `json:"verdict"`
	ShortDescription    string     `json:"short_description"`
	DetailedExplanation string     `json:"detailed_explanation"`
	Details             StringList `json:"details"`
	Position            int64      `json:"position"`
	IsActive            bool       `json:"is_active"`
	Version             int64      `json:"version"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// LegalDisclaimer is addressed by its unique string key rather than a
// surrogate id, e.g. "salarios" or "estafas".
type LegalDisclaimer struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DynamicPage is an admin-managed public page routed by slug.
type DynamicPage struct {
	ID         int64          `json:"id"`
	Slug       string         `json:"slug"`
	Title      string         `json:"title"`
	Subtitle   sql.NullString `json:"subtitle,omitempty"`
	Content    string         `json:"content"`
	ImageURL   sql.NullString `json:"image_url,omitempty"`
	Position   int64          `json:"position"`
	ShowInMenu bool           `json:"show_in_menu"`
	IsActive   bool           `json:"is_active"`
	Version    int64          `json:"version"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// AboutPageID is the fixed id of the about_page singleton row, enforced by
// a CHECK constraint in the schema.
const AboutPageID = 1

// AboutPage is the singleton record backing the "Sobre Dockly" page.
type AboutPage struct {
	ID                int64      `json:"id"`
	WhatIsDockly      string     `json:"what_is_dockly"`
	WhatDocklyDoes    StringList `json:"what_dockly_does"`
	WhatDocklyDoesNot StringList `json:"what_dockly_does_not"`
	EthicalCommitment string     `json:"ethical_commitment"`
	Version           int64      `json:"version"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
