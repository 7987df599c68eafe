// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"time"
)

// Audit actions
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// Audit entity types, one per content kind.
const (
	EntityWorkArea     = "work_area"
	EntityBoardingStep = "boarding_step"
	EntityRequirement  = "requirement"
	EntitySalaryEntry  = "salary_entry"
	EntityFraudSignal  = "fraud_signal"
	EntityMyth         = "myth"
	EntityDisclaimer   = "legal_disclaimer"
	EntityDynamicPage  = "dynamic_page"
	EntityAboutPage    = "about_page"
)

// AuditEntry is an append-only record of one admin mutation. Entries are
// never updated or deleted once written.
type AuditEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   int64     `json:"entity_id"`
	Changes    string    `json:"changes,omitempty"` // JSON blob of submitted fields
	CreatedAt  time.Time `json:"created_at"`
}

// EncodeChanges marshals the submitted fields of a mutation into the JSON
// blob stored in the audit log. Encoding failures degrade to an empty blob;
// the audit row itself is still written.
func EncodeChanges(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(data)
}
