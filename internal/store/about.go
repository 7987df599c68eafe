// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/dockly/dockly-go/internal/model"
)

const aboutColumns = `id, what_is_dockly, what_dockly_does, what_dockly_does_not, ethical_commitment, version, updated_at`

func scanAboutPage(row interface{ Scan(...any) error }) (model.AboutPage, error) {
	var a model.AboutPage
	err := row.Scan(
		&a.ID, &a.WhatIsDockly, &a.WhatDocklyDoes, &a.WhatDocklyDoesNot,
		&a.EthicalCommitment, &a.Version, &a.UpdatedAt,
	)
	return a, err
}

// GetAboutPage returns the singleton about page row.
func (q *Queries) GetAboutPage(ctx context.Context) (model.AboutPage, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+aboutColumns+` FROM about_page WHERE id = ?`, model.AboutPageID)
	return scanAboutPage(row)
}

// UpsertAboutPageParams holds a partial update of the about page; nil fields
// are untouched. On first write the missing fields fall back to the schema
// defaults.
type UpsertAboutPageParams struct {
	WhatIsDockly      *string
	WhatDocklyDoes    *model.StringList
	WhatDocklyDoesNot *model.StringList
	EthicalCommitment *string
	ExpectedVersion   *int64
}

// UpsertAboutPage creates or updates the singleton row and returns it. The
// id = 1 CHECK in the schema keeps a second row from ever existing.
func (q *Queries) UpsertAboutPage(ctx context.Context, p UpsertAboutPageParams) (model.AboutPage, error) {
	_, err := q.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO about_page (id, updated_at) VALUES (?, ?)`,
		model.AboutPageID, time.Now())
	if err != nil {
		return model.AboutPage{}, err
	}

	sets := &setClause{}
	if p.WhatIsDockly != nil {
		sets.add("what_is_dockly", *p.WhatIsDockly)
	}
	if p.WhatDocklyDoes != nil {
		sets.add("what_dockly_does", *p.WhatDocklyDoes)
	}
	if p.WhatDocklyDoesNot != nil {
		sets.add("what_dockly_does_not", *p.WhatDocklyDoesNot)
	}
	if p.EthicalCommitment != nil {
		sets.add("ethical_commitment", *p.EthicalCommitment)
	}
	if _, err := q.execVersionedUpdate(ctx, "about_page", "id", model.AboutPageID, sets, p.ExpectedVersion); err != nil {
		return model.AboutPage{}, err
	}
	return q.GetAboutPage(ctx)
}
