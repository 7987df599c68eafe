// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as JSON text in the
// database. Historically some rows hold a JSON array and some hold a bare
// string for the same logical field; scanning normalizes a bare string to a
// one-element list, so consumers never have to parse the raw column
// themselves.
type StringList []string

// UnmarshalJSON accepts either a JSON array of strings or a single JSON
// string. A single string becomes a one-element list.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	return fmt.Errorf("string list: expected string or array of strings, got %s", data)
}

// MarshalJSON always emits a JSON array. A nil list marshals as [].
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner. Column values that are not valid JSON are
// treated as a single bare string rather than rejected; stored data predates
// the encoding being enforced.
func (l *StringList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("string list: cannot scan %T", src)
	}

	if raw == "" {
		*l = nil
		return nil
	}

	if err := l.UnmarshalJSON([]byte(raw)); err != nil {
		*l = StringList{raw}
	}
	return nil
}

// Value implements driver.Valuer, storing the list as JSON text.
func (l StringList) Value() (driver.Value, error) {
	data, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
