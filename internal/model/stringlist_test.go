// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
)

func TestStringListUnmarshalArray(t *testing.T) {
	var l StringList
	if err := json.Unmarshal([]byte(`["uno","dos"]`), &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(l) != 2 || l[0] != "uno" || l[1] != "dos" {
		t.Errorf("l = %v", l)
	}
}

func TestStringListUnmarshalBareString(t *testing.T) {
	var l StringList
	if err := json.Unmarshal([]byte(`"solo uno"`), &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(l) != 1 || l[0] != "solo uno" {
		t.Errorf("l = %v, want one-element list", l)
	}
}

func TestStringListUnmarshalRejectsOther(t *testing.T) {
	var l StringList
	if err := json.Unmarshal([]byte(`{"no":"válido"}`), &l); err == nil {
		t.Error("object should not unmarshal into a string list")
	}
}

func TestStringListMarshalNilAsEmptyArray(t *testing.T) {
	var l StringList
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Marshal(nil) = %s, want []", data)
	}
}

func TestStringListScanLegacyBareString(t *testing.T) {
	// Stored rows predating the JSON encoding hold a bare string.
	var l StringList
	if err := l.Scan("texto suelto"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(l) != 1 || l[0] != "texto suelto" {
		t.Errorf("l = %v, want one-element list", l)
	}
}

func TestStringListScanJSONArray(t *testing.T) {
	var l StringList
	if err := l.Scan(`["a","b","c"]`); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(l) != 3 {
		t.Errorf("len = %d, want 3", len(l))
	}
}

func TestEncodeChanges(t *testing.T) {
	if got := EncodeChanges(nil); got != "" {
		t.Errorf("EncodeChanges(nil) = %q, want empty", got)
	}

	encoded := EncodeChanges(map[string]any{"title": "Nuevo"})
	var decoded map[string]any
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded["title"] != "Nuevo" {
		t.Errorf("decoded = %v", decoded)
	}
}
