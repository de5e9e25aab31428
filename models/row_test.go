package models

import (
	"encoding/json"
	"testing"
)

// Test that rows encode in column order, not alphabetically
func TestRowMarshalJSONKeepsColumnOrder(t *testing.T) {
	row := Row{
		Columns: []string{"id", "name", "email", "created_at"},
		Values:  []any{int64(1), "A", nil, "2024-01-01 10:00:00"},
	}

	data, err := json.Marshal([]Row{row})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := `[{"id":1,"name":"A","email":null,"created_at":"2024-01-01 10:00:00"}]`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestRowMarshalJSONEscapesKeys(t *testing.T) {
	row := Row{Columns: []string{`we"ird`}, Values: []any{"x"}}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != `{"we\"ird":"x"}` {
		t.Errorf("Unexpected encoding: %s", data)
	}
}

func TestRowMarshalJSONMismatch(t *testing.T) {
	if _, err := json.Marshal(Row{Columns: []string{"a", "b"}, Values: []any{1}}); err == nil {
		t.Error("Expected error for mismatched columns and values")
	}
}

func TestRowGet(t *testing.T) {
	row := Row{Columns: []string{"id", "name"}, Values: []any{int64(7), "B"}}

	if v, ok := row.Get("name"); !ok || v != "B" {
		t.Errorf("Expected name B, got %v (%v)", v, ok)
	}
	if _, ok := row.Get("email"); ok {
		t.Error("Expected email to be missing")
	}
}
