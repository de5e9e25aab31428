package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is one table row. It encodes as a JSON object whose keys follow the table's column order.
type Row struct {
	Columns []string
	Values  []any
}

// Get returns the value of a column and whether the row has it
func (r Row) Get(column string) (any, bool) {
	for i, col := range r.Columns {
		if col == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// MarshalJSON writes the columns in order instead of the sorted order used for maps
func (r Row) MarshalJSON() ([]byte, error) {
	if len(r.Columns) != len(r.Values) {
		return nil, fmt.Errorf("row has %d columns but %d values", len(r.Columns), len(r.Values))
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
