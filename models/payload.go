package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Value is a payload entry that distinguishes an omitted column from an explicit null
type Value struct {
	v       any
	present bool
}

// Absent returns a value meaning "column not provided"
func Absent() Value {
	return Value{}
}

// Null returns a value that sets the column to NULL
func Null() Value {
	return Value{present: true}
}

// Present wraps a concrete value; a nil v is the same as Null
func Present(v any) Value {
	return Value{v: v, present: true}
}

// IsAbsent reports whether the column should be left out of the statement
func (v Value) IsAbsent() bool {
	return !v.present
}

// IsNull reports whether the value is an explicit null
func (v Value) IsNull() bool {
	return v.present && v.v == nil
}

// Interface returns the raw value to bind; nil for null and absent values
func (v Value) Interface() any {
	return v.v
}

// Field is one column/value pair of a payload
type Field struct {
	Column string
	Value  Value
}

// Payload is an ordered column -> value mapping received from a client
type Payload struct {
	fields []Field
	index  map[string]int
}

// NewPayload builds a payload from fields, keeping their order
func NewPayload(fields ...Field) Payload {
	var p Payload
	for _, f := range fields {
		p.Set(f.Column, f.Value)
	}
	return p
}

// Set assigns a value; an existing column keeps its original position
func (p *Payload) Set(column string, v Value) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[column]; ok {
		p.fields[i].Value = v
		return
	}
	p.index[column] = len(p.fields)
	p.fields = append(p.fields, Field{Column: column, Value: v})
}

// Get returns the value for a column and whether the column appears in the payload
func (p Payload) Get(column string) (Value, bool) {
	i, ok := p.index[column]
	if !ok {
		return Absent(), false
	}
	return p.fields[i].Value, true
}

// Fields returns the payload entries in order
func (p Payload) Fields() []Field {
	out := make([]Field, len(p.fields))
	copy(out, p.fields)
	return out
}

// Len returns the number of entries, absent ones included
func (p Payload) Len() int {
	return len(p.fields)
}

// UnmarshalJSON decodes a JSON object, keeping key order and explicit nulls
func (p *Payload) UnmarshalJSON(data []byte) error {
	*p = Payload{}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected a JSON object", ErrInvalidPayload)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: expected an object key", ErrInvalidPayload)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidPayload, key, err)
		}
		v, err := decodeValue(raw)
		if err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidPayload, key, err)
		}
		p.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after object", ErrInvalidPayload)
	}
	return nil
}

// decodeValue converts one JSON value into something a database driver can bind
func decodeValue(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Absent(), fmt.Errorf("empty value")
	}

	switch trimmed[0] {
	case '{', '[':
		// Nested documents are stored as their JSON text
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return Absent(), err
		}
		return Present(compact.String()), nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Absent(), err
	}

	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return Present(i), nil
		}
		if f, err := n.Float64(); err == nil {
			return Present(f), nil
		}
		return Present(n.String()), nil
	}
	return Present(v), nil
}
