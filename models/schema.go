package models

import "fmt"

// KeyRole describes the index participation of a column
type KeyRole string

const (
	KeyRoleNone    KeyRole = "none"
	KeyRolePrimary KeyRole = "primary"
	KeyRoleUnique  KeyRole = "unique"
	KeyRoleIndexed KeyRole = "indexed"
)

// KeyRoleFromCode maps the catalog key codes (PRI, UNI, MUL) to a KeyRole
func KeyRoleFromCode(code string) KeyRole {
	switch code {
	case "PRI":
		return KeyRolePrimary
	case "UNI":
		return KeyRoleUnique
	case "MUL":
		return KeyRoleIndexed
	default:
		return KeyRoleNone
	}
}

// ColumnDefinition represents one column of a table as reported by the store catalog
type ColumnDefinition struct {
	Name         string  `json:"name"`
	SQLType      string  `json:"sqlType"`
	Nullable     bool    `json:"nullable"`
	KeyRole      KeyRole `json:"keyRole"`
	DefaultValue *string `json:"defaultValue"`
	Extra        string  `json:"extra"`
}

// IsAutoIncrement reports whether the store generates values for this column
func (c ColumnDefinition) IsAutoIncrement() bool {
	return c.Extra == ExtraAutoIncrement
}

// ExtraAutoIncrement marks columns whose values are generated by the store
const ExtraAutoIncrement = "auto_increment"

// TableSchema is a snapshot of a table's columns and primary key, fetched per request
type TableSchema struct {
	Name       string             `json:"name"`
	Columns    []ColumnDefinition `json:"columns"`
	PrimaryKey string             `json:"primaryKey,omitempty"`
}

// HasPrimaryKey returns true if the table has a single addressable key column
func (s *TableSchema) HasPrimaryKey() bool {
	return s.PrimaryKey != ""
}

// Column looks up a column by name
func (s *TableSchema) Column(name string) (ColumnDefinition, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnDefinition{}, false
}

// HasAutoIncrement returns true if any column is generated by the store
func (s *TableSchema) HasAutoIncrement() bool {
	for _, col := range s.Columns {
		if col.IsAutoIncrement() {
			return true
		}
	}
	return false
}

// Validate checks that the primary key, if any, names exactly one column
func (s *TableSchema) Validate() error {
	if s.PrimaryKey == "" {
		return nil
	}
	matches := 0
	for _, col := range s.Columns {
		if col.Name == s.PrimaryKey {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("primary key %q matches %d columns of table %q", s.PrimaryKey, matches, s.Name)
	}
	return nil
}

// TableData is the read view of a table: its columns, every row and its primary key
type TableData struct {
	Columns    []ColumnDefinition `json:"columns"`
	Rows       []Row              `json:"rows"`
	PrimaryKey *string            `json:"primaryKey"`
}
