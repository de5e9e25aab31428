package models

import (
	"errors"
	"fmt"
)

var (
	// ErrTableNotFound signals that the referenced table does not exist
	ErrTableNotFound = errors.New("table not found")
	// ErrNoPrimaryKey signals an update or delete against a keyless table
	ErrNoPrimaryKey = errors.New("no primary key")
	// ErrUnknownColumn signals a payload column the table does not have
	ErrUnknownColumn = errors.New("unknown column")
	// ErrInvalidIdentifier signals a table or column name that cannot be quoted
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrInvalidPayload signals a request body that is not a JSON object
	ErrInvalidPayload = errors.New("invalid payload")
)

// SchemaError is returned when the schema of a table cannot be resolved
type SchemaError struct {
	Table string
	Cause error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %q: %v", e.Table, e.Cause)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a request that can never succeed as sent
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// StoreError wraps a connectivity, constraint or syntax failure reported by the store
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// AuditError is returned when a mutation succeeded but its audit entry could not be written
type AuditError struct {
	Table     string
	Operation Operation
	Cause     error
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("%s on %q applied but audit log write failed: %v", e.Operation, e.Table, e.Cause)
}

func (e *AuditError) Unwrap() error {
	return e.Cause
}
