package models

import "time"

// Operation is the kind of mutation recorded in the audit log
type Operation string

const (
	OperationInsert Operation = "INSERT"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// AuditLogEntry represents a single successful mutation of a table row
type AuditLogEntry struct {
	Who       string
	Timestamp time.Time
	TableName string
	Operation Operation
	KeyValue  *string
}
