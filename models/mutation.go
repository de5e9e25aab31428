package models

// MutationResult describes the outcome of an insert, update or delete
type MutationResult struct {
	AffectedRows int64
	// InsertID is the store-generated identifier of an inserted row, nil when none was generated
	InsertID any
	// PrimaryKey is empty when the table has no primary key
	PrimaryKey string
	KeyValue   any
	// NoOp is set when an update had no settable fields and the store was not touched
	NoOp bool
}

// HealthStatus reports store identity and liveness
type HealthStatus struct {
	Status   string `json:"status"`
	Driver   string `json:"driver"`
	Database string `json:"database"`
	Host     string `json:"host"`
	User     string `json:"user"`
	Detail   string `json:"detail,omitempty"`
}
