package models

import (
	"time"
)

// TimestampLayout is the second-precision wall clock format used for audit entries and row values
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp formats a time as YYYY-MM-DD HH:MM:SS
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ErrorResponse is the uniform error envelope returned to clients
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
