package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/table-admin/database"
	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/statements"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

type sqlAuditRepository struct {
	db      *sql.DB
	dialect database.Dialect
	table   string
}

// NewAuditRepository creates a new audit repository writing to the given table
func NewAuditRepository(db *sql.DB, dialect database.Dialect, table string) AuditRepository {
	return &sqlAuditRepository{db: db, dialect: dialect, table: table}
}

// Create appends a new audit log entry
func (r *sqlAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	keyValue := models.Null()
	if entry.KeyValue != nil {
		keyValue = models.Present(*entry.KeyValue)
	}

	payload := models.NewPayload(
		models.Field{Column: "who", Value: models.Present(entry.Who)},
		models.Field{Column: "time", Value: models.Present(models.FormatTimestamp(entry.Timestamp))},
		models.Field{Column: "table_name", Value: models.Present(entry.TableName)},
		models.Field{Column: "operation", Value: models.Present(string(entry.Operation))},
		models.Field{Column: "key_value", Value: keyValue},
	)
	stmt := statements.Insert(r.dialect, r.table, payload, "")

	if _, err := r.db.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
		return fmt.Errorf("failed to write audit log entry: %w", err)
	}
	return nil
}
