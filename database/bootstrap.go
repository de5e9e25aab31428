package database

import (
	"context"
	"fmt"

	"github.com/blogem/table-admin/statements"
)

// EnsureAuditTable creates the append-only audit table if it is missing.
// Columns: who, time, table_name, operation, key_value.
func EnsureAuditTable(ctx context.Context, store *Store, table string) error {
	if err := statements.CheckIdentifier("audit table", table); err != nil {
		return err
	}

	ddl := store.Dialect.AuditTableDDL(table)
	if _, err := store.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create audit table %s: %w", table, err)
	}
	return nil
}
