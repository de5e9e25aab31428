package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/table-admin/database"
	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/statements"
)

// ExecResult is what the store reports back for a mutating statement
type ExecResult struct {
	RowsAffected int64
	// LastInsertID is nil when the driver could not report a generated key
	LastInsertID any
}

// TableRepository reads and writes rows of arbitrary tables
type TableRepository interface {
	ReadRows(ctx context.Context, table string) ([]models.Row, error)
	Exec(ctx context.Context, stmt statements.Statement) (*ExecResult, error)
}

type sqlTableRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *sql.DB, dialect database.Dialect) TableRepository {
	return &sqlTableRepository{db: db, dialect: dialect}
}

// ReadRows returns every row of a table in the store's column order
func (r *sqlTableRepository) ReadRows(ctx context.Context, table string) ([]models.Row, error) {
	stmt := statements.SelectAll(r.dialect, table)

	rows, err := r.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		if r.dialect.IsTableNotFound(err) {
			return nil, &models.SchemaError{Table: table, Cause: fmt.Errorf("%w: %v", models.ErrTableNotFound, err)}
		}
		return nil, &models.StoreError{Op: "read rows of " + table, Cause: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &models.StoreError{Op: "read columns of " + table, Cause: err}
	}

	result := []models.Row{}
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, &models.StoreError{Op: "scan row of " + table, Cause: err}
		}

		row := models.Row{Columns: columns, Values: make([]any, len(columns))}
		for i := range columns {
			row.Values[i] = normalizeValue(values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "read rows of " + table, Cause: err}
	}

	return result, nil
}

// Exec runs a synthesized statement as a single autocommit unit
func (r *sqlTableRepository) Exec(ctx context.Context, stmt statements.Statement) (*ExecResult, error) {
	if stmt.Returning {
		var generated any
		if err := r.db.QueryRowContext(ctx, stmt.SQL, stmt.Args...).Scan(&generated); err != nil {
			return nil, &models.StoreError{Op: "execute statement", Cause: err}
		}
		return &ExecResult{RowsAffected: 1, LastInsertID: normalizeValue(generated)}, nil
	}

	res, err := r.db.ExecContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, &models.StoreError{Op: "execute statement", Cause: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, &models.StoreError{Op: "read affected rows", Cause: err}
	}

	result := &ExecResult{RowsAffected: affected}
	if r.dialect.SupportsLastInsertID() {
		if id, err := res.LastInsertId(); err == nil && id != 0 {
			result.LastInsertID = id
		}
	}

	return result, nil
}

// normalizeValue turns driver values into something that encodes cleanly as JSON
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return models.FormatTimestamp(val)
	default:
		return val
	}
}
