package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/table-admin/database"
	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/statements"
)

// SchemaRepository reads table metadata from the store catalog.
// Nothing is cached: every call hits the catalog so DDL changes show up immediately.
type SchemaRepository interface {
	ListTables(ctx context.Context) ([]string, error)
	GetColumns(ctx context.Context, table string) ([]models.ColumnDefinition, error)
	GetPrimaryKey(ctx context.Context, table string) (string, error)
	Describe(ctx context.Context, table string) (*models.TableSchema, error)
}

// queryer is satisfied by both *sql.DB and *sql.Conn
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type sqlSchemaRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSchemaRepository creates a new schema repository
func NewSchemaRepository(db *sql.DB, dialect database.Dialect) SchemaRepository {
	return &sqlSchemaRepository{db: db, dialect: dialect}
}

// ListTables returns every user table name
func (r *sqlSchemaRepository) ListTables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.ListTablesQuery())
	if err != nil {
		return nil, &models.StoreError{Op: "list tables", Cause: err}
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &models.StoreError{Op: "scan table name", Cause: err}
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "list tables", Cause: err}
	}

	return tables, nil
}

// GetColumns returns the columns of a table in declaration order
func (r *sqlSchemaRepository) GetColumns(ctx context.Context, table string) ([]models.ColumnDefinition, error) {
	return r.columns(ctx, r.db, table)
}

// GetPrimaryKey returns the first primary key column of a table, or "" for keyless tables
func (r *sqlSchemaRepository) GetPrimaryKey(ctx context.Context, table string) (string, error) {
	return r.primaryKey(ctx, r.db, table)
}

// Describe resolves columns and primary key over a single pooled connection
func (r *sqlSchemaRepository) Describe(ctx context.Context, table string) (*models.TableSchema, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, &models.StoreError{Op: "acquire connection", Cause: err}
	}
	defer conn.Close()

	columns, err := r.columns(ctx, conn, table)
	if err != nil {
		return nil, err
	}

	primaryKey, err := r.primaryKey(ctx, conn, table)
	if err != nil {
		return nil, err
	}

	schema := &models.TableSchema{
		Name:       table,
		Columns:    columns,
		PrimaryKey: primaryKey,
	}
	if err := schema.Validate(); err != nil {
		return nil, &models.SchemaError{Table: table, Cause: err}
	}

	return schema, nil
}

func (r *sqlSchemaRepository) columns(ctx context.Context, q queryer, table string) ([]models.ColumnDefinition, error) {
	if err := statements.CheckIdentifier("table", table); err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, r.dialect.ColumnsQuery(), table)
	if err != nil {
		return nil, r.wrap(table, "describe columns", err)
	}
	defer rows.Close()

	var columns []models.ColumnDefinition
	for rows.Next() {
		var (
			name, sqlType     string
			nullable, keyCode sql.NullString
			defaultValue      sql.NullString
			extra             sql.NullString
		)
		if err := rows.Scan(&name, &sqlType, &nullable, &keyCode, &defaultValue, &extra); err != nil {
			return nil, &models.StoreError{Op: "scan column definition", Cause: err}
		}

		col := models.ColumnDefinition{
			Name:     name,
			SQLType:  sqlType,
			Nullable: nullable.String == "YES",
			KeyRole:  models.KeyRoleFromCode(keyCode.String),
			Extra:    extra.String,
		}
		if defaultValue.Valid {
			v := defaultValue.String
			col.DefaultValue = &v
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(table, "describe columns", err)
	}

	// Catalog queries return no rows rather than an error for unknown tables
	if len(columns) == 0 {
		return nil, &models.SchemaError{Table: table, Cause: models.ErrTableNotFound}
	}

	return columns, nil
}

func (r *sqlSchemaRepository) primaryKey(ctx context.Context, q queryer, table string) (string, error) {
	if err := statements.CheckIdentifier("table", table); err != nil {
		return "", err
	}

	rows, err := q.QueryContext(ctx, r.dialect.PrimaryKeyQuery(), table)
	if err != nil {
		return "", r.wrap(table, "resolve primary key", err)
	}
	defer rows.Close()

	// Composite keys are reduced to their first column
	var primaryKey string
	if rows.Next() {
		if err := rows.Scan(&primaryKey); err != nil {
			return "", &models.StoreError{Op: "scan primary key", Cause: err}
		}
	}
	if err := rows.Err(); err != nil {
		return "", r.wrap(table, "resolve primary key", err)
	}

	return primaryKey, nil
}

func (r *sqlSchemaRepository) wrap(table, op string, err error) error {
	if r.dialect.IsTableNotFound(err) {
		return &models.SchemaError{Table: table, Cause: fmt.Errorf("%w: %v", models.ErrTableNotFound, err)}
	}
	return &models.StoreError{Op: op + " of " + table, Cause: err}
}
