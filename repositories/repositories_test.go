package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/blogem/table-admin/config"
	"github.com/blogem/table-admin/database"
	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/statements"
)

func setupTestStore(t *testing.T) *database.Store {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:   "sqlite",
			Name:     filepath.Join(t.TempDir(), "test.db"),
			PoolSize: 2,
		},
		Audit: config.AuditConfig{Table: "logs", Bootstrap: true},
	}

	store, err := database.InitializeDatabase(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	fixtures := []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE,
			created_at TEXT DEFAULT 'now'
		)`,
		`CREATE INDEX idx_users_name ON users (name)`,
		`CREATE TABLE notes (body TEXT, pinned INTEGER DEFAULT 0)`,
		`CREATE TABLE memberships (user_id INTEGER, group_id INTEGER, PRIMARY KEY (user_id, group_id))`,
	}
	for _, ddl := range fixtures {
		if _, err := store.DB.Exec(ddl); err != nil {
			t.Fatalf("Failed to create fixture: %v", err)
		}
	}

	return store
}

func TestSchemaRepository(t *testing.T) {
	store := setupTestStore(t)
	repo := NewSchemaRepository(store.DB, store.Dialect)
	ctx := context.Background()

	// Test ListTables
	tables, err := repo.ListTables(ctx)
	if err != nil {
		t.Fatalf("Failed to list tables: %v", err)
	}
	want := []string{"logs", "memberships", "notes", "users"}
	if len(tables) != len(want) {
		t.Fatalf("Expected tables %v, got %v", want, tables)
	}
	for i := range want {
		if tables[i] != want[i] {
			t.Errorf("Expected table %d to be %s, got %s", i, want[i], tables[i])
		}
	}

	// Test GetColumns
	columns, err := repo.GetColumns(ctx, "users")
	if err != nil {
		t.Fatalf("Failed to get columns: %v", err)
	}
	if len(columns) != 4 {
		t.Fatalf("Expected 4 columns, got %d", len(columns))
	}

	id := columns[0]
	if id.Name != "id" || id.KeyRole != models.KeyRolePrimary || !id.IsAutoIncrement() || id.Nullable {
		t.Errorf("Unexpected id column: %+v", id)
	}
	if columns[1].Name != "name" || columns[1].KeyRole != models.KeyRoleIndexed || columns[1].Nullable {
		t.Errorf("Unexpected name column: %+v", columns[1])
	}
	if columns[2].KeyRole != models.KeyRoleUnique || !columns[2].Nullable {
		t.Errorf("Unexpected email column: %+v", columns[2])
	}
	if columns[3].DefaultValue == nil || *columns[3].DefaultValue != "'now'" {
		t.Errorf("Expected created_at default 'now', got %v", columns[3].DefaultValue)
	}
	if columns[2].DefaultValue != nil {
		t.Errorf("Expected email to have no default, got %v", *columns[2].DefaultValue)
	}

	// Test GetPrimaryKey
	for table, expected := range map[string]string{
		"users":       "id",
		"notes":       "",
		"memberships": "user_id",
	} {
		pk, err := repo.GetPrimaryKey(ctx, table)
		if err != nil {
			t.Fatalf("Failed to get primary key of %s: %v", table, err)
		}
		if pk != expected {
			t.Errorf("Expected primary key of %s to be %q, got %q", table, expected, pk)
		}
	}

	// Composite keys are never auto increment
	members, err := repo.GetColumns(ctx, "memberships")
	if err != nil {
		t.Fatalf("Failed to get columns: %v", err)
	}
	if members[0].IsAutoIncrement() {
		t.Error("Expected composite key column not to be auto increment")
	}
}

func TestSchemaRepositoryDescribe(t *testing.T) {
	store := setupTestStore(t)
	repo := NewSchemaRepository(store.DB, store.Dialect)
	ctx := context.Background()

	schema, err := repo.Describe(ctx, "users")
	if err != nil {
		t.Fatalf("Failed to describe users: %v", err)
	}
	if schema.Name != "users" || schema.PrimaryKey != "id" || len(schema.Columns) != 4 {
		t.Errorf("Unexpected schema: %+v", schema)
	}
	if !schema.HasAutoIncrement() {
		t.Error("Expected users to have an auto increment column")
	}

	keyless, err := repo.Describe(ctx, "notes")
	if err != nil {
		t.Fatalf("Failed to describe notes: %v", err)
	}
	if keyless.HasPrimaryKey() {
		t.Errorf("Expected notes to be keyless, got %q", keyless.PrimaryKey)
	}

	// Missing tables surface as a schema error
	_, err = repo.Describe(ctx, "ghost")
	var schemaErr *models.SchemaError
	if !errors.As(err, &schemaErr) || !errors.Is(err, models.ErrTableNotFound) {
		t.Errorf("Expected SchemaError(TableNotFound), got %v", err)
	}

	// Hostile names are bound, never interpolated
	_, err = repo.Describe(ctx, `users"; DROP TABLE users; --`)
	if !errors.Is(err, models.ErrTableNotFound) {
		t.Errorf("Expected table not found for hostile name, got %v", err)
	}
	if _, err := repo.Describe(ctx, "users"); err != nil {
		t.Errorf("Expected users to survive, got %v", err)
	}

	_, err = repo.GetColumns(ctx, "")
	if !errors.Is(err, models.ErrInvalidIdentifier) {
		t.Errorf("Expected invalid identifier error, got %v", err)
	}
}

func TestTableRepository(t *testing.T) {
	store := setupTestStore(t)
	repo := NewTableRepository(store.DB, store.Dialect)
	ctx := context.Background()

	// Empty tables read as an empty slice
	rows, err := repo.ReadRows(ctx, "users")
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("Expected empty non-nil rows, got %v", rows)
	}

	// Test Exec insert
	insert := statements.Insert(store.Dialect, "users", models.NewPayload(
		models.Field{Column: "name", Value: models.Present("A")},
		models.Field{Column: "email", Value: models.Present("a@x.com")},
	), "")
	res, err := repo.Exec(ctx, insert)
	if err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	if res.RowsAffected != 1 {
		t.Errorf("Expected 1 affected row, got %d", res.RowsAffected)
	}
	if res.LastInsertID != int64(1) {
		t.Errorf("Expected insert id 1, got %v", res.LastInsertID)
	}

	// Test ReadRows
	rows, err = repo.ReadRows(ctx, "users")
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	wantColumns := []string{"id", "name", "email", "created_at"}
	if len(rows[0].Columns) != len(wantColumns) {
		t.Fatalf("Expected columns %v, got %v", wantColumns, rows[0].Columns)
	}
	for i, col := range wantColumns {
		if rows[0].Columns[i] != col {
			t.Errorf("Expected column %d to be %s, got %s", i, col, rows[0].Columns[i])
		}
	}
	id, _ := rows[0].Get("id")
	name, _ := rows[0].Get("name")
	email, _ := rows[0].Get("email")
	if id != int64(1) || name != "A" || email != "a@x.com" {
		t.Errorf("Unexpected row: %v", rows[0])
	}

	// Test Exec update
	update, ok := statements.Update(store.Dialect, "users", models.NewPayload(
		models.Field{Column: "email", Value: models.Present("b@x.com")},
	), "id", "1")
	if !ok {
		t.Fatal("Expected update statement")
	}
	res, err = repo.Exec(ctx, update)
	if err != nil {
		t.Fatalf("Failed to update: %v", err)
	}
	if res.RowsAffected != 1 {
		t.Errorf("Expected 1 affected row, got %d", res.RowsAffected)
	}

	// Test Exec delete of a missing key
	res, err = repo.Exec(ctx, statements.Delete(store.Dialect, "users", "id", "999"))
	if err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if res.RowsAffected != 0 {
		t.Errorf("Expected 0 affected rows, got %d", res.RowsAffected)
	}

	// Constraint violations surface as store errors
	_, err = repo.Exec(ctx, statements.Insert(store.Dialect, "users", models.NewPayload(
		models.Field{Column: "name", Value: models.Null()},
	), ""))
	var storeErr *models.StoreError
	if !errors.As(err, &storeErr) {
		t.Errorf("Expected StoreError, got %v", err)
	}

	// Missing tables surface as schema errors
	_, err = repo.ReadRows(ctx, "ghost")
	if !errors.Is(err, models.ErrTableNotFound) {
		t.Errorf("Expected table not found, got %v", err)
	}
}

func TestTableRepositoryDefaultRow(t *testing.T) {
	store := setupTestStore(t)
	repo := NewTableRepository(store.DB, store.Dialect)
	ctx := context.Background()

	res, err := repo.Exec(ctx, statements.Insert(store.Dialect, "notes", models.Payload{}, ""))
	if err != nil {
		t.Fatalf("Failed to insert default row: %v", err)
	}
	if res.RowsAffected != 1 {
		t.Errorf("Expected 1 affected row, got %d", res.RowsAffected)
	}

	rows, err := repo.ReadRows(ctx, "notes")
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected one default row, got %v", rows)
	}
	body, _ := rows[0].Get("body")
	pinned, _ := rows[0].Get("pinned")
	if body != nil || pinned != int64(0) {
		t.Errorf("Expected default values, got %v", rows[0])
	}
}

func TestAuditRepository(t *testing.T) {
	store := setupTestStore(t)
	repo := NewAuditRepository(store.DB, store.Dialect, "logs")
	ctx := context.Background()

	key := "42"
	entries := []*models.AuditLogEntry{
		{Who: "admin", Timestamp: time.Date(2024, 3, 1, 9, 30, 15, 0, time.Local), TableName: "users", Operation: models.OperationUpdate, KeyValue: &key},
		{Who: "admin", Timestamp: time.Date(2024, 3, 1, 9, 31, 0, 0, time.Local), TableName: "users", Operation: models.OperationInsert},
	}
	for _, entry := range entries {
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create audit entry: %v", err)
		}
	}

	var (
		who, ts, table, op string
		keyValue           *string
	)
	err := store.DB.QueryRow(`SELECT who, time, table_name, operation, key_value FROM logs ORDER BY id LIMIT 1`).
		Scan(&who, &ts, &table, &op, &keyValue)
	if err != nil {
		t.Fatalf("Failed to read audit entry: %v", err)
	}
	if who != "admin" || ts != "2024-03-01 09:30:15" || table != "users" || op != "UPDATE" {
		t.Errorf("Unexpected audit row: %s %s %s %s", who, ts, table, op)
	}
	if keyValue == nil || *keyValue != "42" {
		t.Errorf("Expected key value 42, got %v", keyValue)
	}

	var count int
	if err := store.DB.QueryRow(`SELECT COUNT(*) FROM logs WHERE key_value IS NULL`).Scan(&count); err != nil {
		t.Fatalf("Failed to count audit entries: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 entry without key value, got %d", count)
	}

	// A missing audit table is reported
	broken := NewAuditRepository(store.DB, store.Dialect, "missing_logs")
	if err := broken.Create(ctx, entries[0]); err == nil {
		t.Error("Expected error writing to a missing audit table")
	}
}

func TestHealthRepository(t *testing.T) {
	store := setupTestStore(t)
	repo := NewHealthRepository(store.DB)

	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Expected ping to succeed: %v", err)
	}

	store.Close()
	if err := repo.Ping(context.Background()); err == nil {
		t.Error("Expected ping on a closed pool to fail")
	}
}

func TestNewRepositories(t *testing.T) {
	store := setupTestStore(t)
	repos := NewRepositories(store, "logs")

	if repos.Schema == nil || repos.Table == nil || repos.Audit == nil || repos.Health == nil {
		t.Errorf("Expected every repository to be set: %+v", repos)
	}
}
