package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/repositories"
	"github.com/blogem/table-admin/statements"
	"github.com/blogem/table-admin/userctx"
)

var timeNow = func() time.Time {
	return time.Now()
}

// TableService interface defines the generic table pipeline
type TableService interface {
	ListTables(ctx context.Context) ([]string, error)
	ReadTable(ctx context.Context, table string) (*models.TableData, error)
	CreateRow(ctx context.Context, table string, payload models.Payload) (*models.MutationResult, error)
	UpdateRow(ctx context.Context, table, id string, payload models.Payload) (*models.MutationResult, error)
	DeleteRow(ctx context.Context, table, id string) (*models.MutationResult, error)
}

// tableService implements TableService interface
type tableService struct {
	schemaRepo   repositories.SchemaRepository
	tableRepo    repositories.TableRepository
	auditRepo    repositories.AuditRepository
	dialect      statements.Dialect
	defaultActor string
}

// NewTableService creates a new table service
func NewTableService(
	schemaRepo repositories.SchemaRepository,
	tableRepo repositories.TableRepository,
	auditRepo repositories.AuditRepository,
	dialect statements.Dialect,
	defaultActor string,
) TableService {
	return &tableService{
		schemaRepo:   schemaRepo,
		tableRepo:    tableRepo,
		auditRepo:    auditRepo,
		dialect:      dialect,
		defaultActor: defaultActor,
	}
}

// ListTables returns every user table in the store
func (s *tableService) ListTables(ctx context.Context) ([]string, error) {
	tables, err := s.schemaRepo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = []string{}
	}
	return tables, nil
}

// ReadTable returns the columns, primary key and every row of a table
func (s *tableService) ReadTable(ctx context.Context, table string) (*models.TableData, error) {
	schema, err := s.describe(ctx, table)
	if err != nil {
		return nil, err
	}

	rows, err := s.tableRepo.ReadRows(ctx, table)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.Row{}
	}

	data := &models.TableData{
		Columns: schema.Columns,
		Rows:    rows,
	}
	if schema.HasPrimaryKey() {
		pk := schema.PrimaryKey
		data.PrimaryKey = &pk
	}
	return data, nil
}

// CreateRow inserts one row built from the payload.
// A missing primary key does not block the insert; it only disables auditing.
func (s *tableService) CreateRow(ctx context.Context, table string, payload models.Payload) (*models.MutationResult, error) {
	schema, err := s.describe(ctx, table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(schema, payload); err != nil {
		return nil, err
	}

	suppliedKey, hasSuppliedKey := suppliedKeyValue(schema, payload)

	returning := ""
	if schema.HasPrimaryKey() && !hasSuppliedKey {
		if col, ok := schema.Column(schema.PrimaryKey); ok && col.IsAutoIncrement() {
			returning = schema.PrimaryKey
		}
	}

	stmt := statements.Insert(s.dialect, table, payload, returning)

	// Once sent, the statement runs to completion even if the client goes away
	execCtx := context.WithoutCancel(ctx)
	res, err := s.tableRepo.Exec(execCtx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	var insertID any
	if stmt.Returning || schema.HasAutoIncrement() {
		insertID = res.LastInsertID
	}

	result := &models.MutationResult{
		AffectedRows: res.RowsAffected,
		InsertID:     insertID,
		PrimaryKey:   schema.PrimaryKey,
		KeyValue:     insertID,
	}
	if hasSuppliedKey {
		result.KeyValue = suppliedKey
	}

	if schema.HasPrimaryKey() {
		if err := s.audit(execCtx, table, models.OperationInsert, result.KeyValue); err != nil {
			return result, err
		}
	}

	return result, nil
}

// UpdateRow sets every supplied column except the primary key on the row identified by id
func (s *tableService) UpdateRow(ctx context.Context, table, id string, payload models.Payload) (*models.MutationResult, error) {
	schema, err := s.describe(ctx, table)
	if err != nil {
		return nil, err
	}
	if !schema.HasPrimaryKey() {
		return nil, &models.ValidationError{Message: "no primary key found, cannot update", Cause: models.ErrNoPrimaryKey}
	}
	if err := checkColumns(schema, payload); err != nil {
		return nil, err
	}

	result := &models.MutationResult{
		PrimaryKey: schema.PrimaryKey,
		KeyValue:   id,
	}

	stmt, ok := statements.Update(s.dialect, table, payload, schema.PrimaryKey, id)
	if !ok {
		result.NoOp = true
		return result, nil
	}

	execCtx := context.WithoutCancel(ctx)
	res, err := s.tableRepo.Exec(execCtx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", table, err)
	}
	result.AffectedRows = res.RowsAffected

	if err := s.audit(execCtx, table, models.OperationUpdate, id); err != nil {
		return result, err
	}

	return result, nil
}

// DeleteRow removes the row identified by id; a missing row is not an error
func (s *tableService) DeleteRow(ctx context.Context, table, id string) (*models.MutationResult, error) {
	schema, err := s.describe(ctx, table)
	if err != nil {
		return nil, err
	}
	if !schema.HasPrimaryKey() {
		return nil, &models.ValidationError{Message: "no primary key found, cannot delete", Cause: models.ErrNoPrimaryKey}
	}

	stmt := statements.Delete(s.dialect, table, schema.PrimaryKey, id)

	execCtx := context.WithoutCancel(ctx)
	res, err := s.tableRepo.Exec(execCtx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	result := &models.MutationResult{
		AffectedRows: res.RowsAffected,
		PrimaryKey:   schema.PrimaryKey,
		KeyValue:     id,
	}

	if err := s.audit(execCtx, table, models.OperationDelete, id); err != nil {
		return result, err
	}

	return result, nil
}

// describe resolves a fresh schema snapshot for every request
func (s *tableService) describe(ctx context.Context, table string) (*models.TableSchema, error) {
	if err := statements.CheckIdentifier("table", table); err != nil {
		return nil, err
	}
	return s.schemaRepo.Describe(ctx, table)
}

// audit appends an entry for a mutation that already succeeded
func (s *tableService) audit(ctx context.Context, table string, op models.Operation, keyValue any) error {
	entry := &models.AuditLogEntry{
		Who:       s.actor(ctx),
		Timestamp: timeNow(),
		TableName: table,
		Operation: op,
		KeyValue:  keyString(keyValue),
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("⚠️  %s on %s succeeded but audit write failed: %v", op, table, err)
		return &models.AuditError{Table: table, Operation: op, Cause: err}
	}
	return nil
}

func (s *tableService) actor(ctx context.Context) string {
	if actor := userctx.GetActor(ctx); actor != "" {
		return actor
	}
	return s.defaultActor
}

// checkColumns rejects payload columns the table does not have
func checkColumns(schema *models.TableSchema, payload models.Payload) error {
	for _, f := range payload.Fields() {
		if err := statements.CheckIdentifier("column", f.Column); err != nil {
			return err
		}
		if _, ok := schema.Column(f.Column); !ok {
			return &models.ValidationError{
				Field:   f.Column,
				Message: fmt.Sprintf("unknown column for table %s", schema.Name),
				Cause:   models.ErrUnknownColumn,
			}
		}
	}
	return nil
}

// suppliedKeyValue returns the primary key value carried by the payload, if it is set and not null
func suppliedKeyValue(schema *models.TableSchema, payload models.Payload) (any, bool) {
	if !schema.HasPrimaryKey() {
		return nil, false
	}
	v, ok := payload.Get(schema.PrimaryKey)
	if !ok || v.IsAbsent() || v.IsNull() {
		return nil, false
	}
	return v.Interface(), true
}

func keyString(v any) *string {
	if v == nil {
		return nil
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case []byte:
		s = string(val)
	default:
		s = fmt.Sprint(val)
	}
	return &s
}
