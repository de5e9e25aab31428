package database

import (
	"fmt"
	"sort"
	"sync"

	"github.com/blogem/table-admin/config"
	"github.com/blogem/table-admin/statements"
)

// Dialect captures everything that differs between supported stores
type Dialect interface {
	statements.Dialect

	// Name is the value of DB_DRIVER selecting this dialect
	Name() string
	// DriverName is the database/sql driver registered by the store's driver package
	DriverName() string
	// DSN builds a connection string from discrete connection parameters
	DSN(cfg config.DatabaseConfig) (string, error)

	// ListTablesQuery returns every user table name, one per row
	ListTablesQuery() string
	// ColumnsQuery takes the table name as its only argument and returns
	// name, type, nullable (YES/NO), key code (PRI/UNI/MUL/''), default, extra
	ColumnsQuery() string
	// PrimaryKeyQuery takes the table name and returns the primary key columns in key order
	PrimaryKeyQuery() string

	// IsTableNotFound classifies a driver error as a missing table
	IsTableNotFound(err error) bool
	// SupportsLastInsertID reports whether sql.Result.LastInsertId is meaningful
	SupportsLastInsertID() bool
	// AuditTableDDL creates the audit table if it does not exist yet
	AuditTableDDL(table string) string
}

var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]Dialect)
)

// Register makes a dialect available by name. It panics on duplicates.
func Register(d Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()

	if _, exists := dialects[d.Name()]; exists {
		panic(fmt.Sprintf("database: dialect %q registered twice", d.Name()))
	}
	dialects[d.Name()] = d
}

// Lookup returns the dialect registered under name
func Lookup(name string) (Dialect, error) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()

	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q (available: %v)", name, names())
	}
	return d, nil
}

// Drivers returns the registered dialect names in sorted order
func Drivers() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(dialects))
	for name := range dialects {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
