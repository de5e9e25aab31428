package database

import (
	"errors"
	"net/url"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/blogem/table-admin/config"
)

const (
	sqliteListTables = `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table'
		  AND name NOT LIKE 'sqlite_%'
		ORDER BY name`

	// Key codes follow the MySQL convention: PRI for key columns, UNI for
	// single-column unique indexes, MUL for the leading column of other indexes.
	sqliteColumns = `
		SELECT
			p.name,
			p.type,
			CASE WHEN p."notnull" = 1 OR p.pk > 0 THEN 'NO' ELSE 'YES' END,
			CASE
				WHEN p.pk > 0 THEN 'PRI'
				WHEN EXISTS (
					SELECT 1
					FROM pragma_index_list(?1) AS il, pragma_index_info(il.name) AS ii
					WHERE il."unique" = 1
					  AND ii.name = p.name
					  AND (SELECT COUNT(*) FROM pragma_index_info(il.name)) = 1
				) THEN 'UNI'
				WHEN EXISTS (
					SELECT 1
					FROM pragma_index_list(?1) AS il, pragma_index_info(il.name) AS ii
					WHERE ii.seqno = 0
					  AND ii.name = p.name
				) THEN 'MUL'
				ELSE ''
			END,
			p.dflt_value,
			CASE
				WHEN p.pk = 1
				 AND upper(p.type) = 'INTEGER'
				 AND (SELECT COUNT(*) FROM pragma_table_info(?1) WHERE pk > 0) = 1
				THEN 'auto_increment'
				ELSE ''
			END
		FROM pragma_table_info(?1) AS p
		ORDER BY p.cid`

	sqlitePrimaryKey = `
		SELECT name
		FROM pragma_table_info(?1)
		WHERE pk > 0
		ORDER BY pk`
)

type sqliteDialect struct{}

func init() {
	Register(sqliteDialect{})
}

func (sqliteDialect) Name() string       { return "sqlite" }
func (sqliteDialect) DriverName() string { return "sqlite3" }

// DSN treats the database name as a file path
func (sqliteDialect) DSN(cfg config.DatabaseConfig) (string, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return "", errors.New("sqlite database path must not be empty")
	}
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", "5000")
	// Escape the path so '?', '#' and '%' stay part of the file name
	path := (&url.URL{Path: cfg.Name}).EscapedPath()
	return "file:" + path + "?" + params.Encode(), nil
}

func (sqliteDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (sqliteDialect) Placeholder(int) string { return "?" }

func (sqliteDialect) DefaultValues() string { return "DEFAULT VALUES" }

func (sqliteDialect) Returning(string) (string, string) { return "", "" }

func (sqliteDialect) ListTablesQuery() string { return sqliteListTables }
func (sqliteDialect) ColumnsQuery() string    { return sqliteColumns }
func (sqliteDialect) PrimaryKeyQuery() string { return sqlitePrimaryKey }

func (sqliteDialect) IsTableNotFound(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return strings.Contains(sqliteErr.Error(), "no such table")
	}
	return false
}

func (sqliteDialect) SupportsLastInsertID() bool { return true }

func (d sqliteDialect) AuditTableDDL(table string) string {
	return `CREATE TABLE IF NOT EXISTS ` + d.QuoteIdent(table) + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		who TEXT NOT NULL,
		time TEXT NOT NULL,
		table_name TEXT NOT NULL,
		operation TEXT NOT NULL,
		key_value TEXT
	)`
}
