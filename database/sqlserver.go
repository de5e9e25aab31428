package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"

	"github.com/blogem/table-admin/config"
)

// mssqlInvalidObjectName is error 208, "Invalid object name"
const mssqlInvalidObjectName = 208

const (
	sqlserverListTables = `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = SCHEMA_NAME()
		  AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME`

	sqlserverColumns = `
		SELECT
			c.COLUMN_NAME,
			c.DATA_TYPE + CASE
				WHEN c.CHARACTER_MAXIMUM_LENGTH IS NULL THEN ''
				WHEN c.CHARACTER_MAXIMUM_LENGTH = -1 THEN '(max)'
				ELSE '(' + CAST(c.CHARACTER_MAXIMUM_LENGTH AS VARCHAR(10)) + ')'
			END,
			c.IS_NULLABLE,
			COALESCE(k.key_code, ''),
			c.COLUMN_DEFAULT,
			CASE
				WHEN COLUMNPROPERTY(OBJECT_ID(QUOTENAME(c.TABLE_SCHEMA) + '.' + QUOTENAME(c.TABLE_NAME)), c.COLUMN_NAME, 'IsIdentity') = 1
				THEN 'auto_increment'
				ELSE ''
			END
		FROM INFORMATION_SCHEMA.COLUMNS c
		LEFT JOIN (
			SELECT
				ku.COLUMN_NAME,
				CASE MIN(CASE tc.CONSTRAINT_TYPE WHEN 'PRIMARY KEY' THEN 1 WHEN 'UNIQUE' THEN 2 ELSE 3 END)
					WHEN 1 THEN 'PRI'
					WHEN 2 THEN 'UNI'
					ELSE 'MUL'
				END AS key_code
			FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
			JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE ku
				ON tc.CONSTRAINT_NAME = ku.CONSTRAINT_NAME
				AND tc.TABLE_SCHEMA = ku.TABLE_SCHEMA
				AND tc.TABLE_NAME = ku.TABLE_NAME
			WHERE tc.TABLE_SCHEMA = SCHEMA_NAME()
				AND tc.TABLE_NAME = @p1
				AND tc.CONSTRAINT_TYPE IN ('PRIMARY KEY', 'UNIQUE', 'FOREIGN KEY')
			GROUP BY ku.COLUMN_NAME
		) k ON k.COLUMN_NAME = c.COLUMN_NAME
		WHERE c.TABLE_SCHEMA = SCHEMA_NAME()
		  AND c.TABLE_NAME = @p1
		ORDER BY c.ORDINAL_POSITION`

	sqlserverPrimaryKey = `
		SELECT ku.COLUMN_NAME
		FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
		JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE ku
			ON tc.CONSTRAINT_NAME = ku.CONSTRAINT_NAME
			AND tc.TABLE_SCHEMA = ku.TABLE_SCHEMA
			AND tc.TABLE_NAME = ku.TABLE_NAME
		WHERE tc.TABLE_SCHEMA = SCHEMA_NAME()
			AND tc.TABLE_NAME = @p1
			AND tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
		ORDER BY ku.ORDINAL_POSITION`
)

type sqlserverDialect struct{}

func init() {
	Register(sqlserverDialect{})
}

func (sqlserverDialect) Name() string       { return "sqlserver" }
func (sqlserverDialect) DriverName() string { return "sqlserver" }

func (sqlserverDialect) DSN(cfg config.DatabaseConfig) (string, error) {
	port := cfg.Port
	if port == 0 {
		port = 1433
	}

	query := url.Values{}
	query.Set("database", cfg.Name)
	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		RawQuery: query.Encode(),
	}

	dsn := u.String()
	// Validate early to fail fast on obvious mistakes
	if _, err := msdsn.Parse(dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func (sqlserverDialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (sqlserverDialect) Placeholder(n int) string { return fmt.Sprintf("@p%d", n) }

func (sqlserverDialect) DefaultValues() string { return "DEFAULT VALUES" }

func (sqlserverDialect) Returning(quotedColumn string) (string, string) {
	return "OUTPUT INSERTED." + quotedColumn, ""
}

func (sqlserverDialect) ListTablesQuery() string { return sqlserverListTables }
func (sqlserverDialect) ColumnsQuery() string    { return sqlserverColumns }
func (sqlserverDialect) PrimaryKeyQuery() string { return sqlserverPrimaryKey }

func (sqlserverDialect) IsTableNotFound(err error) bool {
	var msErr mssql.Error
	return errors.As(err, &msErr) && msErr.Number == mssqlInvalidObjectName
}

// go-mssqldb does not implement LastInsertId; generated keys come back through OUTPUT
func (sqlserverDialect) SupportsLastInsertID() bool { return false }

func (d sqlserverDialect) AuditTableDDL(table string) string {
	literal := "N'" + strings.ReplaceAll(d.QuoteIdent(table), "'", "''") + "'"
	return `IF OBJECT_ID(` + literal + `, N'U') IS NULL
	CREATE TABLE ` + d.QuoteIdent(table) + ` (
		id INT IDENTITY(1,1) PRIMARY KEY,
		who NVARCHAR(64) NOT NULL,
		time DATETIME2 NOT NULL,
		table_name NVARCHAR(255) NOT NULL,
		operation NVARCHAR(16) NOT NULL,
		key_value NVARCHAR(255) NULL
	)`
}
