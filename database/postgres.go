package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/blogem/table-admin/config"
)

// pgUndefinedTable is SQLSTATE undefined_table
const pgUndefinedTable = "42P01"

const (
	postgresListTables = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	postgresColumns = `
		SELECT
			c.column_name,
			CASE
				WHEN c.character_maximum_length IS NOT NULL
				THEN c.data_type || '(' || c.character_maximum_length || ')'
				ELSE c.data_type
			END,
			c.is_nullable,
			COALESCE(k.key_code, ''),
			c.column_default,
			CASE
				WHEN c.is_identity = 'YES' OR c.column_default LIKE 'nextval(%' THEN 'auto_increment'
				ELSE ''
			END
		FROM information_schema.columns c
		LEFT JOIN (
			SELECT
				ku.column_name,
				CASE MIN(CASE tc.constraint_type WHEN 'PRIMARY KEY' THEN 1 WHEN 'UNIQUE' THEN 2 ELSE 3 END)
					WHEN 1 THEN 'PRI'
					WHEN 2 THEN 'UNI'
					ELSE 'MUL'
				END AS key_code
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage ku
				ON tc.constraint_name = ku.constraint_name
				AND tc.table_schema = ku.table_schema
				AND tc.table_name = ku.table_name
			WHERE tc.table_schema = current_schema()
				AND tc.table_name = $1
				AND tc.constraint_type IN ('PRIMARY KEY', 'UNIQUE', 'FOREIGN KEY')
			GROUP BY ku.column_name
		) k ON k.column_name = c.column_name
		WHERE c.table_schema = current_schema()
		  AND c.table_name = $1
		ORDER BY c.ordinal_position`

	postgresPrimaryKey = `
		SELECT ku.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage ku
			ON tc.constraint_name = ku.constraint_name
			AND tc.table_schema = ku.table_schema
			AND tc.table_name = ku.table_name
		WHERE tc.table_schema = current_schema()
			AND tc.table_name = $1
			AND tc.constraint_type = 'PRIMARY KEY'
		ORDER BY ku.ordinal_position`
)

type postgresDialect struct{}

func init() {
	Register(postgresDialect{})
}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) DriverName() string { return "pgx" }

func (postgresDialect) DSN(cfg config.DatabaseConfig) (string, error) {
	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	u := url.URL{
		Scheme: "postgresql",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		Path:   "/" + cfg.Name,
	}
	if cfg.User != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.User, cfg.Password)
		} else {
			u.User = url.User(cfg.User)
		}
	}

	dsn := u.String()
	if _, err := pgconn.ParseConfig(dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func (postgresDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (postgresDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (postgresDialect) DefaultValues() string { return "DEFAULT VALUES" }

func (postgresDialect) Returning(quotedColumn string) (string, string) {
	return "", "RETURNING " + quotedColumn
}

func (postgresDialect) ListTablesQuery() string { return postgresListTables }
func (postgresDialect) ColumnsQuery() string    { return postgresColumns }
func (postgresDialect) PrimaryKeyQuery() string { return postgresPrimaryKey }

func (postgresDialect) IsTableNotFound(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}

// The pgx driver does not implement LastInsertId; generated keys come back through RETURNING
func (postgresDialect) SupportsLastInsertID() bool { return false }

func (d postgresDialect) AuditTableDDL(table string) string {
	return `CREATE TABLE IF NOT EXISTS ` + d.QuoteIdent(table) + ` (
		id BIGSERIAL PRIMARY KEY,
		who VARCHAR(64) NOT NULL,
		time TIMESTAMP NOT NULL,
		table_name VARCHAR(255) NOT NULL,
		operation VARCHAR(16) NOT NULL,
		key_value VARCHAR(255)
	)`
}
