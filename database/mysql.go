package database

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/blogem/table-admin/config"
)

// erNoSuchTable is MySQL's ER_NO_SUCH_TABLE
const erNoSuchTable = 1146

const (
	mysqlListTables = `
		SELECT TABLE_NAME
		FROM information_schema.TABLES
		WHERE TABLE_SCHEMA = DATABASE()
		ORDER BY TABLE_NAME`

	mysqlColumns = `
		SELECT COLUMN_NAME, COLUMN_TYPE, IS_NULLABLE, COLUMN_KEY, COLUMN_DEFAULT, EXTRA
		FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = DATABASE()
		  AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION`

	mysqlPrimaryKey = `
		SELECT COLUMN_NAME
		FROM information_schema.KEY_COLUMN_USAGE
		WHERE TABLE_SCHEMA = DATABASE()
		  AND TABLE_NAME = ?
		  AND CONSTRAINT_NAME = 'PRIMARY'
		ORDER BY ORDINAL_POSITION`
)

type mysqlDialect struct{}

func init() {
	Register(mysqlDialect{})
}

func (mysqlDialect) Name() string       { return "mysql" }
func (mysqlDialect) DriverName() string { return "mysql" }

func (mysqlDialect) DSN(cfg config.DatabaseConfig) (string, error) {
	port := cfg.Port
	if port == 0 {
		port = 3306
	}

	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	mc.DBName = cfg.Name
	return mc.FormatDSN(), nil
}

func (mysqlDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (mysqlDialect) Placeholder(int) string { return "?" }

func (mysqlDialect) DefaultValues() string { return "() VALUES ()" }

func (mysqlDialect) Returning(string) (string, string) { return "", "" }

func (mysqlDialect) ListTablesQuery() string { return mysqlListTables }
func (mysqlDialect) ColumnsQuery() string    { return mysqlColumns }
func (mysqlDialect) PrimaryKeyQuery() string { return mysqlPrimaryKey }

func (mysqlDialect) IsTableNotFound(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == erNoSuchTable
}

func (mysqlDialect) SupportsLastInsertID() bool { return true }

func (d mysqlDialect) AuditTableDDL(table string) string {
	return `CREATE TABLE IF NOT EXISTS ` + d.QuoteIdent(table) + ` (
		id INT AUTO_INCREMENT PRIMARY KEY,
		who VARCHAR(64) NOT NULL,
		time DATETIME NOT NULL,
		table_name VARCHAR(255) NOT NULL,
		operation VARCHAR(16) NOT NULL,
		key_value VARCHAR(255) NULL
	)`
}
