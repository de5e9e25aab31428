package statements_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/statements"
)

// backtickDialect renders like MySQL
type backtickDialect struct{}

func (backtickDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
func (backtickDialect) Placeholder(int) string { return "?" }
func (backtickDialect) DefaultValues() string { return "() VALUES ()" }
func (backtickDialect) Returning(string) (string, string) { return "", "" }

// dollarDialect renders like PostgreSQL
type dollarDialect struct{}

func (dollarDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
func (dollarDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }
func (dollarDialect) DefaultValues() string { return "DEFAULT VALUES" }
func (dollarDialect) Returning(col string) (string, string) {
	return "", "RETURNING " + col
}

// outputDialect renders like SQL Server
type outputDialect struct{}

func (outputDialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
func (outputDialect) Placeholder(n int) string { return fmt.Sprintf("@p%d", n) }
func (outputDialect) DefaultValues() string { return "DEFAULT VALUES" }
func (outputDialect) Returning(col string) (string, string) {
	return "OUTPUT INSERTED." + col, ""
}

func payload(fields ...models.Field) models.Payload {
	return models.NewPayload(fields...)
}

func field(col string, v models.Value) models.Field {
	return models.Field{Column: col, Value: v}
}

func TestInsert(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name      string
		dialect   statements.Dialect
		table     string
		payload   models.Payload
		returning string
		wantSQL   string
		wantArgs  []any
		wantRet   bool
	}{
		{
			name:     "columns in payload order",
			dialect:  backtickDialect{},
			table:    "users",
			payload:  payload(field("name", models.Present("A")), field("email", models.Present("a@x.com"))),
			wantSQL:  "INSERT INTO `users` (`name`, `email`) VALUES (?, ?)",
			wantArgs: []any{"A", "a@x.com"},
		},
		{
			name:     "absent values are omitted and null is kept",
			dialect:  backtickDialect{},
			table:    "users",
			payload:  payload(field("name", models.Absent()), field("email", models.Null())),
			wantSQL:  "INSERT INTO `users` (`email`) VALUES (?)",
			wantArgs: []any{nil},
		},
		{
			name:     "empty payload inserts defaults",
			dialect:  backtickDialect{},
			table:    "users",
			payload:  payload(),
			wantSQL:  "INSERT INTO `users` () VALUES ()",
			wantArgs: []any{},
		},
		{
			name:     "all absent inserts defaults",
			dialect:  dollarDialect{},
			table:    "users",
			payload:  payload(field("name", models.Absent())),
			wantSQL:  `INSERT INTO "users" DEFAULT VALUES`,
			wantArgs: []any{},
		},
		{
			name:     "malicious identifiers are escaped",
			dialect:  backtickDialect{},
			table:    "users`; DROP TABLE x; --",
			payload:  payload(field("a`b", models.Present(1))),
			wantSQL:  "INSERT INTO `users``; DROP TABLE x; --` (`a``b`) VALUES (?)",
			wantArgs: []any{1},
		},
		{
			name:      "returning suffix",
			dialect:   dollarDialect{},
			table:     "users",
			payload:   payload(field("name", models.Present("A"))),
			returning: "id",
			wantSQL:   `INSERT INTO "users" ("name") VALUES ($1) RETURNING "id"`,
			wantArgs:  []any{"A"},
			wantRet:   true,
		},
		{
			name:      "output clause",
			dialect:   outputDialect{},
			table:     "users",
			payload:   payload(field("name", models.Present("A"))),
			returning: "id",
			wantSQL:   "INSERT INTO [users] ([name]) OUTPUT INSERTED.[id] VALUES (@p1)",
			wantArgs:  []any{"A"},
			wantRet:   true,
		},
		{
			name:      "output clause with defaults",
			dialect:   outputDialect{},
			table:     "users",
			payload:   payload(),
			returning: "id",
			wantSQL:   "INSERT INTO [users] OUTPUT INSERTED.[id] DEFAULT VALUES",
			wantArgs:  []any{},
			wantRet:   true,
		},
		{
			name:      "dialect without returning support",
			dialect:   backtickDialect{},
			table:     "users",
			payload:   payload(field("name", models.Present("A"))),
			returning: "id",
			wantSQL:   "INSERT INTO `users` (`name`) VALUES (?)",
			wantArgs:  []any{"A"},
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := statements.Insert(tc.dialect, tc.table, tc.payload, tc.returning)
			assert.Equal(t, tc.wantSQL, got.SQL)
			assert.Equal(t, tc.wantArgs, got.Args)
			assert.Equal(t, tc.wantRet, got.Returning)
		})
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name     string
		dialect  statements.Dialect
		payload  models.Payload
		wantOK   bool
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "sets only provided columns",
			dialect:  backtickDialect{},
			payload:  payload(field("email", models.Present("b@x.com"))),
			wantOK:   true,
			wantSQL:  "UPDATE `users` SET `email` = ? WHERE `id` = ?",
			wantArgs: []any{"b@x.com", "7"},
		},
		{
			name:     "primary key is never rewritten",
			dialect:  dollarDialect{},
			payload:  payload(field("id", models.Present(99)), field("name", models.Present("B")), field("email", models.Null())),
			wantOK:   true,
			wantSQL:  `UPDATE "users" SET "name" = $1, "email" = $2 WHERE "id" = $3`,
			wantArgs: []any{"B", nil, "7"},
		},
		{
			name:    "only primary key and absent values",
			dialect: backtickDialect{},
			payload: payload(field("id", models.Present(99)), field("name", models.Absent())),
			wantOK:  false,
		},
		{
			name:    "empty payload",
			dialect: backtickDialect{},
			payload: payload(),
			wantOK:  false,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := statements.Update(tc.dialect, "users", tc.payload, "id", "7")
			assert.Equal(t, tc.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tc.wantSQL, got.SQL)
			assert.Equal(t, tc.wantArgs, got.Args)
			assert.False(t, got.Returning)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	got := statements.Delete(outputDialect{}, "order]items", "id", "3")
	assert.Equal(t, "DELETE FROM [order]]items] WHERE [id] = @p1", got.SQL)
	assert.Equal(t, []any{"3"}, got.Args)
}

func TestSelectAll(t *testing.T) {
	t.Parallel()

	got := statements.SelectAll(dollarDialect{}, `we"ird`)
	assert.Equal(t, `SELECT * FROM "we""ird"`, got.SQL)
	assert.Empty(t, got.Args)
}

func TestCheckIdentifier(t *testing.T) {
	t.Parallel()

	assert.NoError(t, statements.CheckIdentifier("table", "users"))
	assert.NoError(t, statements.CheckIdentifier("table", "odd name`\"]"))

	err := statements.CheckIdentifier("table", "  ")
	assert.ErrorIs(t, err, models.ErrInvalidIdentifier)

	err = statements.CheckIdentifier("column", "a\x00b")
	assert.ErrorIs(t, err, models.ErrInvalidIdentifier)
	assert.Contains(t, err.Error(), "NUL")
}
