// Package statements synthesizes parameterized insert, update and delete
// statements for tables whose schema is only known at request time.
//
// Identifiers always go through the Dialect's quoting and values are always
// bound positionally; nothing from a payload is concatenated into SQL text.
package statements

import (
	"strings"

	"github.com/blogem/table-admin/models"
)

// Dialect is the store-specific part of statement rendering
type Dialect interface {
	// QuoteIdent escapes a table or column name for use as an identifier
	QuoteIdent(name string) string
	// Placeholder returns the bind marker for the n-th (1-based) argument
	Placeholder(n int) string
	// DefaultValues is the insert tail used when no column is provided
	DefaultValues() string
	// Returning returns the clauses that hand back a generated key, or two empty strings
	Returning(quotedColumn string) (output, suffix string)
}

// Statement is a rendered SQL statement with its positional arguments
type Statement struct {
	SQL  string
	Args []any
	// Returning is set when the statement yields the generated key as a result row
	Returning bool
}

// Insert builds an insert of every non-absent payload entry in payload order.
// With nothing left it inserts a row made of store defaults. When returning
// names a column and the dialect supports it, the generated value of that
// column is returned as a row.
func Insert(d Dialect, table string, payload models.Payload, returning string) Statement {
	fields := settable(payload, "")

	var output, suffix string
	if returning != "" {
		output, suffix = d.Returning(d.QuoteIdent(returning))
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(d.QuoteIdent(table))

	args := make([]any, 0, len(fields))
	if len(fields) == 0 {
		if output != "" {
			b.WriteString(" ")
			b.WriteString(output)
		}
		b.WriteString(" ")
		b.WriteString(d.DefaultValues())
	} else {
		columns := make([]string, len(fields))
		values := make([]string, len(fields))
		for i, f := range fields {
			columns[i] = d.QuoteIdent(f.Column)
			values[i] = d.Placeholder(i + 1)
			args = append(args, f.Value.Interface())
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(columns, ", "))
		b.WriteString(")")
		if output != "" {
			b.WriteString(" ")
			b.WriteString(output)
		}
		b.WriteString(" VALUES (")
		b.WriteString(strings.Join(values, ", "))
		b.WriteString(")")
	}

	if suffix != "" {
		b.WriteString(" ")
		b.WriteString(suffix)
	}

	return Statement{
		SQL:       b.String(),
		Args:      args,
		Returning: output != "" || suffix != "",
	}
}

// Update builds an update of every non-absent payload entry except the primary
// key, scoped to the row whose primary key equals keyValue. It returns false
// when there is nothing to set.
func Update(d Dialect, table string, payload models.Payload, primaryKey string, keyValue any) (Statement, bool) {
	fields := settable(payload, primaryKey)
	if len(fields) == 0 {
		return Statement{}, false
	}

	segments := make([]string, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		segments[i] = d.QuoteIdent(f.Column) + " = " + d.Placeholder(i+1)
		args = append(args, f.Value.Interface())
	}
	args = append(args, keyValue)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(d.QuoteIdent(table))
	b.WriteString(" SET ")
	b.WriteString(strings.Join(segments, ", "))
	b.WriteString(" WHERE ")
	b.WriteString(d.QuoteIdent(primaryKey))
	b.WriteString(" = ")
	b.WriteString(d.Placeholder(len(fields) + 1))

	return Statement{SQL: b.String(), Args: args}, true
}

// Delete builds a single-row delete scoped by primary key equality
func Delete(d Dialect, table, primaryKey string, keyValue any) Statement {
	return Statement{
		SQL:  "DELETE FROM " + d.QuoteIdent(table) + " WHERE " + d.QuoteIdent(primaryKey) + " = " + d.Placeholder(1),
		Args: []any{keyValue},
	}
}

// SelectAll builds a full scan of a table
func SelectAll(d Dialect, table string) Statement {
	return Statement{SQL: "SELECT * FROM " + d.QuoteIdent(table)}
}

// settable returns the payload fields that belong in a statement
func settable(payload models.Payload, exclude string) []models.Field {
	var out []models.Field
	for _, f := range payload.Fields() {
		if f.Value.IsAbsent() {
			continue
		}
		if exclude != "" && f.Column == exclude {
			continue
		}
		out = append(out, f)
	}
	return out
}

// CheckIdentifier rejects names that no store can quote: empty names and names containing NUL
func CheckIdentifier(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return &models.ValidationError{Field: kind, Message: kind + " name must not be empty", Cause: models.ErrInvalidIdentifier}
	}
	if strings.ContainsRune(name, 0) {
		return &models.ValidationError{Field: kind, Message: kind + " name contains a NUL byte", Cause: models.ErrInvalidIdentifier}
	}
	return nil
}
