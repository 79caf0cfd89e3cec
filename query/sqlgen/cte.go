// Package sqlgen provides CTE (Common Table Expression) query generation.
package sqlgen

import (
	"strings"
)

// CTE represents a Common Table Expression
type CTE struct {
	Name      string
	Query     *Query
	Columns   []string // Optional column names for the CTE
	Recursive bool     // Whether this is a RECURSIVE CTE
}

// generateWith prefixes a body query with a WITH clause.
// CTE arguments are concatenated ahead of the body's arguments.
func generateWith(ctes []CTE, body *Query, quote func(string) string) *Query {
	if len(ctes) == 0 {
		return body
	}

	var args []interface{}

	isRecursive := false
	for _, cte := range ctes {
		if cte.Recursive {
			isRecursive = true
			break
		}
	}

	keyword := "WITH"
	if isRecursive {
		keyword = "WITH RECURSIVE"
	}

	cteParts := make([]string, 0, len(ctes))
	for _, cte := range ctes {
		cteSQL := quote(cte.Name)
		if len(cte.Columns) > 0 {
			colParts := make([]string, len(cte.Columns))
			for i, col := range cte.Columns {
				colParts[i] = quote(col)
			}
			cteSQL += " (" + strings.Join(colParts, ", ") + ")"
		}
		cteSQL += " AS (" + cte.Query.SQL + ")"
		cteParts = append(cteParts, cteSQL)
		args = append(args, cte.Query.Args...)
	}

	args = append(args, body.Args...)

	return &Query{
		SQL:  keyword + " " + strings.Join(cteParts, ", ") + " " + body.SQL,
		Args: args,
	}
}

// GenerateWith generates a CTE query for PostgreSQL
func (g *PostgresGenerator) GenerateWith(ctes []CTE, body *Query) *Query {
	return generateWith(ctes, body, quoteIdentifier)
}

// GenerateWith generates a CTE query for MySQL
func (g *MySQLGenerator) GenerateWith(ctes []CTE, body *Query) *Query {
	return generateWith(ctes, body, quoteIdentifierMySQL)
}

// GenerateWith generates a CTE query for SQLite
func (g *SQLiteGenerator) GenerateWith(ctes []CTE, body *Query) *Query {
	return generateWith(ctes, body, quoteIdentifierSQLite)
}
