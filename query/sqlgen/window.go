// Package sqlgen provides window function query generation.
package sqlgen

import (
	"fmt"
	"strings"
)

// WindowFunction represents a window function (e.g., ROW_NUMBER, RANK, AVG OVER)
type WindowFunction struct {
	Function string // "ROW_NUMBER", "RANK", "DENSE_RANK", "SUM", "AVG", "COUNT", "MAX", "MIN"
	Field    string // Field to operate on (empty for ROW_NUMBER, RANK, etc.)
	Alias    string // Alias for the result
	Window   *WindowDefinition
}

// WindowDefinition defines the window frame
type WindowDefinition struct {
	PartitionByFields []string  // PARTITION BY columns
	OrderByFields     []OrderBy // ORDER BY for the window
}

// NewWindowDefinition creates a new window definition
func NewWindowDefinition() *WindowDefinition {
	return &WindowDefinition{
		PartitionByFields: []string{},
		OrderByFields:     []OrderBy{},
	}
}

// PartitionBy sets the PARTITION BY clause
func (w *WindowDefinition) PartitionBy(fields ...string) *WindowDefinition {
	w.PartitionByFields = fields
	return w
}

// OrderBy adds an ORDER BY clause to the window
func (w *WindowDefinition) OrderBy(field string, direction string) *WindowDefinition {
	w.OrderByFields = append(w.OrderByFields, OrderBy{
		Field:     field,
		Direction: direction,
	})
	return w
}

// renderWindowFunction renders one window term with the given identifier quoter
func renderWindowFunction(wf WindowFunction, quote func(string) string) string {
	var fn string
	if wf.Field == "" {
		fn = fmt.Sprintf("%s()", wf.Function)
	} else {
		fn = fmt.Sprintf("%s(%s)", wf.Function, quote(wf.Field))
	}

	var overParts []string
	if wf.Window != nil {
		if len(wf.Window.PartitionByFields) > 0 {
			partitionParts := make([]string, len(wf.Window.PartitionByFields))
			for i, field := range wf.Window.PartitionByFields {
				partitionParts[i] = quote(field)
			}
			overParts = append(overParts, "PARTITION BY "+strings.Join(partitionParts, ", "))
		}
		if len(wf.Window.OrderByFields) > 0 {
			overParts = append(overParts, buildOrderBy(wf.Window.OrderByFields, quote))
		}
	}

	return fmt.Sprintf("%s OVER (%s) AS %s", fn, strings.Join(overParts, " "), quote(wf.Alias))
}

// generateSelectWithWindows builds a SELECT with window terms appended to the column list
func generateSelectWithWindows(table string, columns []string, windows []WindowFunction, orderBy []OrderBy, quote func(string) string) *Query {
	var parts []string

	selectParts := make([]string, 0, len(columns)+len(windows))
	for _, col := range columns {
		selectParts = append(selectParts, quote(col))
	}
	for _, wf := range windows {
		selectParts = append(selectParts, renderWindowFunction(wf, quote))
	}
	parts = append(parts, "SELECT "+strings.Join(selectParts, ", "))

	// FROM table
	parts = append(parts, fmt.Sprintf("FROM %s", quote(table)))

	// ORDER BY (may reference window aliases)
	if len(orderBy) > 0 {
		parts = append(parts, buildOrderBy(orderBy, quote))
	}

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: []interface{}{},
	}
}

// GenerateSelectWithWindows generates a window function query for PostgreSQL
func (g *PostgresGenerator) GenerateSelectWithWindows(table string, columns []string, windows []WindowFunction, orderBy []OrderBy) *Query {
	return generateSelectWithWindows(table, columns, windows, orderBy, quoteIdentifier)
}

// GenerateSelectWithWindows generates a window function query for MySQL
func (g *MySQLGenerator) GenerateSelectWithWindows(table string, columns []string, windows []WindowFunction, orderBy []OrderBy) *Query {
	return generateSelectWithWindows(table, columns, windows, orderBy, quoteIdentifierMySQL)
}

// GenerateSelectWithWindows generates a window function query for SQLite
func (g *SQLiteGenerator) GenerateSelectWithWindows(table string, columns []string, windows []WindowFunction, orderBy []OrderBy) *Query {
	return generateSelectWithWindows(table, columns, windows, orderBy, quoteIdentifierSQLite)
}
