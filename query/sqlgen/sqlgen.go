// Package sqlgen generates SQL for different database providers.
package sqlgen

import (
	"fmt"
	"strings"
)

// Query represents a SQL query with arguments
type Query struct {
	SQL  string
	Args []interface{}
}

// Generator generates SQL for a specific provider
type Generator interface {
	GenerateSelect(table string, columns []string, where *WhereClause, orderBy []OrderBy, limit *int) *Query
	GenerateInsert(table string, columns []string, values []interface{}) *Query
	GenerateAggregate(table string, aggregates []AggregateFunction, groupBy *GroupBy, orderBy []OrderBy) *Query
	GenerateSelectWithWindows(table string, columns []string, windows []WindowFunction, orderBy []OrderBy) *Query
	GenerateWith(ctes []CTE, body *Query) *Query
}

// OrderBy represents an ORDER BY clause
type OrderBy struct {
	Field     string
	Direction string // "ASC" or "DESC"
}

// NewGenerator creates a new SQL generator for the given provider
func NewGenerator(provider string) Generator {
	switch provider {
	case "postgresql", "postgres":
		return &PostgresGenerator{}
	case "mysql":
		return &MySQLGenerator{}
	case "sqlite":
		return &SQLiteGenerator{}
	default:
		return &SQLiteGenerator{} // default to sqlite
	}
}

// buildOrderBy renders an ORDER BY clause with the given identifier quoter
func buildOrderBy(orderBy []OrderBy, quote func(string) string) string {
	orderParts := make([]string, len(orderBy))
	for i, ob := range orderBy {
		direction := "ASC"
		if ob.Direction == "DESC" || ob.Direction == "desc" {
			direction = "DESC"
		}
		orderParts[i] = fmt.Sprintf("%s %s", quote(ob.Field), direction)
	}
	return "ORDER BY " + strings.Join(orderParts, ", ")
}

// PostgresGenerator generates PostgreSQL SQL
type PostgresGenerator struct{}

func (g *PostgresGenerator) GenerateSelect(table string, columns []string, where *WhereClause, orderBy []OrderBy, limit *int) *Query {
	var parts []string
	var args []interface{}
	argIndex := 1

	// SELECT columns
	if len(columns) == 0 {
		parts = append(parts, "SELECT *")
	} else {
		parts = append(parts, fmt.Sprintf("SELECT %s", strings.Join(columns, ", ")))
	}

	// FROM table
	parts = append(parts, fmt.Sprintf("FROM %s", quoteIdentifier(table)))

	// WHERE clause
	if where != nil && !where.IsEmpty() {
		whereSQL, whereArgs := g.buildWhere(where, &argIndex)
		parts = append(parts, "WHERE "+whereSQL)
		args = append(args, whereArgs...)
	}

	// ORDER BY
	if len(orderBy) > 0 {
		parts = append(parts, buildOrderBy(orderBy, quoteIdentifier))
	}

	// LIMIT
	if limit != nil && *limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", argIndex))
		args = append(args, *limit)
	}

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: args,
	}
}

func (g *PostgresGenerator) GenerateInsert(table string, columns []string, values []interface{}) *Query {
	var parts []string
	var args []interface{}
	argIndex := 1

	parts = append(parts, fmt.Sprintf("INSERT INTO %s", quoteIdentifier(table)))

	// Columns
	if len(columns) > 0 {
		quotedCols := make([]string, len(columns))
		for i, col := range columns {
			quotedCols[i] = quoteIdentifier(col)
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(quotedCols, ", ")))
	}

	// VALUES
	if len(values) > 0 {
		placeholders := make([]string, len(values))
		for i := range values {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, values[i])
			argIndex++
		}
		parts = append(parts, fmt.Sprintf("VALUES (%s)", strings.Join(placeholders, ", ")))
	}

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: args,
	}
}

func (g *PostgresGenerator) buildWhere(where *WhereClause, argIndex *int) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	op := "AND"
	if where.Operator == "OR" || where.Operator == "or" {
		op = "OR"
	}

	for _, cond := range where.Conditions {
		switch cond.Operator {
		case "=", "!=", ">", "<", ">=", "<=":
			conditions = append(conditions, fmt.Sprintf("%s %s $%d", quoteIdentifier(cond.Field), cond.Operator, *argIndex))
			args = append(args, cond.Value)
			(*argIndex)++
		}
	}

	return strings.Join(conditions, " "+op+" "), args
}

// quoteIdentifier quotes an identifier for PostgreSQL
func quoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, name)
}

// MySQLGenerator generates MySQL SQL
type MySQLGenerator struct{}

func (g *MySQLGenerator) GenerateSelect(table string, columns []string, where *WhereClause, orderBy []OrderBy, limit *int) *Query {
	var parts []string
	var args []interface{}
	argIndex := 1

	// SELECT columns
	if len(columns) == 0 {
		parts = append(parts, "SELECT *")
	} else {
		parts = append(parts, fmt.Sprintf("SELECT %s", strings.Join(columns, ", ")))
	}

	// FROM table
	parts = append(parts, fmt.Sprintf("FROM %s", quoteIdentifierMySQL(table)))

	// WHERE clause
	if where != nil && !where.IsEmpty() {
		whereSQL, whereArgs := g.buildWhere(where, &argIndex)
		parts = append(parts, "WHERE "+whereSQL)
		args = append(args, whereArgs...)
	}

	// ORDER BY
	if len(orderBy) > 0 {
		parts = append(parts, buildOrderBy(orderBy, quoteIdentifierMySQL))
	}

	// LIMIT
	if limit != nil && *limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, *limit)
	}

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: args,
	}
}

func (g *MySQLGenerator) GenerateInsert(table string, columns []string, values []interface{}) *Query {
	var parts []string
	var args []interface{}

	parts = append(parts, fmt.Sprintf("INSERT INTO %s", quoteIdentifierMySQL(table)))

	// Columns
	if len(columns) > 0 {
		quotedCols := make([]string, len(columns))
		for i, col := range columns {
			quotedCols[i] = quoteIdentifierMySQL(col)
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(quotedCols, ", ")))
	}

	// VALUES
	if len(values) > 0 {
		placeholders := make([]string, len(values))
		for i := range values {
			placeholders[i] = "?"
			args = append(args, values[i])
		}
		parts = append(parts, fmt.Sprintf("VALUES (%s)", strings.Join(placeholders, ", ")))
	}

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: args,
	}
}

func (g *MySQLGenerator) buildWhere(where *WhereClause, argIndex *int) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	op := "AND"
	if where.Operator == "OR" || where.Operator == "or" {
		op = "OR"
	}

	for _, cond := range where.Conditions {
		switch cond.Operator {
		case "=", "!=", ">", "<", ">=", "<=":
			conditions = append(conditions, fmt.Sprintf("%s %s ?", quoteIdentifierMySQL(cond.Field), cond.Operator))
			args = append(args, cond.Value)
		}
	}

	return strings.Join(conditions, " "+op+" "), args
}

func quoteIdentifierMySQL(name string) string {
	return fmt.Sprintf("`%s`", name)
}

// SQLiteGenerator generates SQLite SQL
type SQLiteGenerator struct{}

func (g *SQLiteGenerator) GenerateSelect(table string, columns []string, where *WhereClause, orderBy []OrderBy, limit *int) *Query {
	var parts []string
	var args []interface{}
	argIndex := 1

	// SELECT columns
	if len(columns) == 0 {
		parts = append(parts, "SELECT *")
	} else {
		parts = append(parts, fmt.Sprintf("SELECT %s", strings.Join(columns, ", ")))
	}

	// FROM table
	parts = append(parts, fmt.Sprintf("FROM %s", quoteIdentifierSQLite(table)))

	// WHERE clause
	if where != nil && !where.IsEmpty() {
		whereSQL, whereArgs := g.buildWhere(where, &argIndex)
		parts = append(parts, "WHERE "+whereSQL)
		args = append(args, whereArgs...)
	}

	// ORDER BY
	if len(orderBy) > 0 {
		parts = append(parts, buildOrderBy(orderBy, quoteIdentifierSQLite))
	}

	// LIMIT
	if limit != nil && *limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, *limit)
	}

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: args,
	}
}

func (g *SQLiteGenerator) GenerateInsert(table string, columns []string, values []interface{}) *Query {
	var parts []string
	var args []interface{}

	parts = append(parts, fmt.Sprintf("INSERT INTO %s", quoteIdentifierSQLite(table)))

	// Columns
	if len(columns) > 0 {
		quotedCols := make([]string, len(columns))
		for i, col := range columns {
			quotedCols[i] = quoteIdentifierSQLite(col)
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(quotedCols, ", ")))
	}

	// VALUES
	if len(values) > 0 {
		placeholders := make([]string, len(values))
		for i := range values {
			placeholders[i] = "?"
			args = append(args, values[i])
		}
		parts = append(parts, fmt.Sprintf("VALUES (%s)", strings.Join(placeholders, ", ")))
	}

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: args,
	}
}

func (g *SQLiteGenerator) buildWhere(where *WhereClause, argIndex *int) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	op := "AND"
	if where.Operator == "OR" || where.Operator == "or" {
		op = "OR"
	}

	for _, cond := range where.Conditions {
		switch cond.Operator {
		case "=", "!=", ">", "<", ">=", "<=":
			conditions = append(conditions, fmt.Sprintf("%s %s ?", quoteIdentifierSQLite(cond.Field), cond.Operator))
			args = append(args, cond.Value)
		}
	}

	return strings.Join(conditions, " "+op+" "), args
}

func quoteIdentifierSQLite(name string) string {
	return fmt.Sprintf(`"%s"`, name)
}
