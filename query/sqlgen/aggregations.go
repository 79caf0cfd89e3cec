// Package sqlgen provides aggregation query generation.
package sqlgen

import (
	"fmt"
	"strings"
)

// AggregateFunction represents an aggregation function
type AggregateFunction struct {
	Function string // "COUNT", "SUM", "AVG", "MIN", "MAX"
	Field    string // Field to aggregate on ("*" for COUNT(*))
	Alias    string // Alias for the result
}

// GroupBy represents a GROUP BY clause
type GroupBy struct {
	Fields []string
}

// buildAggregateSelect renders the SELECT list for an aggregation query.
// GROUP BY fields come first so the grouped key leads each output row.
func buildAggregateSelect(aggregates []AggregateFunction, groupBy *GroupBy, quote func(string) string) string {
	var selectParts []string

	if groupBy != nil && len(groupBy.Fields) > 0 {
		for _, field := range groupBy.Fields {
			selectParts = append(selectParts, quote(field))
		}
	}

	for _, agg := range aggregates {
		if agg.Field == "*" {
			selectParts = append(selectParts, fmt.Sprintf("%s(*) AS %s", agg.Function, quote(agg.Alias)))
		} else {
			selectParts = append(selectParts, fmt.Sprintf("%s(%s) AS %s", agg.Function, quote(agg.Field), quote(agg.Alias)))
		}
	}

	return "SELECT " + strings.Join(selectParts, ", ")
}

// generateAggregate builds an aggregation query with the given identifier quoter
func generateAggregate(table string, aggregates []AggregateFunction, groupBy *GroupBy, orderBy []OrderBy, quote func(string) string) *Query {
	var parts []string

	parts = append(parts, buildAggregateSelect(aggregates, groupBy, quote))

	// FROM table
	parts = append(parts, fmt.Sprintf("FROM %s", quote(table)))

	// GROUP BY
	if groupBy != nil && len(groupBy.Fields) > 0 {
		groupByParts := make([]string, len(groupBy.Fields))
		for i, field := range groupBy.Fields {
			groupByParts[i] = quote(field)
		}
		parts = append(parts, "GROUP BY "+strings.Join(groupByParts, ", "))
	}

	// ORDER BY (may reference aggregate aliases)
	if len(orderBy) > 0 {
		parts = append(parts, buildOrderBy(orderBy, quote))
	}

	return &Query{
		SQL:  strings.Join(parts, " "),
		Args: []interface{}{},
	}
}

// GenerateAggregate generates an aggregation query for PostgreSQL
func (g *PostgresGenerator) GenerateAggregate(table string, aggregates []AggregateFunction, groupBy *GroupBy, orderBy []OrderBy) *Query {
	return generateAggregate(table, aggregates, groupBy, orderBy, quoteIdentifier)
}

// GenerateAggregate generates an aggregation query for MySQL
func (g *MySQLGenerator) GenerateAggregate(table string, aggregates []AggregateFunction, groupBy *GroupBy, orderBy []OrderBy) *Query {
	return generateAggregate(table, aggregates, groupBy, orderBy, quoteIdentifierMySQL)
}

// GenerateAggregate generates an aggregation query for SQLite
func (g *SQLiteGenerator) GenerateAggregate(table string, aggregates []AggregateFunction, groupBy *GroupBy, orderBy []OrderBy) *Query {
	return generateAggregate(table, aggregates, groupBy, orderBy, quoteIdentifierSQLite)
}
