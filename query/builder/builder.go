// Package builder provides a fluent query builder API.
package builder

import (
	"github.com/satishbabariya/climasql/query/sqlgen"
)

// WhereBuilder builds WHERE clauses
type WhereBuilder struct {
	conditions []sqlgen.Condition
	operator   string
}

// NewWhereBuilder creates a new WHERE builder
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		conditions: []sqlgen.Condition{},
		operator:   "AND",
	}
}

// Equals adds an equality condition
func (w *WhereBuilder) Equals(field string, value interface{}) *WhereBuilder {
	w.conditions = append(w.conditions, sqlgen.Condition{
		Field:    field,
		Operator: "=",
		Value:    value,
	})
	return w
}

// NotEquals adds a not-equals condition
func (w *WhereBuilder) NotEquals(field string, value interface{}) *WhereBuilder {
	w.conditions = append(w.conditions, sqlgen.Condition{
		Field:    field,
		Operator: "!=",
		Value:    value,
	})
	return w
}

// GreaterThan adds a greater-than condition
func (w *WhereBuilder) GreaterThan(field string, value interface{}) *WhereBuilder {
	w.conditions = append(w.conditions, sqlgen.Condition{
		Field:    field,
		Operator: ">",
		Value:    value,
	})
	return w
}

// LessThan adds a less-than condition
func (w *WhereBuilder) LessThan(field string, value interface{}) *WhereBuilder {
	w.conditions = append(w.conditions, sqlgen.Condition{
		Field:    field,
		Operator: "<",
		Value:    value,
	})
	return w
}

// GreaterOrEqual adds a greater-or-equal condition
func (w *WhereBuilder) GreaterOrEqual(field string, value interface{}) *WhereBuilder {
	w.conditions = append(w.conditions, sqlgen.Condition{
		Field:    field,
		Operator: ">=",
		Value:    value,
	})
	return w
}

// LessOrEqual adds a less-or-equal condition
func (w *WhereBuilder) LessOrEqual(field string, value interface{}) *WhereBuilder {
	w.conditions = append(w.conditions, sqlgen.Condition{
		Field:    field,
		Operator: "<=",
		Value:    value,
	})
	return w
}

// Or sets the logical operator to OR
func (w *WhereBuilder) Or() *WhereBuilder {
	w.operator = "OR"
	return w
}

// Build returns the WHERE clause
func (w *WhereBuilder) Build() *sqlgen.WhereClause {
	return &sqlgen.WhereClause{
		Conditions: w.conditions,
		Operator:   w.operator,
	}
}

// OrderByBuilder builds ORDER BY clauses
type OrderByBuilder struct {
	orderBy []sqlgen.OrderBy
}

// NewOrderByBuilder creates a new ORDER BY builder
func NewOrderByBuilder() *OrderByBuilder {
	return &OrderByBuilder{
		orderBy: []sqlgen.OrderBy{},
	}
}

// Asc adds an ascending sort key
func (o *OrderByBuilder) Asc(field string) *OrderByBuilder {
	o.orderBy = append(o.orderBy, sqlgen.OrderBy{
		Field:     field,
		Direction: "ASC",
	})
	return o
}

// Desc adds a descending sort key
func (o *OrderByBuilder) Desc(field string) *OrderByBuilder {
	o.orderBy = append(o.orderBy, sqlgen.OrderBy{
		Field:     field,
		Direction: "DESC",
	})
	return o
}

// Build returns the ORDER BY clauses
func (o *OrderByBuilder) Build() []sqlgen.OrderBy {
	return o.orderBy
}

// AggregateBuilder builds aggregation queries
type AggregateBuilder struct {
	table      string
	aggregates []sqlgen.AggregateFunction
	groupBy    []string
	orderBy    []sqlgen.OrderBy
}

// NewAggregateBuilder creates a new aggregation builder for a table
func NewAggregateBuilder(table string) *AggregateBuilder {
	return &AggregateBuilder{
		table:      table,
		aggregates: []sqlgen.AggregateFunction{},
		groupBy:    []string{},
		orderBy:    []sqlgen.OrderBy{},
	}
}

// Avg adds an AVG(field) aggregate
func (a *AggregateBuilder) Avg(field string, alias string) *AggregateBuilder {
	a.aggregates = append(a.aggregates, sqlgen.AggregateFunction{
		Function: "AVG",
		Field:    field,
		Alias:    alias,
	})
	return a
}

// Count adds a COUNT(field) aggregate ("*" counts rows)
func (a *AggregateBuilder) Count(field string, alias string) *AggregateBuilder {
	if field == "" {
		field = "*"
	}
	a.aggregates = append(a.aggregates, sqlgen.AggregateFunction{
		Function: "COUNT",
		Field:    field,
		Alias:    alias,
	})
	return a
}

// Sum adds a SUM(field) aggregate
func (a *AggregateBuilder) Sum(field string, alias string) *AggregateBuilder {
	a.aggregates = append(a.aggregates, sqlgen.AggregateFunction{
		Function: "SUM",
		Field:    field,
		Alias:    alias,
	})
	return a
}

// Min adds a MIN(field) aggregate
func (a *AggregateBuilder) Min(field string, alias string) *AggregateBuilder {
	a.aggregates = append(a.aggregates, sqlgen.AggregateFunction{
		Function: "MIN",
		Field:    field,
		Alias:    alias,
	})
	return a
}

// Max adds a MAX(field) aggregate
func (a *AggregateBuilder) Max(field string, alias string) *AggregateBuilder {
	a.aggregates = append(a.aggregates, sqlgen.AggregateFunction{
		Function: "MAX",
		Field:    field,
		Alias:    alias,
	})
	return a
}

// GroupBy sets the GROUP BY fields
func (a *AggregateBuilder) GroupBy(fields ...string) *AggregateBuilder {
	a.groupBy = fields
	return a
}

// OrderByAsc adds an ascending sort key (field or aggregate alias)
func (a *AggregateBuilder) OrderByAsc(field string) *AggregateBuilder {
	a.orderBy = append(a.orderBy, sqlgen.OrderBy{
		Field:     field,
		Direction: "ASC",
	})
	return a
}

// OrderByDesc adds a descending sort key (field or aggregate alias)
func (a *AggregateBuilder) OrderByDesc(field string) *AggregateBuilder {
	a.orderBy = append(a.orderBy, sqlgen.OrderBy{
		Field:     field,
		Direction: "DESC",
	})
	return a
}

// Build generates the aggregation query with the given generator
func (a *AggregateBuilder) Build(gen sqlgen.Generator) *sqlgen.Query {
	var groupBy *sqlgen.GroupBy
	if len(a.groupBy) > 0 {
		groupBy = &sqlgen.GroupBy{Fields: a.groupBy}
	}
	return gen.GenerateAggregate(a.table, a.aggregates, groupBy, a.orderBy)
}
