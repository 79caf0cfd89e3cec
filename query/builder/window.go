// Package builder provides window function building functionality
package builder

import (
	"github.com/satishbabariya/climasql/query/sqlgen"
)

// WindowBuilder builds window functions
type WindowBuilder struct {
	functions []sqlgen.WindowFunction
}

// NewWindowBuilder creates a new window function builder
func NewWindowBuilder() *WindowBuilder {
	return &WindowBuilder{
		functions: []sqlgen.WindowFunction{},
	}
}

// RowNumber adds ROW_NUMBER() OVER window function
func (w *WindowBuilder) RowNumber(alias string, window *sqlgen.WindowDefinition) *WindowBuilder {
	w.functions = append(w.functions, sqlgen.WindowFunction{
		Function: "ROW_NUMBER",
		Field:    "",
		Alias:    alias,
		Window:   window,
	})
	return w
}

// Rank adds RANK() OVER window function
func (w *WindowBuilder) Rank(alias string, window *sqlgen.WindowDefinition) *WindowBuilder {
	w.functions = append(w.functions, sqlgen.WindowFunction{
		Function: "RANK",
		Field:    "",
		Alias:    alias,
		Window:   window,
	})
	return w
}

// DenseRank adds DENSE_RANK() OVER window function
func (w *WindowBuilder) DenseRank(alias string, window *sqlgen.WindowDefinition) *WindowBuilder {
	w.functions = append(w.functions, sqlgen.WindowFunction{
		Function: "DENSE_RANK",
		Field:    "",
		Alias:    alias,
		Window:   window,
	})
	return w
}

// Sum adds SUM(field) OVER window function
func (w *WindowBuilder) Sum(field string, alias string, window *sqlgen.WindowDefinition) *WindowBuilder {
	w.functions = append(w.functions, sqlgen.WindowFunction{
		Function: "SUM",
		Field:    field,
		Alias:    alias,
		Window:   window,
	})
	return w
}

// Avg adds AVG(field) OVER window function
func (w *WindowBuilder) Avg(field string, alias string, window *sqlgen.WindowDefinition) *WindowBuilder {
	w.functions = append(w.functions, sqlgen.WindowFunction{
		Function: "AVG",
		Field:    field,
		Alias:    alias,
		Window:   window,
	})
	return w
}

// Count adds COUNT(field) OVER window function
func (w *WindowBuilder) Count(field string, alias string, window *sqlgen.WindowDefinition) *WindowBuilder {
	if field == "" {
		field = "*"
	}
	w.functions = append(w.functions, sqlgen.WindowFunction{
		Function: "COUNT",
		Field:    field,
		Alias:    alias,
		Window:   window,
	})
	return w
}

// Build returns the list of window functions
func (w *WindowBuilder) Build() []sqlgen.WindowFunction {
	return w.functions
}
