// Package builder provides CTE (Common Table Expression) building functionality
package builder

import (
	"github.com/satishbabariya/climasql/query/sqlgen"
)

// CTEBuilder builds CTEs
type CTEBuilder struct {
	ctes []sqlgen.CTE
}

// NewCTEBuilder creates a new CTE builder
func NewCTEBuilder() *CTEBuilder {
	return &CTEBuilder{
		ctes: []sqlgen.CTE{},
	}
}

// With adds a CTE to the builder
func (c *CTEBuilder) With(name string, query *sqlgen.Query) *CTEBuilder {
	c.ctes = append(c.ctes, sqlgen.CTE{
		Name:    name,
		Query:   query,
		Columns: []string{},
	})
	return c
}

// WithColumns adds a CTE with explicit column names
func (c *CTEBuilder) WithColumns(name string, columns []string, query *sqlgen.Query) *CTEBuilder {
	c.ctes = append(c.ctes, sqlgen.CTE{
		Name:    name,
		Query:   query,
		Columns: columns,
	})
	return c
}

// Build returns the list of CTEs
func (c *CTEBuilder) Build() []sqlgen.CTE {
	return c.ctes
}
