// Package sqlgen provides WHERE clause structures.
package sqlgen

// WhereClause represents a WHERE condition
type WhereClause struct {
	Conditions []Condition
	Operator   string // "AND" or "OR"
}

// Condition represents a single filter condition
type Condition struct {
	Field    string
	Operator string // "=", "!=", ">", "<", ">=", "<="
	Value    interface{}
}

// NewWhereClause creates a new WHERE clause
func NewWhereClause() *WhereClause {
	return &WhereClause{
		Conditions: []Condition{},
		Operator:   "AND",
	}
}

// AddCondition adds a condition to the WHERE clause
func (w *WhereClause) AddCondition(condition Condition) {
	w.Conditions = append(w.Conditions, condition)
}

// SetOperator sets the logical operator
func (w *WhereClause) SetOperator(op string) {
	w.Operator = op
}

// IsEmpty returns true if the WHERE clause is empty
func (w *WhereClause) IsEmpty() bool {
	return len(w.Conditions) == 0
}

// HasConditions returns true if there are any conditions
func (w *WhereClause) HasConditions() bool {
	return len(w.Conditions) > 0
}
