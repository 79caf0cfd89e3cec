// Package analysis provides a small tabular structure for query results
// and the numeric summaries computed over it.
package analysis

import (
	"fmt"
	"strconv"

	"github.com/satishbabariya/climasql/dataset"
)

// Frame holds tabular data as ordered columns with row-major cells
type Frame struct {
	columns []string
	rows    [][]interface{}
}

// NewFrame creates an empty frame with the given columns
func NewFrame(columns ...string) *Frame {
	return &Frame{
		columns: columns,
		rows:    [][]interface{}{},
	}
}

// FromReadings builds a frame from climate readings, one row per reading
func FromReadings(readings []dataset.Reading) *Frame {
	f := NewFrame("id", "city", "reading_date", "temperature", "humidity")
	for _, r := range readings {
		f.rows = append(f.rows, []interface{}{r.ID, r.City, r.Date, r.Temperature, r.Humidity})
	}
	return f
}

// Append adds a row to the frame
func (f *Frame) Append(cells ...interface{}) error {
	if len(cells) != len(f.columns) {
		return fmt.Errorf("expected %d cells, got %d", len(f.columns), len(cells))
	}
	f.rows = append(f.rows, cells)
	return nil
}

// Len returns the number of rows
func (f *Frame) Len() int {
	return len(f.rows)
}

// Columns returns the column names in order
func (f *Frame) Columns() []string {
	return f.columns
}

// Head returns a frame holding at most the first n rows
func (f *Frame) Head(n int) *Frame {
	if n > len(f.rows) {
		n = len(f.rows)
	}
	return &Frame{
		columns: f.columns,
		rows:    f.rows[:n],
	}
}

// NumericColumn extracts a column as float64 values
func (f *Frame) NumericColumn(name string) ([]float64, error) {
	idx := -1
	for i, col := range f.columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("unknown column: %s", name)
	}

	values := make([]float64, len(f.rows))
	for i, row := range f.rows {
		switch v := row[idx].(type) {
		case float64:
			values[i] = v
		case int64:
			values[i] = float64(v)
		case int:
			values[i] = float64(v)
		default:
			return nil, fmt.Errorf("column %s is not numeric at row %d", name, i)
		}
	}
	return values, nil
}

// Records returns all cells formatted as strings, row by row
func (f *Frame) Records() [][]string {
	records := make([][]string, len(f.rows))
	for i, row := range f.rows {
		record := make([]string, len(row))
		for j, cell := range row {
			record[j] = formatCell(cell)
		}
		records[i] = record
	}
	return records
}

// formatCell renders one cell; raw readings carry one decimal place,
// so whole-number floats keep it (35.0, not 35)
func formatCell(cell interface{}) string {
	if v, ok := cell.(float64); ok {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return fmt.Sprintf("%v", cell)
}
