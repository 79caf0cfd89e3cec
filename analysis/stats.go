// Package analysis provides the numeric summaries for the demo reports.
//
// Standard deviation uses the sample convention (N-1 denominator), matching
// the default of the tabular tooling the reports were modeled on. The
// Pearson coefficient is computed from raw pair sums, so the variance
// convention cancels out and the correlation is identical either way.
package analysis

import (
	"fmt"
	"math"
)

// Mean returns the arithmetic mean of the series
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// SampleStd returns the sample standard deviation (N-1 denominator)
func SampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// Corr returns the Pearson correlation coefficient between two series.
// A constant series has no linear association; the coefficient is 0 then.
func Corr(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("series length mismatch: %d vs %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("need at least 2 observations, got %d", len(xs))
	}

	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
		sumYY += ys[i] * ys[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt(n*sumXX-sumX*sumX) * math.Sqrt(n*sumYY-sumY*sumY)
	if denominator == 0 {
		return 0, nil
	}

	r := numerator / denominator
	// Floating point roundoff can push |r| marginally past 1
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r, nil
}

// CorrMatrix is a symmetric correlation matrix over named columns
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// At returns the correlation between columns i and j
func (m *CorrMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// CorrelationMatrix computes the pairwise Pearson matrix over the given
// frame columns. Diagonal entries are exactly 1.
func CorrelationMatrix(f *Frame, columns ...string) (*CorrMatrix, error) {
	series := make([][]float64, len(columns))
	for i, col := range columns {
		values, err := f.NumericColumn(col)
		if err != nil {
			return nil, err
		}
		series[i] = values
	}

	values := make([][]float64, len(columns))
	for i := range columns {
		values[i] = make([]float64, len(columns))
		values[i][i] = 1.0
	}
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r, err := Corr(series[i], series[j])
			if err != nil {
				return nil, err
			}
			values[i][j] = r
			values[j][i] = r
		}
	}

	return &CorrMatrix{
		Columns: columns,
		Values:  values,
	}, nil
}

// ColumnSummary holds per-column summary statistics
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
}

// Describe computes count/mean/std/min/max for the given frame columns
func Describe(f *Frame, columns ...string) ([]ColumnSummary, error) {
	summaries := make([]ColumnSummary, 0, len(columns))
	for _, col := range columns {
		values, err := f.NumericColumn(col)
		if err != nil {
			return nil, err
		}
		summary := ColumnSummary{
			Column: col,
			Count:  len(values),
			Mean:   Mean(values),
			Std:    SampleStd(values),
		}
		if len(values) > 0 {
			summary.Min = values[0]
			summary.Max = values[0]
			for _, v := range values[1:] {
				summary.Min = math.Min(summary.Min, v)
				summary.Max = math.Max(summary.Max, v)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
