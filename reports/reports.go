// Package reports implements the fixed analytics reports over the
// climate readings table: per-city averages, per-date temperature
// ranks, and the hottest city per date.
package reports

import (
	"context"
	"fmt"

	"github.com/satishbabariya/climasql/dataset"
	"github.com/satishbabariya/climasql/query/builder"
	"github.com/satishbabariya/climasql/query/sqlgen"
	"github.com/satishbabariya/climasql/runtime/client"
)

// CityAverage is one row of the per-city averages report
type CityAverage struct {
	City           string  `db:"city"`
	AvgTemperature float64 `db:"avg_temperature"`
	AvgHumidity    float64 `db:"avg_humidity"`
}

// RankedReading is one row of the per-date temperature ranking report
type RankedReading struct {
	City        string  `db:"city"`
	Date        string  `db:"reading_date"`
	Temperature float64 `db:"temperature"`
	Rank        int64   `db:"temp_rank"`
}

// CityAverages computes the mean temperature and humidity per city,
// ordered by descending mean temperature. Cities with equal means are
// ordered by name so the output stays deterministic under ties.
func CityAverages(ctx context.Context, c *client.Client) ([]CityAverage, error) {
	gen := sqlgen.NewGenerator(c.Provider())

	q := builder.NewAggregateBuilder(dataset.Table).
		Avg("temperature", "avg_temperature").
		Avg("humidity", "avg_humidity").
		GroupBy("city").
		OrderByDesc("avg_temperature").
		OrderByAsc("city").
		Build(gen)

	rows, err := c.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("city averages query failed: %w", err)
	}
	defer rows.Close()

	return client.ScanRows[CityAverage](rows)
}

// rankingQuery builds the windowed select that ranks readings by
// temperature within each date, hottest first. RANK() gives standard
// rank-with-gaps semantics: ties share a rank and the next distinct
// temperature skips the tied count.
func rankingQuery(gen sqlgen.Generator, orderBy []sqlgen.OrderBy) *sqlgen.Query {
	window := sqlgen.NewWindowDefinition().
		PartitionBy("reading_date").
		OrderBy("temperature", "DESC")

	windows := builder.NewWindowBuilder().
		Rank("temp_rank", window).
		Build()

	return gen.GenerateSelectWithWindows(
		dataset.Table,
		[]string{"city", "reading_date", "temperature"},
		windows,
		orderBy,
	)
}

// TemperatureRanks ranks every reading by temperature within its date,
// ordered by date, then rank, then city.
func TemperatureRanks(ctx context.Context, c *client.Client) ([]RankedReading, error) {
	gen := sqlgen.NewGenerator(c.Provider())

	orderBy := builder.NewOrderByBuilder().
		Asc("reading_date").
		Asc("temp_rank").
		Asc("city").
		Build()

	q := rankingQuery(gen, orderBy)

	rows, err := c.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("temperature ranks query failed: %w", err)
	}
	defer rows.Close()

	return client.ScanRows[RankedReading](rows)
}

// HottestPerDate keeps only the top-ranked reading per date. The rank
// computation and the filter are issued as one composed CTE statement,
// a single round-trip sharing one query plan.
func HottestPerDate(ctx context.Context, c *client.Client) ([]RankedReading, error) {
	gen := sqlgen.NewGenerator(c.Provider())

	ctes := builder.NewCTEBuilder().
		With("ranked_temps", rankingQuery(gen, nil)).
		Build()

	where := builder.NewWhereBuilder().
		Equals("temp_rank", 1).
		Build()

	orderBy := builder.NewOrderByBuilder().
		Asc("reading_date").
		Asc("city").
		Build()

	body := gen.GenerateSelect(
		"ranked_temps",
		[]string{"city", "reading_date", "temperature", "temp_rank"},
		where,
		orderBy,
		nil,
	)

	q := gen.GenerateWith(ctes, body)

	rows, err := c.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("hottest per date query failed: %w", err)
	}
	defer rows.Close()

	return client.ScanRows[RankedReading](rows)
}

// AllReadings returns the full table in insert order
func AllReadings(ctx context.Context, c *client.Client) ([]dataset.Reading, error) {
	gen := sqlgen.NewGenerator(c.Provider())

	orderBy := builder.NewOrderByBuilder().Asc("id").Build()
	q := gen.GenerateSelect(dataset.Table, nil, nil, orderBy, nil)

	rows, err := c.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("all readings query failed: %w", err)
	}
	defer rows.Close()

	return client.ScanRows[dataset.Reading](rows)
}
