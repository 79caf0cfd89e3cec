// Package dataset defines the climate readings schema and seed records.
package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/satishbabariya/climasql/internal/debug"
	"github.com/satishbabariya/climasql/query/sqlgen"
	"github.com/satishbabariya/climasql/runtime/client"
)

// Table is the name of the climate readings table
const Table = "climate_data"

// DDL creates the climate readings table (SQLite dialect, the demo engine)
const DDL = `CREATE TABLE IF NOT EXISTS climate_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    city TEXT NOT NULL,
    reading_date TEXT NOT NULL,
    temperature FLOAT NOT NULL,
    humidity FLOAT NOT NULL
);`

// Reading is a single climate reading
type Reading struct {
	ID          int64   `db:"id"`
	City        string  `db:"city"`
	Date        string  `db:"reading_date"`
	Temperature float64 `db:"temperature"`
	Humidity    float64 `db:"humidity"`
}

// Seed returns the twelve sample readings: four cities across three dates.
// The dates and temperatures are fictional.
func Seed() []Reading {
	return []Reading{
		{City: "New York", Date: "2025-01-01", Temperature: -5.2, Humidity: 35.0},
		{City: "New York", Date: "2025-01-02", Temperature: -2.1, Humidity: 40.0},
		{City: "New York", Date: "2025-01-03", Temperature: 0.5, Humidity: 42.0},
		{City: "Chicago", Date: "2025-01-01", Temperature: -7.0, Humidity: 50.0},
		{City: "Chicago", Date: "2025-01-02", Temperature: -5.5, Humidity: 55.0},
		{City: "Chicago", Date: "2025-01-03", Temperature: -3.2, Humidity: 48.0},
		{City: "Houston", Date: "2025-01-01", Temperature: 10.2, Humidity: 70.0},
		{City: "Houston", Date: "2025-01-02", Temperature: 12.1, Humidity: 68.0},
		{City: "Houston", Date: "2025-01-03", Temperature: 15.0, Humidity: 65.0},
		{City: "San Diego", Date: "2025-01-01", Temperature: 15.2, Humidity: 55.0},
		{City: "San Diego", Date: "2025-01-02", Temperature: 16.5, Humidity: 52.0},
		{City: "San Diego", Date: "2025-01-03", Temperature: 18.0, Humidity: 50.0},
	}
}

// EnsureSchema creates the climate readings table if it does not exist
func EnsureSchema(ctx context.Context, c *client.Client) error {
	if _, err := c.DB().ExecContext(ctx, DDL); err != nil {
		return fmt.Errorf("failed to create %s table: %w", Table, err)
	}
	return nil
}

// InsertReadings inserts all readings inside a single transaction so the
// batch becomes visible to subsequent reads on the same handle at once.
func InsertReadings(ctx context.Context, c *client.Client, readings []Reading) error {
	gen := sqlgen.NewGenerator(c.Provider())
	columns := []string{"city", "reading_date", "temperature", "humidity"}

	return c.Transaction(ctx, func(tx *sql.Tx) error {
		for _, r := range readings {
			q := gen.GenerateInsert(Table, columns, []interface{}{r.City, r.Date, r.Temperature, r.Humidity})
			if _, err := tx.ExecContext(ctx, q.SQL, q.Args...); err != nil {
				return fmt.Errorf("failed to insert reading for %s on %s: %w", r.City, r.Date, err)
			}
		}
		debug.Debug("inserted readings", "count", len(readings))
		return nil
	})
}

// Load creates the schema and inserts the seed readings
func Load(ctx context.Context, c *client.Client) error {
	if err := EnsureSchema(ctx, c); err != nil {
		return err
	}
	return InsertReadings(ctx, c, Seed())
}
