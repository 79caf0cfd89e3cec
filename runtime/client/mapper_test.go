package client

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readingRow struct {
	City        string  `db:"city"`
	Date        string  `db:"reading_date"`
	Temperature float64 `db:"temperature"`
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	c, err := NewClient("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Disconnect(ctx) })
	require.NoError(t, c.Connect(ctx))

	_, err = c.DB().ExecContext(ctx, `CREATE TABLE readings (city TEXT, reading_date TEXT, temperature FLOAT)`)
	require.NoError(t, err)
	_, err = c.DB().ExecContext(ctx, `INSERT INTO readings VALUES ('Houston', '2025-01-01', 10.2), ('Chicago', '2025-01-01', -7.0)`)
	require.NoError(t, err)

	return c
}

func TestNewClient(t *testing.T) {
	t.Run("rejects unknown providers", func(t *testing.T) {
		_, err := NewClient("oracle", "dsn")
		assert.Error(t, err)
	})

	t.Run("records the provider", func(t *testing.T) {
		c, err := NewClient("sqlite", ":memory:")
		require.NoError(t, err)
		defer c.Disconnect(context.Background())
		assert.Equal(t, "sqlite", c.Provider())
	})
}

func TestScanRows(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	t.Run("maps db tags to struct fields", func(t *testing.T) {
		rows, err := c.Query(ctx, `SELECT city, reading_date, temperature FROM readings ORDER BY city`)
		require.NoError(t, err)
		defer rows.Close()

		results, err := ScanRows[readingRow](rows)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, readingRow{City: "Chicago", Date: "2025-01-01", Temperature: -7.0}, results[0])
		assert.Equal(t, readingRow{City: "Houston", Date: "2025-01-01", Temperature: 10.2}, results[1])
	})

	t.Run("unmapped columns are skipped", func(t *testing.T) {
		rows, err := c.Query(ctx, `SELECT city, 42 AS extra FROM readings ORDER BY city`)
		require.NoError(t, err)
		defer rows.Close()

		results, err := ScanRows[readingRow](rows)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Chicago", results[0].City)
		assert.Zero(t, results[0].Temperature)
	})
}

func TestTransaction(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	t.Run("rolls back on error", func(t *testing.T) {
		err := c.Transaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO readings VALUES ('Denver', '2025-01-01', 1.0)`); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		var count int
		require.NoError(t, c.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM readings WHERE city = 'Denver'`).Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("commits on success", func(t *testing.T) {
		err := c.Transaction(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO readings VALUES ('Denver', '2025-01-02', 2.0)`)
			return err
		})
		require.NoError(t, err)

		var count int
		require.NoError(t, c.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM readings WHERE city = 'Denver'`).Scan(&count))
		assert.Equal(t, 1, count)
	})
}
