package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/climasql/runtime/client"
)

func TestSeed(t *testing.T) {
	readings := Seed()

	t.Run("twelve records", func(t *testing.T) {
		assert.Len(t, readings, 12)
	})

	t.Run("four cities across three dates", func(t *testing.T) {
		cities := map[string]int{}
		dates := map[string]int{}
		for _, r := range readings {
			cities[r.City]++
			dates[r.Date]++
		}

		require.Len(t, cities, 4)
		for city, count := range cities {
			assert.Equal(t, 3, count, "city %s", city)
		}

		require.Len(t, dates, 3)
		for date, count := range dates {
			assert.Equal(t, 4, count, "date %s", date)
		}
	})

	t.Run("city and date always present", func(t *testing.T) {
		for _, r := range readings {
			assert.NotEmpty(t, r.City)
			assert.NotEmpty(t, r.Date)
		}
	})

	t.Run("identical across calls", func(t *testing.T) {
		assert.Equal(t, readings, Seed())
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	c, err := client.NewClient("sqlite", ":memory:")
	require.NoError(t, err)
	defer c.Disconnect(ctx)
	require.NoError(t, c.Connect(ctx))

	require.NoError(t, Load(ctx, c))

	t.Run("batch is visible on the same handle", func(t *testing.T) {
		var count int
		require.NoError(t, c.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM "climate_data"`).Scan(&count))
		assert.Equal(t, 12, count)
	})

	t.Run("ids are assigned on insert", func(t *testing.T) {
		var minID, maxID int64
		require.NoError(t, c.DB().QueryRowContext(ctx, `SELECT MIN(id), MAX(id) FROM "climate_data"`).Scan(&minID, &maxID))
		assert.Equal(t, int64(1), minID)
		assert.Equal(t, int64(12), maxID)
	})

	t.Run("schema creation is idempotent", func(t *testing.T) {
		assert.NoError(t, EnsureSchema(ctx, c))
	})
}
