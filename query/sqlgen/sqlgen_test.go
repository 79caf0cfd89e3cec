package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	t.Run("maps providers to dialects", func(t *testing.T) {
		assert.IsType(t, &PostgresGenerator{}, NewGenerator("postgresql"))
		assert.IsType(t, &PostgresGenerator{}, NewGenerator("postgres"))
		assert.IsType(t, &MySQLGenerator{}, NewGenerator("mysql"))
		assert.IsType(t, &SQLiteGenerator{}, NewGenerator("sqlite"))
	})

	t.Run("defaults to sqlite", func(t *testing.T) {
		assert.IsType(t, &SQLiteGenerator{}, NewGenerator("unknown"))
	})
}

func TestGenerateSelect(t *testing.T) {
	orderBy := []OrderBy{{Field: "id", Direction: "ASC"}}

	t.Run("sqlite star select with order", func(t *testing.T) {
		g := &SQLiteGenerator{}
		q := g.GenerateSelect("climate_data", nil, nil, orderBy, nil)
		assert.Equal(t, `SELECT * FROM "climate_data" ORDER BY "id" ASC`, q.SQL)
		assert.Empty(t, q.Args)
	})

	t.Run("sqlite where uses question mark placeholders", func(t *testing.T) {
		g := &SQLiteGenerator{}
		where := NewWhereClause()
		where.AddCondition(Condition{Field: "temp_rank", Operator: "=", Value: 1})

		q := g.GenerateSelect("ranked_temps", []string{"city", "temp_rank"}, where, nil, nil)
		assert.Equal(t, `SELECT city, temp_rank FROM "ranked_temps" WHERE "temp_rank" = ?`, q.SQL)
		assert.Equal(t, []interface{}{1}, q.Args)
	})

	t.Run("postgres where uses numbered placeholders", func(t *testing.T) {
		g := &PostgresGenerator{}
		where := NewWhereClause()
		where.AddCondition(Condition{Field: "temp_rank", Operator: "=", Value: 1})
		where.AddCondition(Condition{Field: "temperature", Operator: ">", Value: 0.0})

		q := g.GenerateSelect("ranked_temps", nil, where, nil, nil)
		assert.Equal(t, `SELECT * FROM "ranked_temps" WHERE "temp_rank" = $1 AND "temperature" > $2`, q.SQL)
		assert.Equal(t, []interface{}{1, 0.0}, q.Args)
	})

	t.Run("mysql quotes with backticks", func(t *testing.T) {
		g := &MySQLGenerator{}
		q := g.GenerateSelect("climate_data", nil, nil, orderBy, nil)
		assert.Equal(t, "SELECT * FROM `climate_data` ORDER BY `id` ASC", q.SQL)
	})

	t.Run("limit appends argument", func(t *testing.T) {
		g := &SQLiteGenerator{}
		limit := 5
		q := g.GenerateSelect("climate_data", nil, nil, nil, &limit)
		assert.Equal(t, `SELECT * FROM "climate_data" LIMIT ?`, q.SQL)
		assert.Equal(t, []interface{}{5}, q.Args)
	})

	t.Run("or operator joins conditions", func(t *testing.T) {
		g := &SQLiteGenerator{}
		where := &WhereClause{
			Conditions: []Condition{
				{Field: "city", Operator: "=", Value: "Houston"},
				{Field: "city", Operator: "=", Value: "Chicago"},
			},
			Operator: "OR",
		}
		q := g.GenerateSelect("climate_data", nil, where, nil, nil)
		assert.Equal(t, `SELECT * FROM "climate_data" WHERE "city" = ? OR "city" = ?`, q.SQL)
	})
}

func TestGenerateInsert(t *testing.T) {
	columns := []string{"city", "reading_date", "temperature", "humidity"}
	values := []interface{}{"Houston", "2025-01-01", 10.2, 70.0}

	t.Run("sqlite insert", func(t *testing.T) {
		g := &SQLiteGenerator{}
		q := g.GenerateInsert("climate_data", columns, values)
		assert.Equal(t, `INSERT INTO "climate_data" ("city", "reading_date", "temperature", "humidity") VALUES (?, ?, ?, ?)`, q.SQL)
		assert.Equal(t, values, q.Args)
	})

	t.Run("postgres insert numbers placeholders", func(t *testing.T) {
		g := &PostgresGenerator{}
		q := g.GenerateInsert("climate_data", columns, values)
		assert.Equal(t, `INSERT INTO "climate_data" ("city", "reading_date", "temperature", "humidity") VALUES ($1, $2, $3, $4)`, q.SQL)
		assert.Equal(t, values, q.Args)
	})

	t.Run("mysql insert", func(t *testing.T) {
		g := &MySQLGenerator{}
		q := g.GenerateInsert("climate_data", columns, values)
		assert.Equal(t, "INSERT INTO `climate_data` (`city`, `reading_date`, `temperature`, `humidity`) VALUES (?, ?, ?, ?)", q.SQL)
	})
}

func TestGenerateAggregate(t *testing.T) {
	aggregates := []AggregateFunction{
		{Function: "AVG", Field: "temperature", Alias: "avg_temperature"},
		{Function: "AVG", Field: "humidity", Alias: "avg_humidity"},
	}
	groupBy := &GroupBy{Fields: []string{"city"}}
	orderBy := []OrderBy{
		{Field: "avg_temperature", Direction: "DESC"},
		{Field: "city", Direction: "ASC"},
	}

	t.Run("group fields lead the select list", func(t *testing.T) {
		g := &SQLiteGenerator{}
		q := g.GenerateAggregate("climate_data", aggregates, groupBy, orderBy)
		require.NotNil(t, q)
		assert.Equal(t,
			`SELECT "city", AVG("temperature") AS "avg_temperature", AVG("humidity") AS "avg_humidity" `+
				`FROM "climate_data" GROUP BY "city" ORDER BY "avg_temperature" DESC, "city" ASC`,
			q.SQL)
		assert.Empty(t, q.Args)
	})

	t.Run("count star renders without quoting", func(t *testing.T) {
		g := &SQLiteGenerator{}
		q := g.GenerateAggregate("climate_data", []AggregateFunction{
			{Function: "COUNT", Field: "*", Alias: "n"},
		}, nil, nil)
		assert.Equal(t, `SELECT COUNT(*) AS "n" FROM "climate_data"`, q.SQL)
	})

	t.Run("mysql aggregate uses backticks", func(t *testing.T) {
		g := &MySQLGenerator{}
		q := g.GenerateAggregate("climate_data", aggregates, groupBy, nil)
		assert.Contains(t, q.SQL, "AVG(`temperature`) AS `avg_temperature`")
		assert.Contains(t, q.SQL, "GROUP BY `city`")
	})
}
