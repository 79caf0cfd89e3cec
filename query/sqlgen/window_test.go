package sqlgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSelectWithWindows(t *testing.T) {
	rank := WindowFunction{
		Function: "RANK",
		Alias:    "temp_rank",
		Window: NewWindowDefinition().
			PartitionBy("reading_date").
			OrderBy("temperature", "DESC"),
	}

	t.Run("rank over partition", func(t *testing.T) {
		g := &SQLiteGenerator{}
		q := g.GenerateSelectWithWindows("climate_data", []string{"city", "reading_date", "temperature"}, []WindowFunction{rank}, nil)
		assert.Equal(t,
			`SELECT "city", "reading_date", "temperature", `+
				`RANK() OVER (PARTITION BY "reading_date" ORDER BY "temperature" DESC) AS "temp_rank" `+
				`FROM "climate_data"`,
			q.SQL)
		assert.Empty(t, q.Args)
	})

	t.Run("outer order may reference window alias", func(t *testing.T) {
		g := &SQLiteGenerator{}
		orderBy := []OrderBy{
			{Field: "reading_date", Direction: "ASC"},
			{Field: "temp_rank", Direction: "ASC"},
		}
		q := g.GenerateSelectWithWindows("climate_data", []string{"city"}, []WindowFunction{rank}, orderBy)
		assert.True(t, strings.HasSuffix(q.SQL, `ORDER BY "reading_date" ASC, "temp_rank" ASC`))
	})

	t.Run("aggregate over window carries its field", func(t *testing.T) {
		g := &SQLiteGenerator{}
		avg := WindowFunction{
			Function: "AVG",
			Field:    "temperature",
			Alias:    "avg_temp",
			Window:   NewWindowDefinition().PartitionBy("city"),
		}
		q := g.GenerateSelectWithWindows("climate_data", []string{"city"}, []WindowFunction{avg}, nil)
		assert.Contains(t, q.SQL, `AVG("temperature") OVER (PARTITION BY "city") AS "avg_temp"`)
	})

	t.Run("mysql quotes window identifiers with backticks", func(t *testing.T) {
		g := &MySQLGenerator{}
		q := g.GenerateSelectWithWindows("climate_data", []string{"city"}, []WindowFunction{rank}, nil)
		assert.Contains(t, q.SQL, "RANK() OVER (PARTITION BY `reading_date` ORDER BY `temperature` DESC) AS `temp_rank`")
	})
}

func TestGenerateWith(t *testing.T) {
	g := &SQLiteGenerator{}

	inner := g.GenerateSelectWithWindows("climate_data", []string{"city", "reading_date", "temperature"}, []WindowFunction{{
		Function: "RANK",
		Alias:    "temp_rank",
		Window:   NewWindowDefinition().PartitionBy("reading_date").OrderBy("temperature", "DESC"),
	}}, nil)

	where := NewWhereClause()
	where.AddCondition(Condition{Field: "temp_rank", Operator: "=", Value: 1})
	body := g.GenerateSelect("ranked_temps", nil, where, []OrderBy{{Field: "reading_date", Direction: "ASC"}}, nil)

	t.Run("single named intermediate referenced once", func(t *testing.T) {
		q := g.GenerateWith([]CTE{{Name: "ranked_temps", Query: inner}}, body)
		assert.True(t, strings.HasPrefix(q.SQL, `WITH "ranked_temps" AS (SELECT`))
		assert.Equal(t, 1, strings.Count(q.SQL, "WITH "))
		assert.Contains(t, q.SQL, `) SELECT * FROM "ranked_temps" WHERE "temp_rank" = ?`)
		assert.Equal(t, []interface{}{1}, q.Args)
	})

	t.Run("cte args precede body args", func(t *testing.T) {
		cteWhere := NewWhereClause()
		cteWhere.AddCondition(Condition{Field: "city", Operator: "=", Value: "Houston"})
		cteQuery := g.GenerateSelect("climate_data", nil, cteWhere, nil, nil)

		q := g.GenerateWith([]CTE{{Name: "houston", Query: cteQuery}}, body)
		assert.Equal(t, []interface{}{"Houston", 1}, q.Args)
	})

	t.Run("explicit column list", func(t *testing.T) {
		q := g.GenerateWith([]CTE{{Name: "ranked_temps", Columns: []string{"city", "temp_rank"}, Query: inner}}, body)
		assert.Contains(t, q.SQL, `WITH "ranked_temps" ("city", "temp_rank") AS (`)
	})

	t.Run("recursive keyword", func(t *testing.T) {
		q := g.GenerateWith([]CTE{{Name: "ranked_temps", Query: inner, Recursive: true}}, body)
		assert.True(t, strings.HasPrefix(q.SQL, "WITH RECURSIVE "))
	})

	t.Run("no ctes returns body unchanged", func(t *testing.T) {
		q := g.GenerateWith(nil, body)
		assert.Equal(t, body.SQL, q.SQL)
	})
}
