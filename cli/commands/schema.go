package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/climasql/cli/internal/ui"
	"github.com/satishbabariya/climasql/dataset"
)

// NewSchemaCommand creates the schema command, which documents the
// climate readings table without touching any database.
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Show the climate readings table schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintHeader("climasql", "climate readings schema")

			markdown := fmt.Sprintf(`# %s

| Column | Type | Notes |
|---|---|---|
| id | INTEGER | primary key, assigned on insert |
| city | TEXT | non-null |
| reading_date | TEXT | calendar date, YYYY-MM-DD, non-null |
| temperature | FLOAT | degrees, non-null |
| humidity | FLOAT | percentage, non-null |

`+"```sql\n%s\n```", dataset.Table, dataset.DDL)

			return ui.PrintMarkdown(markdown)
		},
	}
}
