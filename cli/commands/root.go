// Package commands implements the climasql CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/climasql/internal/debug"
)

// NewRootCommand creates the root command. Running with no arguments
// runs the full demo against an in-memory SQLite database.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "climasql",
		Short:         "SQL climate analytics demo",
		Long:          "climasql seeds an in-memory database with climate readings and prints aggregation, window function and CTE reports over them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			enable, _ := cmd.Flags().GetBool("debug")
			debug.Init(enable)
		},
		RunE: runDemo,
	}

	cmd.Flags().String("provider", "", "database provider: sqlite, postgresql or mysql")
	cmd.Flags().String("dsn", "", "database connection string (defaults to in-memory SQLite)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")

	cmd.AddCommand(NewSchemaCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute is the main entry point for the CLI
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}
