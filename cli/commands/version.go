package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/climasql/cli/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Println(info.String())
			fmt.Printf("  Git Commit: %s\n", info.GitCommit)
			fmt.Printf("  Build Date: %s\n", info.BuildDate)
		},
	}
}
