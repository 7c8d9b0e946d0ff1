package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			if version == "" {
				version = "N/A"
			}
			if commit == "" {
				commit = "N/A"
			}
			if buildDate == "" {
				buildDate = "N/A"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "filtersync %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", buildDate)
		},
	}
}
