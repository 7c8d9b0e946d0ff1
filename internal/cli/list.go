package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const tabSpacing = 2

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the site's content filter rules",
		Long:  `List every content filter rule of the site with its block-list size.`,
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err = a.login(ctx); err != nil {
		return err
	}

	filters, err := a.controller.ListFilters(ctx)
	if err != nil {
		return err
	}
	a.okf("Fetched %d filter rules from controller", len(filters))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabSpacing, ' ', 0)
	fmt.Fprintln(w, "NAME\tDOMAINS")
	for _, filter := range filters {
		fmt.Fprintf(w, "%s\t%d\n", filter.Name, len(filter.BlockList))
	}

	return w.Flush()
}
