package cli

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/unifi-filter-sync/internal/adapter"
	"github.com/MKhiriev/unifi-filter-sync/internal/store"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <filter-name>",
		Short: "Fetch a filter's block-list from the controller",
		Long: `Fetch the block-list of the named content filter and print it to
stdout, sorted, one domain per line. With --output the list is written to
a filter file instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runFetch,
	}
	cmd.Flags().StringP("output", "o", "", "Write domains to file instead of stdout")

	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err = a.login(ctx); err != nil {
		return err
	}

	name := args[0]
	filter, found, err := a.controller.FindFilter(ctx, name)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %q (create it in the controller UI first)", adapter.ErrNotFound, name)
	}

	domains := filter.BlockList
	a.okf("Fetched %d domains from controller", len(domains))

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		if err = store.WriteFilterFile(output, domains, name); err != nil {
			return err
		}
		a.okf("Wrote %d domains to %s", len(domains), output)
		return nil
	}

	sorted := slices.Clone(domains)
	slices.Sort(sorted)
	for _, domain := range sorted {
		fmt.Fprintln(cmd.OutOrStdout(), domain)
	}

	return nil
}
