package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/unifi-filter-sync/internal/store"
	"github.com/spf13/cobra"
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <filter-name> [file]",
		Short: "Push a file's domains over a filter's block-list",
		Long: `Read a domain list from a filter file and overwrite the block-list
of the named content filter with it. The remote list is fully replaced,
not merged. When the file argument is omitted, the FILTER_FILE setting is
used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runSync,
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	path := a.cfg.App.FilterFile
	if len(args) == 2 {
		path = args[1]
	}
	if path == "" {
		return errors.New("no filter file given and FILTER_FILE is not set")
	}

	ctx := cmd.Context()
	if err = a.login(ctx); err != nil {
		return err
	}

	domains, err := store.ReadFilterFile(path)
	if err != nil {
		return err
	}
	if len(domains) == 0 {
		return fmt.Errorf("no domains to sync from %s", path)
	}
	a.okf("Read %d domains from %s", len(domains), path)

	count, err := a.controller.UpdateFilter(ctx, name, domains)
	if err != nil {
		return err
	}
	a.okf("Updated %d domains on controller", count)

	return nil
}
