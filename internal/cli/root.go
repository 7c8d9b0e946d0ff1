// Package cli provides the command-line interface for filtersync.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/unifi-filter-sync/internal/adapter"
	"github.com/MKhiriev/unifi-filter-sync/internal/config"
	"github.com/MKhiriev/unifi-filter-sync/internal/logger"
	"github.com/spf13/cobra"
)

// app bundles the pieces every command needs: the merged configuration,
// the logger, the controller adapter, and the stream operator status
// lines are written to. Status lines go to stderr so that stdout stays a
// clean data channel for fetched domains.
type app struct {
	cfg        *config.StructuredConfig
	log        *logger.Logger
	controller adapter.ControllerAdapter
	status     io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New("filtersync", cfg.App.Verbose)

	controller, err := adapter.NewControllerAdapter(cfg.Controller, log)
	if err != nil {
		return nil, fmt.Errorf("create controller adapter: %w", err)
	}

	return &app{
		cfg:        cfg,
		log:        log,
		controller: controller,
		status:     cmd.ErrOrStderr(),
	}, nil
}

// okf writes a success status line prefixed with the ✓ glyph.
func (a *app) okf(format string, args ...any) {
	fmt.Fprintf(a.status, "✓ "+format+"\n", args...)
}

// login authenticates the session and reports whether the anti-forgery
// token was captured.
func (a *app) login(ctx context.Context) error {
	if err := a.controller.Login(ctx); err != nil {
		return err
	}

	if a.controller.CSRFToken() != "" {
		a.okf("Logged in to controller (CSRF token acquired)")
	} else {
		a.okf("Logged in to controller (warning: no CSRF token)")
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.StructuredConfig, error) {
	flags := cmd.Flags()

	host, _ := flags.GetString("host")
	username, _ := flags.GetString("username")
	password, _ := flags.GetString("password")
	site, _ := flags.GetString("site")
	timeout, _ := flags.GetDuration("request-timeout")
	verifyTLS, _ := flags.GetBool("verify-tls")
	configPath, _ := flags.GetString("config")
	verbose, _ := flags.GetBool("verbose")

	overrides := &config.StructuredConfig{
		Controller: config.Controller{
			Host:           host,
			Username:       username,
			Password:       password,
			Site:           site,
			RequestTimeout: timeout,
			VerifyTLS:      verifyTLS,
		},
		App: config.App{
			Verbose: verbose,
		},
		JSONFilePath: configPath,
	}

	return config.GetConfig(overrides)
}

// NewRootCmd creates the root command for filtersync.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filtersync",
		Short: "Sync domain block-lists between a text file and a UniFi controller",
		Long: `Sync domain block-lists between a local text file and the content
filtering rules of a UniFi controller.

Examples:
  # Fetch a filter's block-list and print it to stdout
  filtersync fetch "Samsung Adblock"

  # Fetch a filter's block-list and save it to a file
  filtersync fetch "Samsung Adblock" -o filters.txt

  # Push a file's domains over a filter's block-list
  filtersync sync "Samsung Adblock" filters.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("host", "", "Controller base URL (default https://unifi.local)")
	pf.String("username", "", "Controller account name (default admin)")
	pf.String("password", "", "Controller account password")
	pf.String("site", "", `Controller site name (default "default")`)
	pf.Duration("request-timeout", 0, "HTTP request timeout (default 15s)")
	pf.Bool("verify-tls", false, "Verify the controller TLS certificate")
	pf.StringP("config", "c", "", "JSON config file path")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		NewFetchCmd(),
		NewSyncCmd(),
		NewListCmd(),
		NewVersionCmd(version, commit, buildDate),
	)

	return rootCmd
}

// Execute runs the root command and exits with status 1 on any failure,
// printing a single ✗ diagnostic to stderr.
func Execute(version, commit, buildDate string) {
	if err := NewRootCmd(version, commit, buildDate).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error: %v\n", err)
		os.Exit(1)
	}
}
