package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"startgg-results/internal/app"
	"startgg-results/internal/config"
	"startgg-results/internal/domain"
	"startgg-results/internal/export"
	"startgg-results/internal/logging"
	"startgg-results/internal/server"
)

var errNotFound = errors.New("not found")

// resultsExporter writes top results to files.
type resultsExporter interface {
	Export(results []domain.EventResults, targets export.Targets) error
}

// cli carries the global flags and the runtime built before each command.
type cli struct {
	output   string
	noRetry  bool
	provider string
	envFile  string

	logger   *slog.Logger
	server   *server.Server
	deps     app.Deps
	exporter resultsExporter
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:          "startgg",
		Short:        "Query tournaments, events and players on start.gg",
		SilenceUsage: true,
		Version:      appVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.output, "output", "o", "json", "output format: json or yaml")
	flags.BoolVar(&c.noRetry, "no-retry", false, "disable automatic retry of rate-limited and transient failures")
	flags.StringVar(&c.provider, "provider", "", "data provider: startgg or fixture (overrides STARTGG_PROVIDER)")
	flags.StringVar(&c.envFile, "env-file", "", "path of a .env file to load (default .env)")

	root.AddCommand(
		newTournamentCommand(c),
		newEventCommand(c),
		newBracketCommand(c),
		newPlayerCommand(c),
		newSearchCommand(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	if err := checkFormat(c.output); err != nil {
		return err
	}
	var paths []string
	if c.envFile != "" {
		paths = append(paths, c.envFile)
	}
	if err := config.LoadDotEnv(paths...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}

	cfg := config.Load()
	if c.provider != "" {
		cfg.Provider = strings.ToLower(c.provider)
	}
	if c.noRetry {
		cfg.Retry.Enabled = false
	}

	c.logger = logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: serviceName,
		Version: appVersion,
		Output:  cmd.ErrOrStderr(),
	})
	srv, err := server.New(cfg, c.logger)
	if err != nil {
		return err
	}
	srv.Start()
	c.server = srv
	c.deps = srv.Deps()
	if c.exporter == nil {
		c.exporter = export.NewWriter(c.logger)
	}
	return nil
}

func (c *cli) close() {
	if c.server == nil {
		return
	}
	if err := c.server.Shutdown(context.Background()); err != nil {
		logging.Warn(c.logger, "runtime shutdown failed", "error", err)
	}
	c.server = nil
}

// print renders v to the command's stdout in the selected format.
func (c *cli) print(cmd *cobra.Command, v any) error {
	return render(cmd.OutOrStdout(), c.output, v)
}

func notFound(kind, key string) error {
	return fmt.Errorf("%s %q: %w", kind, key, errNotFound)
}
