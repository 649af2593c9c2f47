package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/daniilsolovey/editions/config"
	"github.com/daniilsolovey/editions/internal/app"
	"github.com/daniilsolovey/editions/internal/catalog"
	"github.com/daniilsolovey/editions/internal/db"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	backend    string
	path       string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "editionsctl",
		Short: "Edition catalog administration",
		Long: `editionsctl works directly on the edition record store configured for the
service, without going through the HTTP API.

Examples:
  # List Special editions, oldest first
  editionsctl --path db.json list --category Special --order asc

  # Copy the catalog from a JSON file into PostgreSQL
  editionsctl --config cfg/local.toml --backend postgres import backup.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	flags.StringVarP(&opts.backend, "backend", "b", "", "Store backend: file|postgres (overrides config)")
	flags.StringVarP(&opts.path, "path", "p", "", "JSON document path for the file backend (overrides config)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
	)

	return rootCmd
}

func (o *globalOptions) config() (config.Config, error) {
	var cfg config.Config
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}

	if o.backend != "" {
		cfg.Store.Backend = o.backend
	}
	if o.path != "" {
		cfg.Store.Path = o.path
	}
	cfg.SetDefaults()

	return cfg, cfg.Validate()
}

func (o *globalOptions) logger() *slog.Logger {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// withManager opens the configured store, runs fn and closes the store.
func (o *globalOptions) withManager(ctx context.Context, fn func(*catalog.Manager) error) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}

	logger := o.logger()
	store, err := app.NewStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	repo := db.New(store)
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}()

	return fn(catalog.NewManager(repo, logger))
}
