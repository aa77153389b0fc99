// Package cli defines the orderman command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orderman/orderman-api/config"
	"github.com/orderman/orderman-api/logging"
	"github.com/orderman/orderman-api/store"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "orderman",
		Short:        "Order management API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), logOut)
		},
	}

	cmd.AddCommand(serveCmd(logOut))
	cmd.AddCommand(migrateCmd(logOut))
	cmd.AddCommand(seedCmd(logOut))
	return cmd
}

// setup loads configuration and installs the process logger.
func setup(logOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openStore connects to the configured database and makes sure the schema exists.
// The caller must close the returned store.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store.Store, error) {
	db, err := config.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	s := store.New(db)

	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	logger.Info("database.ready", "url", redactURL(cfg.DatabaseURL))
	return s, nil
}

func closeStore(s *store.Store, logger *slog.Logger) {
	if err := s.Close(); err != nil {
		logger.Warn("database.close_failed", "error", err)
	}
}
