package cli

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/orderman/orderman-api/server"
	"github.com/orderman/orderman-api/services"
)

func serveCmd(logOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Create the schema if needed and serve the HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), logOut)
		},
	}
}

func runServe(ctx context.Context, logOut io.Writer) error {
	cfg, logger, err := setup(logOut)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("database.init_failed", "error", err)
		return err
	}
	defer closeStore(s, logger)

	router := server.NewRouter(server.Deps{
		Customers:   services.NewCustomerService(s),
		Database:    s,
		Logger:      logger,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	return server.Run(ctx, cfg.Addr(), router, logger)
}
