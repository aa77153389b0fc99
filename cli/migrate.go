package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func migrateCmd(logOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create any missing tables and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(logOut)
			if err != nil {
				return err
			}

			s, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("database.init_failed", "error", err)
				return err
			}
			closeStore(s, logger)

			cmd.Println("schema is up to date")
			return nil
		},
	}
}
