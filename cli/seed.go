package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/orderman/orderman-api/seed"
)

func seedCmd(logOut io.Writer) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "seed",
		Short: "Insert the records of a YAML fixture",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixture, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			cfg, logger, err := setup(logOut)
			if err != nil {
				return err
			}

			s, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("database.init_failed", "error", err)
				return err
			}
			defer closeStore(s, logger)

			sum, err := fixture.Apply(cmd.Context(), s)
			if err != nil {
				logger.Error("seed.failed", "file", file, "inserted", sum.Total(), "error", err)
				return err
			}

			logger.Info("seed.completed", "file", file,
				"customers", sum.Customers, "products", sum.Products,
				"invoices", sum.Invoices, "orders", sum.Orders, "payments", sum.Payments)
			cmd.Printf("inserted %d records from %s\n", sum.Total(), file)
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Path to the YAML fixture (required)")
	_ = c.MarkFlagRequired("file")
	return c
}
