package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/invoicedash/internal/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the tables and load the bootstrap dataset",
	Long: `Creates the users, customers, invoices and revenue tables when missing and
inserts the bootstrap dataset in a single transaction. Existing rows are kept,
so running it twice is harmless.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("can't load config: %w", err)
		}
		return app.New(cfg).Seed(cmd.Context())
	},
}
