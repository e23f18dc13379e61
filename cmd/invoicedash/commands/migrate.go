package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/invoicedash/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("can't load config: %w", err)
		}
		return app.New(cfg).Migrate(cmd.Context())
	},
}
