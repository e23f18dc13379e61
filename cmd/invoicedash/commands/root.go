package commands

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/invoicedash/internal/config"
)

var (
	address  string
	database string
	logLvl   string
)

var rootCmd = &cobra.Command{
	Use:   "invoicedash",
	Short: "Invoicing dashboard API server",
	Long: `invoicedash serves the invoicing dashboard API backed by PostgreSQL.

Without a subcommand it behaves like "invoicedash serve".
Flags override RUN_ADDRESS, DATABASE_URI and LOG_LVL.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("invoicedash failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "", "HTTP listen address (RUN_ADDRESS)")
	rootCmd.PersistentFlags().StringVarP(&database, "database", "d", "", "PostgreSQL connection URI (DATABASE_URI)")
	rootCmd.PersistentFlags().StringVarP(&logLvl, "log-level", "l", "", "Log level: debug, info, warn, error (LOG_LVL)")

	rootCmd.AddCommand(serveCmd, seedCmd, migrateCmd)
}

// loadConfig reads the environment and applies flags explicitly set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("address") {
		cfg.Address = address
	}
	if flags.Changed("database") {
		cfg.Database = database
	}
	if flags.Changed("log-level") {
		cfg.LogLvl = logLvl
	}
	return cfg, nil
}
