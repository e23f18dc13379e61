package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/invoicedash/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New(cfg)
	if err := application.Start(ctx); err != nil {
		log.Error().Err(err).Msg("Can't start application")
		return err
	}

	if err := application.Wait(ctx, cancel); err != nil {
		zap.L().Error("All systems closed with errors", zap.Error(err))
		return err
	}

	zap.L().Info("All systems closed without errors")
	return nil
}
