package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/potcatalog/internal/adapter/driving/tui"
	"github.com/ericfisherdev/potcatalog/internal/config"
	"github.com/ericfisherdev/potcatalog/pkg/logging"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the catalog in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
}

func runTUI(parent context.Context, cfg *config.Config) error {
	// Logs would draw over the screen, so they only go to a file, if any.
	logger, closeLog, err := logging.SetupFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM)
	defer stop()

	a, err := wire(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	logger.Info("tui starting")
	if err := tui.Run(ctx, a.catalog); err != nil {
		return err
	}
	logger.Info("tui exited", "pots", a.catalog.Len())
	return nil
}
