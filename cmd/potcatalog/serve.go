package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httphandler "github.com/ericfisherdev/potcatalog/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/potcatalog/internal/adapter/driving/web"
	"github.com/ericfisherdev/potcatalog/internal/config"
	"github.com/ericfisherdev/potcatalog/pkg/logging"
)

func newServeCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog web app and JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides POTCATALOG_LISTEN_ADDR)")
	return cmd
}

func serve(parent context.Context, cfg *config.Config) error {
	logger := logging.Setup(os.Stderr, cfg.LogLevel)
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"journal_path", cfg.JournalPath,
		"log_level", cfg.LogLevel,
	)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := wire(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(a.catalog, a.journal, logger))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(a.catalog, logger))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httphandler.ApplyMiddleware(mux, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete", "pots", a.catalog.Len())
	return nil
}
