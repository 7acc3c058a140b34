package main

import (
	"context"
	"log/slog"

	sqliteadapter "github.com/ericfisherdev/potcatalog/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/potcatalog/internal/application"
	"github.com/ericfisherdev/potcatalog/internal/config"
	"github.com/ericfisherdev/potcatalog/internal/domain/port/driven"
)

// app bundles the components shared by both front ends.
type app struct {
	catalog *application.CatalogService
	journal driven.PotJournal
	close   func()
}

// wire opens the optional journal and builds the catalog.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{close: func() {}}

	if cfg.JournalEnabled() {
		db, err := sqliteadapter.NewDB(ctx, cfg.JournalPath)
		if err != nil {
			return nil, err
		}
		version, err := sqliteadapter.RunMigrations(db.Writer)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("journal opened", "path", db.Path(), "schema_version", version)

		a.journal = sqliteadapter.NewJournalRepo(db)
		a.close = func() {
			if err := db.Close(); err != nil {
				logger.Error("error closing journal", "error", err)
			}
		}
	} else {
		logger.Info("journal disabled")
	}

	a.catalog = application.NewCatalogService(a.journal, logger)
	return a, nil
}
