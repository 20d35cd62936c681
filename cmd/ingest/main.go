// Command ingest bulk-loads the configured datasets into the database
// without starting the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/simp-lee/storefront/internal/app"
	"github.com/simp-lee/storefront/internal/config"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	dataDir := flag.String("data-dir", "", "override ingest.data_dir")
	migrate := flag.Bool("migrate", true, "create or update tables before loading")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	if *dataDir != "" {
		cfg.Ingest.DataDir = *dataDir
	}

	// No signal handling: the run either completes or the process dies,
	// leaving the rows already inserted.
	if err := run(context.Background(), cfg, *migrate); err != nil {
		log.Fatal("ingest failed: ", err)
	}
}

func run(ctx context.Context, cfg *config.Config, migrate bool) error {
	logger, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "logger close error:", err)
		}
	}()

	db, err := config.SetupDatabase(&cfg.Database, logger.Logger)
	if err != nil {
		return fmt.Errorf("setup database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if migrate {
		if err := app.Migrate(db); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	res, err := app.NewServices(db).Loader(cfg.Ingest).Run(ctx)
	attrs := []any{
		slog.Int("success_count", res.Success),
		slog.Int("error_count", res.Errors),
	}
	if err != nil {
		// Rows committed before the failure stay in the database.
		logger.ErrorContext(ctx, "ingest aborted", append(attrs, slog.Any("error", err))...)
		return err
	}
	logger.InfoContext(ctx, "ingest finished", attrs...)
	return nil
}
