package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	catalogapp "github.com/shoppy/backend/internal/application/catalog"
	"github.com/shoppy/backend/internal/application/seed"
	"github.com/shoppy/backend/internal/infrastructure/config"
	"github.com/shoppy/backend/internal/infrastructure/event"
	"github.com/shoppy/backend/internal/infrastructure/logger"
	"github.com/shoppy/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		clear    bool
		logLevel string
	)

	flag.BoolVar(&clear, "clear", false, "Clear existing products before importing")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	log.Info("Importing sample products",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Bool("clear", clear),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))

	productRepo := persistence.NewGormProductRepository(db.DB)
	productService := catalogapp.NewProductService(productRepo, eventBus, log)
	seeder := seed.NewProductSeeder(productService, productRepo, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := seeder.Run(ctx, seed.Options{Clear: clear})
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	fmt.Printf("Imported %d new products (%d skipped, %d cleared), %d total in catalog\n",
		result.Created, result.Skipped, result.Cleared, result.Total)
}
