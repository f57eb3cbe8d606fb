package main

import (
	"context"
	"fmt"
	"os"

	bidding "gig-marketplace/internal/bidService"
	"gig-marketplace/internal/config"
	gig "gig-marketplace/internal/gigService"
	hire "gig-marketplace/internal/hireService"
	"gig-marketplace/internal/notify"
	"gig-marketplace/internal/repository"
	"gig-marketplace/internal/repository/postgres"
	"gig-marketplace/internal/server"
	"gig-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("cannot load config", map[string]any{"error": err.Error()})
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	repo, cleanup := setupRepository(cfg)
	defer cleanup()

	registry := notify.NewMemoryRegistry()
	dispatcher := notify.NewDispatcher(registry)

	gigService := gig.NewGigService(repo)
	bidService := bidding.NewBidService(repo)
	hireService := hire.NewHireService(repo, dispatcher)

	router := server.SetupRouter(gigService, bidService, hireService, registry)

	fmt.Printf("Starting marketplace server on %s...\n", cfg.ServerAddress)
	if err := router.Run(cfg.ServerAddress); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// setupRepository picks the storage backend: Postgres when a connection
// string is configured, the in-memory store otherwise (local development).
func setupRepository(cfg config.Config) (repository.MarketplaceDB, func()) {
	if cfg.PostgresConn == "" {
		utils.Warn("no POSTGRES_CONN configured, using in-memory storage", nil)
		return repository.NewMemoryRepo(), func() {}
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	pool, err := postgres.NewPool(context.Background(), cfg.PostgresConn)
	if err != nil {
		utils.Fatal("error initializing database", map[string]any{"error": err.Error()})
	}

	return postgres.NewMarketplaceRepo(pool), pool.Close
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		utils.Fatal("cannot create a new migrate instance", map[string]any{"error": err.Error()})
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		utils.Fatal("failed to run migrate up", map[string]any{"error": err.Error()})
	}
	utils.Info("db migrated successfully", nil)
}
