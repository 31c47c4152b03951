// @title Quiz Portal API
// @version 1.0
// @description Backend server for the quiz portal.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"quiz_portal_backend/internal/app"
	"quiz_portal_backend/internal/config"
	"quiz_portal_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup (even in release mode)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// NewApp has already run the migration at this point.
	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
