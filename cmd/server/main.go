package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "boardcamp-backend/internal/api/http"
	"boardcamp-backend/internal/config"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/repository/postgres"
	"boardcamp-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting boardcamp backend", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	rentalSvc := service.NewRentalService(store.RentalRepository, store.GameRepository, store.CustomerRepository)
	gameSvc := service.NewGameService(store.GameRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)

	router := httpapi.NewRouter(rentalSvc, gameSvc, customerSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
