package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "rentdesk-backend/internal/api/http"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/jobs"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/msgraph"
	"rentdesk-backend/internal/repository/postgres"
	"rentdesk-backend/internal/scheduler"
	"rentdesk-backend/internal/service"
	"rentdesk-backend/internal/sheet"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentdesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Worksheet configuration", "sheet", cfg.Graph.SheetName, "range", cfg.Graph.RangeAddress, "cache_ttl_seconds", cfg.Cache.TTLSeconds)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Graph client and snapshot cache
	graphClient := msgraph.NewClient(msgraph.Options{
		TenantID:     cfg.Graph.TenantID,
		ClientID:     cfg.Graph.ClientID,
		ClientSecret: cfg.Graph.ClientSecret,
		SiteID:       cfg.Graph.SiteID,
		ItemID:       cfg.Graph.ItemID,
		SheetName:    cfg.Graph.SheetName,
		RangeAddress: cfg.Graph.RangeAddress,
		Timeout:      time.Duration(cfg.Graph.TimeoutSeconds) * time.Second,
		RetryMax:     cfg.Graph.RetryMax,
	})
	snapshotCache := sheet.NewSnapshotCache(graphClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)

	// Initialize Services
	lookupSvc := service.NewLookupService(snapshotCache)
	messageSvc := service.NewMessageService(store.MessageRepository)

	// Start the warm-refresh scheduler when configured
	jobRunner := jobs.NewJobRunner(snapshotCache, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(lookupSvc, messageSvc, cfg.Server.AllowedOrigins)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
