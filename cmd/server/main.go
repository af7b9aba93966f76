package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"transit/internal/app"
	"transit/internal/config"
	"transit/internal/handler"
	"transit/internal/metrics"
	"transit/internal/middleware"
	internalRedis "transit/internal/redis"
	"transit/internal/repository/postgres"
	"transit/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Apply schema migrations.
	if err := app.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	log.Println("Database schema up to date")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis cache store.
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize metrics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(registry)

	// Initialize repositories.
	oneTimeRepo := postgres.NewOneTimeTicketRepository(db)
	weeklyRepo := postgres.NewWeeklyTicketRepository(db)
	useRepo := postgres.NewTicketUseRepository(db)
	passengerRepo := postgres.NewPassengerRepository(db)
	rideRepo := postgres.NewRideRepository(db)

	// Initialize services.
	issuerService := service.NewIssuerService(oneTimeRepo, weeklyRepo, cacheStore, collector)
	validatorService := service.NewValidatorService(oneTimeRepo, weeklyRepo, useRepo, collector)
	queryService := service.NewQueryService(oneTimeRepo, weeklyRepo, rideRepo, cacheStore)
	scheduleService := service.NewScheduleService(rideRepo)

	// Initialize handlers.
	ticketHandler := handler.NewTicketHandler(issuerService, validatorService)
	passengerHandler := handler.NewPassengerHandler(passengerRepo, queryService)
	rideHandler := handler.NewRideHandler(scheduleService, queryService)
	reportHandler := handler.NewReportHandler(queryService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		TicketHandler:    ticketHandler,
		PassengerHandler: passengerHandler,
		RideHandler:      rideHandler,
		ReportHandler:    reportHandler,
		RedisClient:      redisClient,
		NewRelicApp:      nrApp,
		Gatherer:         registry,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst),
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
