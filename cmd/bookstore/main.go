package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/okoval/bookstore/internal/book"
	"github.com/okoval/bookstore/internal/employee"
	"github.com/okoval/bookstore/internal/report"
	"github.com/okoval/bookstore/internal/sale"
	"github.com/okoval/bookstore/internal/seed"
	"github.com/okoval/bookstore/pkg/config"
	"github.com/okoval/bookstore/pkg/database"
	"github.com/okoval/bookstore/pkg/logger"
	"github.com/okoval/bookstore/pkg/middleware"
	"github.com/okoval/bookstore/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting bookstore service")

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Separate database/sql connection for the health check
	healthDB, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer healthDB.Close()

	// Run migrations
	if err := seed.Migrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if cfg.SeedDemoData {
		if err := seed.Demo(db); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Tracing is optional; the service runs fine without a collector
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
		logger.Logger.Info().Str("jaeger_endpoint", cfg.JaegerEndpoint).Msg("Tracing enabled")
	}

	// Initialize handlers with Wire DI
	employeeHandler, err := employee.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize employee handler")
	}
	bookHandler, err := book.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize book handler")
	}
	saleHandler, err := sale.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize sale handler")
	}
	reportHandler, err := report.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize report handler")
	}

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.Logging)
	if cfg.TracingEnabled {
		router.Use(middleware.Tracing("bookstore-http"))
	}

	employeeHandler.RegisterRoutes(router)
	bookHandler.RegisterRoutes(router)
	saleHandler.RegisterRoutes(router)
	reportHandler.RegisterRoutes(router)

	registerHealthCheck(router, healthDB)
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func registerHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   "Database unavailable",
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Bookstore service is healthy",
		})
	}).Methods("GET")
}
