package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wardtrack/wardtrack/internal/config"
	"github.com/wardtrack/wardtrack/internal/domain/patient"
	"github.com/wardtrack/wardtrack/internal/domain/stats"
	"github.com/wardtrack/wardtrack/internal/domain/vitals"
	"github.com/wardtrack/wardtrack/internal/platform/db"
	"github.com/wardtrack/wardtrack/internal/platform/middleware"
)

const apiName = "Hospital Maternity Patient Tracker API"

func main() {
	rootCmd := &cobra.Command{
		Use:   "ward-server",
		Short: "Maternity ward patient tracking API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(indexesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ward tracking API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the collection indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := db.Connect(ctx, cfg.MongoURL)
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			if err := db.EnsureIndexes(ctx, client.Database(cfg.DBName)); err != nil {
				return fmt.Errorf("create indexes: %w", err)
			}
			fmt.Println("Indexes created.")
			return nil
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Error reporting
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Env,
		}); err != nil {
			logger.Warn().Err(err).Msg("sentry init failed")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Database
	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Disconnect(ctx)
	logger.Info().Msg("connected to database")

	database := client.Database(cfg.DBName)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		// The server still works without indexes; uniqueness then rests
		// on the service-level pre-check alone.
		logger.Warn().Err(err).Msg("failed to ensure indexes")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(client))

	api := e.Group("/api")
	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": apiName})
	})

	// Patient domain
	patientRepo := patient.NewMongoRepo(database)
	patientSvc := patient.NewService(patientRepo)
	patientHandler := patient.NewHandler(patientSvc)
	patientHandler.RegisterRoutes(api)

	// Vital signs domain. The patient service resolves the observed
	// patient for auto-fill; the vitals service in turn handles the
	// patient delete cascade, so the purger is wired last.
	vitalsRepo := vitals.NewMongoRepo(database)
	vitalsSvc := vitals.NewService(vitalsRepo, patientSvc)
	vitalsHandler := vitals.NewHandler(vitalsSvc)
	vitalsHandler.RegisterRoutes(api)
	patientSvc.SetVitalsPurger(vitalsSvc)

	// Statistics
	statsRepo := stats.NewMongoRepo(database)
	statsHandler := stats.NewHandler(stats.NewService(statsRepo))
	statsHandler.RegisterRoutes(api)

	// Start server with graceful shutdown
	addr := ":" + cfg.Port
	go func() {
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
	return nil
}
