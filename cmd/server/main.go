package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-records-service/internal/config"
	"hospital-records-service/internal/database"
	"hospital-records-service/internal/idgen"
	"hospital-records-service/internal/logger"
	"hospital-records-service/internal/models"
	"hospital-records-service/internal/router"
	"hospital-records-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-records",
		Short: "Hospital patient and doctor records server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the records web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create indexes (MongoDB) or tables (MySQL/Postgres)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := logger.New(cfg)

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			store, err := database.Connect(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer store.Close(context.Background())

			if store.Migrate == nil {
				log.Info().Str("driver", cfg.Store.Driver).Msg("Nothing to migrate")
				return nil
			}
			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info().Str("driver", cfg.Store.Driver).Msg("Migration complete")
			return nil
		},
	}
}

func runServer() error {
	// 1. Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.New(cfg)
	log.Info().Str("driver", cfg.Store.Driver).Msg("Configuration loaded successfully")

	// 2. Initialize record store
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := database.Connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to close record store")
		}
	}()

	// 3. Initialize services
	ids := idgen.New(store.Sequences, models.RecordSequence, cfg.Store.IDBlockSize)
	recordService := service.NewRecordService(store.Patients, store.Doctors, ids, cfg.Store.Timeout)

	// 4. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := router.New(cfg, log, recordService, store.Ping)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 5. Setup graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("Server exited")
	return nil
}
