package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/router"
	"gamereviews/backend/internal/store"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), config.AppConfig)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := connect(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		slog.Info("database migrated")
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(store.New(db), cfg, slog.Default()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "err", err)
		}
	}()

	slog.Info("server listening",
		"addr", cfg.Addr(),
		"swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", cfg.Addr()),
	)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "postgres", database.IsPostgres(cfg.DatabaseURL))
	return db, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Warn("close database", "err", err)
	}
}
