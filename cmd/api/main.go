// Package main is the entry point for the lunisolar calendar API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hanuiso/lunisolar-api/internal/api"
	"github.com/hanuiso/lunisolar-api/internal/calendar"
	"github.com/hanuiso/lunisolar-api/internal/config"
	"github.com/hanuiso/lunisolar-api/internal/database"
	"github.com/hanuiso/lunisolar-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	log.Info("starting lunisolar API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	engines, err := loadEngines(ctx, db, log)
	if err != nil {
		return fmt.Errorf("load calendar engines: %w", err)
	}

	handlers := api.NewHandlers(db, cfg, log, engines)
	router := api.SetupRoutes(handlers, cfg, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Serve until interrupted, then drain connections.
	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-shutdownCtx.Done():
		log.Info("shutting down")
		drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(drainCtx)
	}
}

// loadEngines builds one engine per variant, preferring seeded database
// tables and falling back to the embedded reference table.
func loadEngines(ctx context.Context, db *database.DB, log *slog.Logger) (map[calendar.Variant]*calendar.Engine, error) {
	engines := make(map[calendar.Variant]*calendar.Engine)
	for _, variant := range calendar.Variants() {
		stored, err := db.GetYearTable(ctx, string(variant))
		if database.IsNotFound(err) {
			log.Info("using embedded year table", slog.String("variant", string(variant)))
			engines[variant] = calendar.NewEngine(variant)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load year table for %s: %w", variant, err)
		}
		engine, err := calendar.NewEngineWithTable(variant, stored.FirstYear, stored.NewYear, stored.Info)
		if err != nil {
			return nil, fmt.Errorf("build engine for %s: %w", variant, err)
		}
		log.Info("using stored year table",
			slog.String("variant", string(variant)),
			slog.Int("first_year", stored.FirstYear),
			slog.Int("years", len(stored.Info)),
		)
		engines[variant] = engine
	}
	return engines, nil
}
