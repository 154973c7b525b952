package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animals-registry/internal/adapters/auth/apikey"
	"animals-registry/internal/adapters/registry"
	"animals-registry/internal/adapters/seed"
	pg "animals-registry/internal/adapters/storage/postgres"
	"animals-registry/internal/domain/mammals"
	"animals-registry/internal/metrics"
	"animals-registry/internal/platform/config"
	"animals-registry/internal/platform/logger"
	"animals-registry/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title animals-registry API
// @version 1.0
// @description Catálogo de animales y set de mamíferos.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("postgres ready", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	opts := router.Options{DB: db, Logger: log}

	if cfg.APIKey != "" {
		opts.AuthVerifier = apikey.NewVerifier(cfg.APIKey, "")
	} else {
		log.Warn("API_KEY not set, dev auth via X-Debug-User-ID", nil)
	}

	if cfg.SourceURL != "" {
		src, err := registry.NewSource(cfg.SourceURL, cfg.SourceTimeout)
		if err != nil {
			return fmt.Errorf("source: %w", err)
		}
		opts.Source = src
		log.Info("mammals source is remote registry", map[string]any{"source": src.String()})
	}

	app := router.Build(opts)

	if cfg.SeedFile != "" {
		n, err := seed.LoadAndApply(ctx, app.Animals, cfg.SeedFile)
		if err != nil {
			return err
		}
		log.Info("seed applied", map[string]any{"file": cfg.SeedFile, "created": n})
	}

	if cfg.RefreshOnStart {
		// sin set inicial se sirve vacío; no es motivo para no arrancar
		err := app.Mammals.Refresh(ctx)
		result := mammals.RefreshResult(err)
		metrics.RecordRefresh(result, app.Mammals.Len())
		if err != nil {
			log.Warn("initial mammals refresh failed", map[string]any{"err": err, "result": result})
		} else {
			log.Info("initial mammals refresh", map[string]any{"count": app.Mammals.Len()})
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
