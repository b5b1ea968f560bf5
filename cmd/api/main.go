package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clockhouse/timesheet/internal/config"
	"github.com/clockhouse/timesheet/internal/db"
	httpx "github.com/clockhouse/timesheet/internal/http"
	"github.com/clockhouse/timesheet/internal/http/handlers"
	"github.com/clockhouse/timesheet/internal/observability"
	"github.com/clockhouse/timesheet/internal/repo"
	"github.com/clockhouse/timesheet/internal/repo/memory"
	"github.com/clockhouse/timesheet/internal/repo/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	// tracing
	otelShutdown, err := observability.InitTracer(context.Background(), "timesheet-api", cfg.OTLPEndpoint)

	if err != nil {
		log.Error("tracer init failed", "err", err)
	}

	prom := observability.NewProm(prometheus.NewRegistry())

	// entry store: Postgres when configured, otherwise the seeded mock
	var pool *pgxpool.Pool
	var store handlers.EntriesStore

	if cfg.DBURL != "" {
		pool, err = db.NewPool(cfg.DBURL)

		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}

		store = postgres.NewEntriesRepo(pool)
	} else {
		mem := memory.NewEntriesRepo()
		mem.SeedCurrentWeek()
		store = mem
	}

	store = repo.Instrument(store, prom)

	router, err := httpx.NewRouter(log, store, pool, cfg, prom)

	if err != nil {
		log.Error("router setup failed", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)
			return
		}

		if otelShutdown != nil {
			_ = otelShutdown(ctx)
		}

		if pool != nil {
			pool.Close()
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
