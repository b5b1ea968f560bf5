package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/clockhouse/timesheet/internal/auth"
	"github.com/clockhouse/timesheet/internal/cache"
	"github.com/clockhouse/timesheet/internal/config"
	"github.com/clockhouse/timesheet/internal/http/handlers"
	"github.com/clockhouse/timesheet/internal/http/middlewares"
	"github.com/clockhouse/timesheet/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter wires middlewares and routes around an injected entry store.
// pool and prom may be nil (memory-only process, tests).
func NewRouter(log *slog.Logger, store handlers.EntriesStore, pool *pgxpool.Pool, cfg config.Config, prom *observability.Prom) (*gin.Engine, error) {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	jwtManager := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)

	credentials, err := auth.NewCredentialValidator(cfg, jwtManager)

	if err != nil {
		return nil, err
	}

	identity := middlewares.NewIdentityMiddleware(jwtManager)

	// middleware
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("timesheet-api"))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))
	r.Use(middlewares.RequireJSON())
	r.Use(identity.Identify())

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(prom.Registry, promhttp.HandlerOpts{})))
	}

	// health
	var ping func() error

	if pool != nil {
		ping = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
			defer cancel()

			return pool.Ping(ctx)
		}
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// week pages are immutable per process; the cache only saves re-rendering
	var pageCache cache.Cache

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second

	if cfg.RedisAddr != "" {
		pageCache = cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      ttl,
		})
	} else {
		pageCache = cache.NewMemory(ttl)
	}

	authHandler := handlers.NewAuthHandler(credentials)
	projectsHandler := handlers.NewProjectsHandler()
	timesheetsHandler := handlers.NewTimesheetsHandler(pageCache, prom)
	entriesHandler := handlers.NewEntriesHandler(store)

	loginLimiter := middlewares.NewRateLimiter(cfg.LoginRateLimit, time.Duration(cfg.LoginRateWindowSeconds)*time.Second)

	r.POST("/auth/login", loginLimiter.ByIP(), authHandler.Login)

	r.GET("/projects", projectsHandler.ListProjects)

	r.GET("/timesheets", timesheetsHandler.ListTimesheets)
	r.GET("/timesheets/entries", entriesHandler.ListEntries)
	r.POST("/timesheets/entries", entriesHandler.CreateEntry)
	r.PUT("/timesheets/entries", entriesHandler.UpdateEntry)
	r.DELETE("/timesheets/entries", entriesHandler.DeleteEntry)

	return r, nil
}
