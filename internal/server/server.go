// Package server wires the application together and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/shashiranjanraj/vastra/app/graph"
	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/audit"
	"github.com/shashiranjanraj/vastra/pkg/cache"
	"github.com/shashiranjanraj/vastra/pkg/database"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/reqid"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"github.com/shashiranjanraj/vastra/pkg/router"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Build assembles the router: middleware stack, API routes, GraphQL and the
// operational endpoints.
func Build(db *gorm.DB) (*router.Router, error) {
	r := router.New()

	rateLimit, err := strconv.Atoi(config.Get("RATE_LIMIT_PER_MINUTE", "300"))
	if err != nil || rateLimit <= 0 {
		rateLimit = 300
	}

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(rateLimit, time.Minute),
	)

	routes.Register(r, db)

	gql, err := graph.New(db)
	if err != nil {
		return nil, err
	}
	r.Post("/api/graphql", "graphql", gql.ServeHTTP)

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/healthz", "healthz", healthz(db))

	return r, nil
}

// healthz reports 200 while the database answers a ping.
func healthz(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		response.Success(w, map[string]string{"status": "ok"})
	}
}

// Start boots configuration, storage, cache and the audit trail, then serves
// until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	// Redis and Mongo are optional at runtime: the cache degrades to
	// pass-through and the audit trail to a no-op.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, running without it", "error", err)
	}
	if err := audit.Open(config.MongoURI(), config.MongoDatabase(), config.MongoCollection()); err != nil {
		logger.Warn("audit trail unavailable, running without it", "error", err)
	}

	r, err := Build(db)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("vastra running", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := audit.Close(); err != nil {
		logger.Warn("audit trail close", "error", err)
	}
	return nil
}
