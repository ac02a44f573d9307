package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"civicapi/internal/analytics"
	"civicapi/internal/civic/handler"
	"civicapi/internal/civic/service"
	civicstore "civicapi/internal/civic/store"
	"civicapi/internal/geo"
	geostore "civicapi/internal/geo/store"
	"civicapi/internal/platform/config"
	"civicapi/internal/platform/httpserver"
	"civicapi/internal/platform/logger"
	"civicapi/internal/platform/metrics"
	"civicapi/internal/platform/postgres"
	"civicapi/internal/platform/redis"
	"civicapi/internal/search"
	"civicapi/internal/taxonomy"
	httptransport "civicapi/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps
// the server lifecycle small. Business logic lives in internal services.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var zipStore geo.Store
	var stateStore service.StateStore
	if pool != nil {
		zipStore = geostore.NewPostgres(pool)
		stateStore = civicstore.NewPostgres(pool)
	} else {
		log.Warn("no database configured, using in-memory stores")
		zipStore = geostore.NewMemory()
		stateStore = civicstore.NewMemory()
	}

	var zipCache *goredis.Client
	if redisClient != nil {
		zipCache = redisClient.Client
	}
	resolver := geo.NewResolver(zipStore, zipCache, cfg.ZipCacheTTL, log)

	events, err := analytics.NewPublisher(cfg.KafkaBrokers, cfg.AnalyticsTopic, log)
	if err != nil {
		log.Error("kafka connection failed", "error", err)
		os.Exit(1)
	}
	if events != nil {
		defer func() {
			drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			events.Close(drainCtx)
		}()
	}

	searchClient := search.NewClient(cfg.SearchURL)
	civicService := service.New(searchClient, resolver, stateStore, cfg.IndexPrefix, log)
	taxonomyService := taxonomy.New(searchClient, cfg.IndexPrefix, log)

	h := handler.New(civicService, taxonomyService, events, log)
	router := httptransport.NewRouter(h, log, metrics.New(), cfg.JWTSigningKey)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting civic api", "addr", cfg.Addr, "search_url", cfg.SearchURL)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
