package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"

	"github.com/99minutos/delivery-quote/internal/api"
	"github.com/99minutos/delivery-quote/internal/api/handler"
	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/eta"
	"github.com/99minutos/delivery-quote/internal/core/service"
	mongodb "github.com/99minutos/delivery-quote/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/delivery-quote/internal/infrastructure/db/redis"
	"github.com/99minutos/delivery-quote/internal/infrastructure/queue"
	"github.com/99minutos/delivery-quote/internal/pkg/config"
	"github.com/99minutos/delivery-quote/pkg/logger"
)

const (
	serviceName     = "delivery-quote"
	fetchTimeout    = 2 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title                       Delivery Quote API
// @version                     1.0
// @description                 Delivery fee quoting and ETA estimation for storefront checkouts.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: serviceName})
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("service stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	zoneRepo := mongodb.NewZoneRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	if err := zoneRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("zone indexes not ensured")
	}
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("audit indexes not ensured")
	}

	// --- Caches ---
	settingsCache := service.NewCache(service.CacheOptions[domain.GlobalSettings]{
		Name:         "settings",
		Fetch:        settingsRepo.GetSettings,
		Fallback:     domain.DefaultSettings(),
		TTL:          cfg.Quote.SettingsTTL,
		FetchTimeout: fetchTimeout,
		Logger:       log,
	})
	catalogCache := service.NewCache(service.CacheOptions[domain.ZoneCatalog]{
		Name:         "zones",
		Fetch:        zoneRepo.LoadCatalog,
		TTL:          cfg.Quote.CatalogTTL,
		FetchTimeout: fetchTimeout,
		Logger:       log,
	})
	if _, err := settingsCache.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("serving default settings until the store answers")
	}
	if _, err := catalogCache.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("serving an empty zone catalog until the store answers")
	}

	// --- Audit trail ---
	dispatcher := queue.NewDispatcher(cfg.Quote.AuditWorkers, auditRepo, log)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)

	// --- Services ---
	loc, err := time.LoadLocation(cfg.Quote.Timezone)
	if err != nil {
		stopWorkers()
		return err
	}
	quoteService := service.NewQuoteService(service.QuoteServiceDeps{
		Settings:     settingsCache,
		Catalog:      catalogCache,
		Riders:       redisdb.NewRiderAvailabilityStore(rdb),
		Auditor:      dispatcher,
		Estimator:    eta.NewEstimator(loc),
		RiderTimeout: cfg.Quote.RiderTimeout,
		DefaultHub:   domain.Coordinates{Lat: cfg.Quote.DefaultHubLat, Lng: cfg.Quote.DefaultHubLng},
		Logger:       log,
	})
	adminService := service.NewAdminService(settingsCache, catalogCache)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Quotes:    quoteService,
		Admin:     adminService,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
		Checks: []handler.DependencyCheck{
			{Name: "mongodb", Ping: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
			{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		},
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			stopWorkers()
			dispatcher.Wait()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	// In-flight requests are done; flush the audit queues.
	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("shutdown complete")
	return nil
}
