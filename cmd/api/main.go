package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/adapters/analytics"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/adapters/database"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/api/handlers"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/api/routes"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/application/services"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/clients"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/clients/redis"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/observability"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Log.Env, cfg.Log.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telemetry, err := observability.Setup(ctx, cfg.OTEL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up OpenTelemetry")
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	db, err := clients.OpenProviderStore(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open provider store")
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("provider store ready")

	searchCfg := cfg.Search
	providerService := services.NewProviderService(database.NewProviderAdapter(db, metrics), searchCfg)

	var (
		redisClient      *redis.Client
		analyticsService *services.SearchAnalyticsService
		querier          handlers.ZeroResultQuerier
		searchOpts       []services.SearchOption
	)
	if cfg.Analytics.Enabled {
		redisClient, err = redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Redis client")
		}
		analyticsService = services.NewSearchAnalyticsService(
			analytics.NewRedisSearchEventRepository(redisClient, cfg.Analytics.MaxEvents),
		)
		querier = analyticsService
		searchOpts = append(searchOpts, services.WithTracker(analyticsService))
		log.Info().Int("max_events", cfg.Analytics.MaxEvents).Msg("search analytics enabled")
	}

	searchService := services.NewSearchService(providerService, searchCfg, searchOpts...)

	router := routes.NewRouter(
		handlers.NewSearchHandler(searchService),
		handlers.NewHealthHandler(db),
		handlers.NewAnalyticsHandler(querier),
		metrics,
		telemetry.MetricsHandler,
		cfg.Server.AllowedOrigins,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	// Pending analytics writes finish before Redis closes.
	if analyticsService != nil {
		analyticsService.Wait()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("error closing Redis client")
		}
	}
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("error closing provider store")
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down OpenTelemetry")
	}

	log.Info().Msg("server stopped")
}
