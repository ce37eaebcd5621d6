package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/carecompass/backend/internal/adapters/catalog"
	"github.com/carecompass/backend/internal/api/handlers"
	"github.com/carecompass/backend/internal/api/routes"
	"github.com/carecompass/backend/internal/application/services"
	"github.com/carecompass/backend/internal/domain/entities"
	"github.com/carecompass/backend/internal/infrastructure/observability"
	"github.com/carecompass/backend/pkg/config"
)

func main() {
	// Local .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Static data; nothing to connect to
	facilityCatalog := catalog.NewStaticCatalog()
	personaRegistry := catalog.NewStaticPersonaRegistry()

	temporal := services.NewTemporalService()
	projector := services.NewProjectionService(temporal)
	travel := services.NewTravelService()
	engine := services.NewRecommendationService(travel)

	triage := services.NewTriageService(
		facilityCatalog,
		personaRegistry,
		temporal,
		projector,
		travel,
		engine,
		entities.Location{
			Latitude:  cfg.Origin.Latitude,
			Longitude: cfg.Origin.Longitude,
		},
		services.WallClockHour,
	)

	recommendationHandler := handlers.NewRecommendationHandler(triage, metrics)
	facilityHandler := handlers.NewFacilityHandler(triage)
	personaHandler := handlers.NewPersonaHandler(personaRegistry)

	router := routes.NewRouter(
		recommendationHandler,
		facilityHandler,
		personaHandler,
		cfg.CORS.AllowedOrigins,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	log.Info().Msg("server stopped")
}
