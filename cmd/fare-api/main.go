// README: Entry point; loads config, wires fare services and optional stores, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farecast/internal/ai"
	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/infra"
	"farecast/internal/maps"
	"farecast/internal/modules/conditions"
	"farecast/internal/modules/currency"
	"farecast/internal/modules/fare"
	"farecast/internal/modules/pricing"
	"farecast/internal/rng"
)

// mapsPerSecond caps outbound Directions API calls.
const mapsPerSecond = 10

func main() {
	cfg, err := config.Load()
	logger := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	infra.LogConfigWarnings(logger, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := rng.NewRandom(cfg.Seed)
	logger.Info().Uint64("seed", src.Seed()).Msg("random source ready")

	rates := pricing.NewRateTable()
	profiles := conditions.MustBuiltinProfileSet()
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect database")
		}
		defer dbPool.Close()

		stored, err := pricing.NewStore(dbPool).LoadRates(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("load vehicle rates")
		}
		if ignored := rates.Apply(stored); len(ignored) > 0 {
			logger.Warn().Strs("classes", ignored).Msg("ignored unknown vehicle classes")
		}

		profiles, err = conditions.NewStore(dbPool).LoadProfileSet(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("load location profiles")
		}
		if unbalanced := profiles.Unbalanced(); len(unbalanced) > 0 {
			logger.Warn().Strs("tables", unbalanced).Msg("profile weights do not total 100")
		}
	}

	fx := currency.NewTable()
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect redis")
		}
		defer redisClient.Close()

		overrides, err := currency.NewStore(redisClient).LoadRates(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("load exchange rates")
		}
		if skipped := fx.Apply(overrides); len(skipped) > 0 {
			logger.Warn().Strs("codes", skipped).Msg("skipped non-positive exchange rates")
		}
	}

	sim := conditions.NewSimulator(profiles, src)
	fareSvc := fare.NewService(
		sim,
		conditions.NewForecaster(sim, src),
		pricing.NewService(rates, pricing.NewRandomDemand(src.Fork())),
		fx,
		logger,
	)

	deps := httptransport.ServerDeps{
		Fare:      fareSvc,
		Rates:     rates,
		Profiles:  profiles,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	}
	var directions maps.Resolver
	if cfg.Maps.APIKey != "" {
		routes, err := maps.NewRouteService(cfg.Maps.APIKey, mapsPerSecond)
		if err != nil {
			logger.Fatal().Err(err).Msg("maps client")
		}
		directions = routes
	}
	deps.Routes = maps.NewCoordinateResolver(directions)
	if cfg.AI.GeminiKey != "" {
		narrator, err := ai.NewGeminiNarrator(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("gemini client")
		}
		defer narrator.Close()
		deps.Narrator = narrator
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httptransport.NewServer(deps).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("fare api listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("serve")
	}
}
