package cmd

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"farecast/internal/config"
	"farecast/internal/infra"
	"farecast/internal/modules/conditions"
	"farecast/internal/modules/currency"
	"farecast/internal/modules/fare"
	"farecast/internal/modules/pricing"
	"farecast/internal/rng"
)

// newEngine builds a fare service from built-in tables, overlaying Redis fx
// overrides when FARECAST_REDIS_ADDR is set. Store failures are logged and
// the built-ins are kept.
func newEngine(cfg config.Config, log zerolog.Logger) *fare.Service {
	src := rng.NewRandom(cfg.Seed)
	log.Debug().Uint64("seed", src.Seed()).Msg("random source ready")

	fx := currency.NewTable()
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if client, err := infra.NewRedis(ctx, cfg.Redis.Addr); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, using built-in exchange rates")
		} else {
			defer client.Close()
			if overrides, err := currency.NewStore(client).LoadRates(ctx); err != nil {
				log.Warn().Err(err).Msg("load fx overrides")
			} else {
				fx.Apply(overrides)
			}
		}
	}

	sim := conditions.NewSimulator(conditions.MustBuiltinProfileSet(), src)
	return fare.NewService(
		sim,
		conditions.NewForecaster(sim, src),
		pricing.NewService(pricing.NewRateTable(), pricing.NewRandomDemand(src.Fork())),
		fx,
		log,
	)
}
