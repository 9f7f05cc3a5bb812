// README: Config loader with env defaults for HTTP, DB, Redis, external APIs and the random seed.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	AI struct {
		GeminiKey string
	}
	Log struct {
		Level  string
		Format string
	}
	RateLimit RateLimitConfig
	Seed      int64

	// EnvFileLoaded reports whether a .env file was read.
	EnvFileLoaded bool
	// Warnings lists variables that were set but unparsable. Load runs before
	// the logger exists, so callers log these once it is configured.
	Warnings []string
}

// Load reads .env when present, then the process environment. Empty DB and
// Redis settings mean the built-in tables are used. Load does not log.
func Load() (Config, error) {
	var cfg Config
	cfg.EnvFileLoaded = godotenv.Load() == nil

	cfg.HTTP.Addr = envOrDefault("FARECAST_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("FARECAST_DB_DSN")
	cfg.Redis.Addr = os.Getenv("FARECAST_REDIS_ADDR")
	cfg.Maps.APIKey = os.Getenv("FARECAST_MAPS_API_KEY")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Log.Level = envOrDefault("FARECAST_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("FARECAST_LOG_FORMAT", "json")
	cfg.RateLimit.PerSecond = envOrDefaultFloat(&cfg, "FARECAST_RATE_LIMIT", 20)
	cfg.RateLimit.Burst = envOrDefaultInt(&cfg, "FARECAST_RATE_BURST", 40)
	cfg.Seed = envOrDefaultInt64(&cfg, "FARECAST_SEED", 0)
	return cfg, nil
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(cfg *Config, key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		cfg.warnf("%s=%q is not an integer, using %d", key, v, def)
	}
	return def
}

func envOrDefaultInt64(cfg *Config, key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		cfg.warnf("%s=%q is not an integer, using %d", key, v, def)
	}
	return def
}

func envOrDefaultFloat(cfg *Config, key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
		cfg.warnf("%s=%q is not a number, using %g", key, v, def)
	}
	return def
}
