package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// RandomSeed seeds the dataset noise source when SeedSet is true;
	// otherwise the service falls back to a time-derived seed and output
	// varies across runs.
	RandomSeed uint64
	SeedSet    bool

	// Region photo proxy configuration.
	PhotoEnabled  bool
	PhotoTimeout  time.Duration
	PhotoCacheTTL time.Duration

	CORSOrigins []string
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is loaded first when
// present; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	photoTimeout, err := parseDuration("PHOTO_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	photoCacheTTL, err := parseDuration("PHOTO_CACHE_TTL", "15m")
	if err != nil {
		return nil, err
	}

	seed, seedSet, err := parseSeed()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		RandomSeed: seed,
		SeedSet:    seedSet,

		PhotoEnabled:  envAsBool("PHOTO_ENABLED", true),
		PhotoTimeout:  photoTimeout,
		PhotoCacheTTL: photoCacheTTL,

		CORSOrigins: splitAndTrim(envOrDefault("CORS_ORIGINS", "*")),
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}

	return cfg, nil
}

func parseSeed() (uint64, bool, error) {
	s := os.Getenv("RANDOM_SEED")
	if s == "" {
		return 0, false, nil
	}
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid RANDOM_SEED %q: %w", s, err)
	}
	return seed, true, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envAsBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
