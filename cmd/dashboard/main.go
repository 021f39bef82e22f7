package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/adapter/http"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/adapter/imagery"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/config"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/dataset"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/domain"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	seed := cfg.RandomSeed
	if !cfg.SeedSet {
		seed = uint64(time.Now().UnixNano())
		logger.Info("no RANDOM_SEED set, dataset varies across runs")
	} else {
		logger.Info("dataset seeded", "seed", seed)
	}

	provider := dataset.NewProvider(domain.NewRandomNoise(seed))

	// Generate eagerly so the first request never pays for it and /readyz
	// is accurate from startup.
	ds := provider.Dataset()
	metrics.DatasetReady.Set(1)
	logger.Info("sample dataset generated",
		"regions", len(ds.Regions),
		"climate_rows", len(ds.ClimateHistory),
		"crop_health_rows", len(ds.CropHealth),
		"projection_rows", len(ds.Projections),
	)

	// Region photo proxy (feature-flagged via PHOTO_ENABLED).
	var photos imagery.Source
	if cfg.PhotoEnabled {
		client := imagery.NewClient(cfg.PhotoTimeout, logger)
		photos = imagery.NewCachedSource(client, cfg.PhotoCacheTTL, photoCacheStats{metrics})
		metrics.PhotoEnabled.Set(1)
		logger.Info("region photo proxy enabled", "timeout", cfg.PhotoTimeout, "cache_ttl", cfg.PhotoCacheTTL)
	} else {
		logger.Info("region photo proxy disabled, placeholder only")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, provider, photos, metrics, logger, cfg.CORSOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// photoCacheStats feeds imagery cache hits and misses into Prometheus.
type photoCacheStats struct {
	metrics *observability.Metrics
}

func (p photoCacheStats) CacheHit()  { p.metrics.PhotoCache.WithLabelValues("hit").Inc() }
func (p photoCacheStats) CacheMiss() { p.metrics.PhotoCache.WithLabelValues("miss").Inc() }
