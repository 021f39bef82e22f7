// Package http exposes the dashboard over HTTP: the JSON API, rendered
// chart PNGs, the region photo proxy, health and metrics endpoints, and the
// dashboard page itself.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/adapter/imagery"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/dataset"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/observability"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard HTTP surface.
type Server struct {
	httpServer *http.Server
	provider   *dataset.Provider
	photos     imagery.Source // nil when the photo proxy is disabled
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates the dashboard server. Pass a nil photo source to serve
// the placeholder image for every region photo request.
func NewServer(addr string, provider *dataset.Provider, photos imagery.Source, metrics *observability.Metrics, logger *slog.Logger, corsOrigins []string) *Server {
	s := &Server{
		provider: provider,
		photos:   photos,
		metrics:  metrics,
		logger:   logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(provider))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/regions", s.handleRegions)
	mux.HandleFunc("GET /api/regions/geojson", s.handleRegionGeoJSON)
	mux.HandleFunc("GET /api/climate/history", s.handleClimateHistory)
	mux.HandleFunc("GET /api/climate/projections", s.handleClimateProjections)
	mux.HandleFunc("GET /api/climate/temperature", s.handleRegionalTemperature)
	mux.HandleFunc("GET /api/climate/drought", s.handleDrought)
	mux.HandleFunc("GET /api/crops/health", s.handleCropHealth)
	mux.HandleFunc("GET /api/crops/ndvi", s.handleNDVI)
	mux.HandleFunc("GET /api/projections/yield", s.handleYield)
	mux.HandleFunc("GET /api/vulnerability", s.handleVulnerability)
	mux.HandleFunc("GET /api/recommendations", s.handleRecommendations)

	mux.HandleFunc("GET /regions/{name}/photo", s.handleRegionPhoto)

	mux.HandleFunc("GET /charts/climate-history.png", s.handleClimateHistoryChart)
	mux.HandleFunc("GET /charts/rainfall.png", s.handleRainfallChart)
	mux.HandleFunc("GET /charts/projections.png", s.handleProjectionsChart)
	mux.HandleFunc("GET /charts/temperature.png", s.handleTemperatureChart)
	mux.HandleFunc("GET /charts/ndvi.png", s.handleNDVIChart)
	mux.HandleFunc("GET /charts/drought.png", s.handleDroughtChart)
	mux.HandleFunc("GET /charts/yield.png", s.handleYieldChart)
	mux.HandleFunc("GET /charts/strategies.png", s.handleStrategiesChart)

	mux.HandleFunc("GET /{$}", s.handleDashboardPage)

	handler := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}).Handler(s.instrument(mux))

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck // best-effort response
}
