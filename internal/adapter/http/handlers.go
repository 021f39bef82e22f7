package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/adapter/imagery"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/domain"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/render"
)

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.provider.Dataset().Regions)
}

func (s *Server) handleRegionGeoJSON(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.RegionFeatureCollection(s.provider.Dataset().Regions))
}

func (s *Server) handleClimateHistory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.provider.Dataset().ClimateHistory)
}

func (s *Server) handleClimateProjections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.provider.Dataset().Projections)
}

func (s *Server) handleDrought(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.provider.Dataset().Drought)
}

func (s *Server) handleRegionalTemperature(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("region")
	series, ok := s.provider.Temperatures(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown region %q", name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"region": name,
		"series": series,
	})
}

func (s *Server) handleCropHealth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	name := q.Get("region")
	if _, ok := s.provider.Region(name); !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown region %q", name))
		return
	}

	season, err := domain.ParseSeason(q.Get("season"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	year := 2020
	if y := q.Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid year %q", y))
			return
		}
	}

	rec, ok := s.provider.CropHealthAt(name, year)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("year %d outside range %d-%d",
			year, domain.HistoricalStartYear, domain.HistoricalEndYear))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"region":       rec.Region,
		"year":         rec.Year,
		"season":       season,
		"crop":         rec.Crop,
		"health_index": rec.HealthIndex,
		"status":       domain.ClassifyHealth(rec.HealthIndex),
	})
}

func (s *Server) handleNDVI(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("region")
	profile, ok := domain.NDVIProfile(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown region %q", name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"region": name,
		"months": domain.Months,
		"ndvi":   profile,
	})
}

func (s *Server) handleYield(w http.ResponseWriter, r *http.Request) {
	scenario, err := domain.ParseScenario(r.URL.Query().Get("scenario"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"scenario": scenario,
		"label":    scenario.Label(),
		"points":   domain.YieldProjection(scenario),
	})
}

func (s *Server) handleVulnerability(w http.ResponseWriter, _ *http.Request) {
	ds := s.provider.Dataset()

	radar := make([]map[string]any, 0, len(ds.Regions))
	for _, r := range ds.Regions {
		radar = append(radar, map[string]any{
			"region": r.Name,
			"crop":   r.Crop,
			"risk":   r.Risk,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"radar":      radar,
		"map_2050":   domain.VulnerabilityMap2050(),
		"strategies": domain.AdaptationStrategies(),
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("region")
	recs, ok := domain.Recommendations(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown region %q", name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"region":          name,
		"recommendations": recs,
	})
}

// handleRegionPhoto proxies the region photograph. Every failure path is
// recovered locally with the placeholder image; the response is always 200.
func (s *Server) handleRegionPhoto(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	region, ok := s.provider.Region(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown region %q", name))
		return
	}

	if s.photos == nil {
		s.servePlaceholder(w)
		return
	}

	start := time.Now()
	result, err := s.photos.Fetch(r.Context(), region.PhotoURL)
	s.metrics.PhotoFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Warn("region photo unavailable, serving placeholder",
			"region", name, "error", err)
		s.servePlaceholder(w)
		return
	}

	s.metrics.PhotoRequests.WithLabelValues("success").Inc()
	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data) //nolint:errcheck // best-effort response
}

func (s *Server) servePlaceholder(w http.ResponseWriter) {
	s.metrics.PhotoRequests.WithLabelValues("fallback").Inc()
	w.Header().Set("X-Photo-Fallback", "true")
	writePNG(w, imagery.Placeholder())
}

func (s *Server) handleClimateHistoryChart(w http.ResponseWriter, _ *http.Request) {
	s.serveChart(w, func() ([]byte, error) {
		return render.ClimateHistory(s.provider.Dataset().ClimateHistory)
	})
}

func (s *Server) handleRainfallChart(w http.ResponseWriter, _ *http.Request) {
	s.serveChart(w, func() ([]byte, error) {
		return render.Rainfall(s.provider.Dataset().ClimateHistory)
	})
}

func (s *Server) handleProjectionsChart(w http.ResponseWriter, _ *http.Request) {
	s.serveChart(w, func() ([]byte, error) {
		return render.Projections(s.provider.Dataset().Projections)
	})
}

func (s *Server) handleTemperatureChart(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("region")
	series, ok := s.provider.Temperatures(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown region %q", name))
		return
	}
	s.serveChart(w, func() ([]byte, error) {
		return render.RegionalTemperature(name, series)
	})
}

func (s *Server) handleNDVIChart(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("region")
	profile, ok := domain.NDVIProfile(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown region %q", name))
		return
	}
	s.serveChart(w, func() ([]byte, error) {
		return render.NDVI(name, profile)
	})
}

func (s *Server) handleDroughtChart(w http.ResponseWriter, _ *http.Request) {
	s.serveChart(w, func() ([]byte, error) {
		return render.Drought(s.provider.Dataset().Drought)
	})
}

func (s *Server) handleYieldChart(w http.ResponseWriter, r *http.Request) {
	scenario, err := domain.ParseScenario(r.URL.Query().Get("scenario"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.serveChart(w, func() ([]byte, error) {
		return render.Yield(scenario, domain.YieldProjection(scenario))
	})
}

func (s *Server) handleStrategiesChart(w http.ResponseWriter, _ *http.Request) {
	s.serveChart(w, func() ([]byte, error) {
		return render.Strategies(domain.AdaptationStrategies())
	})
}

func (s *Server) serveChart(w http.ResponseWriter, renderFn func() ([]byte, error)) {
	data, err := renderFn()
	if err != nil {
		s.logger.Error("chart render failed", "error", err)
		writeError(w, http.StatusInternalServerError, "chart render failed")
		return
	}
	writePNG(w, data)
}
