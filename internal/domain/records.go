package domain

// ClimateRecord is one year of historical climate anomalies relative to the
// 1990-2000 baseline.
type ClimateRecord struct {
	Year           int     `json:"year"`
	TempAnomalyC   float64 `json:"temp_anomaly_c"`
	RainAnomalyPct float64 `json:"rain_anomaly_pct"`
}

// CropHealthRecord is the crop health index for one region and year.
// HealthIndex is clamped to [CropHealthFloor, ∞) at generation time.
type CropHealthRecord struct {
	Region      string   `json:"region"`
	Year        int      `json:"year"`
	HealthIndex float64  `json:"health_index"`
	Crop        CropType `json:"crop"`
}

// ProjectionRecord is one projected future year. HealthIndex is clamped to
// [ProjectedHealthFloor, ∞) at generation time.
type ProjectionRecord struct {
	Year           int     `json:"year"`
	TempAnomalyC   float64 `json:"temp_anomaly_c"`
	RainAnomalyPct float64 `json:"rain_anomaly_pct"`
	HealthIndex    float64 `json:"health_index"`
}

// RegionalTemperature is one year of a region's absolute temperature series.
// Min and Max track the mean at a fixed ±5 °C offset.
type RegionalTemperature struct {
	Year int     `json:"year"`
	AvgC float64 `json:"avg_c"`
	MinC float64 `json:"min_c"`
	MaxC float64 `json:"max_c"`
}

// DroughtRecord is one year of the deterministic drought history table.
type DroughtRecord struct {
	Year     int `json:"year"`
	Days     int `json:"days"`
	Severity int `json:"severity"` // 1-5 scale
}

// YieldPoint is one year of a projected yield curve, as a percentage of the
// 2020 baseline yield.
type YieldPoint struct {
	Year     int     `json:"year"`
	YieldPct float64 `json:"yield_pct"`
}

// HealthStatus is the display band for a crop health index.
type HealthStatus string

const (
	HealthOptimal  HealthStatus = "optimal"
	HealthModerate HealthStatus = "moderate"
	HealthSevere   HealthStatus = "severe"
)

// ClassifyHealth maps a 0-100 crop health index onto its status band.
func ClassifyHealth(index float64) HealthStatus {
	switch {
	case index >= 70:
		return HealthOptimal
	case index >= 40:
		return HealthModerate
	default:
		return HealthSevere
	}
}
