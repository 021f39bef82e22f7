package domain

// Static advisory content: 2050 vulnerability assessment, adaptation
// strategies, and per-region recommendations. These tables are curated
// display data, not synthesized series.

// VulnerabilityPoint is a 2050 risk marker on the projection map.
type VulnerabilityPoint struct {
	Region     string  `json:"region"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	RiskLevel  string  `json:"risk_level"`
	RiskScore  float64 `json:"risk_score"` // 0-10
	MainThreat string  `json:"main_threat"`
}

// VulnerabilityMap2050 returns the projected 2050 risk markers, including a
// catch-all point for areas outside the three study regions.
func VulnerabilityMap2050() []VulnerabilityPoint {
	return []VulnerabilityPoint{
		{Region: RegionWesternCapeWheat, Lat: -33.5, Lon: 19.5, RiskLevel: "High", RiskScore: 8.2, MainThreat: "Drought"},
		{Region: RegionFreeStateMaize, Lat: -28.0, Lon: 27.0, RiskLevel: "Very High", RiskScore: 9.1, MainThreat: "Heat Stress"},
		{Region: RegionKZNSugarcane, Lat: -29.0, Lon: 31.0, RiskLevel: "Medium", RiskScore: 6.5, MainThreat: "Flooding"},
		{Region: "Other Areas", Lat: -28.5, Lon: 24.0, RiskLevel: "Low", RiskScore: 3.2, MainThreat: "Moderate Change"},
	}
}

// Strategy is an adaptation measure scored for effectiveness and cost.
type Strategy struct {
	Name          string  `json:"name"`
	Effectiveness float64 `json:"effectiveness_pct"`
	RelativeCost  float64 `json:"relative_cost"`
}

// AdaptationStrategies returns the strategy effectiveness table shown on the
// projections tab.
func AdaptationStrategies() []Strategy {
	return []Strategy{
		{Name: "Drought-resistant crops", Effectiveness: 85, RelativeCost: 40},
		{Name: "Precision irrigation", Effectiveness: 75, RelativeCost: 70},
		{Name: "Crop rotation", Effectiveness: 60, RelativeCost: 30},
		{Name: "Soil conservation", Effectiveness: 70, RelativeCost: 50},
		{Name: "Agroforestry", Effectiveness: 65, RelativeCost: 60},
	}
}

// Recommendation is one region-specific adaptation measure.
type Recommendation struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

var recommendations = map[string][]Recommendation{
	RegionWesternCapeWheat: {
		{Title: "Water Management", Detail: "Implement drip irrigation and rainwater harvesting"},
		{Title: "Crop Diversification", Detail: "Introduce drought-tolerant crops like sorghum and millet"},
		{Title: "Soil Health", Detail: "Promote conservation agriculture to improve water retention"},
		{Title: "Technology", Detail: "Adopt satellite-based monitoring for precision farming"},
	},
	RegionFreeStateMaize: {
		{Title: "Heat-Resistant Varieties", Detail: "Develop and plant heat-tolerant maize cultivars"},
		{Title: "Agroforestry", Detail: "Integrate trees to reduce temperature stress"},
		{Title: "Early Warning Systems", Detail: "Implement climate forecasting for planting decisions"},
		{Title: "Crop Insurance", Detail: "Expand access to weather-indexed insurance"},
	},
	RegionKZNSugarcane: {
		{Title: "Flood Management", Detail: "Develop drainage systems and contour planting"},
		{Title: "Disease Control", Detail: "Enhance monitoring for climate-related diseases"},
		{Title: "Value Addition", Detail: "Diversify into bioenergy production"},
		{Title: "Ecosystem Restoration", Detail: "Rehabilitate wetlands for flood mitigation"},
	},
}

// Recommendations returns the adaptation measures for a region, or false
// for an unknown region name.
func Recommendations(region string) ([]Recommendation, bool) {
	r, ok := recommendations[region]
	return r, ok
}
