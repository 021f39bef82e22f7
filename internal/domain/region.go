package domain

import "strings"

// CropType identifies the dominant crop grown in a region.
type CropType string

const (
	CropWheat     CropType = "Wheat"
	CropMaize     CropType = "Maize"
	CropSugarcane CropType = "Sugarcane"
)

// BoundingBox is a WGS-84 rectangle in west, south, east, north order.
type BoundingBox struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// Center returns the midpoint of the box as lat, lon.
func (b BoundingBox) Center() (lat, lon float64) {
	return (b.South + b.North) / 2, (b.West + b.East) / 2
}

// RiskProfile scores a region's exposure to climate hazards on a 1-5 scale.
// Overall is a weighted composite, not an average of the other three.
type RiskProfile struct {
	Temperature float64 `json:"temperature"`
	Drought     float64 `json:"drought"`
	Flood       float64 `json:"flood"`
	Overall     float64 `json:"overall"`
}

// Region is one of the fixed agricultural study areas. The set is created at
// startup and immutable afterward.
type Region struct {
	Name     string      `json:"name"`
	BBox     BoundingBox `json:"bbox"`
	Crop     CropType    `json:"crop"`
	BaseTemp float64     `json:"base_temp_c"` // mean annual temperature, °C
	PhotoURL string      `json:"photo_url"`
	Risk     RiskProfile `json:"risk"`
}

// Fixed region names.
const (
	RegionWesternCapeWheat = "Western Cape Wheat"
	RegionFreeStateMaize   = "Free State Maize"
	RegionKZNSugarcane     = "KZN Sugarcane"
)

// DefaultRegions returns the three study regions. Callers must treat the
// result as read-only.
func DefaultRegions() []Region {
	return []Region{
		{
			Name:     RegionWesternCapeWheat,
			BBox:     BoundingBox{West: 18.4, South: -34.2, East: 20.5, North: -33.0},
			Crop:     CropWheat,
			BaseTemp: 22.5,
			PhotoURL: "https://upload.wikimedia.org/wikipedia/commons/5/56/Wheat_panorama.jpg",
			Risk:     RiskProfile{Temperature: 3, Drought: 4, Flood: 1, Overall: 3.2},
		},
		{
			Name:     RegionFreeStateMaize,
			BBox:     BoundingBox{West: 26.5, South: -29.0, East: 28.5, North: -27.0},
			Crop:     CropMaize,
			BaseTemp: 24.0,
			PhotoURL: "https://upload.wikimedia.org/wikipedia/commons/6/62/Maize_production_near_the_R34_Welkom.jpg",
			Risk:     RiskProfile{Temperature: 2, Drought: 3, Flood: 2, Overall: 2.8},
		},
		{
			Name:     RegionKZNSugarcane,
			BBox:     BoundingBox{West: 30.5, South: -29.5, East: 31.5, North: -28.5},
			Crop:     CropSugarcane,
			BaseTemp: 26.5,
			PhotoURL: "https://upload.wikimedia.org/wikipedia/commons/3/3a/RSA_Sugar_Fields.jpg",
			Risk:     RiskProfile{Temperature: 4, Drought: 2, Flood: 3, Overall: 3.0},
		},
	}
}

// CropTypeForRegion derives the crop type from a region name substring.
// Names matching neither wheat nor maize fall through to sugarcane.
func CropTypeForRegion(name string) CropType {
	switch {
	case strings.Contains(name, "Wheat"):
		return CropWheat
	case strings.Contains(name, "Maize"):
		return CropMaize
	default:
		return CropSugarcane
	}
}

// Months holds the month labels for monthly display series, January first.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ndviProfiles holds one fixed NDVI value per calendar month per region.
var ndviProfiles = map[string][]float64{
	RegionWesternCapeWheat: {0.15, 0.45, 0.65, 0.75, 0.85, 0.82, 0.78, 0.70, 0.60, 0.40, 0.25, 0.18},
	RegionFreeStateMaize:   {0.20, 0.35, 0.60, 0.75, 0.85, 0.88, 0.90, 0.85, 0.75, 0.55, 0.35, 0.22},
	RegionKZNSugarcane:     {0.45, 0.55, 0.65, 0.75, 0.80, 0.82, 0.85, 0.84, 0.82, 0.78, 0.70, 0.60},
}

// NDVIProfile returns the monthly NDVI curve for a region, or false for an
// unknown region name.
func NDVIProfile(region string) ([]float64, bool) {
	p, ok := ndviProfiles[region]
	return p, ok
}
