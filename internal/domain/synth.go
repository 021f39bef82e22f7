package domain

// Year ranges and clamping floors for the synthetic tables.
const (
	HistoricalStartYear = 2010
	HistoricalEndYear   = 2023
	FutureStartYear     = 2024
	FutureEndYear       = 2049

	CropHealthFloor      = 60.0
	ProjectedHealthFloor = 40.0
)

// HistoricalYears is the number of years in the historical range, inclusive.
const HistoricalYears = HistoricalEndYear - HistoricalStartYear + 1

// FutureYears is the number of years in the projection range, inclusive.
const FutureYears = FutureEndYear - FutureStartYear + 1

// GenerateClimateHistory produces one ClimateRecord per historical year.
func GenerateClimateHistory(noise NoiseSource) []ClimateRecord {
	records := make([]ClimateRecord, 0, HistoricalYears)
	for year := HistoricalStartYear; year <= HistoricalEndYear; year++ {
		t := float64(year - HistoricalStartYear)
		records = append(records, ClimateRecord{
			Year:           year,
			TempAnomalyC:   0.1*t + noise.Normal(0, 0.2),
			RainAnomalyPct: -2*t + noise.Normal(0, 3),
		})
	}
	return records
}

// GenerateCropHealth produces one CropHealthRecord per (region, year) pair.
// Every region uses the same trend formula with independent noise draws.
func GenerateCropHealth(regions []Region, noise NoiseSource) []CropHealthRecord {
	records := make([]CropHealthRecord, 0, len(regions)*HistoricalYears)
	for _, region := range regions {
		for year := HistoricalStartYear; year <= HistoricalEndYear; year++ {
			t := float64(year - HistoricalStartYear)
			health := 80 - 0.8*t + noise.Normal(0, 5)
			records = append(records, CropHealthRecord{
				Region:      region.Name,
				Year:        year,
				HealthIndex: max(CropHealthFloor, health),
				Crop:        region.Crop,
			})
		}
	}
	return records
}

// GenerateProjections produces one ProjectionRecord per future year.
func GenerateProjections(noise NoiseSource) []ProjectionRecord {
	records := make([]ProjectionRecord, 0, FutureYears)
	for year := FutureStartYear; year <= FutureEndYear; year++ {
		t := float64(year - HistoricalStartYear)
		health := 80 - 1.0*t + noise.Normal(0, 6)
		records = append(records, ProjectionRecord{
			Year:           year,
			TempAnomalyC:   0.15*t + noise.Normal(0, 0.3),
			RainAnomalyPct: -3*t + noise.Normal(0, 5),
			HealthIndex:    max(ProjectedHealthFloor, health),
		})
	}
	return records
}

// GenerateRegionalTemperature produces a region's absolute temperature
// series over the historical range, anchored at the region's base
// temperature with min/max tracking the mean at ±5 °C.
func GenerateRegionalTemperature(region Region, noise NoiseSource) []RegionalTemperature {
	records := make([]RegionalTemperature, 0, HistoricalYears)
	for year := HistoricalStartYear; year <= HistoricalEndYear; year++ {
		t := float64(year - HistoricalStartYear)
		avg := region.BaseTemp + 0.08*t + noise.Normal(0, 0.15)
		records = append(records, RegionalTemperature{
			Year: year,
			AvgC: avg,
			MinC: avg - 5,
			MaxC: avg + 5,
		})
	}
	return records
}

// droughtSeverity holds the 1-5 severity rating per historical year.
var droughtSeverity = []int{1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5}

// DroughtHistory returns the deterministic drought frequency table: days
// rise by 5 per year from 15, severity follows the fixed rating ladder.
func DroughtHistory() []DroughtRecord {
	records := make([]DroughtRecord, 0, HistoricalYears)
	for i := 0; i < HistoricalYears; i++ {
		records = append(records, DroughtRecord{
			Year:     HistoricalStartYear + i,
			Days:     15 + 5*i,
			Severity: droughtSeverity[i],
		})
	}
	return records
}
