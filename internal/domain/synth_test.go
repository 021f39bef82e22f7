package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClimateHistory(t *testing.T) {
	t.Run("zero noise reduces to trend", func(t *testing.T) {
		records := GenerateClimateHistory(ZeroNoise{})

		require.Len(t, records, 14)
		assert.Equal(t, 2010, records[0].Year)
		assert.InDelta(t, 0.0, records[0].TempAnomalyC, 1e-9)
		assert.InDelta(t, 0.0, records[0].RainAnomalyPct, 1e-9)

		// 2020 is index 10.
		assert.Equal(t, 2020, records[10].Year)
		assert.InDelta(t, 1.0, records[10].TempAnomalyC, 1e-9)
		assert.InDelta(t, -20.0, records[10].RainAnomalyPct, 1e-9)
	})

	t.Run("years are contiguous", func(t *testing.T) {
		records := GenerateClimateHistory(NewRandomNoise(1))
		for i, rec := range records {
			assert.Equal(t, 2010+i, rec.Year)
		}
	})
}

func TestGenerateCropHealth(t *testing.T) {
	regions := DefaultRegions()

	t.Run("row count is regions times years", func(t *testing.T) {
		records := GenerateCropHealth(regions, NewRandomNoise(7))
		assert.Len(t, records, 42)
	})

	t.Run("index never drops below the floor", func(t *testing.T) {
		// A large negative bias pushes the raw formula well under 60 for
		// late years, so the clamp must engage.
		records := GenerateCropHealth(regions, biasNoise{-100})
		for _, rec := range records {
			assert.Equal(t, CropHealthFloor, rec.HealthIndex)
		}
	})

	t.Run("zero noise follows the shared trend per region", func(t *testing.T) {
		records := GenerateCropHealth(regions, ZeroNoise{})
		byRegion := map[string][]CropHealthRecord{}
		for _, rec := range records {
			byRegion[rec.Region] = append(byRegion[rec.Region], rec)
		}
		require.Len(t, byRegion, 3)
		for _, series := range byRegion {
			require.Len(t, series, 14)
			assert.InDelta(t, 80.0, series[0].HealthIndex, 1e-9)
			// 2023: 80 - 0.8*13 = 69.6, above the floor.
			assert.InDelta(t, 69.6, series[13].HealthIndex, 1e-9)
		}
	})

	t.Run("crop type carried from region", func(t *testing.T) {
		records := GenerateCropHealth(regions, ZeroNoise{})
		crops := map[string]CropType{}
		for _, rec := range records {
			crops[rec.Region] = rec.Crop
		}
		assert.Equal(t, map[string]CropType{
			RegionWesternCapeWheat: CropWheat,
			RegionFreeStateMaize:   CropMaize,
			RegionKZNSugarcane:     CropSugarcane,
		}, crops)
	})
}

func TestGenerateProjections(t *testing.T) {
	t.Run("zero noise reduces to trend", func(t *testing.T) {
		records := GenerateProjections(ZeroNoise{})

		require.Len(t, records, 26)
		assert.Equal(t, 2024, records[0].Year)
		assert.Equal(t, 2049, records[25].Year)
		assert.InDelta(t, 2.1, records[0].TempAnomalyC, 1e-9)
		assert.InDelta(t, -42.0, records[0].RainAnomalyPct, 1e-9)
		assert.InDelta(t, 66.0, records[0].HealthIndex, 1e-9)
	})

	t.Run("health never drops below the floor", func(t *testing.T) {
		records := GenerateProjections(biasNoise{-100})
		for _, rec := range records {
			assert.Equal(t, ProjectedHealthFloor, rec.HealthIndex)
		}
	})
}

func TestGenerateRegionalTemperature(t *testing.T) {
	region := DefaultRegions()[0] // Western Cape, base 22.5

	records := GenerateRegionalTemperature(region, ZeroNoise{})
	require.Len(t, records, 14)

	assert.InDelta(t, 22.5, records[0].AvgC, 1e-9)
	assert.InDelta(t, 22.5+0.08*13, records[13].AvgC, 1e-9)
	for _, rec := range records {
		assert.InDelta(t, rec.AvgC-5, rec.MinC, 1e-9)
		assert.InDelta(t, rec.AvgC+5, rec.MaxC, 1e-9)
	}
}

func TestDroughtHistory(t *testing.T) {
	records := DroughtHistory()
	require.Len(t, records, 14)

	assert.Equal(t, DroughtRecord{Year: 2010, Days: 15, Severity: 1}, records[0])
	assert.Equal(t, DroughtRecord{Year: 2023, Days: 80, Severity: 5}, records[13])
	for i := 1; i < len(records); i++ {
		assert.Equal(t, 5, records[i].Days-records[i-1].Days)
		assert.GreaterOrEqual(t, records[i].Severity, records[i-1].Severity)
	}
}

func TestRandomNoise(t *testing.T) {
	t.Run("same seed same sequence", func(t *testing.T) {
		a := NewRandomNoise(42)
		b := NewRandomNoise(42)
		for i := 0; i < 100; i++ {
			assert.Equal(t, a.Normal(0, 5), b.Normal(0, 5))
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := NewRandomNoise(1)
		b := NewRandomNoise(2)
		var same int
		for i := 0; i < 20; i++ {
			if a.Normal(0, 1) == b.Normal(0, 1) {
				same++
			}
		}
		assert.Less(t, same, 20)
	})
}

// biasNoise shifts every draw by a fixed offset, used to force clamping.
type biasNoise struct {
	offset float64
}

func (b biasNoise) Normal(mean, _ float64) float64 { return mean + b.offset }
