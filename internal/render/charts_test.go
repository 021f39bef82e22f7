package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/domain"
	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/render"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, data []byte, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, pngMagic, data[:4])
}

func TestClimateHistory(t *testing.T) {
	data, err := render.ClimateHistory(domain.GenerateClimateHistory(domain.ZeroNoise{}))
	assertPNG(t, data, err)
}

func TestProjections(t *testing.T) {
	data, err := render.Projections(domain.GenerateProjections(domain.ZeroNoise{}))
	assertPNG(t, data, err)
}

func TestRegionalTemperature(t *testing.T) {
	region := domain.DefaultRegions()[1]
	series := domain.GenerateRegionalTemperature(region, domain.ZeroNoise{})
	data, err := render.RegionalTemperature(region.Name, series)
	assertPNG(t, data, err)
}

func TestNDVI(t *testing.T) {
	profile, ok := domain.NDVIProfile(domain.RegionKZNSugarcane)
	require.True(t, ok)
	data, err := render.NDVI(domain.RegionKZNSugarcane, profile)
	assertPNG(t, data, err)
}

func TestDrought(t *testing.T) {
	data, err := render.Drought(domain.DroughtHistory())
	assertPNG(t, data, err)
}

func TestYield(t *testing.T) {
	for _, sc := range []domain.Scenario{domain.ScenarioLow, domain.ScenarioModerate, domain.ScenarioHigh} {
		data, err := render.Yield(sc, domain.YieldProjection(sc))
		assertPNG(t, data, err)
	}
}

func TestStrategies(t *testing.T) {
	data, err := render.Strategies(domain.AdaptationStrategies())
	assertPNG(t, data, err)
}
