package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegions(t *testing.T) {
	regions := DefaultRegions()
	require.Len(t, regions, 3)

	names := map[string]CropType{}
	for _, r := range regions {
		names[r.Name] = r.Crop
	}
	assert.Equal(t, map[string]CropType{
		RegionWesternCapeWheat: CropWheat,
		RegionFreeStateMaize:   CropMaize,
		RegionKZNSugarcane:     CropSugarcane,
	}, names)

	for _, r := range regions {
		assert.Less(t, r.BBox.West, r.BBox.East, r.Name)
		assert.Less(t, r.BBox.South, r.BBox.North, r.Name)
		assert.NotEmpty(t, r.PhotoURL, r.Name)
		assert.Equal(t, r.Crop, CropTypeForRegion(r.Name))
	}
}

func TestCropTypeForRegion(t *testing.T) {
	tests := []struct {
		name string
		want CropType
	}{
		{"Western Cape Wheat", CropWheat},
		{"Free State Maize", CropMaize},
		{"KZN Sugarcane", CropSugarcane},
		{"Anything Else", CropSugarcane},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CropTypeForRegion(tt.name), tt.name)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	b := BoundingBox{West: 18.4, South: -34.2, East: 20.5, North: -33.0}
	lat, lon := b.Center()
	assert.InDelta(t, -33.6, lat, 1e-9)
	assert.InDelta(t, 19.45, lon, 1e-9)
}

func TestNDVIProfile(t *testing.T) {
	for _, r := range DefaultRegions() {
		profile, ok := NDVIProfile(r.Name)
		require.True(t, ok, r.Name)
		require.Len(t, profile, 12, r.Name)
		for _, v := range profile {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	_, ok := NDVIProfile("Karoo Ostrich")
	assert.False(t, ok)
}

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		index float64
		want  HealthStatus
	}{
		{95, HealthOptimal},
		{70, HealthOptimal},
		{69.9, HealthModerate},
		{40, HealthModerate},
		{39.9, HealthSevere},
		{0, HealthSevere},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyHealth(tt.index), "index %v", tt.index)
	}
}

func TestRegionFeatureCollection(t *testing.T) {
	fc := RegionFeatureCollection(DefaultRegions())

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 3)

	for _, f := range fc.Features {
		assert.Equal(t, "Feature", f.Type)
		assert.Equal(t, "Polygon", f.Geometry.Type)
		require.Len(t, f.Geometry.Coordinates, 1)

		ring := f.Geometry.Coordinates[0]
		require.Len(t, ring, 5)
		assert.Equal(t, ring[0], ring[4], "ring must close")
		assert.NotEmpty(t, f.Properties["name"])
		assert.NotEmpty(t, f.Properties["crop"])
	}
}
