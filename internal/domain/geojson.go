package domain

// GeoJSON representations of the region bounding boxes, consumed by the map
// layer on the overview tab.

// FeatureCollection is a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a GeoJSON Feature with a polygon geometry.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties map[string]string `json:"properties"`
}

// Geometry is a GeoJSON Polygon. Coordinates are rings of [lon, lat] pairs.
type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// RegionFeatureCollection builds one closed polygon per region from its
// bounding box, winding SW, SE, NE, NW and back to SW.
func RegionFeatureCollection(regions []Region) FeatureCollection {
	features := make([]Feature, 0, len(regions))
	for _, r := range regions {
		b := r.BBox
		ring := [][2]float64{
			{b.West, b.South},
			{b.East, b.South},
			{b.East, b.North},
			{b.West, b.North},
			{b.West, b.South},
		}
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Polygon",
				Coordinates: [][][2]float64{ring},
			},
			Properties: map[string]string{
				"name": r.Name,
				"crop": string(r.Crop),
			},
		})
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
