package api

import (
	"github.com/zakhtar/go-mobility-map/internal/render"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// toGeoJSON turns drawables into a FeatureCollection, one feature per
// drawable in drawable order. GeoJSON positions are [lon, lat].
func toGeoJSON(drawables []render.Drawable) FeatureCollection {
	features := make([]Feature, 0, len(drawables))

	for _, d := range drawables {
		var f Feature
		switch d.Kind {
		case render.KindLine:
			f = Feature{
				Type: "Feature",
				Geometry: Geometry{
					Type: "LineString",
					Coordinates: [][]float64{
						{d.From.Lng, d.From.Lat},
						{d.To.Lng, d.To.Lat},
					},
				},
				Properties: map[string]any{
					"variant": "route",
				},
			}
		default:
			f = Feature{
				Type: "Feature",
				Geometry: Geometry{
					Type:        "Point",
					Coordinates: []float64{d.At.Lng, d.At.Lat},
				},
				Properties: map[string]any{
					"variant": string(d.Variant),
					"label":   d.Label,
				},
			}
		}
		features = append(features, f)
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
