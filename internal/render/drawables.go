// Package render maps mobility records onto the drawable primitives
// that both the GeoJSON API and the map page consume.
package render

import (
	"strconv"

	"github.com/zakhtar/go-mobility-map/internal/models"
)

// Kind says how a drawable is rendered on the map.
type Kind string

const (
	KindMarker Kind = "marker"
	KindLine   Kind = "line"
)

// Variant picks the marker icon. Origins are drawn green, destinations red.
type Variant string

const (
	VariantOrigin      Variant = "origin"
	VariantDestination Variant = "destination"
)

// Drawable is one map element. Markers use At, Variant and Label; lines
// use From and To.
type Drawable struct {
	Kind    Kind
	Variant Variant
	At      models.LatLng
	From    models.LatLng
	To      models.LatLng
	Label   string
}

// ToDrawables expands each record into its three map elements, in record
// order: origin marker, destination marker, connecting line.
func ToDrawables(records []models.MobilityRecord) []Drawable {
	drawables := make([]Drawable, 0, 3*len(records))
	for _, r := range records {
		drawables = append(drawables,
			Drawable{
				Kind:    KindMarker,
				Variant: VariantOrigin,
				At:      r.Origin(),
				Label:   "Baseline: " + formatCount(r.BaselineCount),
			},
			Drawable{
				Kind:    KindMarker,
				Variant: VariantDestination,
				At:      r.Destination(),
				Label:   "Crisis: " + formatCount(r.CrisisCount),
			},
			Drawable{
				Kind: KindLine,
				From: r.Origin(),
				To:   r.Destination(),
			},
		)
	}
	return drawables
}

// formatCount renders a people count the way the source table prints it:
// whole numbers without a decimal point, fractions as written.
func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
