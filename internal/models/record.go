package models

import "time"

// MobilityRecord is one row of the mobility table: how many people moved
// from an origin point to a destination point during one time slot.
type MobilityRecord struct {
	SourceCategory      string    // e.g. "Work", "Home"
	DestinationCategory string    // same label set as SourceCategory
	Timestamp           time.Time // combined from the Day + Hours columns at load
	OriginLat           float64   // coordinates are pre-shifted upstream
	OriginLon           float64
	DestLat             float64
	DestLon             float64
	BaselineCount       float64 // pre-crisis movement volume, displayed as text
	CrisisCount         float64 // crisis movement volume, displayed as text
}

// LatLng is a geographic point in the order map frontends expect.
type LatLng struct {
	Lat float64
	Lng float64
}

func (r *MobilityRecord) Origin() LatLng {
	return LatLng{Lat: r.OriginLat, Lng: r.OriginLon}
}

func (r *MobilityRecord) Destination() LatLng {
	return LatLng{Lat: r.DestLat, Lng: r.DestLon}
}
