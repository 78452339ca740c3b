package models

import "roadnav.opentransit.org/internal/routing"

// Coverage represents the geographical region spanned by the network
type Coverage struct {
	Lat     float64 `json:"lat"`
	LatSpan float64 `json:"latSpan"`
	Lon     float64 `json:"lon"`
	LonSpan float64 `json:"lonSpan"`
}

// NewCoverage computes the center point and span of the given locations.
// An empty network yields a zero Coverage.
func NewCoverage(locations []*routing.Location) Coverage {
	if len(locations) == 0 {
		return Coverage{}
	}

	minLat, maxLat := locations[0].Latitude, locations[0].Latitude
	minLon, maxLon := locations[0].Longitude, locations[0].Longitude
	for _, loc := range locations[1:] {
		if loc.Latitude < minLat {
			minLat = loc.Latitude
		}
		if loc.Latitude > maxLat {
			maxLat = loc.Latitude
		}
		if loc.Longitude < minLon {
			minLon = loc.Longitude
		}
		if loc.Longitude > maxLon {
			maxLon = loc.Longitude
		}
	}

	return Coverage{
		Lat:     (minLat + maxLat) / 2,
		LatSpan: maxLat - minLat,
		Lon:     (minLon + maxLon) / 2,
		LonSpan: maxLon - minLon,
	}
}
