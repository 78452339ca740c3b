package models

import "roadnav.opentransit.org/internal/routing"

// Location is the API shape of a network location
type Location struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// NewLocation creates a Location model from a network location
func NewLocation(loc *routing.Location) Location {
	return Location{
		ID:          loc.ID,
		Lat:         loc.Latitude,
		Lon:         loc.Longitude,
		Category:    loc.Category,
		Description: loc.Description,
	}
}

// LocationStatus reports whether a location is open at a point in time
type LocationStatus struct {
	ID     string `json:"id"`
	Open   bool   `json:"open"`
	Reason string `json:"reason"`
}
