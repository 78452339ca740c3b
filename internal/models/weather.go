package models

import (
	"time"

	"roadnav.opentransit.org/internal/routing"
)

// Weather is the API shape of a recorded weather impact
type Weather struct {
	Date      string  `json:"date"`
	Factor    float64 `json:"factor"`
	Condition string  `json:"condition"`
}

// NewWeather creates a Weather model for the given date
func NewWeather(date time.Time, impact routing.WeatherImpact) Weather {
	return Weather{
		Date:      date.Format("2006-01-02"),
		Factor:    impact.Factor,
		Condition: impact.Condition,
	}
}
