package models

import (
	"time"

	"roadnav.opentransit.org/internal/routing"
)

// Route is the API shape of a computed route
type Route struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	DepartureTime string   `json:"departureTime"`
	Path          []string `json:"path"`
	Cost          float64  `json:"cost"`
}

// NewRoute creates a Route model from an engine result
func NewRoute(from, to string, departure time.Time, route routing.Route) Route {
	return Route{
		From:          from,
		To:            to,
		DepartureTime: departure.Format(time.RFC3339),
		Path:          route.Path,
		Cost:          route.Cost,
	}
}

// TravelTime is the API shape of a travel time estimate
type TravelTime struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Minutes       float64 `json:"minutes"`
}

// NewTravelTime creates a TravelTime model from an engine estimate
func NewTravelTime(from, to string, departure time.Time, travelTime time.Duration) TravelTime {
	return TravelTime{
		From:          from,
		To:            to,
		DepartureTime: departure.Format(time.RFC3339),
		ArrivalTime:   departure.Add(travelTime).Format(time.RFC3339),
		Minutes:       travelTime.Minutes(),
	}
}

// Departure is the API shape of an optimal departure recommendation
type Departure struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	TargetArrival string  `json:"targetArrival"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	TravelMinutes float64 `json:"travelMinutes"`
}

// NewDeparture creates a Departure model from an engine recommendation
func NewDeparture(from, to string, target time.Time, departure routing.Departure) Departure {
	return Departure{
		From:          from,
		To:            to,
		TargetArrival: target.Format(time.RFC3339),
		DepartureTime: departure.DepartureTime.Format(time.RFC3339),
		ArrivalTime:   departure.ArrivalTime.Format(time.RFC3339),
		TravelMinutes: departure.TravelTime.Minutes(),
	}
}
