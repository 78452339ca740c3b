package models

import (
	"time"

	"roadnav.opentransit.org/internal/routing"
)

// Segment is the API shape of one leg of a timing report
type Segment struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Heading    string  `json:"heading,omitempty"`
	DistanceKm float64 `json:"distanceKm"`
	Minutes    float64 `json:"minutes"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Factors    Factors `json:"factors"`
}

// Factors is the API shape of the multipliers applied to a segment
type Factors struct {
	Traffic      float64 `json:"traffic"`
	Construction float64 `json:"construction"`
	Weather      float64 `json:"weather"`
}

// TimingReport is the API shape of a per-segment trip breakdown
type TimingReport struct {
	ReportID        string    `json:"reportId"`
	DepartureTime   string    `json:"departureTime"`
	ArrivalTime     string    `json:"arrivalTime"`
	TotalDistanceKm float64   `json:"totalDistanceKm"`
	TotalMinutes    float64   `json:"totalMinutes"`
	Segments        []Segment `json:"segments"`
}

// NewSegment creates a Segment model from an engine segment, with an optional
// compass heading
func NewSegment(seg routing.Segment, heading string) Segment {
	return Segment{
		From:       seg.From,
		To:         seg.To,
		Heading:    heading,
		DistanceKm: seg.DistanceKm,
		Minutes:    seg.Duration.Minutes(),
		StartTime:  seg.StartTime.Format(time.RFC3339),
		EndTime:    seg.EndTime.Format(time.RFC3339),
		Factors: Factors{
			Traffic:      seg.Factors.Traffic,
			Construction: seg.Factors.Construction,
			Weather:      seg.Factors.Weather,
		},
	}
}

// NewTimingReport creates a TimingReport model wrapping the given segments
func NewTimingReport(report *routing.TimingReport, segments []Segment) TimingReport {
	if segments == nil {
		segments = []Segment{}
	}
	return TimingReport{
		ReportID:        report.ReportID,
		DepartureTime:   report.DepartureTime.Format(time.RFC3339),
		ArrivalTime:     report.ArrivalTime.Format(time.RFC3339),
		TotalDistanceKm: report.TotalDistanceKm,
		TotalMinutes:    report.TotalTime.Minutes(),
		Segments:        segments,
	}
}
