package routing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Segment is one traversed leg of a timing report.
type Segment struct {
	From       string         `json:"from"`
	To         string         `json:"to"`
	DistanceKm float64        `json:"distanceKm"`
	Duration   time.Duration  `json:"duration"`
	StartTime  time.Time      `json:"startTime"`
	EndTime    time.Time      `json:"endTime"`
	Factors    SegmentFactors `json:"factors"`
}

// TimingReport is the structured per-segment breakdown of one estimated
// journey.
type TimingReport struct {
	ReportID        string        `json:"reportId"`
	DepartureTime   time.Time     `json:"departureTime"`
	ArrivalTime     time.Time     `json:"arrivalTime"`
	TotalDistanceKm float64       `json:"totalDistanceKm"`
	TotalTime       time.Duration `json:"totalTime"`
	Segments        []Segment     `json:"segments"`
}

// walkPath advances a simulated clock along the path, re-evaluating each
// segment's travel time at the clock's current value. Conditions can shift
// while the journey is underway, so summing costs frozen at departure would
// mis-time later segments; the walk has to be sequential.
func (n *Network) walkPath(path []string, departure time.Time) ([]Segment, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty path: %w", ErrInvalidInput)
	}
	segments := make([]Segment, 0, len(path)-1)
	clock := departure

	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]
		seg, err := n.RoadDistance(from, to)
		if err != nil {
			// A gap means the path does not match this network (externally
			// supplied, or the graph changed since routing). Surfacing it
			// beats silently understating the total.
			return nil, err
		}

		duration, factors := n.SegmentTravelTime(from, to, seg.DistanceKm, clock)
		segments = append(segments, Segment{
			From:       from,
			To:         to,
			DistanceKm: seg.DistanceKm,
			Duration:   duration,
			StartTime:  clock,
			EndTime:    clock.Add(duration),
			Factors:    factors,
		})
		clock = clock.Add(duration)
	}
	return segments, nil
}

// TravelTimeAlong estimates the total travel time for an explicit path
// departing at the given instant.
func (n *Network) TravelTimeAlong(path []string, departure time.Time) (time.Duration, error) {
	segments, err := n.walkPath(path, departure)
	if err != nil {
		return 0, err
	}
	var total time.Duration
	for _, seg := range segments {
		total += seg.Duration
	}
	return total, nil
}

// EstimateTravelTime routes from start to end and estimates the journey
// duration for the given departure.
func (n *Network) EstimateTravelTime(start, end string, departure time.Time) (time.Duration, error) {
	route, err := n.FindRoute(start, end, departure)
	if err != nil {
		return 0, err
	}
	return n.TravelTimeAlong(route.Path, departure)
}

// GenerateTimingReport routes from start to end and produces the full
// per-segment breakdown for the given departure.
func (n *Network) GenerateTimingReport(start, end string, departure time.Time) (*TimingReport, error) {
	route, err := n.FindRoute(start, end, departure)
	if err != nil {
		return nil, err
	}
	segments, err := n.walkPath(route.Path, departure)
	if err != nil {
		return nil, err
	}

	report := &TimingReport{
		ReportID:      uuid.New().String(),
		DepartureTime: departure,
		ArrivalTime:   departure,
		Segments:      segments,
	}
	for _, seg := range segments {
		report.TotalDistanceKm += seg.DistanceKm
		report.TotalTime += seg.Duration
	}
	report.ArrivalTime = departure.Add(report.TotalTime)
	return report, nil
}
