package routing

import (
	"fmt"
	"time"
)

// RoadType classifies a road segment. The classification feeds into the
// routing cost model: highways are cheaper to traverse than local roads.
type RoadType string

const (
	RoadTypeHighway RoadType = "highway"
	RoadTypeStreet  RoadType = "street"
	RoadTypeAvenue  RoadType = "avenue"
	RoadTypeLocal   RoadType = "local"
)

// DefaultSpeedLimitKmh is assumed for any road without an explicit limit.
const DefaultSpeedLimitKmh = 50.0

// RoadKey identifies one direction of a road. Both directions of a physical
// road are stored under their own keys so that direction-sensitive data
// (traffic patterns, construction zones) stays explicit.
type RoadKey struct {
	From string
	To   string
}

// Reverse returns the key for the opposite direction.
func (k RoadKey) Reverse() RoadKey {
	return RoadKey{From: k.To, To: k.From}
}

// Location is a named point on the network.
type Location struct {
	ID          string  `json:"id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// RoadSegment is a directed adjacency entry: a road leaving a location.
type RoadSegment struct {
	To         string  `json:"to"`
	DistanceKm float64 `json:"distanceKm"`
	BaseFactor float64 `json:"baseFactor"`
}

// HourWindow maps an hour-of-day range to a traffic multiplier. The range is
// half-open: [StartHour, EndHour). A window with StartHour > EndHour wraps
// past midnight and matches hours in [StartHour, 24) and [0, EndHour).
type HourWindow struct {
	StartHour  int     `json:"startHour"`
	EndHour    int     `json:"endHour"`
	Multiplier float64 `json:"multiplier"`
}

// Contains reports whether the window covers the given hour of day.
func (w HourWindow) Contains(hour int) bool {
	if w.StartHour > w.EndHour {
		return hour >= w.StartHour || hour < w.EndHour
	}
	return hour >= w.StartHour && hour < w.EndHour
}

// ConstructionZone marks a directed road as delayed between two instants,
// inclusive on both ends.
type ConstructionZone struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DelayFactor float64   `json:"delayFactor"`
}

// Active reports whether the zone applies at the given instant.
func (z ConstructionZone) Active(at time.Time) bool {
	return !at.Before(z.Start) && !at.After(z.End)
}

// WeatherImpact records a travel-time multiplier for one calendar day.
type WeatherImpact struct {
	Factor    float64 `json:"factor"`
	Condition string  `json:"condition"`
}

// ClockTime is a time of day with minute resolution.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (c ClockTime) minutes() int {
	return c.Hour*60 + c.Minute
}

// ClockWindow is an operating-hours interval, inclusive on both ends.
type ClockWindow struct {
	Open  ClockTime `json:"open"`
	Close ClockTime `json:"close"`
}

// Contains reports whether the given instant's time of day falls inside the
// window.
func (w ClockWindow) Contains(at time.Time) bool {
	m := at.Hour()*60 + at.Minute()
	return m >= w.Open.minutes() && m <= w.Close.minutes()
}

// SpecialEvent closes a location for an interval, inclusive on both ends.
type SpecialEvent struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Name  string    `json:"name"`
}

// Schedule holds the weekly operating hours and special-event blackouts for
// a single location.
type Schedule struct {
	OperatingHours map[time.Weekday][]ClockWindow `json:"operatingHours"`
	SpecialEvents  []SpecialEvent                 `json:"specialEvents"`
}

const weatherDateLayout = "2006-01-02"

// Network owns the road graph and every time-dependent lookup table. It is
// not safe for concurrent mutation; callers that interleave ingestion with
// queries must serialize access (see nav.Manager).
type Network struct {
	locations     map[string]*Location
	locationOrder []string

	// adjacency preserves insertion order per location; that order is part
	// of the contract because it breaks ties in route search.
	adjacency map[string][]RoadSegment

	roadTypes         map[RoadKey]RoadType
	speedLimits       map[RoadKey]float64
	trafficPatterns   map[RoadKey][]HourWindow
	constructionZones map[RoadKey]ConstructionZone
	weatherImpacts    map[string]WeatherImpact
	schedules         map[string]*Schedule
}

// NewNetwork returns an empty road network.
func NewNetwork() *Network {
	return &Network{
		locations:         make(map[string]*Location),
		adjacency:         make(map[string][]RoadSegment),
		roadTypes:         make(map[RoadKey]RoadType),
		speedLimits:       make(map[RoadKey]float64),
		trafficPatterns:   make(map[RoadKey][]HourWindow),
		constructionZones: make(map[RoadKey]ConstructionZone),
		weatherImpacts:    make(map[string]WeatherImpact),
		schedules:         make(map[string]*Schedule),
	}
}

// AddLocation registers a named location. Re-adding an existing id is a
// no-op: the first registration wins.
func (n *Network) AddLocation(id string, lat, lon float64, category, description string) error {
	if id == "" {
		return fmt.Errorf("location id must not be empty: %w", ErrInvalidInput)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range: %w", lat, ErrInvalidInput)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %v out of range: %w", lon, ErrInvalidInput)
	}
	if _, exists := n.locations[id]; exists {
		return nil
	}
	n.locations[id] = &Location{
		ID:          id,
		Latitude:    lat,
		Longitude:   lon,
		Category:    category,
		Description: description,
	}
	n.locationOrder = append(n.locationOrder, id)
	n.adjacency[id] = nil
	n.schedules[id] = &Schedule{OperatingHours: make(map[time.Weekday][]ClockWindow)}
	return nil
}

// AddRoad registers a bidirectional road between two known locations. Both
// directional records carry identical distance, base factor, classification
// and speed limit; callers that need asymmetric traffic must add each
// direction explicitly with different base factors. A speedLimitKmh of zero
// means "use the default".
func (n *Network) AddRoad(a, b string, distanceKm, baseFactor float64, roadType RoadType, speedLimitKmh float64) error {
	if _, ok := n.locations[a]; !ok {
		return fmt.Errorf("location %q: %w", a, ErrUnknownLocation)
	}
	if _, ok := n.locations[b]; !ok {
		return fmt.Errorf("location %q: %w", b, ErrUnknownLocation)
	}
	if distanceKm <= 0 {
		return fmt.Errorf("distance must be positive, got %v: %w", distanceKm, ErrInvalidInput)
	}
	if baseFactor < 0 {
		return fmt.Errorf("base traffic factor must be non-negative, got %v: %w", baseFactor, ErrInvalidInput)
	}
	if speedLimitKmh < 0 {
		return fmt.Errorf("speed limit must be non-negative, got %v: %w", speedLimitKmh, ErrInvalidInput)
	}
	if roadType == "" {
		roadType = RoadTypeStreet
	}

	key := RoadKey{From: a, To: b}
	n.roadTypes[key] = roadType
	n.roadTypes[key.Reverse()] = roadType
	if speedLimitKmh > 0 {
		n.speedLimits[key] = speedLimitKmh
		n.speedLimits[key.Reverse()] = speedLimitKmh
	}

	n.adjacency[a] = append(n.adjacency[a], RoadSegment{To: b, DistanceKm: distanceKm, BaseFactor: baseFactor})
	n.adjacency[b] = append(n.adjacency[b], RoadSegment{To: a, DistanceKm: distanceKm, BaseFactor: baseFactor})
	return nil
}

// AddTrafficPattern registers time-of-day traffic windows for a road. The
// pattern is mirrored onto the reverse direction.
func (n *Network) AddTrafficPattern(a, b string, windows []HourWindow) error {
	if _, ok := n.locations[a]; !ok {
		return fmt.Errorf("location %q: %w", a, ErrUnknownLocation)
	}
	if _, ok := n.locations[b]; !ok {
		return fmt.Errorf("location %q: %w", b, ErrUnknownLocation)
	}
	for _, w := range windows {
		if w.StartHour < 0 || w.StartHour > 23 || w.EndHour < 0 || w.EndHour > 24 {
			return fmt.Errorf("hour window %d-%d out of range: %w", w.StartHour, w.EndHour, ErrInvalidInput)
		}
		if w.Multiplier <= 0 {
			return fmt.Errorf("traffic multiplier must be positive, got %v: %w", w.Multiplier, ErrInvalidInput)
		}
	}
	key := RoadKey{From: a, To: b}
	n.trafficPatterns[key] = append([]HourWindow(nil), windows...)
	n.trafficPatterns[key.Reverse()] = append([]HourWindow(nil), windows...)
	return nil
}

// AddConstructionZone registers a construction delay on one direction of a
// road for a date interval, inclusive on both ends.
func (n *Network) AddConstructionZone(a, b string, start, end time.Time, delayFactor float64) error {
	if _, ok := n.locations[a]; !ok {
		return fmt.Errorf("location %q: %w", a, ErrUnknownLocation)
	}
	if _, ok := n.locations[b]; !ok {
		return fmt.Errorf("location %q: %w", b, ErrUnknownLocation)
	}
	if delayFactor <= 0 {
		return fmt.Errorf("delay factor must be positive, got %v: %w", delayFactor, ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("construction zone ends before it starts: %w", ErrInvalidInput)
	}
	n.constructionZones[RoadKey{From: a, To: b}] = ConstructionZone{Start: start, End: end, DelayFactor: delayFactor}
	return nil
}

// AddWeatherImpact registers a travel-time multiplier for the calendar date
// of the given instant. It applies to every road traversed on that date.
func (n *Network) AddWeatherImpact(date time.Time, factor float64, condition string) error {
	if factor <= 0 {
		return fmt.Errorf("weather impact factor must be positive, got %v: %w", factor, ErrInvalidInput)
	}
	n.weatherImpacts[date.Format(weatherDateLayout)] = WeatherImpact{Factor: factor, Condition: condition}
	return nil
}

// SetOperatingHours replaces the operating-hour windows for a location on
// one weekday.
func (n *Network) SetOperatingHours(id string, day time.Weekday, windows []ClockWindow) error {
	sched, ok := n.schedules[id]
	if !ok {
		return fmt.Errorf("location %q: %w", id, ErrUnknownLocation)
	}
	sched.OperatingHours[day] = append([]ClockWindow(nil), windows...)
	return nil
}

// AddSpecialEvent registers a blackout interval during which the location is
// closed regardless of its operating hours.
func (n *Network) AddSpecialEvent(id string, start, end time.Time, name string) error {
	sched, ok := n.schedules[id]
	if !ok {
		return fmt.Errorf("location %q: %w", id, ErrUnknownLocation)
	}
	if end.Before(start) {
		return fmt.Errorf("special event ends before it starts: %w", ErrInvalidInput)
	}
	sched.SpecialEvents = append(sched.SpecialEvents, SpecialEvent{Start: start, End: end, Name: name})
	return nil
}

// Location returns the registered location for an id.
func (n *Network) Location(id string) (*Location, bool) {
	loc, ok := n.locations[id]
	return loc, ok
}

// Locations returns every registered location in insertion order.
func (n *Network) Locations() []*Location {
	locs := make([]*Location, 0, len(n.locationOrder))
	for _, id := range n.locationOrder {
		locs = append(locs, n.locations[id])
	}
	return locs
}

// Neighbors returns the roads leaving a location, in insertion order.
func (n *Network) Neighbors(id string) ([]RoadSegment, error) {
	if _, ok := n.locations[id]; !ok {
		return nil, fmt.Errorf("location %q: %w", id, ErrUnknownLocation)
	}
	return n.adjacency[id], nil
}

// RoadType returns the classification of the directed road, defaulting to
// street when none was recorded.
func (n *Network) RoadType(from, to string) RoadType {
	if rt, ok := n.roadTypes[RoadKey{From: from, To: to}]; ok {
		return rt
	}
	return RoadTypeStreet
}

// SpeedLimit returns the speed limit of the directed road in km/h, falling
// back to the default when none was recorded.
func (n *Network) SpeedLimit(from, to string) float64 {
	if limit, ok := n.speedLimits[RoadKey{From: from, To: to}]; ok {
		return limit
	}
	return DefaultSpeedLimitKmh
}

// RoadDistance returns the distance and base factor of the directed road, or
// ErrUnknownRoad when the pair is not connected.
func (n *Network) RoadDistance(from, to string) (RoadSegment, error) {
	for _, seg := range n.adjacency[from] {
		if seg.To == to {
			return seg, nil
		}
	}
	return RoadSegment{}, fmt.Errorf("no road between %q and %q: %w", from, to, ErrUnknownRoad)
}

// NumLocations returns the number of registered locations.
func (n *Network) NumLocations() int {
	return len(n.locations)
}

// NumRoads returns the number of directed adjacency records.
func (n *Network) NumRoads() int {
	total := 0
	for _, segs := range n.adjacency {
		total += len(segs)
	}
	return total
}
