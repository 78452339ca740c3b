package routing

import (
	"fmt"
	"sort"
	"time"
)

// Snapshot is the serializable form of a Network. Every table is expressed
// as explicit records rather than composite-key maps so the same shape works
// for JSON documents and relational storage.
type Snapshot struct {
	Locations         []Location           `json:"locations"`
	Roads             []RoadRecord         `json:"roads"`
	TrafficPatterns   []TrafficRecord      `json:"trafficPatterns,omitempty"`
	ConstructionZones []ConstructionRecord `json:"constructionZones,omitempty"`
	WeatherImpacts    []WeatherRecord      `json:"weatherImpacts,omitempty"`
	Schedules         []ScheduleRecord     `json:"schedules,omitempty"`
}

// RoadRecord is one directed adjacency entry. A bidirectional road appears
// as two records, one per direction.
type RoadRecord struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	DistanceKm    float64  `json:"distanceKm"`
	BaseFactor    float64  `json:"baseFactor"`
	RoadType      RoadType `json:"roadType,omitempty"`
	SpeedLimitKmh float64  `json:"speedLimitKmh,omitempty"`
}

// TrafficRecord holds the hour windows for one directed road.
type TrafficRecord struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	Windows []HourWindow `json:"windows"`
}

// ConstructionRecord holds the construction zone for one directed road.
type ConstructionRecord struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DelayFactor float64   `json:"delayFactor"`
}

// WeatherRecord holds the impact for one calendar date (2006-01-02 format).
type WeatherRecord struct {
	Date      string  `json:"date"`
	Factor    float64 `json:"factor"`
	Condition string  `json:"condition"`
}

// OperatingHoursRecord holds the windows for one weekday.
type OperatingHoursRecord struct {
	Weekday time.Weekday  `json:"weekday"`
	Windows []ClockWindow `json:"windows"`
}

// ScheduleRecord holds the schedule of one location.
type ScheduleRecord struct {
	Location       string                 `json:"location"`
	OperatingHours []OperatingHoursRecord `json:"operatingHours,omitempty"`
	SpecialEvents  []SpecialEvent         `json:"specialEvents,omitempty"`
}

// Snapshot captures the full network state in a deterministic order:
// locations and adjacency in insertion order, the remaining tables following
// the location order of their keys.
func (n *Network) Snapshot() *Snapshot {
	s := &Snapshot{}

	for _, id := range n.locationOrder {
		s.Locations = append(s.Locations, *n.locations[id])
	}

	for _, from := range n.locationOrder {
		for _, seg := range n.adjacency[from] {
			key := RoadKey{From: from, To: seg.To}
			s.Roads = append(s.Roads, RoadRecord{
				From:          from,
				To:            seg.To,
				DistanceKm:    seg.DistanceKm,
				BaseFactor:    seg.BaseFactor,
				RoadType:      n.roadTypes[key],
				SpeedLimitKmh: n.speedLimits[key],
			})
		}
		for _, seg := range n.adjacency[from] {
			key := RoadKey{From: from, To: seg.To}
			if windows, ok := n.trafficPatterns[key]; ok {
				s.TrafficPatterns = append(s.TrafficPatterns, TrafficRecord{
					From:    from,
					To:      seg.To,
					Windows: append([]HourWindow(nil), windows...),
				})
			}
			if zone, ok := n.constructionZones[key]; ok {
				s.ConstructionZones = append(s.ConstructionZones, ConstructionRecord{
					From:        from,
					To:          seg.To,
					Start:       zone.Start,
					End:         zone.End,
					DelayFactor: zone.DelayFactor,
				})
			}
		}
	}

	dates := make([]string, 0, len(n.weatherImpacts))
	for date := range n.weatherImpacts {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		impact := n.weatherImpacts[date]
		s.WeatherImpacts = append(s.WeatherImpacts, WeatherRecord{
			Date:      date,
			Factor:    impact.Factor,
			Condition: impact.Condition,
		})
	}

	for _, id := range n.locationOrder {
		sched := n.schedules[id]
		if sched == nil || (len(sched.OperatingHours) == 0 && len(sched.SpecialEvents) == 0) {
			continue
		}
		record := ScheduleRecord{Location: id}
		for day := time.Sunday; day <= time.Saturday; day++ {
			if windows, ok := sched.OperatingHours[day]; ok && len(windows) > 0 {
				record.OperatingHours = append(record.OperatingHours, OperatingHoursRecord{
					Weekday: day,
					Windows: append([]ClockWindow(nil), windows...),
				})
			}
		}
		record.SpecialEvents = append(record.SpecialEvents, sched.SpecialEvents...)
		s.Schedules = append(s.Schedules, record)
	}

	return s
}

// NetworkFromSnapshot rebuilds a Network from its serialized form. Roads are
// restored record-by-record without re-mirroring, so the rebuilt adjacency
// matches the captured one exactly.
func NetworkFromSnapshot(s *Snapshot) (*Network, error) {
	n := NewNetwork()

	for _, loc := range s.Locations {
		if err := n.AddLocation(loc.ID, loc.Latitude, loc.Longitude, loc.Category, loc.Description); err != nil {
			return nil, fmt.Errorf("restoring location %q: %w", loc.ID, err)
		}
	}

	for _, road := range s.Roads {
		if _, ok := n.locations[road.From]; !ok {
			return nil, fmt.Errorf("road references location %q: %w", road.From, ErrUnknownLocation)
		}
		if _, ok := n.locations[road.To]; !ok {
			return nil, fmt.Errorf("road references location %q: %w", road.To, ErrUnknownLocation)
		}
		if road.DistanceKm <= 0 {
			return nil, fmt.Errorf("road %s-%s has non-positive distance: %w", road.From, road.To, ErrInvalidInput)
		}
		key := RoadKey{From: road.From, To: road.To}
		n.adjacency[road.From] = append(n.adjacency[road.From], RoadSegment{
			To:         road.To,
			DistanceKm: road.DistanceKm,
			BaseFactor: road.BaseFactor,
		})
		if road.RoadType != "" {
			n.roadTypes[key] = road.RoadType
		}
		if road.SpeedLimitKmh > 0 {
			n.speedLimits[key] = road.SpeedLimitKmh
		}
	}

	for _, record := range s.TrafficPatterns {
		key := RoadKey{From: record.From, To: record.To}
		n.trafficPatterns[key] = append([]HourWindow(nil), record.Windows...)
	}

	for _, record := range s.ConstructionZones {
		n.constructionZones[RoadKey{From: record.From, To: record.To}] = ConstructionZone{
			Start:       record.Start,
			End:         record.End,
			DelayFactor: record.DelayFactor,
		}
	}

	for _, record := range s.WeatherImpacts {
		n.weatherImpacts[record.Date] = WeatherImpact{Factor: record.Factor, Condition: record.Condition}
	}

	for _, record := range s.Schedules {
		sched, ok := n.schedules[record.Location]
		if !ok {
			return nil, fmt.Errorf("schedule references location %q: %w", record.Location, ErrUnknownLocation)
		}
		for _, hours := range record.OperatingHours {
			sched.OperatingHours[hours.Weekday] = append([]ClockWindow(nil), hours.Windows...)
		}
		sched.SpecialEvents = append(sched.SpecialEvents, record.SpecialEvents...)
	}

	return n, nil
}
