package navdb

import (
	"context"
	"fmt"
	"time"

	"roadnav.opentransit.org/internal/routing"
)

// querySnapshot reads every table back into a snapshot, preserving the
// stored positions so insertion order survives the round trip.
func (c *Client) querySnapshot(ctx context.Context) (*routing.Snapshot, error) {
	s := &routing.Snapshot{}

	rows, err := c.DB.QueryContext(ctx, `
		SELECT location_id, latitude, longitude, category, description
		FROM locations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("error querying locations: %w", err)
	}
	defer rows.Close() // nolint:errcheck
	for rows.Next() {
		var loc routing.Location
		if err := rows.Scan(&loc.ID, &loc.Latitude, &loc.Longitude, &loc.Category, &loc.Description); err != nil {
			return nil, fmt.Errorf("error scanning location: %w", err)
		}
		s.Locations = append(s.Locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	roadRows, err := c.DB.QueryContext(ctx, `
		SELECT r.from_id, r.to_id, r.distance_km, r.base_factor, r.road_type, r.speed_limit_kmh
		FROM roads r
		JOIN locations l ON l.location_id = r.from_id
		ORDER BY l.position, r.position`)
	if err != nil {
		return nil, fmt.Errorf("error querying roads: %w", err)
	}
	defer roadRows.Close() // nolint:errcheck
	for roadRows.Next() {
		var road routing.RoadRecord
		var roadType string
		if err := roadRows.Scan(&road.From, &road.To, &road.DistanceKm, &road.BaseFactor,
			&roadType, &road.SpeedLimitKmh); err != nil {
			return nil, fmt.Errorf("error scanning road: %w", err)
		}
		road.RoadType = routing.RoadType(roadType)
		s.Roads = append(s.Roads, road)
	}
	if err := roadRows.Err(); err != nil {
		return nil, err
	}

	if s.TrafficPatterns, err = c.queryTrafficPatterns(ctx); err != nil {
		return nil, err
	}
	if s.ConstructionZones, err = c.queryConstructionZones(ctx); err != nil {
		return nil, err
	}
	if s.WeatherImpacts, err = c.queryWeatherImpacts(ctx); err != nil {
		return nil, err
	}
	if s.Schedules, err = c.querySchedules(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (c *Client) queryTrafficPatterns(ctx context.Context) ([]routing.TrafficRecord, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT from_id, to_id, start_hour, end_hour, multiplier
		FROM traffic_windows ORDER BY from_id, to_id, position`)
	if err != nil {
		return nil, fmt.Errorf("error querying traffic windows: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var records []routing.TrafficRecord
	for rows.Next() {
		var from, to string
		var w routing.HourWindow
		if err := rows.Scan(&from, &to, &w.StartHour, &w.EndHour, &w.Multiplier); err != nil {
			return nil, fmt.Errorf("error scanning traffic window: %w", err)
		}
		if len(records) > 0 && records[len(records)-1].From == from && records[len(records)-1].To == to {
			records[len(records)-1].Windows = append(records[len(records)-1].Windows, w)
			continue
		}
		records = append(records, routing.TrafficRecord{From: from, To: to, Windows: []routing.HourWindow{w}})
	}
	return records, rows.Err()
}

func (c *Client) queryConstructionZones(ctx context.Context) ([]routing.ConstructionRecord, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT from_id, to_id, start_time, end_time, delay_factor
		FROM construction_zones ORDER BY from_id, to_id`)
	if err != nil {
		return nil, fmt.Errorf("error querying construction zones: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var records []routing.ConstructionRecord
	for rows.Next() {
		var record routing.ConstructionRecord
		var start, end string
		if err := rows.Scan(&record.From, &record.To, &start, &end, &record.DelayFactor); err != nil {
			return nil, fmt.Errorf("error scanning construction zone: %w", err)
		}
		if record.Start, err = time.Parse(time.RFC3339, start); err != nil {
			return nil, fmt.Errorf("error parsing construction start: %w", err)
		}
		if record.End, err = time.Parse(time.RFC3339, end); err != nil {
			return nil, fmt.Errorf("error parsing construction end: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (c *Client) queryWeatherImpacts(ctx context.Context) ([]routing.WeatherRecord, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT date, factor, condition FROM weather_impacts ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("error querying weather impacts: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var records []routing.WeatherRecord
	for rows.Next() {
		var record routing.WeatherRecord
		if err := rows.Scan(&record.Date, &record.Factor, &record.Condition); err != nil {
			return nil, fmt.Errorf("error scanning weather impact: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (c *Client) querySchedules(ctx context.Context) ([]routing.ScheduleRecord, error) {
	byLocation := make(map[string]*routing.ScheduleRecord)
	var order []string

	record := func(id string) *routing.ScheduleRecord {
		if r, ok := byLocation[id]; ok {
			return r
		}
		r := &routing.ScheduleRecord{Location: id}
		byLocation[id] = r
		order = append(order, id)
		return r
	}

	hourRows, err := c.DB.QueryContext(ctx, `
		SELECT location_id, weekday, open_hour, open_minute, close_hour, close_minute
		FROM operating_hours ORDER BY location_id, weekday, position`)
	if err != nil {
		return nil, fmt.Errorf("error querying operating hours: %w", err)
	}
	defer hourRows.Close() // nolint:errcheck
	for hourRows.Next() {
		var id string
		var weekday int
		var w routing.ClockWindow
		if err := hourRows.Scan(&id, &weekday, &w.Open.Hour, &w.Open.Minute, &w.Close.Hour, &w.Close.Minute); err != nil {
			return nil, fmt.Errorf("error scanning operating hours: %w", err)
		}
		r := record(id)
		day := time.Weekday(weekday)
		if n := len(r.OperatingHours); n > 0 && r.OperatingHours[n-1].Weekday == day {
			r.OperatingHours[n-1].Windows = append(r.OperatingHours[n-1].Windows, w)
		} else {
			r.OperatingHours = append(r.OperatingHours, routing.OperatingHoursRecord{
				Weekday: day,
				Windows: []routing.ClockWindow{w},
			})
		}
	}
	if err := hourRows.Err(); err != nil {
		return nil, err
	}

	eventRows, err := c.DB.QueryContext(ctx, `
		SELECT location_id, start_time, end_time, name
		FROM special_events ORDER BY location_id, position`)
	if err != nil {
		return nil, fmt.Errorf("error querying special events: %w", err)
	}
	defer eventRows.Close() // nolint:errcheck
	for eventRows.Next() {
		var id, start, end string
		var event routing.SpecialEvent
		if err := eventRows.Scan(&id, &start, &end, &event.Name); err != nil {
			return nil, fmt.Errorf("error scanning special event: %w", err)
		}
		if event.Start, err = time.Parse(time.RFC3339, start); err != nil {
			return nil, fmt.Errorf("error parsing event start: %w", err)
		}
		if event.End, err = time.Parse(time.RFC3339, end); err != nil {
			return nil, fmt.Errorf("error parsing event end: %w", err)
		}
		record(id).SpecialEvents = append(record(id).SpecialEvents, event)
	}
	if err := eventRows.Err(); err != nil {
		return nil, err
	}

	records := make([]routing.ScheduleRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *byLocation[id])
	}
	return records, nil
}
