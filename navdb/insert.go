package navdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"roadnav.opentransit.org/internal/logging"
	"roadnav.opentransit.org/internal/routing"
)

// storeSnapshot writes the snapshot inside one transaction, clearing the
// previous contents first so the store always holds exactly one network.
func (c *Client) storeSnapshot(ctx context.Context, s *routing.Snapshot) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx,
		slog.Default().With(slog.String("component", "network_store")),
		"store_snapshot")

	for _, table := range []string{
		"special_events", "operating_hours", "weather_impacts",
		"construction_zones", "traffic_windows", "roads", "locations",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("error clearing %s: %w", table, err)
		}
	}

	if err := insertLocations(ctx, tx, s.Locations); err != nil {
		return err
	}
	if err := insertRoads(ctx, tx, s.Roads); err != nil {
		return err
	}
	if err := insertTrafficPatterns(ctx, tx, s.TrafficPatterns); err != nil {
		return err
	}
	if err := insertConstructionZones(ctx, tx, s.ConstructionZones); err != nil {
		return err
	}
	if err := insertWeatherImpacts(ctx, tx, s.WeatherImpacts); err != nil {
		return err
	}
	if err := insertSchedules(ctx, tx, s.Schedules); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

func insertLocations(ctx context.Context, tx *sql.Tx, locations []routing.Location) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO locations (
			location_id, latitude, longitude, category, description, position
		) VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for i, loc := range locations {
		_, err := stmt.ExecContext(ctx, loc.ID, loc.Latitude, loc.Longitude, loc.Category, loc.Description, i)
		if err != nil {
			return fmt.Errorf("error inserting location: %w", err)
		}
	}
	return nil
}

func insertRoads(ctx context.Context, tx *sql.Tx, roads []routing.RoadRecord) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO roads (
			from_id, to_id, distance_km, base_factor, road_type, speed_limit_kmh, position
		) VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for i, road := range roads {
		_, err := stmt.ExecContext(ctx, road.From, road.To, road.DistanceKm, road.BaseFactor,
			string(road.RoadType), road.SpeedLimitKmh, i)
		if err != nil {
			return fmt.Errorf("error inserting road: %w", err)
		}
	}
	return nil
}

func insertTrafficPatterns(ctx context.Context, tx *sql.Tx, patterns []routing.TrafficRecord) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO traffic_windows (
			from_id, to_id, start_hour, end_hour, multiplier, position
		) VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, pattern := range patterns {
		for i, w := range pattern.Windows {
			_, err := stmt.ExecContext(ctx, pattern.From, pattern.To, w.StartHour, w.EndHour, w.Multiplier, i)
			if err != nil {
				return fmt.Errorf("error inserting traffic window: %w", err)
			}
		}
	}
	return nil
}

func insertConstructionZones(ctx context.Context, tx *sql.Tx, zones []routing.ConstructionRecord) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO construction_zones (
			from_id, to_id, start_time, end_time, delay_factor
		) VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, zone := range zones {
		_, err := stmt.ExecContext(ctx, zone.From, zone.To,
			zone.Start.Format(time.RFC3339), zone.End.Format(time.RFC3339), zone.DelayFactor)
		if err != nil {
			return fmt.Errorf("error inserting construction zone: %w", err)
		}
	}
	return nil
}

func insertWeatherImpacts(ctx context.Context, tx *sql.Tx, impacts []routing.WeatherRecord) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO weather_impacts (date, factor, condition) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, impact := range impacts {
		_, err := stmt.ExecContext(ctx, impact.Date, impact.Factor, impact.Condition)
		if err != nil {
			return fmt.Errorf("error inserting weather impact: %w", err)
		}
	}
	return nil
}

func insertSchedules(ctx context.Context, tx *sql.Tx, schedules []routing.ScheduleRecord) error {
	hoursStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO operating_hours (
			location_id, weekday, open_hour, open_minute, close_hour, close_minute, position
		) VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer hoursStmt.Close() // nolint:errcheck

	eventsStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO special_events (
			location_id, start_time, end_time, name, position
		) VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer eventsStmt.Close() // nolint:errcheck

	for _, sched := range schedules {
		for _, hours := range sched.OperatingHours {
			for i, w := range hours.Windows {
				_, err := hoursStmt.ExecContext(ctx, sched.Location, int(hours.Weekday),
					w.Open.Hour, w.Open.Minute, w.Close.Hour, w.Close.Minute, i)
				if err != nil {
					return fmt.Errorf("error inserting operating hours: %w", err)
				}
			}
		}
		for i, event := range sched.SpecialEvents {
			_, err := eventsStmt.ExecContext(ctx, sched.Location,
				event.Start.Format(time.RFC3339), event.End.Format(time.RFC3339), event.Name, i)
			if err != nil {
				return fmt.Errorf("error inserting special event: %w", err)
			}
		}
	}
	return nil
}
