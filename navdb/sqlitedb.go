package navdb

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"roadnav.opentransit.org/internal/appconf"
	"roadnav.opentransit.org/internal/logging"
)

// initDB creates a new SQLite database with the road-network tables.
func initDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx,
		slog.Default().With(slog.String("component", "network_store")),
		"init_db")

	if err := createTables(tx); err != nil {
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_roads_from_id ON roads(from_id);
		CREATE INDEX IF NOT EXISTS idx_traffic_windows_road ON traffic_windows(from_id, to_id);
		CREATE INDEX IF NOT EXISTS idx_operating_hours_location ON operating_hours(location_id);
		CREATE INDEX IF NOT EXISTS idx_special_events_location ON special_events(location_id);
	`)
	if err != nil {
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createTables(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS locations (
			location_id TEXT PRIMARY KEY,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			category TEXT,
			description TEXT,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS roads (
			from_id TEXT NOT NULL REFERENCES locations(location_id),
			to_id TEXT NOT NULL REFERENCES locations(location_id),
			distance_km REAL NOT NULL,
			base_factor REAL NOT NULL,
			road_type TEXT,
			speed_limit_kmh REAL,
			position INTEGER NOT NULL,
			PRIMARY KEY (from_id, to_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS traffic_windows (
			from_id TEXT NOT NULL,
			to_id TEXT NOT NULL,
			start_hour INTEGER NOT NULL,
			end_hour INTEGER NOT NULL,
			multiplier REAL NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (from_id, to_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS construction_zones (
			from_id TEXT NOT NULL,
			to_id TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			delay_factor REAL NOT NULL,
			PRIMARY KEY (from_id, to_id)
		);`,
		`CREATE TABLE IF NOT EXISTS weather_impacts (
			date TEXT PRIMARY KEY,
			factor REAL NOT NULL,
			condition TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS operating_hours (
			location_id TEXT NOT NULL REFERENCES locations(location_id),
			weekday INTEGER NOT NULL,
			open_hour INTEGER NOT NULL,
			open_minute INTEGER NOT NULL,
			close_hour INTEGER NOT NULL,
			close_minute INTEGER NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (location_id, weekday, position)
		);`,
		`CREATE TABLE IF NOT EXISTS special_events (
			location_id TEXT NOT NULL REFERENCES locations(location_id),
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (location_id, position)
		);`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
