package navdb

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"roadnav.opentransit.org/internal/routing"
)

// Client is the main entry point for the road-network store.
type Client struct {
	config Config
	DB     *sql.DB
}

// NewClient creates a new Client with the provided configuration.
func NewClient(config Config) (*Client, error) {
	db, err := initDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create navigation DB: %w", err)
	}
	if config.verbose {
		log.Println("Successfully created tables")
	}

	return &Client{config: config, DB: db}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// SaveNetwork replaces the stored network with a snapshot of the given one.
func (c *Client) SaveNetwork(ctx context.Context, network *routing.Network) error {
	return c.storeSnapshot(ctx, network.Snapshot())
}

// LoadNetwork rebuilds a network from the stored tables.
func (c *Client) LoadNetwork(ctx context.Context) (*routing.Network, error) {
	snapshot, err := c.querySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return routing.NetworkFromSnapshot(snapshot)
}

// TableCounts reports row counts per table, for statistics and debugging.
func (c *Client) TableCounts(ctx context.Context) (map[string]int, error) {
	rows, err := c.DB.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return nil, fmt.Errorf("failed to query table names: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		var count int
		err := c.DB.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}
