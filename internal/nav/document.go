package nav

import (
	"encoding/json"
	"fmt"
	"os"

	"roadnav.opentransit.org/internal/routing"
)

// LoadNetworkFile reads a JSON network document and rebuilds the network.
func LoadNetworkFile(path string) (*routing.Network, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading network document: %w", err)
	}

	var snapshot routing.Snapshot
	if err := json.Unmarshal(b, &snapshot); err != nil {
		return nil, fmt.Errorf("error parsing network document: %w", err)
	}

	return routing.NetworkFromSnapshot(&snapshot)
}

// SaveNetworkFile writes the network as an indented JSON document.
func SaveNetworkFile(network *routing.Network, path string) error {
	b, err := json.MarshalIndent(network.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding network document: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("error writing network document: %w", err)
	}
	return nil
}
