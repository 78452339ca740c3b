package nav

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roadnav.opentransit.org/internal/routing"
)

func TestSaveAndLoadNetworkFile(t *testing.T) {
	network := routing.NewNetwork()
	require.NoError(t, network.AddLocation("connaught_place", 28.6315, 77.2167, "commercial", "Central business district"))
	require.NoError(t, network.AddLocation("karol_bagh", 28.6519, 77.1909, "market", ""))
	require.NoError(t, network.AddRoad("connaught_place", "karol_bagh", 4.5, 1.0, routing.RoadTypeAvenue, 60))
	require.NoError(t, network.AddTrafficPattern("connaught_place", "karol_bagh", []routing.HourWindow{
		{StartHour: 8, EndHour: 10, Multiplier: 2.0},
	}))
	require.NoError(t, network.AddWeatherImpact(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), 1.3, "fog"))

	path := filepath.Join(t.TempDir(), "network.json")
	require.NoError(t, SaveNetworkFile(network, path))

	loaded, err := LoadNetworkFile(path)
	require.NoError(t, err)
	assert.Equal(t, network.Snapshot(), loaded.Snapshot())
}

func TestLoadNetworkFileMissing(t *testing.T) {
	_, err := LoadNetworkFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadNetworkFileRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadNetworkFile(path)
	assert.Error(t, err)
}

func TestLoadNetworkFileRejectsDanglingRoad(t *testing.T) {
	doc := `{
		"locations": [{"id": "a", "latitude": 28.6, "longitude": 77.2}],
		"roads": [{"from": "a", "to": "ghost", "distanceKm": 2.0, "baseFactor": 1.0}]
	}`
	path := filepath.Join(t.TempDir(), "network.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadNetworkFile(path)
	assert.ErrorIs(t, err, routing.ErrUnknownLocation)
}
