package navdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roadnav.opentransit.org/internal/appconf"
	"roadnav.opentransit.org/internal/routing"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})
	return client
}

func newStoredNetwork(t *testing.T) *routing.Network {
	t.Helper()
	n := routing.NewNetwork()
	require.NoError(t, n.AddLocation("connaught_place", 28.6315, 77.2167, "commercial", "Central business district"))
	require.NoError(t, n.AddLocation("karol_bagh", 28.6519, 77.1909, "market", "Shopping area"))
	require.NoError(t, n.AddLocation("india_gate", 28.6129, 77.2295, "monument", "War memorial"))

	require.NoError(t, n.AddRoad("connaught_place", "karol_bagh", 4.5, 1.0, routing.RoadTypeAvenue, 60))
	require.NoError(t, n.AddRoad("connaught_place", "india_gate", 2.8, 1.0, routing.RoadTypeStreet, 0))

	require.NoError(t, n.AddTrafficPattern("connaught_place", "karol_bagh", []routing.HourWindow{
		{StartHour: 8, EndHour: 10, Multiplier: 2.0},
		{StartHour: 22, EndHour: 8, Multiplier: 1.0},
	}))
	require.NoError(t, n.AddConstructionZone("connaught_place", "india_gate",
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), 1.5))
	require.NoError(t, n.AddWeatherImpact(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), 1.3, "fog"))
	require.NoError(t, n.SetOperatingHours("karol_bagh", time.Monday, []routing.ClockWindow{
		{Open: routing.ClockTime{Hour: 9}, Close: routing.ClockTime{Hour: 21}},
	}))
	require.NoError(t, n.AddSpecialEvent("india_gate",
		time.Date(2024, 12, 25, 6, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 25, 23, 0, 0, 0, time.UTC), "Republic Day rehearsal"))
	return n
}

func TestSaveAndLoadNetworkRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	network := newStoredNetwork(t)

	require.NoError(t, client.SaveNetwork(ctx, network))

	loaded, err := client.LoadNetwork(ctx)
	require.NoError(t, err)
	assert.Equal(t, network.Snapshot(), loaded.Snapshot())
}

func TestSaveNetworkReplacesPreviousState(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.SaveNetwork(ctx, newStoredNetwork(t)))

	smaller := routing.NewNetwork()
	require.NoError(t, smaller.AddLocation("lajpat_nagar", 28.5677, 77.2433, "market", ""))
	require.NoError(t, client.SaveNetwork(ctx, smaller))

	loaded, err := client.LoadNetwork(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.NumLocations())
	assert.Equal(t, 0, loaded.NumRoads())
}

func TestLoadNetworkEmptyStore(t *testing.T) {
	client := newTestClient(t)

	loaded, err := client.LoadNetwork(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.NumLocations())
}

func TestTableCounts(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.SaveNetwork(ctx, newStoredNetwork(t)))

	counts, err := client.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["locations"])
	assert.Equal(t, 4, counts["roads"])
	assert.Equal(t, 4, counts["traffic_windows"])
	assert.Equal(t, 1, counts["construction_zones"])
	assert.Equal(t, 1, counts["weather_impacts"])
	assert.Equal(t, 1, counts["operating_hours"])
	assert.Equal(t, 1, counts["special_events"])
}
