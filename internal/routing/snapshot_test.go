package routing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotFixture(t *testing.T) *Network {
	t.Helper()
	n := newTestNetwork(t)
	require.NoError(t, n.AddRoad("A", "B", 5, 1.2, RoadTypeAvenue, 40))
	require.NoError(t, n.AddRoad("B", "C", 3, 1.5, RoadTypeStreet, 30))
	require.NoError(t, n.AddTrafficPattern("A", "B", []HourWindow{
		{StartHour: 8, EndHour: 10, Multiplier: 2.0},
		{StartHour: 22, EndHour: 8, Multiplier: 0.9},
	}))
	require.NoError(t, n.AddConstructionZone("A", "B",
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		1.5))
	require.NoError(t, n.AddWeatherImpact(time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), 1.3, "heavy rain"))
	require.NoError(t, n.SetOperatingHours("A", time.Monday, []ClockWindow{
		{Open: ClockTime{Hour: 9}, Close: ClockTime{Hour: 21}},
	}))
	require.NoError(t, n.AddSpecialEvent("A",
		time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 25, 6, 0, 0, 0, time.UTC),
		"holiday closure"))
	return n
}

func TestSnapshotRoundTrip(t *testing.T) {
	n := newSnapshotFixture(t)

	restored, err := NetworkFromSnapshot(n.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, n.NumLocations(), restored.NumLocations())
	assert.Equal(t, n.NumRoads(), restored.NumRoads())

	origSegs, err := n.Neighbors("A")
	require.NoError(t, err)
	restoredSegs, err := restored.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, origSegs, restoredSegs)

	assert.Equal(t, RoadTypeAvenue, restored.RoadType("A", "B"))
	assert.Equal(t, 40.0, restored.SpeedLimit("B", "A"))

	at := time.Date(2024, 12, 9, 9, 0, 0, 0, time.UTC) // Monday rush hour
	assert.Equal(t, n.TrafficMultiplier("A", "B", at), restored.TrafficMultiplier("A", "B", at))
	assert.Equal(t, n.ConstructionMultiplier("A", "B", at), restored.ConstructionMultiplier("A", "B", at))

	wet := time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1.3, restored.WeatherMultiplier(wet))

	open, reason, err := restored.IsLocationOpen("A", at)
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, ReasonOpen, reason)

	closed, reason, err := restored.IsLocationOpen("A",
		time.Date(2024, 12, 24, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, closed)
	assert.Equal(t, "closed for special event: holiday closure", reason)
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	n := newSnapshotFixture(t)

	data, err := json.Marshal(n.Snapshot())
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))

	restored, err := NetworkFromSnapshot(&snapshot)
	require.NoError(t, err)

	route, err := restored.FindRoute("A", "C", time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, route.Path)
}

func TestNetworkFromSnapshotRejectsDanglingRoad(t *testing.T) {
	s := &Snapshot{
		Locations: []Location{{ID: "A"}},
		Roads:     []RoadRecord{{From: "A", To: "Ghost", DistanceKm: 5, BaseFactor: 1}},
	}

	_, err := NetworkFromSnapshot(s)
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestNetworkFromSnapshotRejectsBadDistance(t *testing.T) {
	s := &Snapshot{
		Locations: []Location{{ID: "A"}, {ID: "B"}},
		Roads:     []RoadRecord{{From: "A", To: "B", DistanceKm: 0, BaseFactor: 1}},
	}

	_, err := NetworkFromSnapshot(s)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
