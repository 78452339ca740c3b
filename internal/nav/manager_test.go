package nav

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roadnav.opentransit.org/internal/appconf"
	"roadnav.opentransit.org/internal/routing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := InitNavManager(Config{DBPath: ":memory:", Env: appconf.Test})
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)
	return manager
}

func seedManager(t *testing.T, manager *Manager) {
	t.Helper()
	require.NoError(t, manager.AddLocation("connaught_place", 28.6315, 77.2167, "commercial", ""))
	require.NoError(t, manager.AddLocation("karol_bagh", 28.6519, 77.1909, "market", ""))
	require.NoError(t, manager.AddLocation("india_gate", 28.6129, 77.2295, "monument", ""))
	require.NoError(t, manager.AddRoad("connaught_place", "karol_bagh", 4.5, 1.0, routing.RoadTypeAvenue, 0))
	require.NoError(t, manager.AddRoad("karol_bagh", "india_gate", 5.2, 1.0, routing.RoadTypeStreet, 0))
}

func TestInitNavManagerStartsEmpty(t *testing.T) {
	manager := newTestManager(t)
	assert.Equal(t, 0, manager.NumLocations())
	assert.Equal(t, 0, manager.NumRoads())
}

func TestManagerIngestAndQuery(t *testing.T) {
	manager := newTestManager(t)
	seedManager(t, manager)

	departure := time.Date(2024, 12, 10, 11, 0, 0, 0, time.UTC)
	route, err := manager.FindRoute("connaught_place", "india_gate", departure)
	require.NoError(t, err)
	assert.Equal(t, []string{"connaught_place", "karol_bagh", "india_gate"}, route.Path)

	travelTime, err := manager.EstimateTravelTime("connaught_place", "india_gate", departure)
	require.NoError(t, err)
	assert.Greater(t, travelTime, time.Duration(0))

	report, err := manager.GenerateTimingReport("connaught_place", "india_gate", departure)
	require.NoError(t, err)
	assert.Len(t, report.Segments, 2)
	assert.InDelta(t, 9.7, report.TotalDistanceKm, 1e-9)
}

func TestManagerRejectsRoadBetweenUnknownLocations(t *testing.T) {
	manager := newTestManager(t)
	err := manager.AddRoad("nowhere", "elsewhere", 3.0, 1.0, routing.RoadTypeStreet, 0)
	assert.ErrorIs(t, err, routing.ErrUnknownLocation)
}

func TestManagerPersistsToStore(t *testing.T) {
	manager := newTestManager(t)
	seedManager(t, manager)

	ctx := context.Background()
	require.NoError(t, manager.Persist(ctx))

	stored, err := manager.NavDB.LoadNetwork(ctx)
	require.NoError(t, err)
	assert.Equal(t, manager.Snapshot(), stored.Snapshot())

	// A second flush with no changes is a no-op.
	require.NoError(t, manager.Persist(ctx))
}

func TestManagerOperatingHoursAndEvents(t *testing.T) {
	manager := newTestManager(t)
	seedManager(t, manager)

	require.NoError(t, manager.SetOperatingHours("india_gate", time.Tuesday, []routing.ClockWindow{
		{Open: routing.ClockTime{Hour: 9}, Close: routing.ClockTime{Hour: 21}},
	}))

	// 2024-12-10 is a Tuesday.
	open, reason, err := manager.IsLocationOpen("india_gate", time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, routing.ReasonOpen, reason)

	require.NoError(t, manager.AddSpecialEvent("india_gate",
		time.Date(2024, 12, 10, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 10, 14, 0, 0, 0, time.UTC), "parade"))

	open, reason, err = manager.IsLocationOpen("india_gate", time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, open)
	assert.Contains(t, reason, "parade")
}

func TestManagerOptimalDeparture(t *testing.T) {
	manager := newTestManager(t)
	seedManager(t, manager)

	target := time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC)
	departure, err := manager.OptimalDeparture(context.Background(), "connaught_place", "india_gate", target, 60)
	require.NoError(t, err)
	assert.False(t, departure.ArrivalTime.After(target))
}

func TestManagerShutdownIsIdempotent(t *testing.T) {
	manager, err := InitNavManager(Config{DBPath: ":memory:", Env: appconf.Test})
	require.NoError(t, err)
	manager.Shutdown()
	manager.Shutdown()
}
