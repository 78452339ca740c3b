package routing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalDepartureMeetsDeadline(t *testing.T) {
	n := newLineNetwork(t)
	target := testClock(12, 0)

	dep, err := n.OptimalDeparture(context.Background(), "A", "C", target, 60)
	require.NoError(t, err)

	assert.False(t, dep.ArrivalTime.After(target))
	assert.Equal(t, dep.DepartureTime.Add(dep.TravelTime), dep.ArrivalTime)
	// No traffic anywhere, so the 12-minute journey can leave at the last
	// feasible minute.
	assert.Equal(t, 12*time.Minute, dep.TravelTime)
	assert.Equal(t, target.Add(-12*time.Minute), dep.DepartureTime)
}

func TestOptimalDepartureAvoidsRushHour(t *testing.T) {
	n := newLineNetwork(t)
	require.NoError(t, n.AddTrafficPattern("A", "B", []HourWindow{
		{StartHour: 11, EndHour: 12, Multiplier: 3.0},
	}))
	target := testClock(12, 0)

	dep, err := n.OptimalDeparture(context.Background(), "A", "C", target, 120)
	require.NoError(t, err)

	// Any departure from 11:00 pays the tripled first segment; leaving
	// before the window keeps the flat 12-minute journey.
	assert.Equal(t, 12*time.Minute, dep.TravelTime)
	assert.True(t, dep.DepartureTime.Before(testClock(11, 0)))
	assert.False(t, dep.ArrivalTime.After(target))
}

func TestOptimalDepartureInfeasible(t *testing.T) {
	n := newTestNetwork(t)
	// 200 km at 50 km/h takes 4 hours; a 30-minute window cannot make it.
	require.NoError(t, n.AddRoad("A", "B", 200, 1.0, RoadTypeStreet, 0))

	_, err := n.OptimalDeparture(context.Background(), "A", "B", testClock(12, 0), 30)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestOptimalDepartureDisconnectedPairIsInfeasible(t *testing.T) {
	n := newTestNetwork(t)
	require.NoError(t, n.AddRoad("A", "B", 5, 1.0, RoadTypeStreet, 0))

	_, err := n.OptimalDeparture(context.Background(), "A", "C", testClock(12, 0), 30)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestOptimalDepartureValidation(t *testing.T) {
	n := newLineNetwork(t)

	_, err := n.OptimalDeparture(context.Background(), "A", "C", testClock(12, 0), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = n.OptimalDeparture(context.Background(), "Nowhere", "C", testClock(12, 0), 30)
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestOptimalDepartureDefaultWindow(t *testing.T) {
	n := newLineNetwork(t)

	dep, err := n.OptimalDeparture(context.Background(), "A", "C", testClock(12, 0), 0)
	require.NoError(t, err)
	assert.Equal(t, 12*time.Minute, dep.TravelTime)
}

func TestOptimalDepartureRespectsContext(t *testing.T) {
	n := newLineNetwork(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.OptimalDeparture(ctx, "A", "C", testClock(12, 0), 180)
	assert.ErrorIs(t, err, context.Canceled)
}
