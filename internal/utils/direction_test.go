package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearingBetweenPoints(t *testing.T) {
	// Due north
	bearing := BearingBetweenPoints(28.60, 77.20, 28.70, 77.20)
	assert.InDelta(t, 0.0, bearing, 0.5)

	// Due east
	bearing = BearingBetweenPoints(28.60, 77.20, 28.60, 77.30)
	assert.InDelta(t, 90.0, bearing, 0.5)
}

func TestBearingToCompass(t *testing.T) {
	assert.Equal(t, "N", BearingToCompass(0))
	assert.Equal(t, "NE", BearingToCompass(45))
	assert.Equal(t, "E", BearingToCompass(90))
	assert.Equal(t, "S", BearingToCompass(180))
	assert.Equal(t, "W", BearingToCompass(270))
	assert.Equal(t, "N", BearingToCompass(359))
}

func TestCompassDirection(t *testing.T) {
	assert.Equal(t, "N", CompassDirection(28.60, 77.20, 28.70, 77.20))
	assert.Equal(t, "SW", CompassDirection(28.70, 77.30, 28.60, 77.20))
}
