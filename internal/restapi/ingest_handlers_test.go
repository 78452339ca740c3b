package restapi

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLocationHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp := postEndpoint(t, server, "/api/nav/locations?key=TEST", map[string]interface{}{
		"id":          "rohini",
		"lat":         28.7495,
		"lon":         77.0565,
		"category":    "residential",
		"description": "Northern suburb",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	loc, ok := api.NavManager.Location("rohini")
	require.True(t, ok)
	assert.Equal(t, "Northern suburb", loc.Description)
}

func TestAddLocationHandlerValidation(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp := postEndpoint(t, server, "/api/nav/locations?key=TEST", map[string]interface{}{
		"id":  "bad id",
		"lat": 95.0,
		"lon": 77.0,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_, ok := api.NavManager.Location("bad id")
	assert.False(t, ok, "invalid location must not be stored")
}

func TestAddLocationHandlerMalformedBody(t *testing.T) {
	server := serveApi(t, createTestApi(t))

	resp, err := http.Post(server.URL+"/api/nav/locations?key=TEST", "application/json",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddRoadHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp := postEndpoint(t, server, "/api/nav/roads?key=TEST", map[string]interface{}{
		"from":       "hauz_khas",
		"to":         "vasant_kunj",
		"distanceKm": 6.5,
		"baseFactor": 1.1,
		"roadType":   "avenue",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	seg, err := api.NavManager.FindRoute("hauz_khas", "vasant_kunj", time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"hauz_khas", "vasant_kunj"}, seg.Path)
}

func TestAddRoadHandlerUnknownLocation(t *testing.T) {
	server := serveApi(t, createTestApi(t))

	resp := postEndpoint(t, server, "/api/nav/roads?key=TEST", map[string]interface{}{
		"from":       "atlantis",
		"to":         "saket",
		"distanceKm": 3.0,
	})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddTrafficPatternHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp := postEndpoint(t, server, "/api/nav/traffic-patterns?key=TEST", map[string]interface{}{
		"from": "red_fort",
		"to":   "chandni_chowk",
		"windows": []map[string]interface{}{
			{"startHour": 8, "endHour": 10, "multiplier": 2.5},
		},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	at := time.Date(2024, 11, 5, 9, 0, 0, 0, time.UTC)
	snapshot := api.NavManager.Snapshot()
	found := false
	for _, record := range snapshot.TrafficPatterns {
		if record.From == "red_fort" && record.To == "chandni_chowk" {
			found = true
			assert.True(t, record.Windows[0].Contains(at.Hour()))
		}
	}
	assert.True(t, found, "traffic pattern should be stored")
}

func TestAddTrafficPatternHandlerRejectsBadWindow(t *testing.T) {
	server := serveApi(t, createTestApi(t))

	resp := postEndpoint(t, server, "/api/nav/traffic-patterns?key=TEST", map[string]interface{}{
		"from": "red_fort",
		"to":   "chandni_chowk",
		"windows": []map[string]interface{}{
			{"startHour": 25, "endHour": 10, "multiplier": 2.5},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddConstructionZoneHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp := postEndpoint(t, server, "/api/nav/construction-zones?key=TEST", map[string]interface{}{
		"from":        "saket",
		"to":          "hauz_khas",
		"start":       "2025-01-10T00:00:00Z",
		"end":         "2025-01-20T23:59:00Z",
		"delayFactor": 1.4,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	snapshot := api.NavManager.Snapshot()
	found := false
	for _, record := range snapshot.ConstructionZones {
		if record.From == "saket" && record.To == "hauz_khas" {
			found = true
			assert.InDelta(t, 1.4, record.DelayFactor, 1e-9)
		}
	}
	assert.True(t, found, "construction zone should be stored")
}

func TestAddWeatherImpactHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp := postEndpoint(t, server, "/api/nav/weather-impacts?key=TEST", map[string]interface{}{
		"date":      "2025-01-15",
		"factor":    1.6,
		"condition": "Dense Fog",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	snapshot := api.NavManager.Snapshot()
	found := false
	for _, record := range snapshot.WeatherImpacts {
		if record.Date == "2025-01-15" {
			found = true
			assert.Equal(t, "Dense Fog", record.Condition)
		}
	}
	assert.True(t, found, "weather impact should be stored")
}

func TestAddWeatherImpactHandlerRequiresDate(t *testing.T) {
	server := serveApi(t, createTestApi(t))

	resp := postEndpoint(t, server, "/api/nav/weather-impacts?key=TEST", map[string]interface{}{
		"factor": 1.6,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSetOperatingHoursHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp := postEndpoint(t, server, "/api/nav/operating-hours?key=TEST", map[string]interface{}{
		"id":      "india_gate",
		"weekday": 2,
		"windows": []map[string]interface{}{
			{"open": map[string]int{"hour": 6, "minute": 0}, "close": map[string]int{"hour": 18, "minute": 30}},
		},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// 2024-12-10 is a Tuesday.
	open, _, err := api.NavManager.IsLocationOpen("india_gate", time.Date(2024, 12, 10, 19, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, open, "19:00 is past the new closing time")
}

func TestSetOperatingHoursHandlerRejectsBadWeekday(t *testing.T) {
	server := serveApi(t, createTestApi(t))

	resp := postEndpoint(t, server, "/api/nav/operating-hours?key=TEST", map[string]interface{}{
		"id":      "india_gate",
		"weekday": 9,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddSpecialEventHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp := postEndpoint(t, server, "/api/nav/special-events?key=TEST", map[string]interface{}{
		"id":    "india_gate",
		"start": "2025-01-26T00:00:00Z",
		"end":   "2025-01-26T23:59:00Z",
		"name":  "Republic Day",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	open, reason, err := api.NavManager.IsLocationOpen("india_gate", time.Date(2025, 1, 26, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, open)
	assert.Contains(t, reason, "Republic Day")
}

func TestAddSpecialEventHandlerRequiresName(t *testing.T) {
	server := serveApi(t, createTestApi(t))

	resp := postEndpoint(t, server, "/api/nav/special-events?key=TEST", map[string]interface{}{
		"id":    "india_gate",
		"start": "2025-01-26T00:00:00Z",
		"end":   "2025-01-26T23:59:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
