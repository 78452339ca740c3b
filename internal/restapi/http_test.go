package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"roadnav.opentransit.org/internal/app"
	"roadnav.opentransit.org/internal/appconf"
	"roadnav.opentransit.org/internal/models"
	"roadnav.opentransit.org/internal/nav"
)

// createTestApi creates a RestAPI instance backed by the testdata network for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	navManager, err := nav.InitNavManager(nav.Config{
		NetworkPath: filepath.Join("../../testdata", "network.json"),
		DBPath:      ":memory:",
		Env:         appconf.Test,
	})
	require.NoError(t, err)
	t.Cleanup(navManager.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"TEST"},
			RateLimit: 1000,
		},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		NavManager: navManager,
	}

	return NewRestAPI(application)
}

func serveApi(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func getEndpoint(t *testing.T, server *httptest.Server, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func postEndpoint(t *testing.T, server *httptest.Server, endpoint string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+endpoint, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() }) // nolint:errcheck
	return resp
}

func dataMap(t *testing.T, response models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

func entryMap(t *testing.T, response models.ResponseModel) map[string]interface{} {
	t.Helper()
	entry, ok := dataMap(t, response)["entry"].(map[string]interface{})
	require.True(t, ok, "response entry should be a map")
	return entry
}
