package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/nav/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	mux.Handle("GET /api/nav/locations.json", validateAPIKey(api, api.locationsHandler))
	mux.Handle("GET /api/nav/location/{id}", validateAPIKey(api, api.locationHandler))
	mux.Handle("GET /api/nav/locations-for-coordinates.json", validateAPIKey(api, api.locationsForCoordinatesHandler))
	mux.Handle("GET /api/nav/coverage.json", validateAPIKey(api, api.coverageHandler))
	mux.Handle("GET /api/nav/weather.json", validateAPIKey(api, api.weatherHandler))
	mux.Handle("GET /api/nav/route.json", validateAPIKey(api, api.routeHandler))
	mux.Handle("GET /api/nav/travel-time.json", validateAPIKey(api, api.travelTimeHandler))
	mux.Handle("GET /api/nav/timing-report.json", validateAPIKey(api, api.timingReportHandler))
	mux.Handle("GET /api/nav/optimal-departure.json", validateAPIKey(api, api.optimalDepartureHandler))

	mux.Handle("POST /api/nav/locations", validateAPIKey(api, api.addLocationHandler))
	mux.Handle("POST /api/nav/roads", validateAPIKey(api, api.addRoadHandler))
	mux.Handle("POST /api/nav/traffic-patterns", validateAPIKey(api, api.addTrafficPatternHandler))
	mux.Handle("POST /api/nav/construction-zones", validateAPIKey(api, api.addConstructionZoneHandler))
	mux.Handle("POST /api/nav/weather-impacts", validateAPIKey(api, api.addWeatherImpactHandler))
	mux.Handle("POST /api/nav/operating-hours", validateAPIKey(api, api.setOperatingHoursHandler))
	mux.Handle("POST /api/nav/special-events", validateAPIKey(api, api.addSpecialEventHandler))
}
