package restapi

import (
	"net/http"

	"roadnav.opentransit.org/internal/models"
	"roadnav.opentransit.org/internal/routing"
	"roadnav.opentransit.org/internal/utils"
)

func (api *RestAPI) optimalDepartureHandler(w http.ResponseWriter, r *http.Request) {
	from, to, target, fieldErrors := parseTripParams(r, "arrival")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	window, fieldErrors := utils.ParseIntParam(r.URL.Query(), "window", routing.DefaultSearchWindowMinutes, nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	departure, err := api.NavManager.OptimalDeparture(r.Context(), from, to, target, window)
	if err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	entry := models.NewDeparture(from, to, target, departure)
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
