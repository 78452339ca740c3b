package restapi

import (
	"net/http"

	"roadnav.opentransit.org/internal/models"
)

func (api *RestAPI) travelTimeHandler(w http.ResponseWriter, r *http.Request) {
	from, to, departure, fieldErrors := parseTripParams(r, "departure")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	travelTime, err := api.NavManager.EstimateTravelTime(from, to, departure)
	if err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	entry := models.NewTravelTime(from, to, departure, travelTime)
	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
