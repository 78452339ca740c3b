package restapi

import (
	"net/http"

	"roadnav.opentransit.org/internal/models"
	"roadnav.opentransit.org/internal/utils"
)

// weatherHandler reports the weather impact recorded for a calendar date.
// An empty date parameter means today.
func (api *RestAPI) weatherHandler(w http.ResponseWriter, r *http.Request) {
	date, fieldErrors := utils.ParseDateParam(r.URL.Query(), "date", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	impact, ok := api.NavManager.WeatherImpactOn(date)
	if !ok {
		api.sendNotFound(w, r, "no weather impact recorded for date")
		return
	}

	response := models.NewEntryResponse(models.NewWeather(date, impact), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
