package restapi

import (
	"net/http"

	"roadnav.opentransit.org/internal/models"
	"roadnav.opentransit.org/internal/utils"
)

func (api *RestAPI) locationsHandler(w http.ResponseWriter, r *http.Request) {
	locations := api.NavManager.Locations()

	list := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		list = append(list, models.NewLocation(loc))
	}

	response := models.NewListResponse(list, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) locationHandler(w http.ResponseWriter, r *http.Request) {
	queryParamID := utils.ExtractIDFromParams(r, "id")

	// Validate ID
	if err := utils.ValidateID(queryParamID); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	loc, ok := api.NavManager.Location(queryParamID)
	if !ok {
		api.sendNotFound(w, r, "location not found")
		return
	}

	at, fieldErrors := utils.ParseTimeParam(r.URL.Query(), "time", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	open, reason, err := api.NavManager.IsLocationOpen(queryParamID, at)
	if err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	entry := struct {
		models.Location
		Status models.LocationStatus `json:"status"`
	}{
		Location: models.NewLocation(loc),
		Status: models.LocationStatus{
			ID:     loc.ID,
			Open:   open,
			Reason: reason,
		},
	}

	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
