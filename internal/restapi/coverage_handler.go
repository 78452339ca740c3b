package restapi

import (
	"net/http"

	"roadnav.opentransit.org/internal/models"
)

// coverageHandler reports the geographic region the network covers.
func (api *RestAPI) coverageHandler(w http.ResponseWriter, r *http.Request) {
	coverage := models.NewCoverage(api.NavManager.Locations())

	response := models.NewEntryResponse(coverage, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
