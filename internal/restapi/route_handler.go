package restapi

import (
	"net/http"

	"roadnav.opentransit.org/internal/models"
)

func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	from, to, at, fieldErrors := parseTripParams(r, "time")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	route, err := api.NavManager.FindRoute(from, to, at)
	if err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	references := models.NewLocationReferences(api.locationReferences(route.Path))
	response := models.NewEntryResponse(models.NewRoute(from, to, at, route), references)
	api.sendResponse(w, r, response)
}

// locationReferences resolves path ids to full location records for the
// references block of a response.
func (api *RestAPI) locationReferences(ids []string) []models.Location {
	refs := make([]models.Location, 0, len(ids))
	for _, id := range ids {
		if loc, ok := api.NavManager.Location(id); ok {
			refs = append(refs, models.NewLocation(loc))
		}
	}
	return refs
}
