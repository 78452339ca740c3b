package restapi

import (
	"net/http"

	"roadnav.opentransit.org/internal/models"
	"roadnav.opentransit.org/internal/utils"
)

// defaultSearchRadiusKm is used when a coordinate search omits the radius.
const defaultSearchRadiusKm = 10.0

func (api *RestAPI) locationsForCoordinatesHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	lat, fieldErrors := utils.ParseFloatParam(queryParams, "lat", nil)
	lon, _ := utils.ParseFloatParam(queryParams, "lon", fieldErrors)
	radius, _ := utils.ParseFloatParam(queryParams, "radius", fieldErrors)

	if err := utils.ValidateLatitude(lat); err != nil {
		fieldErrors["lat"] = append(fieldErrors["lat"], err.Error())
	}
	if err := utils.ValidateLongitude(lon); err != nil {
		fieldErrors["lon"] = append(fieldErrors["lon"], err.Error())
	}
	if radius < 0 {
		fieldErrors["radius"] = append(fieldErrors["radius"], "radius must not be negative")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if radius == 0 {
		radius = defaultSearchRadiusKm
	}

	locations := api.NavManager.LocationsNear(lat, lon, radius)

	list := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		list = append(list, models.NewLocation(loc))
	}

	response := models.NewListResponse(list, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
