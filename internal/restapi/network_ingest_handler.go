package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"roadnav.opentransit.org/internal/logging"
	"roadnav.opentransit.org/internal/models"
	"roadnav.opentransit.org/internal/routing"
	"roadnav.opentransit.org/internal/utils"
)

// decodeJSONBody decodes a request body into dst, reporting a validation
// error on malformed JSON.
func (api *RestAPI) decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Invalid JSON request body."},
		})
		return false
	}
	return true
}

type addLocationRequest struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func (api *RestAPI) addLocationHandler(w http.ResponseWriter, r *http.Request) {
	var req addLocationRequest
	if !api.decodeJSONBody(w, r, &req) {
		return
	}

	if fieldErrors := utils.ValidateLocationParams(req.ID, req.Lat, req.Lon); fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	category := utils.SanitizeInput(req.Category)
	description := utils.SanitizeInput(req.Description)

	if err := api.NavManager.AddLocation(req.ID, req.Lat, req.Lon, category, description); err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "network_ingest"))
	logging.LogOperation(logger, "location_added", slog.String("location_id", req.ID))

	loc, _ := api.NavManager.Location(req.ID)
	api.sendResponse(w, r, models.NewEntryResponse(models.NewLocation(loc), models.NewEmptyReferences()))
}

type addRoadRequest struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DistanceKm    float64 `json:"distanceKm"`
	BaseFactor    float64 `json:"baseFactor"`
	RoadType      string  `json:"roadType"`
	SpeedLimitKmh float64 `json:"speedLimitKmh"`
}

func (api *RestAPI) addRoadHandler(w http.ResponseWriter, r *http.Request) {
	var req addRoadRequest
	if !api.decodeJSONBody(w, r, &req) {
		return
	}

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateID(req.From); err != nil {
		fieldErrors["from"] = append(fieldErrors["from"], err.Error())
	}
	if err := utils.ValidateID(req.To); err != nil {
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
	}
	if err := utils.ValidateDistance(req.DistanceKm); err != nil {
		fieldErrors["distanceKm"] = append(fieldErrors["distanceKm"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	err := api.NavManager.AddRoad(req.From, req.To, req.DistanceKm, req.BaseFactor,
		routing.RoadType(req.RoadType), req.SpeedLimitKmh)
	if err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "network_ingest"))
	logging.LogOperation(logger, "road_added",
		slog.String("from", req.From),
		slog.String("to", req.To),
		slog.Float64("distance_km", req.DistanceKm))

	api.sendResponse(w, r, models.NewOKResponse(req))
}
