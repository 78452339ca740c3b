package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"roadnav.opentransit.org/internal/logging"
	"roadnav.opentransit.org/internal/models"
	"roadnav.opentransit.org/internal/routing"
	"roadnav.opentransit.org/internal/utils"
)

type setOperatingHoursRequest struct {
	ID      string                `json:"id"`
	Weekday int                   `json:"weekday"`
	Windows []routing.ClockWindow `json:"windows"`
}

func (api *RestAPI) setOperatingHoursHandler(w http.ResponseWriter, r *http.Request) {
	var req setOperatingHoursRequest
	if !api.decodeJSONBody(w, r, &req) {
		return
	}

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateID(req.ID); err != nil {
		fieldErrors["id"] = append(fieldErrors["id"], err.Error())
	}
	if req.Weekday < 0 || req.Weekday > 6 {
		fieldErrors["weekday"] = append(fieldErrors["weekday"], "weekday must be between 0 (Sunday) and 6 (Saturday)")
	}
	for _, window := range req.Windows {
		if err := utils.ValidateHour(window.Open.Hour, false); err != nil {
			fieldErrors["windows"] = append(fieldErrors["windows"], err.Error())
		}
		if err := utils.ValidateHour(window.Close.Hour, false); err != nil {
			fieldErrors["windows"] = append(fieldErrors["windows"], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if err := api.NavManager.SetOperatingHours(req.ID, time.Weekday(req.Weekday), req.Windows); err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "schedule_ingest"))
	logging.LogOperation(logger, "operating_hours_set",
		slog.String("location_id", req.ID),
		slog.Int("weekday", req.Weekday),
		slog.Int("windows", len(req.Windows)))

	api.sendResponse(w, r, models.NewOKResponse(req))
}

type addSpecialEventRequest struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Name  string    `json:"name"`
}

func (api *RestAPI) addSpecialEventHandler(w http.ResponseWriter, r *http.Request) {
	var req addSpecialEventRequest
	if !api.decodeJSONBody(w, r, &req) {
		return
	}

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateID(req.ID); err != nil {
		fieldErrors["id"] = append(fieldErrors["id"], err.Error())
	}
	if req.Name == "" {
		fieldErrors["name"] = append(fieldErrors["name"], "name is required")
	}
	if req.End.Before(req.Start) {
		fieldErrors["end"] = append(fieldErrors["end"], "end must not be before start")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	name := utils.SanitizeInput(req.Name)
	if err := api.NavManager.AddSpecialEvent(req.ID, req.Start, req.End, name); err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "schedule_ingest"))
	logging.LogOperation(logger, "special_event_added",
		slog.String("location_id", req.ID),
		slog.String("name", name))

	api.sendResponse(w, r, models.NewOKResponse(req))
}
