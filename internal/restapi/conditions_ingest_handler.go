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

type addTrafficPatternRequest struct {
	From    string               `json:"from"`
	To      string               `json:"to"`
	Windows []routing.HourWindow `json:"windows"`
}

func (api *RestAPI) addTrafficPatternHandler(w http.ResponseWriter, r *http.Request) {
	var req addTrafficPatternRequest
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
	if len(req.Windows) == 0 {
		fieldErrors["windows"] = append(fieldErrors["windows"], "at least one window is required")
	}
	for _, window := range req.Windows {
		if err := utils.ValidateHour(window.StartHour, false); err != nil {
			fieldErrors["windows"] = append(fieldErrors["windows"], err.Error())
		}
		if err := utils.ValidateHour(window.EndHour, true); err != nil {
			fieldErrors["windows"] = append(fieldErrors["windows"], err.Error())
		}
		if err := utils.ValidateMultiplier(window.Multiplier); err != nil {
			fieldErrors["windows"] = append(fieldErrors["windows"], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if err := api.NavManager.AddTrafficPattern(req.From, req.To, req.Windows); err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "conditions_ingest"))
	logging.LogOperation(logger, "traffic_pattern_added",
		slog.String("from", req.From),
		slog.String("to", req.To),
		slog.Int("windows", len(req.Windows)))

	api.sendResponse(w, r, models.NewOKResponse(req))
}

type addConstructionZoneRequest struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DelayFactor float64   `json:"delayFactor"`
}

func (api *RestAPI) addConstructionZoneHandler(w http.ResponseWriter, r *http.Request) {
	var req addConstructionZoneRequest
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
	if err := utils.ValidateMultiplier(req.DelayFactor); err != nil {
		fieldErrors["delayFactor"] = append(fieldErrors["delayFactor"], err.Error())
	}
	if req.End.Before(req.Start) {
		fieldErrors["end"] = append(fieldErrors["end"], "end must not be before start")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if err := api.NavManager.AddConstructionZone(req.From, req.To, req.Start, req.End, req.DelayFactor); err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "conditions_ingest"))
	logging.LogOperation(logger, "construction_zone_added",
		slog.String("from", req.From),
		slog.String("to", req.To),
		slog.Float64("delay_factor", req.DelayFactor))

	api.sendResponse(w, r, models.NewOKResponse(req))
}

type addWeatherImpactRequest struct {
	Date      string  `json:"date"`
	Factor    float64 `json:"factor"`
	Condition string  `json:"condition"`
}

func (api *RestAPI) addWeatherImpactHandler(w http.ResponseWriter, r *http.Request) {
	var req addWeatherImpactRequest
	if !api.decodeJSONBody(w, r, &req) {
		return
	}

	fieldErrors := make(map[string][]string)
	if req.Date == "" {
		fieldErrors["date"] = append(fieldErrors["date"], "date is required")
	} else if err := utils.ValidateDate(req.Date); err != nil {
		fieldErrors["date"] = append(fieldErrors["date"], err.Error())
	}
	if err := utils.ValidateMultiplier(req.Factor); err != nil {
		fieldErrors["factor"] = append(fieldErrors["factor"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"date": {err.Error()}})
		return
	}

	if err := api.NavManager.AddWeatherImpact(date, req.Factor, utils.SanitizeInput(req.Condition)); err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("component", "conditions_ingest"))
	logging.LogOperation(logger, "weather_impact_added",
		slog.String("date", req.Date),
		slog.Float64("factor", req.Factor),
		slog.String("condition", req.Condition))

	api.sendResponse(w, r, models.NewOKResponse(req))
}
