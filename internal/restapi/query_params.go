package restapi

import (
	"net/http"
	"time"

	"roadnav.opentransit.org/internal/utils"
)

// parseTripParams extracts and validates the from/to pair plus the named
// time parameter shared by the trip query endpoints.
func parseTripParams(r *http.Request, timeKey string) (from, to string, at time.Time, fieldErrors map[string][]string) {
	params := r.URL.Query()

	from = params.Get("from")
	to = params.Get("to")

	fieldErrors = make(map[string][]string)
	if err := utils.ValidateID(from); err != nil {
		fieldErrors["from"] = append(fieldErrors["from"], err.Error())
	}
	if err := utils.ValidateID(to); err != nil {
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
	}

	at, fieldErrors = utils.ParseTimeParam(params, timeKey, fieldErrors)

	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}
	return from, to, at, fieldErrors
}
