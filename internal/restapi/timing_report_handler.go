package restapi

import (
	"net/http"

	"roadnav.opentransit.org/internal/models"
	"roadnav.opentransit.org/internal/routing"
	"roadnav.opentransit.org/internal/utils"
)

func (api *RestAPI) timingReportHandler(w http.ResponseWriter, r *http.Request) {
	from, to, departure, fieldErrors := parseTripParams(r, "departure")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	report, err := api.NavManager.GenerateTimingReport(from, to, departure)
	if err != nil {
		api.engineErrorResponse(w, r, err)
		return
	}

	segments := make([]models.Segment, 0, len(report.Segments))
	for _, seg := range report.Segments {
		segments = append(segments, models.NewSegment(seg, api.segmentHeading(seg.From, seg.To)))
	}

	references := models.NewLocationReferences(api.locationReferences(pathOf(report)))
	response := models.NewEntryResponse(models.NewTimingReport(report, segments), references)
	api.sendResponse(w, r, response)
}

// segmentHeading computes the compass direction of a road segment from its
// endpoint coordinates.
func (api *RestAPI) segmentHeading(fromID, toID string) string {
	from, ok := api.NavManager.Location(fromID)
	if !ok {
		return ""
	}
	to, ok := api.NavManager.Location(toID)
	if !ok {
		return ""
	}
	return utils.CompassDirection(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func pathOf(report *routing.TimingReport) []string {
	ids := make([]string, 0, len(report.Segments)+1)
	for i, seg := range report.Segments {
		if i == 0 {
			ids = append(ids, seg.From)
		}
		ids = append(ids, seg.To)
	}
	return ids
}
