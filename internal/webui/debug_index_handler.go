package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	snapshot := webUI.NavManager.Snapshot()

	switch dataType {
	case "locations":
		data = snapshot.Locations
		title = "Road Network - Locations"
	case "roads":
		data = snapshot.Roads
		title = "Road Network - Roads"
	case "traffic":
		data = snapshot.TrafficPatterns
		title = "Road Network - Traffic Patterns"
	case "construction":
		data = snapshot.ConstructionZones
		title = "Road Network - Construction Zones"
	case "weather":
		data = snapshot.WeatherImpacts
		title = "Road Network - Weather Impacts"
	case "schedules":
		data = snapshot.Schedules
		title = "Road Network - Schedules"
	case "storage":
		counts, err := webUI.NavManager.NavDB.TableCounts(r.Context())
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = counts
		}
		title = "Storage - Table Counts"
	default:
		data = map[string]string{
			"error": "Please use one of the following: locations, roads, traffic, construction, weather, schedules, storage.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
