package nav

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/jamespfennell/gtfs"

	"roadnav.opentransit.org/internal/logging"
	"roadnav.opentransit.org/internal/routing"
)

const earthRadiusKm = 6371.0

// NetworkFromGTFS derives a road network from a GTFS static feed. Stops
// become locations and consecutive stop pairs on each trip become roads,
// with great-circle distances and a road type chosen from the route class.
func NetworkFromGTFS(source string) (*routing.Network, error) {
	staticData, err := loadStaticFeed(source)
	if err != nil {
		return nil, err
	}
	return buildNetwork(staticData)
}

func loadStaticFeed(source string) (*gtfs.Static, error) {
	isLocalFile := !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")

	var b []byte
	var err error
	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading GTFS data: %w", err)
		}
		defer logging.SafeCloseWithLogging(resp.Body,
			slog.Default().With(slog.String("component", "gtfs_downloader")),
			"http_response_body")

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading GTFS data: %w", err)
		}
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}
	return staticData, nil
}

func buildNetwork(staticData *gtfs.Static) (*routing.Network, error) {
	network := routing.NewNetwork()

	for _, stop := range staticData.Stops {
		if stop.Latitude == nil || stop.Longitude == nil {
			continue
		}
		err := network.AddLocation(stop.Id, *stop.Latitude, *stop.Longitude, "stop", stop.Name)
		if err != nil {
			return nil, fmt.Errorf("error adding stop %q: %w", stop.Id, err)
		}
	}

	for _, trip := range staticData.Trips {
		roadType := roadTypeForRoute(trip.Route)
		for i := 1; i < len(trip.StopTimes); i++ {
			prev := trip.StopTimes[i-1].Stop
			curr := trip.StopTimes[i].Stop
			if prev == nil || curr == nil {
				continue
			}
			from, ok := network.Location(prev.Id)
			if !ok {
				continue
			}
			to, ok := network.Location(curr.Id)
			if !ok {
				continue
			}
			if _, err := network.RoadDistance(prev.Id, curr.Id); err == nil {
				continue // already connected by an earlier trip
			}
			distanceKm := haversineKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
			if distanceKm <= 0 {
				continue
			}
			if err := network.AddRoad(prev.Id, curr.Id, distanceKm, 1.0, roadType, 0); err != nil {
				return nil, fmt.Errorf("error adding road %s-%s: %w", prev.Id, curr.Id, err)
			}
		}
	}

	return network, nil
}

// roadTypeForRoute picks a road class from the GTFS route type: rail-like
// routes map to fast corridors, buses to surface streets.
func roadTypeForRoute(route *gtfs.Route) routing.RoadType {
	if route == nil {
		return routing.RoadTypeStreet
	}
	switch int(route.Type) {
	case 1, 2: // subway, rail
		return routing.RoadTypeHighway
	case 0, 5: // tram, cable
		return routing.RoadTypeAvenue
	case 3: // bus
		return routing.RoadTypeStreet
	default:
		return routing.RoadTypeLocal
	}
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusKm
}
