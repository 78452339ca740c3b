package nav

import "roadnav.opentransit.org/internal/appconf"

// Config holds the inputs the manager needs to assemble a network.
type Config struct {
	// NetworkPath is an optional JSON network document to load on startup.
	NetworkPath string
	// GTFSSource is an optional GTFS static feed, either a URL or a local
	// file path, used to derive locations and roads.
	GTFSSource string
	// DBPath is the SQLite file backing the network store.
	DBPath  string
	Env     appconf.Environment
	Verbose bool
}
