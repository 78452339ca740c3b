package app

import (
	"log/slog"

	"roadnav.opentransit.org/internal/appconf"
	"roadnav.opentransit.org/internal/nav"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the parsed configuration, a structured logger, and the
// navigation manager that owns the road network.
type Application struct {
	Config     appconf.Config
	Logger     *slog.Logger
	NavManager *nav.Manager
}
