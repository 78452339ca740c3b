package routing

import "errors"

var (
	// ErrUnknownLocation is returned when an operation references a location
	// id that was never registered on the network.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrUnknownRoad is returned when a path references a pair of locations
	// with no registered road between them.
	ErrUnknownRoad = errors.New("unknown road")

	// ErrNoPathFound is returned when the network is disconnected for the
	// queried pair. This is a normal result variant, not a fault.
	ErrNoPathFound = errors.New("no path found")

	// ErrInfeasible is returned when no departure inside the search window
	// meets the arrival deadline.
	ErrInfeasible = errors.New("no feasible departure")

	// ErrInvalidInput is returned when ingest-time validation fails. The
	// mutation is rejected and no partial state is written.
	ErrInvalidInput = errors.New("invalid input")
)
