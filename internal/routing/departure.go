package routing

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// DefaultSearchWindowMinutes bounds the backward departure scan when the
// caller does not supply a window.
const DefaultSearchWindowMinutes = 180

const maxScanWorkers = 8

// Departure is the result of an optimal-departure search.
type Departure struct {
	DepartureTime time.Time     `json:"departureTime"`
	ArrivalTime   time.Time     `json:"arrivalTime"`
	TravelTime    time.Duration `json:"travelTime"`
}

type candidateResult struct {
	feasible   bool
	travelTime time.Duration
	err        error
}

// OptimalDeparture scans minute-by-minute backward from the target arrival
// and returns the departure with the smallest travel time whose estimated
// arrival still meets the deadline, preferring the latest departure on ties.
//
// Travel time is not monotonic in departure time (traffic windows switch on
// and off), so the scan is exhaustive rather than a binary search. Each
// candidate minute is an independent estimate over the same immutable
// network, so candidates are evaluated concurrently; the fold over results
// stays sequential to keep the answer deterministic. The context bounds the
// scan: cancellation aborts remaining candidates.
func (n *Network) OptimalDeparture(ctx context.Context, start, end string, targetArrival time.Time, windowMinutes int) (Departure, error) {
	if windowMinutes < 0 {
		return Departure{}, fmt.Errorf("search window must be non-negative, got %d: %w", windowMinutes, ErrInvalidInput)
	}
	if windowMinutes == 0 {
		windowMinutes = DefaultSearchWindowMinutes
	}
	if _, ok := n.locations[start]; !ok {
		return Departure{}, fmt.Errorf("start location %q: %w", start, ErrUnknownLocation)
	}
	if _, ok := n.locations[end]; !ok {
		return Departure{}, fmt.Errorf("end location %q: %w", end, ErrUnknownLocation)
	}

	results := make([]candidateResult, windowMinutes)
	offsets := make(chan int)

	workers := runtime.GOMAXPROCS(0)
	if workers > maxScanWorkers {
		workers = maxScanWorkers
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range offsets {
				if ctx.Err() != nil {
					return
				}
				departure := targetArrival.Add(-time.Duration(k) * time.Minute)
				travelTime, err := n.EstimateTravelTime(start, end, departure)
				if err != nil {
					// A disconnected pair at this instant is just an
					// infeasible candidate; anything else is a real error.
					if errors.Is(err, ErrNoPathFound) {
						continue
					}
					results[k] = candidateResult{err: err}
					continue
				}
				if !departure.Add(travelTime).After(targetArrival) {
					results[k] = candidateResult{feasible: true, travelTime: travelTime}
				}
			}
		}()
	}

	for k := 0; k < windowMinutes; k++ {
		select {
		case <-ctx.Done():
			close(offsets)
			wg.Wait()
			return Departure{}, ctx.Err()
		case offsets <- k:
		}
	}
	close(offsets)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Departure{}, err
	}

	// Scan from the latest candidate down so that equal travel times keep
	// the later departure.
	best := Departure{}
	found := false
	for k := 0; k < windowMinutes; k++ {
		r := results[k]
		if r.err != nil {
			return Departure{}, r.err
		}
		if !r.feasible {
			continue
		}
		if !found || r.travelTime < best.TravelTime {
			departure := targetArrival.Add(-time.Duration(k) * time.Minute)
			best = Departure{
				DepartureTime: departure,
				ArrivalTime:   departure.Add(r.travelTime),
				TravelTime:    r.travelTime,
			}
			found = true
		}
	}

	if !found {
		return Departure{}, fmt.Errorf("no departure within %d minutes of %s arrives on time: %w",
			windowMinutes, targetArrival.Format(time.RFC3339), ErrInfeasible)
	}
	return best, nil
}
