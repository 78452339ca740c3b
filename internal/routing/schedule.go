package routing

import (
	"fmt"
	"time"
)

// Open-state reasons returned by IsLocationOpen.
const (
	ReasonOpen         = "open"
	ReasonNoSchedule   = "no schedule information available"
	ReasonOutsideHours = "outside operating hours"
)

// IsLocationOpen reports whether a location is open at the given instant,
// with a human-readable reason. The checks short-circuit: a location with no
// operating hours for the weekday is open by default, a timestamp outside
// every registered window is closed, and an active special event closes the
// location even inside operating hours.
func (n *Network) IsLocationOpen(id string, at time.Time) (bool, string, error) {
	sched, ok := n.schedules[id]
	if !ok {
		return false, "", fmt.Errorf("location %q: %w", id, ErrUnknownLocation)
	}
	if len(sched.OperatingHours) == 0 && len(sched.SpecialEvents) == 0 {
		return true, ReasonNoSchedule, nil
	}

	if windows, ok := sched.OperatingHours[at.Weekday()]; ok && len(windows) > 0 {
		inside := false
		for _, w := range windows {
			if w.Contains(at) {
				inside = true
				break
			}
		}
		if !inside {
			return false, ReasonOutsideHours, nil
		}
	}

	for _, event := range sched.SpecialEvents {
		if !at.Before(event.Start) && !at.After(event.End) {
			return false, fmt.Sprintf("closed for special event: %s", event.Name), nil
		}
	}

	return true, ReasonOpen, nil
}
