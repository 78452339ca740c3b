package routing

import (
	"container/heap"
	"fmt"
	"math"
	"time"
)

// Route is the result of a shortest-path query: the visited locations in
// order and the accumulated edge cost.
type Route struct {
	Path []string `json:"path"`
	Cost float64  `json:"cost"`
}

// frontierItem is one entry in the route search frontier. seq is a
// monotonically increasing push counter used to break cost ties, keeping
// search results deterministic regardless of heap internals.
type frontierItem struct {
	cost     float64
	seq      int
	location string
}

type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// FindRoute runs time-aware Dijkstra from start to end. Edge costs are
// evaluated against the departure instant for the whole query; they are not
// re-evaluated at each node's arrival time. Timing that does account for the
// moving clock is the estimator's job (see EstimateTravelTime), so route
// selection and timing can disagree by design.
func (n *Network) FindRoute(start, end string, departure time.Time) (Route, error) {
	if _, ok := n.locations[start]; !ok {
		return Route{}, fmt.Errorf("start location %q: %w", start, ErrUnknownLocation)
	}
	if _, ok := n.locations[end]; !ok {
		return Route{}, fmt.Errorf("end location %q: %w", end, ErrUnknownLocation)
	}
	if start == end {
		return Route{Path: []string{start}, Cost: 0}, nil
	}

	dist := make(map[string]float64, len(n.locations))
	for id := range n.locations {
		dist[id] = math.Inf(1)
	}
	dist[start] = 0
	prev := make(map[string]string)

	pq := &frontier{{cost: 0, seq: 0, location: start}}
	heap.Init(pq)
	seq := 1

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)

		if item.location == end {
			break
		}
		// Lazy deletion: a stale frontier entry carries a cost that has
		// since been beaten.
		if item.cost > dist[item.location] {
			continue
		}

		for _, seg := range n.adjacency[item.location] {
			cost := n.EdgeCost(item.location, seg.To, seg.DistanceKm, seg.BaseFactor, departure)
			next := item.cost + cost
			if next < dist[seg.To] {
				dist[seg.To] = next
				prev[seg.To] = item.location
				heap.Push(pq, frontierItem{cost: next, seq: seq, location: seg.To})
				seq++
			}
		}
	}

	if math.IsInf(dist[end], 1) {
		return Route{}, fmt.Errorf("%q to %q: %w", start, end, ErrNoPathFound)
	}

	path := []string{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			// Predecessor chain broke before reaching start; treat the
			// target as unreachable rather than returning a partial path.
			return Route{}, fmt.Errorf("%q to %q: %w", start, end, ErrNoPathFound)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Route{Path: path, Cost: dist[end]}, nil
}
