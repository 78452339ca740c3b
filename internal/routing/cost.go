package routing

import "time"

// roadTypeMultipliers adjusts edge cost by road classification. Highways and
// avenues are cheaper per kilometer than streets; local roads are dearer.
var roadTypeMultipliers = map[RoadType]float64{
	RoadTypeHighway: 0.8,
	RoadTypeStreet:  1.0,
	RoadTypeAvenue:  0.9,
	RoadTypeLocal:   1.2,
}

// RoadTypeMultiplier returns the cost multiplier for a road classification,
// defaulting to 1.0 for unknown classifications.
func RoadTypeMultiplier(rt RoadType) float64 {
	if m, ok := roadTypeMultipliers[rt]; ok {
		return m
	}
	return 1.0
}

// TrafficMultiplier returns the time-of-day traffic multiplier for a
// directed road at the given instant. Hours outside every registered window
// get a neutral 1.0.
func (n *Network) TrafficMultiplier(from, to string, at time.Time) float64 {
	windows, ok := n.trafficPatterns[RoadKey{From: from, To: to}]
	if !ok {
		return 1.0
	}
	hour := at.Hour()
	for _, w := range windows {
		if w.Contains(hour) {
			return w.Multiplier
		}
	}
	return 1.0
}

// ConstructionMultiplier returns the construction delay factor for a
// directed road at the given instant, or 1.0 when no zone is active.
func (n *Network) ConstructionMultiplier(from, to string, at time.Time) float64 {
	zone, ok := n.constructionZones[RoadKey{From: from, To: to}]
	if !ok || !zone.Active(at) {
		return 1.0
	}
	return zone.DelayFactor
}

// WeatherMultiplier returns the weather impact factor for the calendar date
// of the given instant, or 1.0 when none is recorded.
func (n *Network) WeatherMultiplier(at time.Time) float64 {
	impact, ok := n.weatherImpacts[at.Format(weatherDateLayout)]
	if !ok {
		return 1.0
	}
	return impact.Factor
}

// WeatherImpactOn returns the impact recorded for the calendar date of the
// given instant, if any.
func (n *Network) WeatherImpactOn(at time.Time) (WeatherImpact, bool) {
	impact, ok := n.weatherImpacts[at.Format(weatherDateLayout)]
	return impact, ok
}

// EdgeCost is the weight minimized by route search: a congestion-adjusted
// distance. It combines base distance, the road's intrinsic traffic factor,
// the time-of-day multiplier and the road-type multiplier.
//
// Construction and weather are deliberately excluded here: they affect
// timing (see SegmentTravelTime) but not path selection.
func (n *Network) EdgeCost(from, to string, distanceKm, baseFactor float64, at time.Time) float64 {
	traffic := n.TrafficMultiplier(from, to, at)
	roadType := RoadTypeMultiplier(n.RoadType(from, to))
	return distanceKm * baseFactor * traffic * roadType
}

// SegmentFactors records the multipliers applied to one traversed segment.
type SegmentFactors struct {
	Traffic      float64 `json:"traffic"`
	Construction float64 `json:"construction"`
	Weather      float64 `json:"weather"`
}

// SegmentTravelTime estimates how long the directed road takes to traverse
// when entered at the given instant. Unlike EdgeCost it applies construction
// and weather delays on top of the time-of-day traffic multiplier.
func (n *Network) SegmentTravelTime(from, to string, distanceKm float64, at time.Time) (time.Duration, SegmentFactors) {
	factors := SegmentFactors{
		Traffic:      n.TrafficMultiplier(from, to, at),
		Construction: n.ConstructionMultiplier(from, to, at),
		Weather:      n.WeatherMultiplier(at),
	}
	baseMinutes := distanceKm / n.SpeedLimit(from, to) * 60
	minutes := baseMinutes * factors.Traffic * factors.Construction * factors.Weather
	return time.Duration(minutes * float64(time.Minute)), factors
}
