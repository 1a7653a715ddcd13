package traffic

import (
	"fmt"
	"logistics-route-optimizer/domain"
	"math"
)

// Level classifies one road segment's congestion from the ratio of current
// to free-flow speed.
type Level int

const (
	FreeFlow Level = iota
	Light
	Moderate
	Heavy
	Severe
)

func (l Level) String() string {
	switch l {
	case FreeFlow:
		return "free_flow"
	case Light:
		return "light"
	case Moderate:
		return "moderate"
	case Heavy:
		return "heavy"
	case Severe:
		return "severe"
	default:
		return "unknown"
	}
}

// Overall grade for a whole route.
type Status int

const (
	StatusNormal Status = iota
	StatusModerate
	StatusSevere
)

func (s Status) String() string {
	switch s {
	case StatusSevere:
		return "Severe"
	case StatusModerate:
		return "Moderate"
	default:
		return "Normal"
	}
}

// FlowSample is one already-fetched traffic flow observation near a stop.
// Travel times are optional; when absent the delay factor falls back to the
// speed ratio's inverse.
type FlowSample struct {
	Location              string
	Coord                 domain.Coordinates
	CurrentSpeedKmh       float64
	FreeFlowSpeedKmh      float64
	CurrentTravelTimeSec  float64
	FreeFlowTravelTimeSec float64
}

// SegmentAnalysis grades a single flow sample.
type SegmentAnalysis struct {
	Location         string
	Level            Level
	SpeedRatio       float64
	DelayFactor      float64
	CurrentSpeedKmh  float64
	FreeFlowSpeedKmh float64
}

// Analyze grades one flow sample. Free-flow at 80% of free speed and above,
// then light, moderate and heavy bands every 20 points, severe below 20%.
func Analyze(s FlowSample) SegmentAnalysis {
	var delay float64
	switch {
	case s.FreeFlowTravelTimeSec > 0:
		delay = s.CurrentTravelTimeSec / s.FreeFlowTravelTimeSec
	case s.FreeFlowSpeedKmh > 0:
		delay = s.FreeFlowSpeedKmh / math.Max(s.CurrentSpeedKmh, 1)
	}

	ratio := s.CurrentSpeedKmh / math.Max(s.FreeFlowSpeedKmh, 1)

	var level Level
	switch {
	case ratio >= 0.8:
		level = FreeFlow
	case ratio >= 0.6:
		level = Light
	case ratio >= 0.4:
		level = Moderate
	case ratio >= 0.2:
		level = Heavy
	default:
		level = Severe
	}

	return SegmentAnalysis{
		Location:         s.Location,
		Level:            level,
		SpeedRatio:       ratio,
		DelayFactor:      delay,
		CurrentSpeedKmh:  s.CurrentSpeedKmh,
		FreeFlowSpeedKmh: s.FreeFlowSpeedKmh,
	}
}

// HeatPoint weights a stop's position by congestion for map heat layers.
type HeatPoint struct {
	Lat       float64
	Lon       float64
	Intensity float64
}

// RouteTraffic summarizes flow samples across a route.
type RouteTraffic struct {
	Overall            Status
	TotalSegments      int
	SevereSegments     int
	AverageDelayFactor float64
	Segments           []SegmentAnalysis
	Heat               []HeatPoint
}

// Summarize grades every sample and rolls the route up: Severe when more
// than 30% of segments run heavy or worse, Moderate past 15%.
func Summarize(samples []FlowSample) RouteTraffic {
	rt := RouteTraffic{TotalSegments: len(samples)}

	var totalDelay float64
	for _, s := range samples {
		a := Analyze(s)
		rt.Segments = append(rt.Segments, a)
		rt.Heat = append(rt.Heat, HeatPoint{
			Lat:       s.Coord.Lat,
			Lon:       s.Coord.Lon,
			Intensity: 1 - a.SpeedRatio,
		})
		if a.Level == Heavy || a.Level == Severe {
			rt.SevereSegments++
		}
		totalDelay += a.DelayFactor
	}

	if len(samples) > 0 {
		rt.AverageDelayFactor = math.Round(totalDelay/float64(len(samples))*100) / 100
	}

	switch {
	case float64(rt.SevereSegments) > float64(len(samples))*0.3:
		rt.Overall = StatusSevere
	case float64(rt.SevereSegments) > float64(len(samples))*0.15:
		rt.Overall = StatusModerate
	default:
		rt.Overall = StatusNormal
	}
	return rt
}

// Recommendation phrases driver advice for one analyzed segment.
func Recommendation(a SegmentAnalysis) string {
	switch a.Level {
	case Severe:
		return "Severe congestion. Consider alternative route or wait for conditions to improve."
	case Heavy:
		return fmt.Sprintf("Heavy traffic. Expected delay: %d minutes. Alternative route recommended.", int((a.DelayFactor-1)*60))
	case Moderate:
		return fmt.Sprintf("Moderate traffic. Minor delays expected (~%d min). Proceed with caution.", int((a.DelayFactor-1)*30))
	case Light:
		return "Light traffic. Proceed as planned."
	default:
		return "Clear roads. Good driving conditions."
	}
}

// Geographic rectangle covering a set of stops.
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// BoundingBox covers every stop with the given margin in degrees on each
// side. 0.1 suits flow queries around a route.
func BoundingBox(stops []domain.Stop, buffer float64) BBox {
	if len(stops) == 0 {
		return BBox{}
	}

	b := BBox{
		MinLon: stops[0].Coord.Lon,
		MinLat: stops[0].Coord.Lat,
		MaxLon: stops[0].Coord.Lon,
		MaxLat: stops[0].Coord.Lat,
	}
	for _, s := range stops[1:] {
		b.MinLon = math.Min(b.MinLon, s.Coord.Lon)
		b.MinLat = math.Min(b.MinLat, s.Coord.Lat)
		b.MaxLon = math.Max(b.MaxLon, s.Coord.Lon)
		b.MaxLat = math.Max(b.MaxLat, s.Coord.Lat)
	}

	b.MinLon -= buffer
	b.MinLat -= buffer
	b.MaxLon += buffer
	b.MaxLat += buffer
	return b
}

// Midpoint of a route leg, where segment flow is typically sampled.
func Midpoint(a, b domain.Coordinates) domain.Coordinates {
	return domain.Coordinates{
		Lat: (a.Lat + b.Lat) / 2,
		Lon: (a.Lon + b.Lon) / 2,
	}
}
