package services

import (
	"fmt"
	"logistics-route-optimizer/domain"
	"math"
)

// Build the caller-facing result from the best tour and its simulated
// itinerary. Distances are reported in kilometers and durations in minutes,
// both rounded to two decimals.
func assembleResult(runID string, tour []int, stops []domain.Stop, it itinerary, outcome searchResult) *domain.RouteResult {
	route := make([]domain.RouteStop, 0, len(tour))
	for i, c := range tour {
		route = append(route, domain.RouteStop{
			Order:    i + 1,
			Name:     stops[c].Name,
			Lat:      stops[c].Coord.Lat,
			Lon:      stops[c].Coord.Lon,
			VisitSeq: stops[c].VisitSeq,
		})
	}

	return &domain.RouteResult{
		RunID:                runID,
		Route:                route,
		StopNames:            stopNames(it.log, stops),
		TotalDistanceKm:      round2(it.distanceMeters / 1000),
		TotalDurationMinutes: round2(it.durationSeconds / 60),
		WeatherAlerts:        weatherAlerts(it.log),
		Violations:           it.violations,
		Log:                  it.log,
		Generations:          outcome.generations,
		BestCost:             outcome.bestCost,
	}
}

// Derive the visited-name sequence from the travel log, collapsing the
// consecutive duplicates produced by Depart/Arrive pairs. The origin name
// always leads, even when the log would omit it.
func stopNames(log []domain.LogEntry, stops []domain.Stop) []string {
	names := make([]string, 0, len(stops))
	for _, entry := range log {
		if entry.Kind == domain.EventWeatherWait {
			continue
		}
		if len(names) > 0 && names[len(names)-1] == entry.StopName {
			continue
		}
		names = append(names, entry.StopName)
	}

	if len(stops) > 0 {
		origin := stops[0].Name
		if len(names) == 0 || names[0] != origin {
			names = append([]string{origin}, names...)
		}
	}
	return names
}

// One human-readable alert per weather wait in the log.
func weatherAlerts(log []domain.LogEntry) []string {
	var alerts []string
	for _, entry := range log {
		if entry.Kind != domain.EventWeatherWait {
			continue
		}
		alerts = append(alerts, fmt.Sprintf("%s at %s: waiting %s before arrival", entry.Note, entry.StopName, entry.Wait))
	}
	return alerts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
