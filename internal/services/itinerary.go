package services

import (
	"logistics-route-optimizer/domain"
	"logistics-route-optimizer/internal/weather"
	"strings"
	"time"
)

// Aggregates produced by walking one candidate tour through simulated time.
type itinerary struct {
	distanceMeters  float64
	durationSeconds float64
	waitSeconds     float64
	log             []domain.LogEntry
	violations      []domain.WindowViolation
}

// Walk a tour edge by edge from startAt, judging the destination's weather at
// every provisional arrival and pausing there when it is adverse. Total
// duration includes the pauses. All timestamps derive from startAt, so
// identical inputs replay identically.
func simulateItinerary(
	tour []int,
	stops []domain.Stop,
	matrix domain.Matrix,
	conditions []domain.StopWeather,
	policy weather.Policy,
	startAt time.Time,
) itinerary {
	it := itinerary{log: make([]domain.LogEntry, 0, 2*len(tour))}
	if len(tour) == 0 {
		return it
	}

	now := startAt
	origin := tour[0]
	it.log = append(it.log, domain.LogEntry{
		Kind:      domain.EventDepart,
		StopIndex: origin,
		StopName:  stops[origin].Name,
		At:        now,
	})

	for k := 1; k < len(tour); k++ {
		from, to := tour[k-1], tour[k]
		it.distanceMeters += matrix.Distance(from, to)

		leg := matrix.Duration(from, to)
		it.durationSeconds += leg
		now = now.Add(secondsDur(leg))

		var cond domain.StopWeather
		if to < len(conditions) {
			cond = conditions[to]
		}
		if v := policy.Check(cond, now); v.Wait > 0 {
			it.log = append(it.log, domain.LogEntry{
				Kind:      domain.EventWeatherWait,
				StopIndex: to,
				StopName:  stops[to].Name,
				At:        now,
				Wait:      v.Wait,
				Note:      strings.Join(v.Reasons, ", "),
			})
			if v.WindowHit {
				it.violations = append(it.violations, domain.WindowViolation{
					StopIndex: to,
					StopName:  stops[to].Name,
					ArrivalAt: now,
					Reasons:   v.Reasons,
				})
			}
			it.waitSeconds += v.Wait.Seconds()
			it.durationSeconds += v.Wait.Seconds()
			now = now.Add(v.Wait)
		}

		it.log = append(it.log, domain.LogEntry{
			Kind:      domain.EventArrive,
			StopIndex: to,
			StopName:  stops[to].Name,
			At:        now,
		})

		// Departing an intermediate stop happens at the arrival instant;
		// service time at stops is not modeled.
		if k < len(tour)-1 {
			it.log = append(it.log, domain.LogEntry{
				Kind:      domain.EventDepart,
				StopIndex: to,
				StopName:  stops[to].Name,
				At:        now,
			})
		}
	}

	return it
}

func secondsDur(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
