package services

import (
	"logistics-route-optimizer/domain"
	"logistics-route-optimizer/internal/weather"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Scores how badly a tour disrespects the stops' preferred visit order.
type sequencePenalty func(tour []int, stops []domain.Stop) float64

// Count ordered position pairs whose stops are visited against their
// preference. Equal preferences never count, so tied stops may appear in any
// order without penalty. The origin is pinned and excluded.
func pairwiseInversions(tour []int, stops []domain.Stop) float64 {
	var count float64
	for i := 1; i < len(tour); i++ {
		for j := i + 1; j < len(tour); j++ {
			if stops[tour[i]].VisitSeq > stops[tour[j]].VisitSeq {
				count++
			}
		}
	}
	return count
}

// Sum each stop's preference rank weighted by its tour position, rewarding
// low-rank stops placed early. Tied stops contribute the same total whichever
// way round they appear.
func weightedPositions(tour []int, stops []domain.Stop) float64 {
	var sum float64
	for i, c := range tour {
		sum += float64(stops[c].VisitSeq) * float64(i)
	}
	return sum
}

func (m SequenceMode) penalty() sequencePenalty {
	if m == SequenceWeighted {
		return weightedPositions
	}
	return pairwiseInversions
}

// evaluator scores candidate tours for a single optimization run. It owns
// the cost weights, the run's read-only inputs and a run-scoped memo of
// computed costs; discarding the evaluator discards the memo with it.
type evaluator struct {
	stops      []domain.Stop
	matrix     domain.Matrix
	conditions []domain.StopWeather
	policy     weather.Policy
	startAt    time.Time

	alpha             float64
	beta              float64
	priorityWeight    float64
	timeWindowPenalty float64
	seqPenalty        sequencePenalty

	memo sync.Map
}

func newEvaluator(stops []domain.Stop, matrix domain.Matrix, conditions []domain.StopWeather, p Params, startAt time.Time) *evaluator {
	return &evaluator{
		stops:             stops,
		matrix:            matrix,
		conditions:        conditions,
		policy:            p.WeatherPolicy,
		startAt:           startAt,
		alpha:             p.Alpha,
		beta:              p.Beta,
		priorityWeight:    p.PriorityWeight,
		timeWindowPenalty: p.TimeWindowPenalty,
		seqPenalty:        p.SequenceMode.penalty(),
	}
}

// Weighted cost of a tour, lower is better. Results are memoized by exact
// tour ordering; a racing duplicate computation is harmless because cost is
// a pure function of the run's inputs.
func (e *evaluator) cost(tour []int) float64 {
	key := tourKey(tour)
	if v, ok := e.memo.Load(key); ok {
		return v.(float64)
	}
	c := e.compute(tour)
	e.memo.Store(key, c)
	return c
}

func (e *evaluator) compute(tour []int) float64 {
	it := e.simulate(tour)
	return e.alpha*it.distanceMeters +
		e.beta*it.durationSeconds +
		e.priorityWeight*e.seqPenalty(tour, e.stops) +
		e.timeWindowPenalty*it.waitSeconds
}

func (e *evaluator) simulate(tour []int) itinerary {
	return simulateItinerary(tour, e.stops, e.matrix, e.conditions, e.policy, e.startAt)
}

// Fitness maps a cost into (0, 1], higher meaning fitter; strictly positive
// and finite for any non-negative finite cost.
func Fitness(cost float64) float64 { return 1 / (cost + 1) }

// Canonical encoding of a tour, used as the memo key.
func tourKey(tour []int) string {
	var b strings.Builder
	for i, c := range tour {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}
