package optimizer

import (
	"context"
	"github.com/google/uuid"
	"log"
	"logistics-route-optimizer/domain"
	"logistics-route-optimizer/internal/platform/obs"
	"logistics-route-optimizer/internal/services"
	"logistics-route-optimizer/internal/weather"
	"time"
)

// Errors callers can match with errors.Is.
var (
	ErrTooFewStops       = services.ErrTooFewStops
	ErrMatrixUnavailable = services.ErrMatrixUnavailable
	ErrDimensionMismatch = services.ErrDimensionMismatch
)

// Request carries already-fetched inputs for a single optimization run.
// A zero-value Matrix means none was available; the run proceeds against the
// zero matrix and says so in the result. Weather is positional per stop and
// may be shorter than Stops; missing entries are unconstrained. A zero
// StartTime means now.
type Request struct {
	Stops     []domain.Stop
	Matrix    domain.Matrix
	Weather   []domain.StopWeather
	StartTime time.Time
}

// Solve searches for a low-cost visiting order over the requested stops,
// honoring visit-order preferences and weather, and returns the best route
// found with its simulated travel log.
func Solve(ctx context.Context, req Request, opts Options) (*domain.RouteResult, error) {
	runID := uuid.NewString()
	ctx = obs.WithRunID(ctx, runID)

	res, err := services.Solve(ctx, services.SolveInput{
		RunID:   runID,
		Stops:   req.Stops,
		Matrix:  req.Matrix,
		Weather: req.Weather,
		StartAt: req.StartTime,
	}, opts.params())
	if err != nil {
		return nil, err
	}

	log.Printf("run_id=%s stops=%d generations=%d best_cost=%.2f best_fitness=%.8f degraded=%t",
		runID, len(req.Stops), res.Generations, res.BestCost, services.Fitness(res.BestCost), res.Degraded)

	return res, nil
}

// DeriveWindows precomputes each stop's forbidden window from its timeline,
// for callers that prefer the window form of weather constraints. Stops
// whose timeline stays safe keep the timeline instead.
func DeriveWindows(conditions []domain.StopWeather, tripStart time.Time) []domain.StopWeather {
	out := make([]domain.StopWeather, len(conditions))
	for i, c := range conditions {
		out[i] = c
		if c.Window == nil && len(c.Forecast) > 0 {
			out[i].Window = weather.DeriveWindow(c.Forecast, tripStart)
		}
	}
	return out
}
