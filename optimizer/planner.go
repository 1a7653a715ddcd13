package optimizer

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"log"
	"logistics-route-optimizer/domain"
	"logistics-route-optimizer/internal/platform/obs"
	"logistics-route-optimizer/internal/services"
	"logistics-route-optimizer/ports"
	"time"
)

// Planner composes external data providers with the solver: gather travel
// and weather data for the stops, then optimize their visiting order. Either
// provider may be nil, in which case that input is simply absent.
type Planner struct {
	matrix   ports.MatrixProvider
	forecast ports.ForecastProvider
	opts     Options
}

func NewPlanner(matrix ports.MatrixProvider, forecast ports.ForecastProvider, opts Options) *Planner {
	return &Planner{matrix: matrix, forecast: forecast, opts: opts}
}

// PlanRoute fetches inputs and runs the optimization. Fetch trouble
// surfaces as degradation notes on the result rather than failing the run;
// the exceptions are a matrix failure under the fail-fast policy and fewer
// than two stops.
func (p *Planner) PlanRoute(ctx context.Context, stops []domain.Stop, startAt time.Time) (*domain.RouteResult, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("plan route: %w (got %d)", ErrTooFewStops, len(stops))
	}

	runID := uuid.NewString()
	ctx = obs.WithRunID(ctx, runID)

	params := p.opts.params()

	gathered, err := services.GatherInputs(ctx, stops, p.matrix, p.forecast, params)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	res, err := services.Solve(ctx, services.SolveInput{
		RunID:        runID,
		Stops:        stops,
		Matrix:       gathered.Matrix,
		Weather:      gathered.Weather,
		StartAt:      startAt,
		Degradations: gathered.Notes,
	}, params)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	log.Printf("run_id=%s stops=%d generations=%d best_cost=%.2f best_fitness=%.8f matrix_status=%s degraded=%t",
		runID, len(stops), res.Generations, res.BestCost, services.Fitness(res.BestCost), gathered.MatrixStatus, res.Degraded)

	return res, nil
}
