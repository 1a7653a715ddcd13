package services

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"logistics-route-optimizer/domain"
	"logistics-route-optimizer/internal/platform/obs"
	"math/rand"
	"time"
)

// SolveInput carries the fully gathered inputs for one optimization run.
// Degradations lists anything already substituted upstream; the solver
// appends its own and surfaces the union on the result.
type SolveInput struct {
	RunID        string
	Stops        []domain.Stop
	Matrix       domain.Matrix
	Weather      []domain.StopWeather
	StartAt      time.Time
	Degradations []string
}

// Solve runs the evolutionary search over the supplied inputs and assembles
// the best route found. A missing matrix degrades to the zero matrix rather
// than failing; fewer than two stops is the one input that aborts.
func Solve(ctx context.Context, in SolveInput, p Params) (result *domain.RouteResult, err error) {
	if in.RunID == "" {
		in.RunID = uuid.NewString()
	}
	ctx = obs.WithRunID(ctx, in.RunID)
	defer obs.Time(ctx, "solve_route")(&err)

	p = p.Normalized()

	if len(in.Stops) < 2 {
		return nil, fmt.Errorf("solve route: %w (got %d)", ErrTooFewStops, len(in.Stops))
	}
	for i, s := range in.Stops {
		if !s.Coord.Valid() {
			return nil, fmt.Errorf("solve route: stop %d (%q) has invalid coordinates", i, s.Name)
		}
	}
	if in.Matrix.Size() == 0 {
		in.Matrix = domain.NewMatrix(len(in.Stops))
		in.Degradations = append(in.Degradations, "no distance matrix supplied, using a zero matrix")
	}
	if in.Matrix.Size() != len(in.Stops) {
		return nil, fmt.Errorf("solve route: %w: matrix covers %d stops, want %d",
			ErrDimensionMismatch, in.Matrix.Size(), len(in.Stops))
	}
	if in.StartAt.IsZero() {
		in.StartAt = time.Now().UTC()
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	eval := newEvaluator(in.Stops, in.Matrix, in.Weather, p, in.StartAt)
	engine := newPopulationEngine(rng, eval, p)

	outcome, err := engine.run(ctx)
	if err != nil {
		return nil, fmt.Errorf("solve route: %w", err)
	}
	// Tours are built only by the engine; a malformed best tour is a
	// programming defect, not an input error.
	if len(outcome.best) != len(in.Stops) || outcome.best[0] != 0 {
		panic(fmt.Sprintf("solve route: engine produced corrupt best tour %v for %d stops", outcome.best, len(in.Stops)))
	}

	it := eval.simulate(outcome.best)

	res := assembleResult(in.RunID, outcome.best, in.Stops, it, outcome)
	res.Degradations = append(res.Degradations, in.Degradations...)
	res.Degraded = len(res.Degradations) > 0

	return res, nil
}
