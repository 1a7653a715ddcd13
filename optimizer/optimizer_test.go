package optimizer_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/require"
	"logistics-route-optimizer/domain"
	"logistics-route-optimizer/internal/adapters/distance"
	"logistics-route-optimizer/optimizer"
	"logistics-route-optimizer/ports"
	"testing"
	"time"
)

var tripStart = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

func fourStops() []domain.Stop {
	return []domain.Stop{
		{Name: "Depot", Coord: domain.Coordinates{Lat: 33.40, Lon: -112.00}},
		{Name: "East", Coord: domain.Coordinates{Lat: 33.40, Lon: -111.99}},
		{Name: "Mid", Coord: domain.Coordinates{Lat: 33.40, Lon: -111.98}},
		{Name: "Far", Coord: domain.Coordinates{Lat: 33.40, Lon: -111.97}},
	}
}

// Stops sit on a line; distance grows with index gap, duration at a tenth.
func lineMatrix(t *testing.T, n int) domain.Matrix {
	t.Helper()
	dist := make([][]float64, n)
	dur := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		dur[i] = make([]float64, n)
		for j := range dist[i] {
			gap := float64(i - j)
			if gap < 0 {
				gap = -gap
			}
			dist[i][j] = gap * 1000
			dur[i][j] = gap * 100
		}
	}
	m, err := domain.MatrixFromTables(dist, dur)
	require.NoError(t, err)
	return m
}

func seededOptions(seed int64) optimizer.Options {
	opts := optimizer.DefaultOptions()
	opts.Seed = seed
	return opts
}

func TestSolveFindsShortestLineWalk(t *testing.T) {
	req := optimizer.Request{
		Stops:     fourStops(),
		Matrix:    lineMatrix(t, 4),
		StartTime: tripStart,
	}

	res, err := optimizer.Solve(context.Background(), req, seededOptions(5))
	require.NoError(t, err)

	require.NotEmpty(t, res.RunID)
	require.Equal(t, []string{"Depot", "East", "Mid", "Far"}, res.StopNames)
	require.Equal(t, 3.0, res.TotalDistanceKm)
	require.Equal(t, 5.0, res.TotalDurationMinutes)
	require.False(t, res.Degraded)
	require.Len(t, res.Route, 4)
	require.Equal(t, 1, res.Route[0].Order)
}

func TestSolveTooFewStops(t *testing.T) {
	req := optimizer.Request{Stops: fourStops()[:1]}
	_, err := optimizer.Solve(context.Background(), req, optimizer.DefaultOptions())
	require.ErrorIs(t, err, optimizer.ErrTooFewStops)
}

func TestSolveWithoutMatrixDegrades(t *testing.T) {
	req := optimizer.Request{Stops: fourStops(), StartTime: tripStart}

	res, err := optimizer.Solve(context.Background(), req, seededOptions(5))
	require.NoError(t, err)
	require.True(t, res.Degraded)
	require.Len(t, res.Degradations, 1)
	require.Contains(t, res.Degradations[0], "zero matrix")
	require.Equal(t, 0.0, res.TotalDistanceKm)
}

func TestSolveHonorsWeatherWindows(t *testing.T) {
	arrival := tripStart.Add(100 * time.Second)
	req := optimizer.Request{
		Stops:  fourStops()[:2],
		Matrix: lineMatrix(t, 2),
		Weather: []domain.StopWeather{
			{},
			{Window: &domain.WeatherWindow{
				Start:   arrival.Add(-time.Minute),
				End:     arrival.Add(45 * time.Minute),
				Reasons: []string{"Low Visibility"},
			}},
		},
		StartTime: tripStart,
	}

	res, err := optimizer.Solve(context.Background(), req, seededOptions(5))
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	require.Equal(t, "East", res.Violations[0].StopName)
	require.Len(t, res.WeatherAlerts, 1)
	require.Contains(t, res.WeatherAlerts[0], "Low Visibility at East")
}

func TestDeriveWindows(t *testing.T) {
	conditions := []domain.StopWeather{
		{Forecast: domain.Forecast{{At: tripStart.Add(time.Hour), RainMM: 6}}},
		{Forecast: domain.Forecast{{At: tripStart, RainMM: 0.1, VisibilityM: 9000}}},
		{Window: &domain.WeatherWindow{Start: tripStart, End: tripStart.Add(time.Hour)}},
	}

	derived := optimizer.DeriveWindows(conditions, tripStart)
	require.Len(t, derived, 3)

	require.NotNil(t, derived[0].Window)
	require.Equal(t, tripStart.Add(time.Hour), derived[0].Window.Start)
	require.Equal(t, tripStart.Add(4*time.Hour), derived[0].Window.End)

	require.Nil(t, derived[1].Window)
	require.Len(t, derived[1].Forecast, 1)

	// Preexisting windows pass through untouched.
	require.Equal(t, conditions[2].Window, derived[2].Window)
}

func TestPlannerPlanRoute(t *testing.T) {
	stops := fourStops()
	forecasts := map[string]domain.Forecast{
		"East": {{At: tripStart.Add(100 * time.Second), RainMM: 5, Summary: "rain"}},
	}

	p := optimizer.NewPlanner(
		optimizer.StaticMatrix(lineMatrix(t, 4)),
		optimizer.StaticForecasts(forecasts),
		seededOptions(5),
	)

	res, err := p.PlanRoute(context.Background(), stops, tripStart)
	require.NoError(t, err)
	require.False(t, res.Degraded)
	require.NotEmpty(t, res.WeatherAlerts)
	require.Contains(t, res.WeatherAlerts[0], "Heavy Rain at East")
	require.Empty(t, res.Violations)
}

func TestPlannerTooFewStops(t *testing.T) {
	p := optimizer.NewPlanner(nil, nil, optimizer.DefaultOptions())
	_, err := p.PlanRoute(context.Background(), fourStops()[:1], tripStart)
	require.ErrorIs(t, err, optimizer.ErrTooFewStops)
}

func TestPlannerDegradesWhenMatrixFetchFails(t *testing.T) {
	p := optimizer.NewPlanner(
		&distance.MockProvider{Err: errors.New("upstream down")},
		nil,
		seededOptions(5),
	)

	res, err := p.PlanRoute(context.Background(), fourStops(), tripStart)
	require.NoError(t, err)
	require.True(t, res.Degraded)
	require.NotEmpty(t, res.Degradations)
	require.Contains(t, res.Degradations[0], "zero matrix")
}

func TestPlannerMatrixFailFast(t *testing.T) {
	opts := seededOptions(5)
	opts.MatrixPolicy = ports.MatrixFailFast

	p := optimizer.NewPlanner(&distance.MockProvider{Err: errors.New("upstream down")}, nil, opts)
	_, err := p.PlanRoute(context.Background(), fourStops(), tripStart)
	require.ErrorIs(t, err, optimizer.ErrMatrixUnavailable)
}

func TestPlannerDeterministicForSeed(t *testing.T) {
	run := func() *domain.RouteResult {
		p := optimizer.NewPlanner(optimizer.StaticMatrix(lineMatrix(t, 4)), nil, seededOptions(77))
		res, err := p.PlanRoute(context.Background(), fourStops(), tripStart)
		require.NoError(t, err)
		return res
	}

	a, b := run(), run()
	require.Equal(t, a.StopNames, b.StopNames)
	require.Equal(t, a.BestCost, b.BestCost)
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("OPTIMIZER_POPULATION_SIZE", "90")
	t.Setenv("OPTIMIZER_GENERATIONS", "50")
	t.Setenv("OPTIMIZER_MUTATION_RATE", "not-a-number")
	t.Setenv("OPTIMIZER_FETCH_TIMEOUT", "3s")
	t.Setenv("OPTIMIZER_SEED", "12345")
	t.Setenv("OPTIMIZER_SEQUENCE_POLICY", "weighted")
	t.Setenv("OPTIMIZER_MATRIX_POLICY", "fail")

	opts := optimizer.OptionsFromEnv()
	require.Equal(t, 90, opts.PopulationSize)
	require.Equal(t, 50, opts.Generations)
	require.Equal(t, optimizer.DefaultOptions().MutationRate, opts.MutationRate)
	require.Equal(t, 3*time.Second, opts.FetchTimeout)
	require.Equal(t, int64(12345), opts.Seed)
	require.Equal(t, optimizer.SequenceWeighted, opts.SequencePolicy)
	require.Equal(t, ports.MatrixFailFast, opts.MatrixPolicy)
}

func TestOptionsFromEnvDefaults(t *testing.T) {
	// No OPTIMIZER_* variables set in the test environment.
	require.Equal(t, optimizer.DefaultOptions(), optimizer.OptionsFromEnv())
}
