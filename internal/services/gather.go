package services

import (
	"context"
	"errors"
	"fmt"
	"golang.org/x/sync/errgroup"
	"logistics-route-optimizer/domain"
	"logistics-route-optimizer/internal/platform/obs"
	"logistics-route-optimizer/ports"
	"time"
)

// Externally fetched inputs for one run, with per-input fetch statuses and
// human-readable notes about any degradation applied.
type GatheredInputs struct {
	Matrix        domain.Matrix
	MatrixStatus  ports.FetchStatus
	Weather       []domain.StopWeather
	WeatherStatus []ports.FetchStatus
	Notes         []string
}

// GatherInputs fetches the distance matrix and every stop's forecast
// concurrently, each fetch under its own timeout. The matrix outcome honors
// the configured policy: substitute the zero matrix or fail the run. A
// forecast failure only ever degrades its own stop to "no constraint".
func GatherInputs(
	ctx context.Context,
	stops []domain.Stop,
	matrixProvider ports.MatrixProvider,
	forecastProvider ports.ForecastProvider,
	p Params,
) (out *GatheredInputs, err error) {
	defer obs.Time(ctx, "gather_inputs")(&err)

	p = p.Normalized()

	out = &GatheredInputs{
		Weather:       make([]domain.StopWeather, len(stops)),
		WeatherStatus: make([]ports.FetchStatus, len(stops)),
	}

	var (
		matrix    ports.MatrixResult
		forecasts = make([]ports.ForecastResult, len(stops))
	)

	grp, gctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		matrix = fetchMatrix(gctx, stops, matrixProvider, p)
		if matrix.Status == ports.FetchFailed {
			return fmt.Errorf("gather inputs: %w: %v", ErrMatrixUnavailable, matrix.Err)
		}
		return nil
	})

	grp.Go(func() error {
		fg, fctx := errgroup.WithContext(gctx)
		fg.SetLimit(p.FetchWorkers)
		for i, stop := range stops {
			i, stop := i, stop
			fg.Go(func() error {
				forecasts[i] = fetchForecast(fctx, i, stop, forecastProvider, p.FetchTimeout)
				return nil
			})
		}
		return fg.Wait()
	})

	if werr := grp.Wait(); werr != nil {
		return nil, werr
	}

	out.Matrix = matrix.Matrix
	out.MatrixStatus = matrix.Status
	if matrix.Status == ports.FetchDegraded {
		out.Notes = append(out.Notes, fmt.Sprintf("distance matrix unavailable (%v), continuing with a zero matrix", matrix.Err))
	}

	for _, fr := range forecasts {
		out.Weather[fr.StopIndex] = domain.StopWeather{Forecast: fr.Forecast}
		out.WeatherStatus[fr.StopIndex] = fr.Status
		if fr.Status == ports.FetchDegraded {
			out.Notes = append(out.Notes, fmt.Sprintf("weather unavailable for %q (%v), continuing unconstrained", stops[fr.StopIndex].Name, fr.Err))
		}
	}
	return out, nil
}

// Fetch the matrix under its own timeout and classify the outcome per the
// configured policy. A failure never surfaces as FetchFailed unless the
// policy forbids degrading.
func fetchMatrix(ctx context.Context, stops []domain.Stop, provider ports.MatrixProvider, p Params) ports.MatrixResult {
	m, err := func() (domain.Matrix, error) {
		if provider == nil {
			return domain.Matrix{}, errors.New("no matrix provider configured")
		}

		fctx, cancel := context.WithTimeout(ctx, p.FetchTimeout)
		defer cancel()

		m, err := provider.FetchMatrix(fctx, stops)
		if err != nil {
			return domain.Matrix{}, err
		}
		if m.Size() != len(stops) {
			return domain.Matrix{}, fmt.Errorf("matrix covers %d stops, want %d", m.Size(), len(stops))
		}
		return m, nil
	}()

	if err != nil {
		if p.MatrixPolicy == ports.MatrixFailFast {
			return ports.MatrixResult{Status: ports.FetchFailed, Err: err}
		}
		return ports.MatrixResult{
			Matrix: domain.NewMatrix(len(stops)),
			Status: ports.FetchDegraded,
			Err:    err,
		}
	}
	return ports.MatrixResult{Matrix: m, Status: ports.FetchOK}
}

// Fetch one stop's forecast under its own timeout. Errors degrade the stop
// to "no constraint"; a nil provider means weather is simply not in play.
func fetchForecast(ctx context.Context, stopIndex int, stop domain.Stop, provider ports.ForecastProvider, timeout time.Duration) ports.ForecastResult {
	if provider == nil {
		return ports.ForecastResult{StopIndex: stopIndex, Status: ports.FetchOK}
	}

	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	f, err := provider.FetchForecast(fctx, stop)
	if err != nil {
		return ports.ForecastResult{StopIndex: stopIndex, Status: ports.FetchDegraded, Err: err}
	}
	return ports.ForecastResult{StopIndex: stopIndex, Forecast: f, Status: ports.FetchOK}
}
