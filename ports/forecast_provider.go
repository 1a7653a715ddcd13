package ports

import (
	"context"
	"logistics-route-optimizer/domain"
)

// Contract for retrieving the weather timeline at a single stop.
type ForecastProvider interface {
	// Return the forecast covering the planning horizon at the stop.
	FetchForecast(ctx context.Context, stop domain.Stop) (domain.Forecast, error)
}
