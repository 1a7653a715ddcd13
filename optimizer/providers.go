package optimizer

import (
	"logistics-route-optimizer/domain"
	"logistics-route-optimizer/internal/adapters/distance"
	"logistics-route-optimizer/internal/adapters/forecast"
	"logistics-route-optimizer/ports"
)

// StaticMatrix serves a prebuilt matrix to the planner.
func StaticMatrix(m domain.Matrix) ports.MatrixProvider {
	return distance.NewStaticProvider(m)
}

// HaversineMatrix derives the matrix from stop coordinates alone, assuming
// travel at the given average speed. Zero or negative speed means 50 km/h.
func HaversineMatrix(speedKmh float64) ports.MatrixProvider {
	return distance.NewHaversineProvider(speedKmh)
}

// StaticForecasts serves preloaded weather timelines keyed by stop name.
func StaticForecasts(byName map[string]domain.Forecast) ports.ForecastProvider {
	return forecast.NewStaticProvider(byName)
}
