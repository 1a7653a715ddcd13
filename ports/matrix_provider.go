package ports

import (
	"context"
	"logistics-route-optimizer/domain"
)

// Contract for retrieving the pairwise travel cost matrix for a stop list.
type MatrixProvider interface {
	// Return distances and durations between every ordered pair of stops.
	FetchMatrix(ctx context.Context, stops []domain.Stop) (domain.Matrix, error)
}
