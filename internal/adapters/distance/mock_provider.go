package distance

import (
	"context"
	"logistics-route-optimizer/domain"
	"time"
)

// MockProvider returns a scripted matrix or error, optionally after a delay,
// and records how often it was asked.
type MockProvider struct {
	Matrix domain.Matrix
	Err    error
	Delay  time.Duration
	Calls  int
}

func (p *MockProvider) FetchMatrix(ctx context.Context, stops []domain.Stop) (domain.Matrix, error) {
	p.Calls++

	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return domain.Matrix{}, ctx.Err()
		}
	}

	if p.Err != nil {
		return domain.Matrix{}, p.Err
	}
	return p.Matrix, nil
}
