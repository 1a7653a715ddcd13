package forecast

import (
	"context"
	"logistics-route-optimizer/domain"
	"sync"
	"time"
)

// MockProvider scripts per-stop outcomes by name and counts calls. Fetches
// run concurrently, so the counter is guarded.
type MockProvider struct {
	Forecasts map[string]domain.Forecast
	Errs      map[string]error
	Delay     time.Duration

	mu    sync.Mutex
	calls int
}

func (p *MockProvider) FetchForecast(ctx context.Context, stop domain.Stop) (domain.Forecast, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := p.Errs[stop.Name]; err != nil {
		return nil, err
	}
	return p.Forecasts[stop.Name], nil
}

func (p *MockProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
