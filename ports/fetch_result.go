package ports

import "logistics-route-optimizer/domain"

// Outcome class of an external data fetch. Degraded means the fetch failed or
// timed out but a safe fallback was substituted and the run may proceed.
type FetchStatus int

const (
	FetchOK FetchStatus = iota
	FetchDegraded
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchOK:
		return "ok"
	case FetchDegraded:
		return "degraded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result of a matrix fetch. On degradation Matrix holds the all-zero
// fallback and Err the cause.
type MatrixResult struct {
	Matrix domain.Matrix
	Status FetchStatus
	Err    error
}

// Result of one per-stop forecast fetch. On degradation the stop is treated
// as weather-unconstrained.
type ForecastResult struct {
	StopIndex int
	Forecast  domain.Forecast
	Status    FetchStatus
	Err       error
}

// Policy for handling a failed matrix fetch.
type MatrixPolicy int

const (
	// Substitute the all-zero matrix and report the degradation.
	MatrixDegradeToZero MatrixPolicy = iota
	// Abort the run with the fetch error.
	MatrixFailFast
)

func (p MatrixPolicy) String() string {
	if p == MatrixFailFast {
		return "fail-fast"
	}
	return "degrade-to-zero"
}
