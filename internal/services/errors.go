package services

import "errors"

// Sentinel errors callers can match with errors.Is.
var (
	// Fewer than two stops were supplied; no search is attempted.
	ErrTooFewStops = errors.New("at least two stops are required")

	// The distance matrix fetch failed under the fail-fast policy.
	ErrMatrixUnavailable = errors.New("distance matrix unavailable")

	// A supplied matrix does not cover every stop.
	ErrDimensionMismatch = errors.New("matrix size does not match stop count")
)
