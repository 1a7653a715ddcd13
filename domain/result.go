package domain

import "time"

// Position of one stop in the optimized route. Order is 1-based; the entry
// with Order 1 is always the departure point.
type RouteStop struct {
	Order    int
	Name     string
	Lat      float64
	Lon      float64
	VisitSeq int
}

// Weather-window hit recorded at a simulated arrival.
type WindowViolation struct {
	StopIndex int
	StopName  string
	ArrivalAt time.Time
	Reasons   []string
}

// Represents the outcome of one optimization run.
// A RouteResult is immutable planning data and contains no side effects: the
// ordered stops, aggregate distance and duration metrics, the simulated
// travel log with any weather waits, and notes about degraded inputs the run
// proceeded with.
type RouteResult struct {
	RunID                string
	Route                []RouteStop
	StopNames            []string
	TotalDistanceKm      float64
	TotalDurationMinutes float64
	WeatherAlerts        []string
	Violations           []WindowViolation
	Log                  []LogEntry
	Degraded             bool
	Degradations         []string
	Generations          int
	BestCost             float64
}
