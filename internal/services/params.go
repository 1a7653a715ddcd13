package services

import (
	"logistics-route-optimizer/internal/weather"
	"logistics-route-optimizer/ports"
	"runtime"
	"time"
)

// Default tuning values for the evolutionary search and its cost weights.
const (
	DefaultPopulationSize = 60
	DefaultGenerations    = 200
	DefaultMutationRate   = 0.2
	DefaultTournamentK    = 3
	DefaultEliteCount     = 2

	DefaultAlpha             = 1.0
	DefaultBeta              = 1.0
	DefaultPriorityWeight    = 1000.0
	DefaultTimeWindowPenalty = 1e7

	DefaultFetchWorkers = 5
	DefaultFetchTimeout = 10 * time.Second
)

// SequenceMode selects how visit-order preferences are scored.
type SequenceMode int

const (
	// Count stop pairs visited against their preferred order.
	SequencePairwise SequenceMode = iota
	// Sum each stop's preference rank weighted by its tour position.
	SequenceWeighted
)

// Params bundles every knob one optimization run reads. Build from
// DefaultParams and override; Normalized clamps structurally invalid
// settings without touching deliberate choices such as a zero mutation rate.
type Params struct {
	PopulationSize   int
	Generations      int
	MutationRate     float64
	TournamentK      int
	EliteCount       int
	StallGenerations int

	Alpha             float64
	Beta              float64
	PriorityWeight    float64
	TimeWindowPenalty float64
	SequenceMode      SequenceMode

	WeatherPolicy weather.Policy

	EvalWorkers  int
	FetchWorkers int
	FetchTimeout time.Duration
	MatrixPolicy ports.MatrixPolicy

	Seed int64
}

func DefaultParams() Params {
	return Params{
		PopulationSize:    DefaultPopulationSize,
		Generations:       DefaultGenerations,
		MutationRate:      DefaultMutationRate,
		TournamentK:       DefaultTournamentK,
		EliteCount:        DefaultEliteCount,
		Alpha:             DefaultAlpha,
		Beta:              DefaultBeta,
		PriorityWeight:    DefaultPriorityWeight,
		TimeWindowPenalty: DefaultTimeWindowPenalty,
		WeatherPolicy:     weather.DefaultPolicy(),
		EvalWorkers:       runtime.GOMAXPROCS(0),
		FetchWorkers:      DefaultFetchWorkers,
		FetchTimeout:      DefaultFetchTimeout,
	}
}

// Normalized returns a copy with out-of-range settings clamped so the engine
// never has to re-check them.
func (p Params) Normalized() Params {
	if p.PopulationSize < 1 {
		p.PopulationSize = 1
	}
	if p.Generations < 0 {
		p.Generations = 0
	}
	if p.MutationRate < 0 {
		p.MutationRate = 0
	}
	if p.MutationRate > 1 {
		p.MutationRate = 1
	}
	if p.TournamentK < 1 {
		p.TournamentK = 1
	}
	if p.EliteCount < 0 {
		p.EliteCount = 0
	}
	if p.EliteCount > p.PopulationSize {
		p.EliteCount = p.PopulationSize
	}
	if p.StallGenerations < 0 {
		p.StallGenerations = 0
	}
	if p.WeatherPolicy.MatchTolerance == 0 && p.WeatherPolicy.FixedWait == 0 {
		p.WeatherPolicy = weather.DefaultPolicy()
	}
	if p.EvalWorkers < 1 {
		p.EvalWorkers = runtime.GOMAXPROCS(0)
	}
	if p.FetchWorkers < 1 {
		p.FetchWorkers = DefaultFetchWorkers
	}
	if p.FetchTimeout <= 0 {
		p.FetchTimeout = DefaultFetchTimeout
	}
	return p
}
