package optimizer

import (
	"logistics-route-optimizer/internal/config"
	"logistics-route-optimizer/internal/services"
	"logistics-route-optimizer/internal/weather"
	"logistics-route-optimizer/ports"
	"time"
)

// SequencePolicy selects how visit-order preferences are scored.
type SequencePolicy int

const (
	// Count stop pairs visited against their preferred order; ties are free.
	SequencePairwise SequencePolicy = iota
	// Sum each stop's preference rank weighted by its tour position.
	SequenceWeighted
)

// Options tunes one optimization run. Start from DefaultOptions or
// OptionsFromEnv and override what you need; a Seed of zero draws a fresh
// one per run, any other value reproduces the search exactly.
type Options struct {
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
	SequencePolicy    SequencePolicy

	WeatherMatchTolerance time.Duration
	WeatherWait           time.Duration

	EvalWorkers  int
	FetchWorkers int
	FetchTimeout time.Duration
	MatrixPolicy ports.MatrixPolicy

	Seed int64
}

func DefaultOptions() Options {
	p := services.DefaultParams()
	return Options{
		PopulationSize:        p.PopulationSize,
		Generations:           p.Generations,
		MutationRate:          p.MutationRate,
		TournamentK:           p.TournamentK,
		EliteCount:            p.EliteCount,
		StallGenerations:      p.StallGenerations,
		Alpha:                 p.Alpha,
		Beta:                  p.Beta,
		PriorityWeight:        p.PriorityWeight,
		TimeWindowPenalty:     p.TimeWindowPenalty,
		WeatherMatchTolerance: p.WeatherPolicy.MatchTolerance,
		WeatherWait:           p.WeatherPolicy.FixedWait,
		EvalWorkers:           p.EvalWorkers,
		FetchWorkers:          p.FetchWorkers,
		FetchTimeout:          p.FetchTimeout,
		MatrixPolicy:          p.MatrixPolicy,
	}
}

// OptionsFromEnv builds Options from OPTIMIZER_* environment variables,
// keeping the defaults for anything unset. A .env file is honored when
// present.
func OptionsFromEnv() Options {
	config.Load()

	d := DefaultOptions()
	o := Options{
		PopulationSize:        config.GetInt("OPTIMIZER_POPULATION_SIZE", d.PopulationSize),
		Generations:           config.GetInt("OPTIMIZER_GENERATIONS", d.Generations),
		MutationRate:          config.GetFloat("OPTIMIZER_MUTATION_RATE", d.MutationRate),
		TournamentK:           config.GetInt("OPTIMIZER_TOURNAMENT_K", d.TournamentK),
		EliteCount:            config.GetInt("OPTIMIZER_ELITE_COUNT", d.EliteCount),
		StallGenerations:      config.GetInt("OPTIMIZER_STALL_GENERATIONS", d.StallGenerations),
		Alpha:                 config.GetFloat("OPTIMIZER_ALPHA", d.Alpha),
		Beta:                  config.GetFloat("OPTIMIZER_BETA", d.Beta),
		PriorityWeight:        config.GetFloat("OPTIMIZER_PRIORITY_WEIGHT", d.PriorityWeight),
		TimeWindowPenalty:     config.GetFloat("OPTIMIZER_TIME_WINDOW_PENALTY", d.TimeWindowPenalty),
		WeatherMatchTolerance: config.GetDuration("OPTIMIZER_WEATHER_TOLERANCE", d.WeatherMatchTolerance),
		WeatherWait:           config.GetDuration("OPTIMIZER_WEATHER_WAIT", d.WeatherWait),
		EvalWorkers:           config.GetInt("OPTIMIZER_EVAL_WORKERS", d.EvalWorkers),
		FetchWorkers:          config.GetInt("OPTIMIZER_FETCH_WORKERS", d.FetchWorkers),
		FetchTimeout:          config.GetDuration("OPTIMIZER_FETCH_TIMEOUT", d.FetchTimeout),
		Seed:                  config.GetInt64("OPTIMIZER_SEED", 0),
	}

	if config.Get("OPTIMIZER_SEQUENCE_POLICY", "pairwise") == "weighted" {
		o.SequencePolicy = SequenceWeighted
	}
	if config.Get("OPTIMIZER_MATRIX_POLICY", "degrade") == "fail" {
		o.MatrixPolicy = ports.MatrixFailFast
	}
	return o
}

func (o Options) params() services.Params {
	mode := services.SequencePairwise
	if o.SequencePolicy == SequenceWeighted {
		mode = services.SequenceWeighted
	}

	return services.Params{
		PopulationSize:    o.PopulationSize,
		Generations:       o.Generations,
		MutationRate:      o.MutationRate,
		TournamentK:       o.TournamentK,
		EliteCount:        o.EliteCount,
		StallGenerations:  o.StallGenerations,
		Alpha:             o.Alpha,
		Beta:              o.Beta,
		PriorityWeight:    o.PriorityWeight,
		TimeWindowPenalty: o.TimeWindowPenalty,
		SequenceMode:      mode,
		WeatherPolicy: weather.Policy{
			MatchTolerance: o.WeatherMatchTolerance,
			FixedWait:      o.WeatherWait,
		},
		EvalWorkers:  o.EvalWorkers,
		FetchWorkers: o.FetchWorkers,
		FetchTimeout: o.FetchTimeout,
		MatrixPolicy: o.MatrixPolicy,
		Seed:         o.Seed,
	}
}
