package services

import (
	"context"
	"fmt"
	"golang.org/x/sync/errgroup"
	"math"
	"math/rand"
	"sort"
)

// populationEngine runs the evolutionary search for one optimization run.
// Breeding is sequential so a seed fully determines the search; only cost
// evaluation fans out across workers.
type populationEngine struct {
	rng    *rand.Rand
	eval   *evaluator
	params Params
}

// Outcome of a finished search.
type searchResult struct {
	best        []int
	bestCost    float64
	generations int
}

func newPopulationEngine(rng *rand.Rand, eval *evaluator, p Params) *populationEngine {
	return &populationEngine{rng: rng, eval: eval, params: p}
}

// Evolve the population for the configured number of generations and return
// the best tour ever observed. The running best never worsens: elites carry
// the best tours forward and the tracker only replaces on strict improvement.
func (e *populationEngine) run(ctx context.Context) (searchResult, error) {
	n := len(e.eval.stops)

	pop := e.initialPopulation(n)
	costs, err := e.scoreAll(ctx, pop)
	if err != nil {
		return searchResult{}, err
	}

	res := searchResult{bestCost: math.Inf(1)}
	e.trackBest(&res, pop, costs)

	stalled := 0
	for gen := 0; gen < e.params.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return searchResult{}, fmt.Errorf("evolve population: generation %d: %w", gen+1, err)
		}

		sort.Sort(byCost{pop, costs})

		next := make([][]int, 0, e.params.PopulationSize)
		for i := 0; i < e.params.EliteCount && i < len(pop); i++ {
			next = append(next, copyTour(pop[i]))
		}
		for len(next) < e.params.PopulationSize {
			p1 := e.tournament(pop, costs)
			p2 := e.tournament(pop, costs)
			child := e.crossover(p1, p2)
			e.mutate(child)
			next = append(next, child)
		}

		pop = next
		costs, err = e.scoreAll(ctx, pop)
		if err != nil {
			return searchResult{}, err
		}
		res.generations = gen + 1

		if e.trackBest(&res, pop, costs) {
			stalled = 0
		} else {
			stalled++
			if e.params.StallGenerations > 0 && stalled >= e.params.StallGenerations {
				break
			}
		}
	}

	return res, nil
}

// Record the generation's cheapest tour when it improves on the running best.
func (e *populationEngine) trackBest(res *searchResult, pop [][]int, costs []float64) bool {
	best := -1
	for i, c := range costs {
		if best == -1 || c < costs[best] {
			best = i
		}
	}
	if best == -1 || costs[best] >= res.bestCost {
		return false
	}
	res.best = copyTour(pop[best])
	res.bestCost = costs[best]
	return true
}

// Score every member, fanning out across the configured workers. Cost is
// pure, so members evaluate independently; the memo absorbs repeats.
func (e *populationEngine) scoreAll(ctx context.Context, pop [][]int) ([]float64, error) {
	costs := make([]float64, len(pop))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(e.params.EvalWorkers)
	for i, tour := range pop {
		i, tour := i, tour
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			costs[i] = e.eval.cost(tour)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("score population: %w", err)
	}
	return costs, nil
}

// Pick a parent: sample TournamentK members without replacement, keep the
// cheapest.
func (e *populationEngine) tournament(pop [][]int, costs []float64) []int {
	k := e.params.TournamentK
	if k > len(pop) {
		k = len(pop)
	}
	best := -1
	for _, i := range e.rng.Perm(len(pop))[:k] {
		if best == -1 || costs[i] < costs[best] {
			best = i
		}
	}
	return pop[best]
}

// Order-preserving crossover on the non-origin suffix: keep a random slice
// of the first parent in place, then fill the remaining positions with the
// second parent's stops in their relative order, wrapping past the end of
// the suffix. Position 0 always keeps the origin. The child never aliases
// either parent's storage.
func (e *populationEngine) crossover(parent1, parent2 []int) []int {
	size := len(parent1)
	child := make([]int, size)
	child[0] = parent1[0]

	// A suffix shorter than two stops has a single arrangement.
	n := size - 1
	if n < 2 {
		copy(child, parent1)
		return child
	}

	a, b := e.cutPoints(n)

	taken := make([]bool, size)
	for i := a; i < b; i++ {
		child[1+i] = parent1[1+i]
		taken[parent1[1+i]] = true
	}

	// The unused slots are exactly positions b..n-1 then 0..a-1, and the
	// donor genes fill them exactly, so the wrap never lands inside [a, b).
	idx := b
	for _, c := range parent2[1:] {
		if taken[c] {
			continue
		}
		if idx >= n {
			idx = 0
		}
		child[1+idx] = c
		idx++
	}

	return child
}

// Two distinct cut points in [0, n), ascending.
func (e *populationEngine) cutPoints(n int) (int, int) {
	a := e.rng.Intn(n)
	b := e.rng.Intn(n)
	for b == a {
		b = e.rng.Intn(n)
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Swap two random non-origin positions with the configured probability.
func (e *populationEngine) mutate(tour []int) {
	if e.rng.Float64() >= e.params.MutationRate {
		return
	}
	if len(tour) < 3 {
		return
	}
	i := 1 + e.rng.Intn(len(tour)-1)
	j := 1 + e.rng.Intn(len(tour)-1)
	for j == i {
		j = 1 + e.rng.Intn(len(tour)-1)
	}
	tour[i], tour[j] = tour[j], tour[i]
}

func (e *populationEngine) initialPopulation(n int) [][]int {
	pop := make([][]int, 0, e.params.PopulationSize)
	for len(pop) < e.params.PopulationSize {
		pop = append(pop, e.randomTour(n))
	}
	return pop
}

// A fresh random permutation of all stop indices with the origin first.
func (e *populationEngine) randomTour(n int) []int {
	tour := make([]int, n)
	for i, v := range e.rng.Perm(n - 1) {
		tour[i+1] = v + 1
	}
	return tour
}

func copyTour(tour []int) []int {
	dup := make([]int, len(tour))
	copy(dup, tour)
	return dup
}

// Sorts a population and its cost column together, cheapest first.
type byCost struct {
	pop   [][]int
	costs []float64
}

func (s byCost) Len() int           { return len(s.pop) }
func (s byCost) Less(i, j int) bool { return s.costs[i] < s.costs[j] }
func (s byCost) Swap(i, j int) {
	s.pop[i], s.pop[j] = s.pop[j], s.pop[i]
	s.costs[i], s.costs[j] = s.costs[j], s.costs[i]
}
