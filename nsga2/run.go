package nsga2

import (
	"math/rand"

	"github.com/cbarrick-labs/biosched/chromosome"
)

// NewPopulation wraps a freshly initialised set of chromosomes as
// unevaluated Individuals, ready for Run.
func NewPopulation(chromosomes []*chromosome.Chromosome) []*Individual {
	pop := make([]*Individual, len(chromosomes))
	for i, c := range chromosomes {
		pop[i] = &Individual{Chromosome: c}
	}
	return pop
}

// StopFn is polled once per generation; when it returns true the
// generation loop ends early and the current population is returned
// (spec.md §5 "cooperative stop flag checked once per generation", §7
// "Cancelled: ... partial result returned, flagged").
type StopFn func() bool

// Run executes num_gens generations of the (mu+mu) elitist loop
// starting from an initial, unevaluated population (spec.md §4.5
// "Termination: after num_gens generations"). It returns the final
// population's front 0 (the run's local Pareto archive) and whether
// the run was stopped early.
func Run(rng *rand.Rand, initial []*Individual, cfg Config, evalFn EvalFn, numGens, numEvalWorkers int, stop StopFn) (front []*Individual, stopped bool) {
	EvaluatePopulation(initial, evalFn, numEvalWorkers)
	fronts := FastNonDominatedSort(initial)
	for _, f := range fronts {
		AssignCrowdingDistance(f)
	}
	pop := initial

	for g := 0; g < numGens; g++ {
		if stop != nil && stop() {
			stopped = true
			break
		}
		pop = Step(rng, pop, cfg, evalFn, numEvalWorkers)
	}

	fronts = FastNonDominatedSort(pop)
	if len(fronts) == 0 {
		return nil, stopped
	}
	AssignCrowdingDistance(fronts[0])
	return fronts[0], stopped
}
