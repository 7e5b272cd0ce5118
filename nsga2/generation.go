// The (mu+mu) elitist generation loop of spec.md §4.5. Grounded on the
// teacher's gen/generational.go "build the whole next generation, then
// turn over" shape; the background-goroutine actor design
// (p.com.members/inject/close channels) is dropped because spec.md §5
// requires the step to be "strictly synchronous within a run" — this
// is a from-scratch synchronous rewrite of that idea, not a port.
package nsga2

import (
	"math/rand"
	"sort"

	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/variation"
)

// Config bundles the variation parameters one generation step needs.
type Config struct {
	PXO        float64
	Variation  variation.Config
	LMax       int
	ProductRng chromosome.ProductRange
	SuitePool  chromosome.SuitePool
}

// Offspring produces mu child individuals from the mu-sized parent
// population via binary tournament selection, one-point crossover
// (applied with probability PXO per parent pair, spec.md §4.2) and the
// fixed-order mutation operators, then evaluates them (spec.md §4.5
// "generate mu offspring via variation on mu parents").
func Offspring(rng *rand.Rand, parents []*Individual, cfg Config, evalFn EvalFn, numEvalWorkers int) []*Individual {
	mu := len(parents)
	children := make([]*Individual, 0, mu+1)

	for len(children) < mu {
		mom := BinaryTournament(rng, parents)
		dad := BinaryTournament(rng, parents)

		var c1, c2 *chromosome.Chromosome
		if rng.Float64() < cfg.PXO {
			c1, c2 = variation.OnePoint(rng, mom.Chromosome, dad.Chromosome, cfg.LMax)
		} else {
			c1, c2 = mom.Chromosome.Clone(), dad.Chromosome.Clone()
		}
		variation.Mutate(rng, c1, cfg.Variation, cfg.ProductRng, cfg.SuitePool)
		variation.Mutate(rng, c2, cfg.Variation, cfg.ProductRng, cfg.SuitePool)

		children = append(children, &Individual{Chromosome: c1}, &Individual{Chromosome: c2})
	}
	children = children[:mu]

	EvaluatePopulation(children, evalFn, numEvalWorkers)
	return children
}

// EvaluatePopulation evaluates every not-yet-evaluated individual in
// pop. numWorkers > 1 fans the work out across goroutines, assigning
// indices round-robin with no work stealing, so the set of individuals
// any worker touches is a deterministic function of numWorkers alone
// (spec.md §5's optional within-run evaluation parallelism, "assigning
// offspring indices to workers round-robin with no work stealing").
// The results are written back into pop in place and are independent
// of numWorkers, preserving determinism.
func EvaluatePopulation(pop []*Individual, evalFn EvalFn, numWorkers int) {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers == 1 || len(pop) <= 1 {
		for _, ind := range pop {
			ind.Evaluate(evalFn)
		}
		return
	}

	done := make(chan struct{}, numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(worker int) {
			for i := worker; i < len(pop); i += numWorkers {
				pop[i].Evaluate(evalFn)
			}
			done <- struct{}{}
		}(w)
	}
	for w := 0; w < numWorkers; w++ {
		<-done
	}
}

// Replace performs the (mu+mu) elitist replacement of spec.md §4.5:
// the combined 2*mu population (parents+offspring) is non-dominated
// sorted and filled into the next generation front-by-front; the last
// included front is truncated by descending crowding distance.
func Replace(parents, offspring []*Individual) []*Individual {
	mu := len(parents)
	combined := make([]*Individual, 0, mu+len(offspring))
	combined = append(combined, parents...)
	combined = append(combined, offspring...)

	fronts := FastNonDominatedSort(combined)
	next := make([]*Individual, 0, mu)
	for _, front := range fronts {
		AssignCrowdingDistance(front)
		if len(next)+len(front) <= mu {
			next = append(next, front...)
			continue
		}
		sort.Slice(front, func(i, j int) bool {
			return front[i].CrowdingDistance > front[j].CrowdingDistance
		})
		next = append(next, front[:mu-len(next)]...)
		break
	}
	return next
}

// Step advances one generation: offspring are generated and evaluated,
// then the (mu+mu) elitist replacement produces the next parent
// population (spec.md §4.5).
func Step(rng *rand.Rand, parents []*Individual, cfg Config, evalFn EvalFn, numEvalWorkers int) []*Individual {
	offspring := Offspring(rng, parents, cfg, evalFn, numEvalWorkers)
	return Replace(parents, offspring)
}
