// Package nsga2 implements the generic NSGA-II selection machinery of
// spec.md §4.5: fast non-dominated sort, crowding distance, binary
// tournament and the (mu+mu) elitist generation loop. It plays the role
// the teacher's generic evo.Genome/Population machinery plays
// (_examples/cbarrick-evo/evo.go, sel/, gen/generational.go), but is
// concrete to the {rank, crowding distance, feasibility} vocabulary
// spec.md §3 and §4.5 require instead of a single scalar Fitness().
package nsga2

import (
	"math"

	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/evaluate"
	"github.com/cbarrick-labs/biosched/simulate"
)

// Individual is one chromosome plus its cached evaluation and the
// NSGA-II bookkeeping fields of spec.md §3 ("Individual: {chromosome,
// objective_vector, constraint_vector, rank, crowding_distance,
// feasible:bool}"). Evaluation happens exactly once per individual, by
// identity, per spec.md §3's lifecycle rule — callers should not
// re-evaluate an Individual whose Eval.Objectives is already populated.
type Individual struct {
	Chromosome *chromosome.Chromosome
	Schedule   *simulate.Schedule
	Eval       evaluate.Evaluation

	Rank             int
	CrowdingDistance float64
}

// EvalFn turns a chromosome into a dated schedule and fitness vector;
// it is the composition of a variant's simulate.Simple/simulate.MultiSuite
// with evaluate.Evaluate that the orchestrator wires up per run (spec.md
// §4.3, §4.4). Implementations must be pure functions of their input,
// safe to call concurrently (spec.md §9 "Simulator as pure function").
type EvalFn func(c *chromosome.Chromosome) (*simulate.Schedule, evaluate.Evaluation)

// Evaluate populates ind's Schedule and Eval from fn, unless it has
// already been evaluated (memoized by identity, spec.md §3).
func (ind *Individual) Evaluate(fn EvalFn) {
	if ind.Schedule != nil {
		return
	}
	ind.Schedule, ind.Eval = fn(ind.Chromosome)
}

// Dominates reports whether ind dominates other under constrained
// domination (spec.md §4.5): feasible beats infeasible; between two
// infeasible individuals, lower total violation wins; between two
// feasible individuals, classical Pareto dominance over the internally
// minimised objective vector.
func (ind *Individual) Dominates(other *Individual) bool {
	af, bf := ind.Eval.Feasible, other.Eval.Feasible
	switch {
	case af && !bf:
		return true
	case !af && bf:
		return false
	case !af && !bf:
		return ind.Eval.Violation < other.Eval.Violation
	default:
		return paretoDominates(ind.Eval.Objectives, other.Eval.Objectives)
	}
}

// paretoDominates reports whether a is at least as good as b in every
// objective (lower is better, both already direction-adjusted) and
// strictly better in at least one.
func paretoDominates(a, b []float64) bool {
	strictlyBetter := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// clone returns a shallow-evaluated copy whose chromosome is an
// independent deep copy, suitable as a variation-operator input. The
// copy carries no cached Schedule/Eval, since mutating the chromosome
// invalidates them.
func (ind *Individual) clone() *Individual {
	return &Individual{Chromosome: ind.Chromosome.Clone()}
}

// Objective returns the i-th internally-minimised objective value,
// or +Inf if the individual has not been evaluated.
func (ind *Individual) Objective(i int) float64 {
	if i >= len(ind.Eval.Objectives) {
		return math.Inf(1)
	}
	return ind.Eval.Objectives[i]
}
