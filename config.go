// Package biosched is the public entry point for biopharmaceutical
// capacity planning and scheduling (spec.md §1): given per-period
// product demand, product kinetics and inventory targets, it searches
// for production sequences optimising one or more objectives subject
// to inequality constraints, returning the full Pareto front of
// non-dominated schedules (spec.md §6 "Fit API").
//
// A Planner is built once from a Config and is safe to Fit repeatedly;
// SPEC_FULL.md §4 traces this two-step shape to
// original_source/tests/tests.py, whose test fixtures construct a
// planner once with GA parameters and call .fit(...) with only the
// problem data, sometimes multiple times expecting identical results
// (spec.md §8 "Determinism").
package biosched

import (
	"github.com/rs/zerolog"

	"github.com/cbarrick-labs/biosched/variation"
)

// Config holds the GA parameters of spec.md §6's configuration table,
// exhaustive: every knob the Fit API exposes to the host.
type Config struct {
	NumRuns        int
	PopSize        int
	NumGens        int
	StartingLength int

	PXO            float64
	PProductMut    float64
	PUSPSuiteMut   float64
	PPlusBatchMut  float64
	PMinusBatchMut float64
	PGeneSwap      float64

	RandomState int64
	NumThreads  int

	// Logger receives one line of progress per completed run (SPEC_FULL.md
	// §2). Nil uses internal/logging's library default.
	Logger *zerolog.Logger
}

func (c Config) variationConfig() variation.Config {
	return variation.Config{
		PProductMut:    c.PProductMut,
		PUSPSuiteMut:   c.PUSPSuiteMut,
		PPlusBatchMut:  c.PPlusBatchMut,
		PMinusBatchMut: c.PMinusBatchMut,
		PGeneSwap:      c.PGeneSwap,
	}
}
