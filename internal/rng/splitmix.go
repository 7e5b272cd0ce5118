// Package rng provides the worker-local random sources the
// orchestrator seeds each run with (spec.md §4.6, §5, §9 "use a splittable PRNG ... with
// per-worker streams derived from the global seed by arithmetic
// mixing — avoids synchronisation entirely"). The teacher
// (_examples/cbarrick-evo) always calls the global math/rand source
// directly (perm/perm.go, select.go, example/queens.go), which is
// unsafe to share across goroutines without a lock; this package keeps
// the teacher's math/rand.Rand call surface but gives every worker its
// own *rand.Rand seeded from a deterministic 64-bit mix instead.
package rng

import "math/rand"

// splitMix64 is a fixed-increment, splittable generator (Vigna 2015),
// used only to derive well-mixed per-worker seeds; it is not used as
// the run's actual sample source.
type splitMix64 struct {
	state uint64
}

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Seed derives a 64-bit seed for workerIndex from a global seed,
// well-mixed so that nearby worker indices do not produce correlated
// streams (spec.md §4.6 "seeded with (random_state XOR run_index)").
func Seed(globalSeed int64, workerIndex int) int64 {
	sm := splitMix64{state: uint64(globalSeed) ^ uint64(workerIndex)*0x9E3779B97F4A7C15}
	return int64(sm.next())
}

// New returns a fresh *rand.Rand for workerIndex, deterministic for a
// given (globalSeed, workerIndex) pair (spec.md §5 "RNG state is
// worker-local").
func New(globalSeed int64, workerIndex int) *rand.Rand {
	return rand.New(rand.NewSource(Seed(globalSeed, workerIndex)))
}
