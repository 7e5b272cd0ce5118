// Stats is the teacher's running-statistics accumulator
// (_examples/cbarrick-evo/stats.go), ported verbatim in shape and
// repurposed here to summarise one objective's values across a
// population for progress logging, instead of a single scalar
// Fitness() as the teacher used it.
package nsga2

import (
	"fmt"
	"math"
)

// Stats is a numerically-stable running mean/variance/range collector.
type Stats struct {
	max, min float64
	mean     float64
	sumsq    float64
	len      float64
}

// Insert folds x into the statistics and returns the updated value.
func (s Stats) Insert(x float64) Stats {
	if s.len == 0 {
		s.max = math.Inf(-1)
		s.min = math.Inf(+1)
	}
	delta := x - s.mean
	newlen := s.len + 1
	s.max = math.Max(s.max, x)
	s.min = math.Min(s.min, x)
	s.mean += delta / newlen
	s.sumsq += delta * delta * (s.len / newlen)
	s.len = newlen
	return s
}

// Max returns the maximum value seen.
func (s Stats) Max() float64 { return s.max }

// Min returns the minimum value seen.
func (s Stats) Min() float64 { return s.min }

// Mean returns the running mean.
func (s Stats) Mean() float64 { return s.mean }

// StdDeviation returns the population standard deviation.
func (s Stats) StdDeviation() float64 { return math.Sqrt(s.sumsq / s.len) }

// Len returns the number of values inserted.
func (s Stats) Len() int { return int(s.len) }

// String renders a one-line summary for log lines.
func (s Stats) String() string {
	return fmt.Sprintf("max=%.4f min=%.4f mean=%.4f sd=%.4f n=%d", s.Max(), s.Min(), s.Mean(), s.StdDeviation(), s.Len())
}

// ObjectiveStats summarises the m-th objective's internally-minimised
// values across pop, for use in progress logging.
func ObjectiveStats(pop []*Individual, m int) Stats {
	var s Stats
	for _, ind := range pop {
		s = s.Insert(ind.Objective(m))
	}
	return s
}
