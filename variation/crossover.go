// Package variation implements the crossover and mutation operators of
// spec.md §4.2, tailored to the SIMPLE and MULTI-SUITE chromosome
// variants. The cut-point idiom is adapted from the teacher's
// integer.PointX and perm.OrderX (_examples/cbarrick-evo/integer/cross.go,
// _examples/cbarrick-evo/perm/cross.go); unlike those permutation
// operators, genes here may repeat a product id, so no repair pass is
// needed after the cut.
package variation

import (
	"math/rand"

	"github.com/cbarrick-labs/biosched/chromosome"
)

// OnePoint performs one-point crossover of two parents, producing two
// children (spec.md §4.2). Each parent's cut point is chosen uniformly
// over [1, len-1] independently; the resulting offspring are clipped to
// lMax genes if the exchange produced a longer sequence.
func OnePoint(rng *rand.Rand, mom, dad *chromosome.Chromosome, lMax int) (child1, child2 *chromosome.Chromosome) {
	cut := func(c *chromosome.Chromosome) int {
		if c.Len() <= 1 {
			return c.Len()
		}
		return 1 + rng.Intn(c.Len()-1)
	}

	momCut := cut(mom)
	dadCut := cut(dad)

	g1 := append(append([]chromosome.Gene{}, mom.Genes[:momCut]...), dad.Genes[dadCut:]...)
	g2 := append(append([]chromosome.Gene{}, dad.Genes[:dadCut]...), mom.Genes[momCut:]...)

	if len(g1) > lMax {
		g1 = g1[:lMax]
	}
	if len(g2) > lMax {
		g2 = g2[:lMax]
	}

	child1 = &chromosome.Chromosome{Variant: mom.Variant, Genes: g1}
	child2 = &chromosome.Chromosome{Variant: mom.Variant, Genes: g2}
	return child1, child2
}
