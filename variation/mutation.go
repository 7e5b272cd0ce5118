package variation

import (
	"math/rand"

	"github.com/cbarrick-labs/biosched/chromosome"
)

// Config holds the per-gene mutation probabilities of spec.md §4.2.
type Config struct {
	PProductMut    float64
	PUSPSuiteMut   float64
	PPlusBatchMut  float64
	PMinusBatchMut float64
	PGeneSwap      float64
}

// Mutate applies each mutation operator, in the fixed order spec.md
// §4.2 lists them, independently per gene (or per position, for the
// gene swap). It mutates c in place.
func Mutate(rng *rand.Rand, c *chromosome.Chromosome, cfg Config, pr chromosome.ProductRange, sp chromosome.SuitePool) {
	mutateProduct(rng, c, cfg.PProductMut, pr, sp)
	if c.Variant == chromosome.MultiSuite {
		mutateUSPSuite(rng, c, cfg.PUSPSuiteMut, sp)
	}
	mutatePlusBatch(rng, c, cfg.PPlusBatchMut, pr)
	mutateMinusBatch(rng, c, cfg.PMinusBatchMut, pr)
	mutateGeneSwap(rng, c, cfg.PGeneSwap)
}

// mutateProduct replaces a gene's product uniformly at random and
// reseeds its batch count to the new product's legal range.
func mutateProduct(rng *rand.Rand, c *chromosome.Chromosome, p float64, pr chromosome.ProductRange, sp chromosome.SuitePool) {
	for i := range c.Genes {
		if rng.Float64() >= p {
			continue
		}
		g := chromosome.NewRandomGene(rng, c.Variant, pr, sp)
		g.USPSuiteID = c.Genes[i].USPSuiteID // suite reseed is a separate operator
		c.Genes[i].ProductID = g.ProductID
		c.Genes[i].NumBatches = g.NumBatches
	}
}

// mutateUSPSuite replaces a MultiSuite gene's USP suite id.
func mutateUSPSuite(rng *rand.Rand, c *chromosome.Chromosome, p float64, sp chromosome.SuitePool) {
	for i := range c.Genes {
		if rng.Float64() >= p {
			continue
		}
		c.Genes[i].USPSuiteID = rng.Intn(sp.NumUSPSuites())
	}
}

// mutatePlusBatch increments num_batches if it stays within range.
func mutatePlusBatch(rng *rand.Rand, c *chromosome.Chromosome, p float64, pr chromosome.ProductRange) {
	for i := range c.Genes {
		if rng.Float64() >= p {
			continue
		}
		_, max := pr.BatchRange(c.Genes[i].ProductID)
		if c.Genes[i].NumBatches < max {
			c.Genes[i].NumBatches++
		}
	}
}

// mutateMinusBatch decrements num_batches; if it would fall below the
// product's minimum, the gene is deleted outright, unless doing so
// would leave the chromosome empty, in which case it is clamped to the
// minimum instead (spec.md §4.2, §4.3 "zero-length chromosome is
// illegal").
func mutateMinusBatch(rng *rand.Rand, c *chromosome.Chromosome, p float64, pr chromosome.ProductRange) {
	kept := c.Genes[:0]
	for i := range c.Genes {
		g := c.Genes[i]
		if rng.Float64() < p {
			min, _ := pr.BatchRange(g.ProductID)
			if g.NumBatches-1 < min {
				unprocessed := len(c.Genes) - i - 1
				if len(kept)+unprocessed > 0 {
					continue // drop this gene; at least one survivor guaranteed
				}
				// last gene standing: clamp instead of deleting
				g.NumBatches = min
			} else {
				g.NumBatches--
			}
		}
		kept = append(kept, g)
	}
	c.Genes = kept
}

// mutateGeneSwap swaps a gene at position i with a uniformly chosen
// other position, applied independently per position.
func mutateGeneSwap(rng *rand.Rand, c *chromosome.Chromosome, p float64) {
	n := c.Len()
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		if rng.Float64() >= p {
			continue
		}
		j := i
		for j == i {
			j = rng.Intn(n)
		}
		c.Genes[i], c.Genes[j] = c.Genes[j], c.Genes[i]
	}
}
