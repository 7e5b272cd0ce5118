package chromosome

import "math/rand"

// MaxLength returns the hard chromosome-length cap L_max, a reasonable
// multiple of the number of demand periods (spec.md §4.2, suggested
// default "4x number of periods").
func MaxLength(numPeriods int) int {
	n := 4 * numPeriods
	if n < 1 {
		n = 1
	}
	return n
}

// ClampStartingLength clamps a user-supplied starting_length into
// [1, lMax] (spec.md §9, Open Question: "clamp to 1..L_max").
func ClampStartingLength(startingLength, lMax int) int {
	switch {
	case startingLength < 1:
		return 1
	case startingLength > lMax:
		return lMax
	default:
		return startingLength
	}
}

// NewRandomGene draws one gene uniformly at random: a product id in
// [0, pr.NumProducts()), a legal batch count for that product, and,
// for the MultiSuite variant, a USP suite id in [0, sp.NumUSPSuites()).
func NewRandomGene(rng *rand.Rand, variant Variant, pr ProductRange, sp SuitePool) Gene {
	productID := rng.Intn(pr.NumProducts())
	min, max := pr.BatchRange(productID)
	numBatches := min
	if max > min {
		numBatches = min + rng.Intn(max-min+1)
	}
	uspSuite := -1
	if variant == MultiSuite {
		uspSuite = rng.Intn(sp.NumUSPSuites())
	}
	return Gene{ProductID: productID, NumBatches: numBatches, USPSuiteID: uspSuite}
}

// NewRandom builds a chromosome with `length` randomly initialised
// genes (spec.md §4.2 "Initialisation").
func NewRandom(rng *rand.Rand, variant Variant, length int, pr ProductRange, sp SuitePool) *Chromosome {
	genes := make([]Gene, length)
	for i := range genes {
		genes[i] = NewRandomGene(rng, variant, pr, sp)
	}
	return &Chromosome{Variant: variant, Genes: genes}
}

// NewPopulation builds `popsize` random chromosomes, each with
// `startingLength` genes (already clamped by the caller).
func NewPopulation(rng *rand.Rand, variant Variant, popsize, startingLength int, pr ProductRange, sp SuitePool) []*Chromosome {
	pop := make([]*Chromosome, popsize)
	for i := range pop {
		pop[i] = NewRandom(rng, variant, startingLength, pr, sp)
	}
	return pop
}
