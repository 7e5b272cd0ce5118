// Package chromosome implements the variable-length campaign-gene
// sequence shared by both facility variants (spec.md §3, §4.2, design
// note "variable-length chromosome ... tagged variant with shared
// interface").
package chromosome

// Variant selects which facility model a chromosome's genes are
// interpreted under.
type Variant int

const (
	Simple Variant = iota
	MultiSuite
)

// Gene is one campaign: a product to run and how many batches to make
// of it. USPSuiteID is only meaningful for the MultiSuite variant; it
// is -1 for Simple genes.
type Gene struct {
	ProductID  int
	NumBatches int
	USPSuiteID int
}

// Chromosome is an ordered sequence of campaign genes (spec.md §3).
// Adjacent genes may share a product id; they are still recorded as
// separate campaigns by the simulator (spec.md §4.3 edge cases).
type Chromosome struct {
	Variant Variant
	Genes   []Gene
}

// Len returns the number of genes.
func (c *Chromosome) Len() int { return len(c.Genes) }

// Clone returns a deep copy, safe to mutate independently of c.
func (c *Chromosome) Clone() *Chromosome {
	genes := make([]Gene, len(c.Genes))
	copy(genes, c.Genes)
	return &Chromosome{Variant: c.Variant, Genes: genes}
}

// ProductRange describes the legal num_batches range for each product,
// implemented by model.SimpleModel and model.MultiSuiteModel.
type ProductRange interface {
	NumProducts() int
	BatchRange(productID int) (min, max int)
}

// SuitePool describes the number of identical USP suites available,
// implemented by model.MultiSuiteModel.
type SuitePool interface {
	NumUSPSuites() int
}
