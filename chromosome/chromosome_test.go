package chromosome

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProducts struct {
	ranges [][2]int
}

func (f fakeProducts) NumProducts() int { return len(f.ranges) }
func (f fakeProducts) BatchRange(id int) (int, int) {
	return f.ranges[id][0], f.ranges[id][1]
}

type fakeSuites struct{ n int }

func (f fakeSuites) NumUSPSuites() int { return f.n }

func TestNewRandomRespectsBatchRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pr := fakeProducts{ranges: [][2]int{{2, 2}, {1, 10}}}
	c := NewRandom(rng, Simple, 20, pr, nil)
	assert.Equal(t, 20, c.Len())
	for _, g := range c.Genes {
		min, max := pr.BatchRange(g.ProductID)
		assert.GreaterOrEqual(t, g.NumBatches, min)
		assert.LessOrEqual(t, g.NumBatches, max)
		assert.Equal(t, -1, g.USPSuiteID)
	}
}

func TestNewRandomMultiSuiteAssignsSuite(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pr := fakeProducts{ranges: [][2]int{{1, 3}}}
	sp := fakeSuites{n: 4}
	c := NewRandom(rng, MultiSuite, 10, pr, sp)
	for _, g := range c.Genes {
		assert.GreaterOrEqual(t, g.USPSuiteID, 0)
		assert.Less(t, g.USPSuiteID, 4)
	}
}

func TestClampStartingLength(t *testing.T) {
	assert.Equal(t, 1, ClampStartingLength(0, 40))
	assert.Equal(t, 40, ClampStartingLength(1000, 40))
	assert.Equal(t, 5, ClampStartingLength(5, 40))
}

func TestCloneIsIndependent(t *testing.T) {
	c := &Chromosome{Variant: Simple, Genes: []Gene{{ProductID: 0, NumBatches: 1, USPSuiteID: -1}}}
	d := c.Clone()
	d.Genes[0].NumBatches = 99
	assert.Equal(t, 1, c.Genes[0].NumBatches)
}
