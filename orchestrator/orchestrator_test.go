package orchestrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/evaluate"
	"github.com/cbarrick-labs/biosched/nsga2"
	"github.com/cbarrick-labs/biosched/orchestrator"
	"github.com/cbarrick-labs/biosched/simulate"
	"github.com/cbarrick-labs/biosched/variation"
)

type fakeProducts struct{ n int }

func (f fakeProducts) NumProducts() int          { return f.n }
func (f fakeProducts) BatchRange(int) (int, int) { return 1, 5 }

// totalBatchesEvalFn is a toy EvalFn standing in for a real
// simulate.Simple/simulate.MultiSuite + evaluate.Evaluate composition:
// it sums num_batches across genes so the orchestrator has a
// deterministic, maximisable signal to search over without needing a
// full model fixture.
func totalBatchesEvalFn(c *chromosome.Chromosome) (*simulate.Schedule, evaluate.Evaluation) {
	var total float64
	for _, g := range c.Genes {
		total += float64(g.NumBatches)
	}
	eval := evaluate.Evaluate(
		map[string]float64{"total": total},
		[]evaluate.Objective{{Name: "total", Direction: evaluate.Maximize}},
		nil,
	)
	return &simulate.Schedule{Raw: map[string]float64{"total": total}}, eval
}

func TestRunAll_ProducesNonEmptyArchive(t *testing.T) {
	pr := fakeProducts{n: 3}
	cfg := orchestrator.Config{
		NumRuns:        2,
		PopSize:        8,
		NumGens:        3,
		StartingLength: 4,
		NumThreads:     2,
		RandomState:    7,
		Generation: nsga2.Config{
			PXO:        0.7,
			LMax:       16,
			ProductRng: pr,
			Variation: variation.Config{
				PProductMut:    0.1,
				PPlusBatchMut:  0.1,
				PMinusBatchMut: 0.1,
				PGeneSwap:      0.1,
			},
		},
	}

	archive, stopped, err := orchestrator.RunAll(context.Background(), cfg, chromosome.Simple, pr, nil, totalBatchesEvalFn, nil)
	require.NoError(t, err)
	assert.False(t, stopped)
	assert.NotEmpty(t, archive)
}

func TestRunAll_DeterministicForFixedSeed(t *testing.T) {
	pr := fakeProducts{n: 3}
	cfg := orchestrator.Config{
		NumRuns:        1,
		PopSize:        6,
		NumGens:        2,
		StartingLength: 3,
		NumThreads:     1,
		RandomState:    42,
		Generation: nsga2.Config{
			PXO:        0.7,
			LMax:       12,
			ProductRng: pr,
			Variation: variation.Config{
				PProductMut:   0.2,
				PPlusBatchMut: 0.2,
			},
		},
	}

	a, _, err := orchestrator.RunAll(context.Background(), cfg, chromosome.Simple, pr, nil, totalBatchesEvalFn, nil)
	require.NoError(t, err)
	b, _, err := orchestrator.RunAll(context.Background(), cfg, chromosome.Simple, pr, nil, totalBatchesEvalFn, nil)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Eval.Objectives, b[i].Eval.Objectives)
	}
}
