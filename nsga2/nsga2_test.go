package nsga2_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick-labs/biosched/evaluate"
	"github.com/cbarrick-labs/biosched/nsga2"
)

func feasible(objs ...float64) *nsga2.Individual {
	return &nsga2.Individual{Eval: evaluate.Evaluation{Objectives: objs, Feasible: true}}
}

func infeasible(violation float64, objs ...float64) *nsga2.Individual {
	return &nsga2.Individual{Eval: evaluate.Evaluation{Objectives: objs, Feasible: false, Violation: violation}}
}

func TestDominates_FeasibleBeatsInfeasible(t *testing.T) {
	a := feasible(10, 10)
	b := infeasible(5, 1, 1)
	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))
}

func TestDominates_LowerViolationWinsAmongInfeasible(t *testing.T) {
	a := infeasible(1, 5, 5)
	b := infeasible(5, 1, 1)
	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))
}

func TestDominates_ParetoAmongFeasible(t *testing.T) {
	a := feasible(1, 2)
	b := feasible(2, 2)
	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))

	c := feasible(1, 3)
	d := feasible(3, 1)
	assert.False(t, c.Dominates(d))
	assert.False(t, d.Dominates(c))
}

func TestFastNonDominatedSort_RanksFronts(t *testing.T) {
	pop := []*nsga2.Individual{
		feasible(1, 5), // front 0
		feasible(2, 4), // front 0
		feasible(3, 6), // dominated by both (1,5) and (2,4)
		feasible(5, 1), // front 0
	}
	fronts := nsga2.FastNonDominatedSort(pop)
	require.NotEmpty(t, fronts)
	for _, ind := range fronts[0] {
		assert.Equal(t, 0, ind.Rank)
	}
	// the dominated individual must not be in front 0
	for _, ind := range fronts[0] {
		assert.NotSame(t, pop[2], ind)
	}
}

func TestAssignCrowdingDistance_EndpointsInfinite(t *testing.T) {
	front := []*nsga2.Individual{feasible(1, 5), feasible(2, 3), feasible(3, 1)}
	nsga2.AssignCrowdingDistance(front)
	var infCount int
	for _, ind := range front {
		if math.IsInf(ind.CrowdingDistance, 1) {
			infCount++
		}
	}
	assert.Equal(t, 2, infCount)
}

func TestAssignCrowdingDistance_SmallFrontAllInfinite(t *testing.T) {
	front := []*nsga2.Individual{feasible(1), feasible(2)}
	nsga2.AssignCrowdingDistance(front)
	for _, ind := range front {
		assert.True(t, math.IsInf(ind.CrowdingDistance, 1))
	}
}

func TestBinaryTournament_LowerRankWins(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := feasible(1, 1)
	a.Rank = 0
	b := feasible(2, 2)
	b.Rank = 1
	pop := []*nsga2.Individual{a, b}
	for i := 0; i < 20; i++ {
		assert.Same(t, a, nsga2.BinaryTournament(rng, pop))
	}
}

func TestReplace_TruncatesByCrowdingDistance(t *testing.T) {
	parents := []*nsga2.Individual{feasible(1, 5), feasible(5, 1)}
	offspring := []*nsga2.Individual{feasible(2, 4), feasible(4, 2), feasible(3, 3)}
	next := nsga2.Replace(parents, offspring)
	assert.Len(t, next, len(parents))
	// all five lie on one front; only the two endpoints have infinite
	// crowding distance, so they are the ones kept
	assert.Contains(t, next, parents[0])
	assert.Contains(t, next, parents[1])
}
