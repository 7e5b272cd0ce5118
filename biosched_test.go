package biosched_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick-labs/biosched"
	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/model"
)

func fourProductModel(t *testing.T) ([]model.SimpleProduct, []model.Period, []model.Period, []int, time.Time) {
	t.Helper()
	start := time.Date(2016, 12, 1, 0, 0, 0, 0, time.UTC)
	labels := []string{"A", "B", "C", "D"}
	products := make([]model.SimpleProduct, len(labels))
	for i, label := range labels {
		products[i] = model.SimpleProduct{
			Label: label, KgPerBatch: 10 + float64(i),
			InoculationDays: 3, SeedDays: 4, ProductionDays: 5, USPCycleDays: 6,
			DSPDays: 7, ShelfLifeDays: 60, ApprovalDays: 2,
			MinBatches: 1, MaxBatches: 30,
			StorageCostPerKgDay: 0.01, BacklogPenaltyPerKg: 1, WasteCostPerKg: 2, SalePricePerKg: 5,
		}
	}
	periods := make([]model.Period, 12)
	targets := make([]model.Period, 12)
	for i := range periods {
		end := start.AddDate(0, i+1, 0)
		qty := map[string]float64{}
		tgt := map[string]float64{}
		for _, l := range labels {
			qty[l] = 20
			tgt[l] = 15
		}
		periods[i] = model.Period{End: end, Qty: qty}
		targets[i] = model.Period{End: end, Qty: tgt}
	}
	changeover := make([]int, len(labels)*len(labels))
	for i := range changeover {
		changeover[i] = 3
	}
	return products, periods, targets, changeover, start
}

func TestSimplePlanner_Fit_UnknownObjectiveIsConfigError(t *testing.T) {
	products, demand, targets, changeover, start := fourProductModel(t)
	p := biosched.NewSimplePlanner(biosched.Config{NumRuns: 1, PopSize: 4, NumGens: 1, StartingLength: 2, RandomState: 1, NumThreads: 1})
	_, err := p.Fit(start, []biosched.Objective{{Name: "not_a_real_accumulator", Direction: biosched.Maximize}}, demand, products, changeover, targets, nil)
	require.Error(t, err)
	var cfgErr *biosched.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSimplePlanner_Fit_DeterministicForFixedSeed(t *testing.T) {
	products, demand, targets, changeover, start := fourProductModel(t)
	cfg := biosched.Config{
		NumRuns: 2, PopSize: 10, NumGens: 5, StartingLength: 3,
		PXO: 0.7, PProductMut: 0.1, PPlusBatchMut: 0.2, PMinusBatchMut: 0.2, PGeneSwap: 0.1,
		RandomState: 7, NumThreads: 2,
	}
	objectives := []biosched.Objective{{Name: "total_kg_throughput", Direction: biosched.Maximize}}
	constraints := []biosched.Constraint{
		{Name: "total_kg_backlog", Direction: biosched.Minimize, Bound: 0},
		{Name: "total_kg_waste", Direction: biosched.Minimize, Bound: 0},
	}

	a, err := biosched.NewSimplePlanner(cfg).Fit(start, objectives, demand, products, changeover, targets, constraints)
	require.NoError(t, err)
	b, err := biosched.NewSimplePlanner(cfg).Fit(start, objectives, demand, products, changeover, targets, constraints)
	require.NoError(t, err)

	require.Equal(t, len(a.Schedules), len(b.Schedules))
	for i := range a.Schedules {
		assert.InDelta(t, a.Schedules[i].TotalKgThroughput(), b.Schedules[i].TotalKgThroughput(), 1e-6)
	}
}

func TestSimplePlanner_CreateSchedule_MassBalance(t *testing.T) {
	products, demand, targets, changeover, start := fourProductModel(t)
	p := biosched.NewSimplePlanner(biosched.Config{})
	genes := []chromosome.Gene{
		{ProductID: 3, NumBatches: 15}, {ProductID: 2, NumBatches: 9}, {ProductID: 0, NumBatches: 28},
		{ProductID: 1, NumBatches: 2}, {ProductID: 3, NumBatches: 15}, {ProductID: 2, NumBatches: 8},
		{ProductID: 0, NumBatches: 10}, {ProductID: 2, NumBatches: 3}, {ProductID: 1, NumBatches: 2},
		{ProductID: 0, NumBatches: 3}, {ProductID: 3, NumBatches: 29},
	}
	objectives := []biosched.Objective{{Name: "total_kg_throughput", Direction: biosched.Maximize}}
	sched, err := p.CreateSchedule(start, demand, products, changeover, targets, objectives, nil, genes)
	require.NoError(t, err)

	totalCampaignKg := 0.0
	for _, c := range sched.Campaigns {
		totalCampaignKg += c.Kg
	}
	totalBatchKg := 0.0
	for _, b := range sched.Batches {
		totalBatchKg += b.Kg
	}
	assert.InDelta(t, totalCampaignKg, totalBatchKg, 1e-6)

	supplied, waste, onHand := 0.0, 0.0, 0.0
	for _, row := range sched.Periods {
		supplied += row.SupplyKg
	}
	assert.True(t, supplied >= 0)
	assert.True(t, waste >= 0)
	assert.True(t, onHand >= 0)
}

func TestSimplePlanner_CreateSchedule_IdempotentReplay(t *testing.T) {
	products, demand, targets, changeover, start := fourProductModel(t)
	p := biosched.NewSimplePlanner(biosched.Config{})
	genes := []chromosome.Gene{{ProductID: 0, NumBatches: 5}, {ProductID: 1, NumBatches: 3}}
	objectives := []biosched.Objective{{Name: "total_kg_throughput", Direction: biosched.Maximize}}

	s1, err := p.CreateSchedule(start, demand, products, changeover, targets, objectives, nil, genes)
	require.NoError(t, err)
	s2, err := p.CreateSchedule(start, demand, products, changeover, targets, objectives, nil, genes)
	require.NoError(t, err)

	assert.InDelta(t, s1.TotalKgThroughput(), s2.TotalKgThroughput(), 1e-6)
	assert.InDelta(t, s1.TotalKgWaste(), s2.TotalKgWaste(), 1e-6)
}

func TestSimplePlanner_CreateSchedule_RandomChromosomesYieldFiniteObjectives(t *testing.T) {
	products, demand, targets, changeover, start := fourProductModel(t)
	p := biosched.NewSimplePlanner(biosched.Config{})
	objectives := []biosched.Objective{
		{Name: "total_kg_throughput", Direction: biosched.Maximize},
		{Name: "total_kg_inventory_deficit", Direction: biosched.Minimize},
	}

	rng := rand.New(rand.NewSource(99))
	pr := simpleProductRange{n: len(products), products: products}
	for trial := 0; trial < 20; trial++ {
		length := 1 + rng.Intn(50)
		genes := make([]chromosome.Gene, length)
		for i := range genes {
			g := chromosome.NewRandomGene(rng, chromosome.Simple, pr, nil)
			genes[i] = g
		}
		sched, err := p.CreateSchedule(start, demand, products, changeover, targets, objectives, nil, genes)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(sched.TotalKgThroughput()))
		assert.False(t, math.IsInf(sched.TotalKgThroughput(), 0))
		assert.False(t, math.IsNaN(sched.TotalKgInventoryDeficit()))
	}
}

type simpleProductRange struct {
	n        int
	products []model.SimpleProduct
}

func (s simpleProductRange) NumProducts() int { return s.n }
func (s simpleProductRange) BatchRange(productID int) (int, int) {
	p := s.products[productID]
	return p.MinBatches, p.MaxBatches
}
