package main

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick-labs/biosched"
)

const testScenarioYAML = `
variant: simple
start_date: "2016-12-01"
ga:
  num_runs: 20
  popsize: 100
  num_gens: 100
  starting_length: 10
  p_xo: 0.7
  p_product_mut: 0.1
  p_usp_suite_mut: 0.0
  p_plus_batch_mut: 0.1
  p_minus_batch_mut: 0.1
  p_gene_swap: 0.05
  random_state: 7
  num_threads: -1
objectives:
  - name: total_kg_throughput
    direction: maximize
  - name: total_kg_inventory_deficit
    direction: minimize
constraints:
  - name: total_kg_backlog
    direction: minimize
    bound: 0
products:
  - label: A
    kg_per_batch: 10
    inoculation_days: 2
    seed_days: 3
    production_days: 5
    usp_cycle_days: 4
    dsp_days: 6
    shelf_life_days: 60
    approval_days: 5
    min_batches: 1
    max_batches: 30
changeover_days: [0]
demand:
  - end: "2017-01-31"
    qty: {A: 100}
`

func mustLoadTestScenario(t *testing.T, data string) *scenario {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(data)))
	var sc scenario
	require.NoError(t, v.Unmarshal(&sc))
	return &sc
}

func TestScenario_ParsesGAParamsAndObjectives(t *testing.T) {
	sc := mustLoadTestScenario(t, testScenarioYAML)

	assert.Equal(t, "simple", sc.Variant)
	assert.Equal(t, 20, sc.GA.NumRuns)
	assert.Equal(t, 100, sc.GA.PopSize)
	assert.InDelta(t, 0.7, sc.GA.PXO, 1e-9)

	objectives := sc.objectives()
	require.Len(t, objectives, 2)
	assert.Equal(t, "total_kg_throughput", objectives[0].Name)
	assert.Equal(t, biosched.Maximize, objectives[0].Direction)
	assert.Equal(t, "total_kg_inventory_deficit", objectives[1].Name)
	assert.Equal(t, biosched.Minimize, objectives[1].Direction)

	constraints := sc.constraints()
	require.Len(t, constraints, 1)
	assert.Equal(t, "total_kg_backlog", constraints[0].Name)
	assert.InDelta(t, 0, constraints[0].Bound, 1e-9)
}

func TestScenario_StartDateParsesISO(t *testing.T) {
	sc := mustLoadTestScenario(t, testScenarioYAML)
	start, err := sc.start()
	require.NoError(t, err)
	assert.Equal(t, 2016, start.Year())
	assert.Equal(t, 12, int(start.Month()))
	assert.Equal(t, 1, start.Day())
}

func TestScenario_RejectsMalformedStartDate(t *testing.T) {
	sc := mustLoadTestScenario(t, testScenarioYAML)
	sc.StartDate = "not-a-date"
	_, err := sc.start()
	assert.Error(t, err)
}

func TestScenario_ProductsAndDemandConvert(t *testing.T) {
	sc := mustLoadTestScenario(t, testScenarioYAML)
	require.Len(t, sc.Products, 1)
	p := sc.Products[0].toProduct()
	assert.Equal(t, "A", p.Label)
	assert.InDelta(t, 10, p.KgPerBatch, 1e-9)

	demand, err := toPeriods(sc.Demand)
	require.NoError(t, err)
	require.Len(t, demand, 1)
	assert.InDelta(t, 100, demand[0].Qty["A"], 1e-9)
}
