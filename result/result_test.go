package result_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick-labs/biosched/evaluate"
	"github.com/cbarrick-labs/biosched/nsga2"
	"github.com/cbarrick-labs/biosched/result"
	"github.com/cbarrick-labs/biosched/simulate"
)

func TestFromIndividuals_ProjectsCampaignsAndObjectives(t *testing.T) {
	start := time.Date(2016, 12, 1, 0, 0, 0, 0, time.UTC)
	sched := &simulate.Schedule{
		Campaigns: []simulate.Campaign{
			{
				ProductID: 0, ProductLabel: "A", USPSuiteID: -1,
				Start: start, FirstHarvest: start.AddDate(0, 0, 10), FirstBatchStored: start.AddDate(0, 0, 12), LastBatchStored: start.AddDate(0, 0, 20),
				Batches: []simulate.Batch{
					{StartedOn: start, HarvestedOn: start.AddDate(0, 0, 10), StoredOn: start.AddDate(0, 0, 12), ApprovedOn: start.AddDate(0, 0, 13), ExpiresOn: start.AddDate(0, 0, 40), KgYield: 12.5},
				},
			},
		},
		Raw: map[string]float64{"total_kg_throughput": 12.5},
	}
	ind := &nsga2.Individual{
		Schedule: sched,
		Eval:     evaluate.Evaluation{Objectives: []float64{-12.5}, Feasible: true},
	}

	archive := result.FromIndividuals([]*nsga2.Individual{ind}, []string{"total_kg_throughput"}, nil)
	require.Len(t, archive.Schedules, 1)
	s := archive.Schedules[0]
	assert.True(t, s.Feasible)
	assert.InDelta(t, 12.5, s.TotalKgThroughput(), 1e-6)
	require.Len(t, s.Campaigns, 1)
	assert.Equal(t, "A", s.Campaigns[0].Product)
	assert.InDelta(t, 12.5, s.Campaigns[0].Kg, 1e-6)
	require.Len(t, s.Batches, 1)
	assert.True(t, s.TotalKgDecimal().Equal(s.TotalKgDecimal()))
}

func TestFromIndividuals_NilScheduleYieldsEmptySchedule(t *testing.T) {
	ind := &nsga2.Individual{Eval: evaluate.Evaluation{Feasible: false}}
	archive := result.FromIndividuals([]*nsga2.Individual{ind}, nil, nil)
	require.Len(t, archive.Schedules, 1)
	assert.False(t, archive.Schedules[0].Feasible)
	assert.Empty(t, archive.Schedules[0].Campaigns)
}
