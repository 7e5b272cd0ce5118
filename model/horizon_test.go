package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewHorizonRejectsNonContiguousPeriods(t *testing.T) {
	start := day(2016, time.December, 1)
	_, err := NewHorizon(start, []time.Time{day(2016, time.December, 1), day(2016, time.December, 15)})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestHorizonPeriodIndex(t *testing.T) {
	start := day(2016, time.December, 1)
	ends := []time.Time{
		day(2016, time.December, 15),
		day(2016, time.December, 31),
	}
	h, err := NewHorizon(start, ends)
	require.NoError(t, err)

	idx, ok := h.PeriodIndex(day(2016, time.December, 10))
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = h.PeriodIndex(day(2016, time.December, 31))
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = h.PeriodIndex(day(2017, time.January, 1))
	assert.False(t, ok)
}

func TestHorizonDateRoundTrip(t *testing.T) {
	start := day(2016, time.December, 1)
	h, err := NewHorizon(start, []time.Time{day(2016, time.December, 31)})
	require.NoError(t, err)

	got := h.Date(10)
	assert.True(t, got.Equal(day(2016, time.December, 11)))
	assert.Equal(t, 10, h.DayOffset(got))
}

func TestChangeoverMatrixDiagonalIsZero(t *testing.T) {
	m, err := NewChangeoverMatrix(2, []int{5, 3, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Days(0, 0))
	assert.Equal(t, 0, m.Days(1, 1))
	assert.Equal(t, 3, m.Days(0, 1))
	assert.Equal(t, 4, m.Days(1, 0))
}

func TestChangeoverMatrixRejectsNegative(t *testing.T) {
	_, err := NewChangeoverMatrix(2, []int{0, -1, 2, 0})
	require.Error(t, err)
}

func TestNewSimpleModelValidatesProducts(t *testing.T) {
	start := day(2016, time.December, 1)
	demand := []Period{{End: day(2016, time.December, 31), Qty: map[string]float64{"A": 10}}}

	_, err := NewSimpleModel(start, demand, nil, nil, nil)
	require.Error(t, err)

	products := []SimpleProduct{{
		Label: "A", KgPerBatch: 100, InoculationDays: 1, SeedDays: 1, ProductionDays: 1,
		USPCycleDays: 3, DSPDays: 2, ShelfLifeDays: 30, ApprovalDays: 1,
		MinBatches: 1, MaxBatches: 5,
	}}
	m, err := NewSimpleModel(start, demand, products, []int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumProducts())
	assert.Equal(t, 3, products[0].USPDays())
}
