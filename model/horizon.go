// Package model holds the immutable tables a planning run is built
// from: products, demand/inventory-target series, changeover matrices
// and the calendar that resolves absolute dates from day offsets.
//
// Everything in this package is frozen once constructed and is safe to
// share, read-only, across every goroutine in a run (spec.md §4.1, §5).
package model

import (
	"sort"
	"time"
)

const dayHours = 24 * time.Hour

// Period is one demand/inventory-target bucket: the per-product
// quantity due by the given period-end date.
type Period struct {
	End time.Time
	Qty map[string]float64
}

// Horizon resolves day offsets to calendar dates and answers
// "which period contains day d" and "days between two dates" in
// O(log n) (spec.md §4.1).
type Horizon struct {
	start      time.Time
	periodEnds []time.Time // sorted ascending, contiguous
}

// NewHorizon builds a Horizon from a start date and an ordered,
// contiguous sequence of period-end dates. periodEnds must be strictly
// increasing; the first period runs from start (exclusive of no prior
// period) through periodEnds[0].
func NewHorizon(start time.Time, periodEnds []time.Time) (*Horizon, error) {
	if len(periodEnds) == 0 {
		return nil, configErrorf("periods", "at least one demand period is required")
	}
	prev := start
	for i, end := range periodEnds {
		if !end.After(prev) {
			return nil, configErrorf("periods", "period %d end date %s is not after the previous boundary %s (periods must be contiguous and increasing)", i, end.Format("2006-01-02"), prev.Format("2006-01-02"))
		}
		prev = end
	}
	ends := make([]time.Time, len(periodEnds))
	copy(ends, periodEnds)
	return &Horizon{start: start.Truncate(dayHours), periodEnds: ends}, nil
}

// Start returns the horizon's start date.
func (h *Horizon) Start() time.Time { return h.start }

// End returns the horizon's final period-end date.
func (h *Horizon) End() time.Time { return h.periodEnds[len(h.periodEnds)-1] }

// NumPeriods returns the number of demand periods in the horizon.
func (h *Horizon) NumPeriods() int { return len(h.periodEnds) }

// PeriodEnd returns the end date of the i-th period.
func (h *Horizon) PeriodEnd(i int) time.Time { return h.periodEnds[i] }

// Date returns the absolute calendar date for a given day offset from
// the horizon's start.
func (h *Horizon) Date(dayOffset int) time.Time {
	return h.start.AddDate(0, 0, dayOffset)
}

// DayOffset returns the number of whole days between the horizon start
// and t.
func (h *Horizon) DayOffset(t time.Time) int {
	return int(t.Truncate(dayHours).Sub(h.start) / dayHours)
}

// DaysBetween returns the number of days from a to b (b - a).
func DaysBetween(a, b time.Time) int {
	return int(b.Truncate(dayHours).Sub(a.Truncate(dayHours)) / dayHours)
}

// PeriodIndex returns the index of the period containing date t, i.e.
// the smallest i such that t <= periodEnds[i]. Returns
// (len(periodEnds), false) if t falls beyond the horizon.
func (h *Horizon) PeriodIndex(t time.Time) (int, bool) {
	t = t.Truncate(dayHours)
	i := sort.Search(len(h.periodEnds), func(i int) bool {
		return !h.periodEnds[i].Before(t)
	})
	if i >= len(h.periodEnds) {
		return len(h.periodEnds), false
	}
	return i, true
}

// InHorizon reports whether t falls within [start, End()].
func (h *Horizon) InHorizon(t time.Time) bool {
	t = t.Truncate(dayHours)
	return !t.Before(h.start) && !t.After(h.End())
}
