package model

import "time"

// MultiSuiteModel is the frozen, read-only input to a MULTI-SUITE
// (separate upstream/downstream suite pools) planning run (spec.md §3).
type MultiSuiteModel struct {
	Horizon       *Horizon
	Products      []MultiSuiteProduct
	BatchDemand   []Period // batch demand per product, per period
	USPChangeover *ChangeoverMatrix
	DSPChangeover *ChangeoverMatrix
	NumUSP        int
	NumDSP        int

	labelIndex map[string]int
}

// NewMultiSuiteModel validates and freezes the tables needed to run a
// MULTI-SUITE planning problem.
func NewMultiSuiteModel(
	startDate time.Time,
	numUSPSuites, numDSPSuites int,
	batchDemand []Period,
	products []MultiSuiteProduct,
	uspChangeoverDays []int,
	dspChangeoverDays []int,
) (*MultiSuiteModel, error) {
	if len(products) == 0 {
		return nil, configErrorf("product_data", "at least one product is required")
	}
	if numUSPSuites < 1 {
		return nil, configErrorf("num_usp_suites", "at least one USP suite is required")
	}
	if numDSPSuites < 1 {
		return nil, configErrorf("num_dsp_suites", "at least one DSP suite is required")
	}

	periodEnds := make([]time.Time, len(batchDemand))
	for i, p := range batchDemand {
		periodEnds[i] = p.End
	}
	horizon, err := NewHorizon(startDate, periodEnds)
	if err != nil {
		return nil, err
	}
	if err := validatePeriods("batch_demand", batchDemand); err != nil {
		return nil, err
	}

	labelIndex := make(map[string]int, len(products))
	for i, p := range products {
		if p.Label == "" {
			return nil, configErrorf("product_data", "product %d has an empty label", i)
		}
		if _, dup := labelIndex[p.Label]; dup {
			return nil, configErrorf("product_data", "duplicate product label %q", p.Label)
		}
		labelIndex[p.Label] = i
		if p.YieldPerBatchKg <= 0 {
			return nil, configErrorf("product_data", "product %q has non-positive yield per batch", p.Label)
		}
		if p.USPDays <= 0 || p.DSPDays <= 0 || p.ShelfLifeDays < 0 {
			return nil, configErrorf("product_data", "product %q has a negative or invalid duration", p.Label)
		}
		if err := validateBatchRange("product_data", p.Label, p.MinBatches, p.MaxBatches); err != nil {
			return nil, err
		}
	}

	uspChangeover, err := NewChangeoverMatrix(len(products), uspChangeoverDays)
	if err != nil {
		return nil, err
	}
	dspChangeover, err := NewChangeoverMatrix(len(products), dspChangeoverDays)
	if err != nil {
		return nil, err
	}

	return &MultiSuiteModel{
		Horizon:       horizon,
		Products:      products,
		BatchDemand:   batchDemand,
		USPChangeover: uspChangeover,
		DSPChangeover: dspChangeover,
		NumUSP:        numUSPSuites,
		NumDSP:        numDSPSuites,
		labelIndex:    labelIndex,
	}, nil
}

// NumProducts implements chromosome.ProductRange.
func (m *MultiSuiteModel) NumProducts() int { return len(m.Products) }

// BatchRange implements chromosome.ProductRange.
func (m *MultiSuiteModel) BatchRange(productID int) (min, max int) {
	p := m.Products[productID]
	return p.MinBatches, p.MaxBatches
}

// NumUSPSuites implements chromosome.SuitePool.
func (m *MultiSuiteModel) NumUSPSuites() int { return m.NumUSP }

// ProductIndex returns the index of the product with the given label.
func (m *MultiSuiteModel) ProductIndex(label string) (int, bool) {
	i, ok := m.labelIndex[label]
	return i, ok
}

// BatchDemandAt returns the batch demand for productID in the period
// containing t, or 0 if out of horizon.
func (m *MultiSuiteModel) BatchDemandAt(productID int, t time.Time) float64 {
	idx, ok := m.Horizon.PeriodIndex(t)
	return QtyAt(m.BatchDemand, idx, m.Products[productID].Label, ok)
}
