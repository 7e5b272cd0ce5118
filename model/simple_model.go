package model

import "time"

// SimpleModel is the frozen, read-only input to a SIMPLE (single
// production line) planning run: products, demand, inventory targets,
// the line's changeover matrix and the planning horizon (spec.md §3,
// §4.1).
type SimpleModel struct {
	Horizon         *Horizon
	Products        []SimpleProduct
	Demand          []Period // kg demand per product, per period
	InventoryTarget []Period // kg inventory target per product, per period
	Changeover      *ChangeoverMatrix

	labelIndex map[string]int
}

// NewSimpleModel validates and freezes the tables needed to run a
// SIMPLE planning problem. kgDemand and kgInventoryTarget must cover
// the same contiguous, increasing sequence of period-end dates
// (spec.md §3 "periods cover the horizon contiguously").
func NewSimpleModel(
	startDate time.Time,
	kgDemand []Period,
	products []SimpleProduct,
	changeoverDays []int,
	kgInventoryTarget []Period,
) (*SimpleModel, error) {
	if len(products) == 0 {
		return nil, configErrorf("product_data", "at least one product is required")
	}

	periodEnds := make([]time.Time, len(kgDemand))
	for i, p := range kgDemand {
		periodEnds[i] = p.End
	}
	horizon, err := NewHorizon(startDate, periodEnds)
	if err != nil {
		return nil, err
	}
	if len(kgInventoryTarget) != 0 && len(kgInventoryTarget) != len(kgDemand) {
		return nil, configErrorf("kg_inventory_target", "expected %d periods to match kg_demand, got %d", len(kgDemand), len(kgInventoryTarget))
	}
	for i := range kgInventoryTarget {
		if !kgInventoryTarget[i].End.Equal(kgDemand[i].End) {
			return nil, configErrorf("kg_inventory_target", "period %d end date %s does not match kg_demand's %s", i, kgInventoryTarget[i].End.Format("2006-01-02"), kgDemand[i].End.Format("2006-01-02"))
		}
	}

	if err := validatePeriods("kg_demand", kgDemand); err != nil {
		return nil, err
	}
	if err := validatePeriods("kg_inventory_target", kgInventoryTarget); err != nil {
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
		if p.KgPerBatch <= 0 {
			return nil, configErrorf("product_data", "product %q has non-positive kg_per_batch", p.Label)
		}
		if p.InoculationDays < 0 || p.SeedDays < 0 || p.ProductionDays < 0 || p.USPCycleDays <= 0 || p.DSPDays < 0 || p.ShelfLifeDays < 0 || p.ApprovalDays < 0 {
			return nil, configErrorf("product_data", "product %q has a negative or invalid duration", p.Label)
		}
		if err := validateBatchRange("product_data", p.Label, p.MinBatches, p.MaxBatches); err != nil {
			return nil, err
		}
	}

	changeover, err := NewChangeoverMatrix(len(products), changeoverDays)
	if err != nil {
		return nil, err
	}

	return &SimpleModel{
		Horizon:         horizon,
		Products:        products,
		Demand:          kgDemand,
		InventoryTarget: kgInventoryTarget,
		Changeover:      changeover,
		labelIndex:      labelIndex,
	}, nil
}

// NumProducts implements chromosome.ProductRange.
func (m *SimpleModel) NumProducts() int { return len(m.Products) }

// BatchRange implements chromosome.ProductRange.
func (m *SimpleModel) BatchRange(productID int) (min, max int) {
	p := m.Products[productID]
	return p.MinBatches, p.MaxBatches
}

// ProductIndex returns the index of the product with the given label.
func (m *SimpleModel) ProductIndex(label string) (int, bool) {
	i, ok := m.labelIndex[label]
	return i, ok
}

// DemandAt returns the kg demand for productID in the period
// containing t, or 0 if out of horizon.
func (m *SimpleModel) DemandAt(productID int, t time.Time) float64 {
	idx, ok := m.Horizon.PeriodIndex(t)
	return QtyAt(m.Demand, idx, m.Products[productID].Label, ok)
}

// InventoryTargetAt returns the kg inventory target for productID in
// the period containing t, or 0 if out of horizon or no target table
// was supplied.
func (m *SimpleModel) InventoryTargetAt(productID int, t time.Time) float64 {
	idx, ok := m.Horizon.PeriodIndex(t)
	return QtyAt(m.InventoryTarget, idx, m.Products[productID].Label, ok)
}
