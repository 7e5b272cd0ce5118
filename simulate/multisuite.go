package simulate

import (
	"sort"
	"time"

	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/model"
)

// dspSuite tracks one downstream suite's occupancy state across the
// sweep: when it next becomes free and which product it last ran.
type dspSuite struct {
	freeAt      time.Time
	lastProduct int // -1 until first use
}

// MultiSuite runs the MULTI-SUITE forward sweep of spec.md §4.3: two
// resource pools (USP suites, DSP suites), with DSP assigned greedily
// at simulation time (spec.md §9, Open Question: "this spec prescribes
// greedy (earliest-free, minimum-changeover tie-break) for
// reproducibility").
func MultiSuite(m *model.MultiSuiteModel, c *chromosome.Chromosome) (*Schedule, error) {
	if c.Variant != chromosome.MultiSuite {
		return nil, &model.ConfigError{Field: "chromosome", Reason: "MultiSuite requires a MultiSuite-variant chromosome"}
	}

	uspCursor := make([]time.Time, m.NumUSP)
	uspPrevProduct := make([]int, m.NumUSP)
	for i := range uspCursor {
		uspCursor[i] = m.Horizon.Start()
		uspPrevProduct[i] = -1
	}
	dsp := make([]dspSuite, m.NumDSP)
	for i := range dsp {
		dsp[i] = dspSuite{freeAt: m.Horizon.Start(), lastProduct: -1}
	}

	campaigns := make([]Campaign, 0, c.Len())
	perProduct := make([][]productionBatch, len(m.Products))

	for _, g := range c.Genes {
		if g.NumBatches <= 0 {
			continue
		}
		suite := g.USPSuiteID
		if suite < 0 || suite >= m.NumUSP {
			suite = 0
		}
		p := m.Products[g.ProductID]

		if uspPrevProduct[suite] != -1 && uspPrevProduct[suite] != g.ProductID {
			days := m.USPChangeover.Days(uspPrevProduct[suite], g.ProductID)
			uspCursor[suite] = uspCursor[suite].AddDate(0, 0, days)
		}

		campaignStart := uspCursor[suite]
		harvests := make([]time.Time, g.NumBatches)
		for b := 0; b < g.NumBatches; b++ {
			uspCursor[suite] = uspCursor[suite].AddDate(0, 0, p.USPDays)
			harvests[b] = uspCursor[suite]
		}
		uspPrevProduct[suite] = g.ProductID

		dspIdx := chooseDSPSuite(dsp, m.DSPChangeover, g.ProductID, harvests[0])
		d := &dsp[dspIdx]
		if d.lastProduct != -1 && d.lastProduct != g.ProductID {
			days := m.DSPChangeover.Days(d.lastProduct, g.ProductID)
			if d.freeAt.Before(harvests[0]) {
				d.freeAt = harvests[0]
			}
			d.freeAt = d.freeAt.AddDate(0, 0, days)
		}
		d.lastProduct = g.ProductID

		campaign := Campaign{
			ProductID:    g.ProductID,
			ProductLabel: p.Label,
			USPSuiteID:   suite,
			Start:        campaignStart,
			Batches:      make([]Batch, 0, g.NumBatches),
		}

		for b := 0; b < g.NumBatches; b++ {
			dspStart := harvests[b]
			if d.freeAt.After(dspStart) {
				dspStart = d.freeAt
			}
			storedOn := dspStart.AddDate(0, 0, p.DSPDays)
			d.freeAt = storedOn

			expiresOn := storedOn.AddDate(0, 0, p.ShelfLifeDays)
			batch := Batch{
				StartedOn:   campaignStart,
				HarvestedOn: harvests[b],
				StoredOn:    storedOn,
				ApprovedOn:  storedOn,
				ExpiresOn:   expiresOn,
				KgYield:     p.YieldPerBatchKg,
				InFlight:    storedOn.After(m.Horizon.End()),
			}
			campaign.Batches = append(campaign.Batches, batch)
			if b == 0 {
				campaign.FirstHarvest = harvests[b]
				campaign.FirstBatchStored = storedOn
			}
			campaign.LastBatchStored = storedOn

			perProduct[g.ProductID] = append(perProduct[g.ProductID], productionBatch{productID: g.ProductID, batch: batch})
		}

		campaigns = append(campaigns, campaign)
	}

	raw := map[string]float64{}
	periods := reconcileMultiSuitePeriods(m, perProduct, raw)

	return &Schedule{Campaigns: campaigns, Periods: periods, Raw: raw}, nil
}

// chooseDSPSuite picks the DSP suite that becomes free earliest
// relative to `readyAt`, breaking ties by minimum changeover from the
// suite's last product to `productID` (spec.md §4.3).
func chooseDSPSuite(dsp []dspSuite, changeover *model.ChangeoverMatrix, productID int, readyAt time.Time) int {
	best := 0
	bestFree := effectiveFree(dsp[0], readyAt)
	bestChange := changeover.Days(dsp[0].lastProduct, productID)
	for i := 1; i < len(dsp); i++ {
		free := effectiveFree(dsp[i], readyAt)
		change := changeover.Days(dsp[i].lastProduct, productID)
		if free.Before(bestFree) || (free.Equal(bestFree) && change < bestChange) {
			best, bestFree, bestChange = i, free, change
		}
	}
	return best
}

func effectiveFree(d dspSuite, readyAt time.Time) time.Time {
	if d.freeAt.After(readyAt) {
		return d.freeAt
	}
	return readyAt
}

// reconcileMultiSuitePeriods mirrors reconcilePeriods but works in
// batch-unit demand converted to kg via each product's yield, and has
// no inventory-target deficit accumulator (spec.md §3: MULTI-SUITE
// carries no InventoryTarget table).
func reconcileMultiSuitePeriods(m *model.MultiSuiteModel, perProduct [][]productionBatch, raw map[string]float64) []PeriodResult {
	results := make([]PeriodResult, 0, m.Horizon.NumPeriods()*len(m.Products))

	for productID, p := range m.Products {
		queue := newFIFOQueue()
		backlog := 0.0
		nextBatch := 0
		batches := perProduct[productID]
		sort.SliceStable(batches, func(i, j int) bool {
			return batches[i].batch.ApprovedOn.Before(batches[j].batch.ApprovedOn)
		})

		for periodIdx := 0; periodIdx < m.Horizon.NumPeriods(); periodIdx++ {
			periodEnd := m.Horizon.PeriodEnd(periodIdx)

			for nextBatch < len(batches) {
				pb := batches[nextBatch]
				if pb.batch.InFlight || pb.batch.ApprovedOn.After(periodEnd) {
					break
				}
				if !pb.batch.ExpiresOn.After(pb.batch.ApprovedOn) {
					raw[TotalKgWaste] += pb.batch.KgYield
					raw[TotalWasteCost] += pb.batch.KgYield * p.WasteCostPerKg
				} else {
					queue.push(pb.batch.KgYield, pb.batch.ExpiresOn)
				}
				nextBatch++
			}

			wasteKg := queue.expireBefore(periodEnd)
			raw[TotalKgWaste] += wasteKg
			raw[TotalWasteCost] += wasteKg * p.WasteCostPerKg

			demandBatches := m.BatchDemandAt(productID, periodEnd)
			demandKg := demandBatches * p.YieldPerBatchKg
			need := backlog + demandKg
			supplied := queue.consume(need)
			backlog = need - supplied

			raw[TotalKgThroughput] += supplied
			raw[TotalKgBacklog] += backlog
			raw[salesRevenueKey] += supplied * p.SalePricePerKg
			raw[TotalBacklogPenalty] += backlog * p.BacklogPenaltyPerKg

			onHand := queue.onHandKg()
			raw[TotalStorageCost] += onHand * p.StorageCostPerKgDay * float64(periodDaysMultiSuite(m, periodIdx))

			results = append(results, PeriodResult{
				End:          periodEnd,
				ProductLabel: p.Label,
				SupplyKg:     supplied,
				BacklogKg:    backlog,
				WasteKg:      wasteKg,
				OnHandKg:     onHand,
			})
		}
	}

	// TotalChangeoverCost has no dollar rate in the data model (only
	// changeover days), so it stays at its zero value here; the term
	// is still named in the profit formula per spec.md §4.3.
	raw[TotalProfit] = raw[salesRevenueKey] - raw[TotalStorageCost] - raw[TotalBacklogPenalty] - raw[TotalWasteCost] - raw[TotalChangeoverCost]
	delete(raw, salesRevenueKey)

	return results
}

func periodDaysMultiSuite(m *model.MultiSuiteModel, periodIdx int) int {
	prevEnd := m.Horizon.Start()
	if periodIdx > 0 {
		prevEnd = m.Horizon.PeriodEnd(periodIdx - 1)
	}
	return model.DaysBetween(prevEnd, m.Horizon.PeriodEnd(periodIdx))
}
