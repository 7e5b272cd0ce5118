package simulate

import (
	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/model"
)

// productionBatch is an internal pass-1 record: a batch's dates plus
// which product it belongs to, before period reconciliation runs.
type productionBatch struct {
	productID int
	batch     Batch
}

// Simple runs the SIMPLE-variant forward sweep of spec.md §4.3 over a
// single production line.
func Simple(m *model.SimpleModel, c *chromosome.Chromosome) (*Schedule, error) {
	if c.Variant != chromosome.Simple {
		return nil, &model.ConfigError{Field: "chromosome", Reason: "Simple requires a Simple-variant chromosome"}
	}

	campaigns := make([]Campaign, 0, c.Len())
	perProduct := make([][]productionBatch, len(m.Products))

	t := m.Horizon.Start()
	prevProduct := -1

	for _, g := range c.Genes {
		if g.NumBatches <= 0 {
			continue
		}
		if prevProduct != -1 && prevProduct != g.ProductID {
			t = t.AddDate(0, 0, m.Changeover.Days(prevProduct, g.ProductID))
		}
		p := m.Products[g.ProductID]
		campaign := Campaign{
			ProductID:    g.ProductID,
			ProductLabel: p.Label,
			USPSuiteID:   -1,
			Start:        t,
			Batches:      make([]Batch, 0, g.NumBatches),
		}

		for b := 0; b < g.NumBatches; b++ {
			startedOn := t
			harvestedOn := t.AddDate(0, 0, p.USPDays())
			storedOn := harvestedOn.AddDate(0, 0, p.DSPDays)
			approvedOn := storedOn.AddDate(0, 0, p.ApprovalDays)
			expiresOn := storedOn.AddDate(0, 0, p.ShelfLifeDays)

			batch := Batch{
				StartedOn:   startedOn,
				HarvestedOn: harvestedOn,
				StoredOn:    storedOn,
				ApprovedOn:  approvedOn,
				ExpiresOn:   expiresOn,
				KgYield:     p.KgPerBatch,
				InFlight:    approvedOn.After(m.Horizon.End()),
			}
			campaign.Batches = append(campaign.Batches, batch)
			if b == 0 {
				campaign.FirstHarvest = harvestedOn
				campaign.FirstBatchStored = storedOn
			}
			campaign.LastBatchStored = storedOn

			perProduct[g.ProductID] = append(perProduct[g.ProductID], productionBatch{productID: g.ProductID, batch: batch})

			t = t.AddDate(0, 0, p.USPCycleDays)
		}

		campaigns = append(campaigns, campaign)
		prevProduct = g.ProductID
	}

	raw := map[string]float64{}
	periods := reconcilePeriods(m, perProduct, raw)

	return &Schedule{Campaigns: campaigns, Periods: periods, Raw: raw}, nil
}

// reconcilePeriods drives the per-period demand/backlog/waste/deficit
// reconciliation of spec.md §4.3 step 3, one product at a time. Lots
// are pushed into each product's FIFO as their approval date is
// reached by the period cursor, preserving FIFO order because a
// product's own batches are generated in non-decreasing approval-date
// order by the forward sweep above.
func reconcilePeriods(m *model.SimpleModel, perProduct [][]productionBatch, raw map[string]float64) []PeriodResult {
	results := make([]PeriodResult, 0, m.Horizon.NumPeriods()*len(m.Products))

	for productID, p := range m.Products {
		queue := newFIFOQueue()
		backlog := 0.0
		nextBatch := 0
		batches := perProduct[productID]

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

			demand := m.DemandAt(productID, periodEnd)
			need := backlog + demand
			supplied := queue.consume(need)
			backlog = need - supplied

			raw[TotalKgThroughput] += supplied
			raw[TotalKgBacklog] += backlog
			raw[salesRevenueKey] += supplied * p.SalePricePerKg

			onHand := queue.onHandKg()
			target := m.InventoryTargetAt(productID, periodEnd)
			deficit := target - onHand
			if deficit < 0 {
				deficit = 0
			}
			raw[TotalKgInventoryDeficit] += deficit

			raw[TotalStorageCost] += onHand * p.StorageCostPerKgDay * float64(periodDays(m, periodIdx))
			raw[TotalBacklogPenalty] += backlog * p.BacklogPenaltyPerKg

			results = append(results, PeriodResult{
				End:          periodEnd,
				ProductLabel: p.Label,
				SupplyKg:     supplied,
				BacklogKg:    backlog,
				WasteKg:      wasteKg,
				OnHandKg:     onHand,
				DeficitKg:    deficit,
			})
		}
	}

	raw[TotalProfit] = raw[salesRevenueKey] - raw[TotalStorageCost] - raw[TotalBacklogPenalty] - raw[TotalWasteCost]
	delete(raw, salesRevenueKey)

	return results
}

// salesRevenueKey is an internal accumulator key, not part of the
// public Raw vocabulary; it is folded into TotalProfit before return.
const salesRevenueKey = "__sales_revenue"

// periodDays returns the number of days spanned by period i, used to
// convert the per-kg-per-day storage cost rate into a period charge.
func periodDays(m *model.SimpleModel, periodIdx int) int {
	prevEnd := m.Horizon.Start()
	if periodIdx > 0 {
		prevEnd = m.Horizon.PeriodEnd(periodIdx - 1)
	}
	return model.DaysBetween(prevEnd, m.Horizon.PeriodEnd(periodIdx))
}

