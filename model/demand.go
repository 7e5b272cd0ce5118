package model

// QtyAt returns the quantity for product in period periodIdx (as
// returned, with ok, by Horizon.PeriodIndex), or 0 if out of horizon
// or the product is absent from that period.
func QtyAt(periods []Period, periodIdx int, product string, ok bool) float64 {
	if !ok || periodIdx < 0 || periodIdx >= len(periods) {
		return 0
	}
	return periods[periodIdx].Qty[product]
}

func validatePeriods(field string, periods []Period) error {
	for i, p := range periods {
		for label, qty := range p.Qty {
			if qty < 0 {
				return configErrorf(field, "period %d has negative quantity %.4f for product %q", i, qty, label)
			}
		}
	}
	return nil
}
