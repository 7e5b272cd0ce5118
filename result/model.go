// Package result materialises selected non-dominated individuals into
// the tabular schedule artefacts spec.md §6 describes, as a narrow
// view over the hot-path nsga2/simulate types (design note "expose
// schedules through a narrow view so plotting/IO never import the
// hot-path types"). Grounded on the teacher's view.go
// (_examples/cbarrick-evo/view.go), a read-only []Genome wrapper, here
// generalised to project []*nsga2.Individual into presentation
// records. Field names mirror
// original_source/build/.../pyschedule.py's documented table schema
// (Product, Batches, Kg, Start, First Harvest, ...), translated to
// idiomatic Go identifiers (SPEC_FULL.md §4).
package result

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cbarrick-labs/biosched/nsga2"
	"github.com/cbarrick-labs/biosched/simulate"
)

// well-known objective accumulator names, re-exported for callers that
// want typed access without depending on simulate directly.
const (
	TotalKgThroughput       = simulate.TotalKgThroughput
	TotalKgInventoryDeficit = simulate.TotalKgInventoryDeficit
	TotalKgBacklog          = simulate.TotalKgBacklog
	TotalKgWaste            = simulate.TotalKgWaste
	TotalProfit             = simulate.TotalProfit
	TotalBacklogPenalty     = simulate.TotalBacklogPenalty
)

// Schedule is the presentation view of one Pareto-optimal individual:
// its raw objective map plus the tabular views of spec.md §6.
type Schedule struct {
	Objectives map[string]float64
	Feasible   bool

	Campaigns []CampaignRow
	Batches   []BatchRow
	Tasks     []TaskRow
	Periods   []PeriodRow
}

// TotalKgThroughput returns the schedule's throughput accumulator.
// Every raw accumulator is copied into Objectives, so this is filled in
// whether or not it was among the objectives the caller requested.
func (s Schedule) TotalKgThroughput() float64 { return s.Objectives[TotalKgThroughput] }

// TotalKgInventoryDeficit returns the schedule's inventory deficit.
func (s Schedule) TotalKgInventoryDeficit() float64 { return s.Objectives[TotalKgInventoryDeficit] }

// TotalKgBacklog returns the schedule's unmet-demand backlog.
func (s Schedule) TotalKgBacklog() float64 { return s.Objectives[TotalKgBacklog] }

// TotalKgWaste returns the schedule's expired-stock waste.
func (s Schedule) TotalKgWaste() float64 { return s.Objectives[TotalKgWaste] }

// TotalProfit returns the schedule's profit objective (MULTI-SUITE).
func (s Schedule) TotalProfit() float64 { return s.Objectives[TotalProfit] }

// TotalBacklogPenalty returns the schedule's backlog-penalty cost term.
func (s Schedule) TotalBacklogPenalty() float64 { return s.Objectives[TotalBacklogPenalty] }

// TotalKgDecimal returns the sum of every campaign's kg as an exact
// decimal.Decimal, avoiding the float-formatting artefacts a printed
// float64 rollup can show (SPEC_FULL.md §3, grounded on
// other_examples/.../vsinha-mrp's decimal.Decimal quantity fields).
func (s Schedule) TotalKgDecimal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.Campaigns {
		total = total.Add(decimal.NewFromFloat(c.Kg))
	}
	return total
}

// CampaignRow mirrors pyschedule.py's campaigns_table record.
type CampaignRow struct {
	Product          string
	Batches          int
	Kg               float64
	Start            time.Time
	FirstHarvest     time.Time
	FirstBatchStored time.Time
	LastBatchStored  time.Time

	// MULTI-SUITE only; zero value (-1, zero time) for SIMPLE rows.
	USPSuiteID int
	End        time.Time
}

// BatchRow mirrors pyschedule.py's batches_table record.
type BatchRow struct {
	Product     string
	Kg          float64
	HarvestedOn time.Time
	StoredOn    time.Time
	ExpiresOn   time.Time
	ApprovedOn  time.Time
}

// TaskRow mirrors pyschedule.py's tasks_table record (per-batch
// Inoculation/Seed/Production decomposition, spec.md §3).
type TaskRow struct {
	Product  string
	Task     string
	Start    time.Time
	FinishOn time.Time
}

// PeriodRow mirrors the kg_inventory/kg_backlog/kg_supply/kg_waste
// per-product time series of spec.md §3.
type PeriodRow struct {
	Date      time.Time
	Product   string
	SupplyKg  float64
	BacklogKg float64
	WasteKg   float64
	OnHandKg  float64
	DeficitKg float64
}

// Archive is the Pareto front the Fit API returns: an ordered list of
// Schedules, sorted lexicographically by the first objective (spec.md
// §4.6).
type Archive struct {
	Schedules []Schedule
}

// FromIndividuals projects an nsga2 archive (already sorted by the
// orchestrator) into the narrow presentation view, decomposing each
// individual's simulate.Schedule into campaign/batch/task/period rows
// with per-batch task decomposition (spec.md §3 "Tasks: per-batch
// decomposition").
func FromIndividuals(archive []*nsga2.Individual, objectiveNames []string, taskDurations TaskDurationLookup) Archive {
	out := Archive{Schedules: make([]Schedule, 0, len(archive))}
	for _, ind := range archive {
		out.Schedules = append(out.Schedules, fromIndividual(ind, objectiveNames, taskDurations))
	}
	return out
}

// TaskDurationLookup returns the inoculation/seed/production durations
// for a product, used to decompose a SIMPLE batch into its task rows.
// MULTI-SUITE schedules have no task decomposition (spec.md §3 notes
// tasks only for the per-batch upstream train) and pass a nil lookup.
type TaskDurationLookup func(productID int) (inoculationDays, seedDays, productionDays int)

func fromIndividual(ind *nsga2.Individual, objectiveNames []string, taskDurations TaskDurationLookup) Schedule {
	s := Schedule{Feasible: ind.Eval.Feasible, Objectives: map[string]float64{}}
	if ind.Schedule == nil {
		return s
	}
	for i, name := range objectiveNames {
		if i < len(ind.Eval.Objectives) {
			s.Objectives[name] = ind.Schedule.Raw[name]
		}
	}
	// Raw carries every accumulator regardless of which ones were
	// declared as objectives, so surface them all (spec.md §6 "plus
	// per-schedule objectives map").
	for k, v := range ind.Schedule.Raw {
		s.Objectives[k] = v
	}

	for _, c := range ind.Schedule.Campaigns {
		row := CampaignRow{
			Product:          c.ProductLabel,
			Batches:          len(c.Batches),
			Kg:               c.TotalKg(),
			Start:            c.Start,
			FirstHarvest:     c.FirstHarvest,
			FirstBatchStored: c.FirstBatchStored,
			LastBatchStored:  c.LastBatchStored,
			USPSuiteID:       c.USPSuiteID,
		}
		if c.USPSuiteID >= 0 && len(c.Batches) > 0 {
			row.End = c.Batches[len(c.Batches)-1].StoredOn
		}
		s.Campaigns = append(s.Campaigns, row)

		for _, b := range c.Batches {
			s.Batches = append(s.Batches, BatchRow{
				Product:     c.ProductLabel,
				Kg:          b.KgYield,
				HarvestedOn: b.HarvestedOn,
				StoredOn:    b.StoredOn,
				ExpiresOn:   b.ExpiresOn,
				ApprovedOn:  b.ApprovedOn,
			})
			if taskDurations != nil {
				s.Tasks = append(s.Tasks, decomposeTasks(c, b, taskDurations)...)
			}
		}
	}

	for _, p := range ind.Schedule.Periods {
		s.Periods = append(s.Periods, PeriodRow{
			Date:      p.End,
			Product:   p.ProductLabel,
			SupplyKg:  p.SupplyKg,
			BacklogKg: p.BacklogKg,
			WasteKg:   p.WasteKg,
			OnHandKg:  p.OnHandKg,
			DeficitKg: p.DeficitKg,
		})
	}

	return s
}

func decomposeTasks(c simulate.Campaign, b simulate.Batch, lookup TaskDurationLookup) []TaskRow {
	inoc, seed, prod := lookup(c.ProductID)
	t := b.StartedOn
	tasks := make([]TaskRow, 0, 3)
	tasks = append(tasks, TaskRow{Product: c.ProductLabel, Task: "Inoculation", Start: t, FinishOn: t.AddDate(0, 0, inoc)})
	t = t.AddDate(0, 0, inoc)
	tasks = append(tasks, TaskRow{Product: c.ProductLabel, Task: "Seed", Start: t, FinishOn: t.AddDate(0, 0, seed)})
	t = t.AddDate(0, 0, seed)
	tasks = append(tasks, TaskRow{Product: c.ProductLabel, Task: "Production", Start: t, FinishOn: t.AddDate(0, 0, prod)})
	return tasks
}
