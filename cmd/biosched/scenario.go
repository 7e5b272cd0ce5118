package main

import (
	"time"

	"github.com/cbarrick-labs/biosched"
	"github.com/cbarrick-labs/biosched/model"
)

// gaParams mirrors spec.md §6's configuration table, loaded from the
// scenario file's `ga:` block via viper (SPEC_FULL.md §2 "viper also
// does the GA-parameter file").
type gaParams struct {
	NumRuns        int     `mapstructure:"num_runs"`
	PopSize        int     `mapstructure:"popsize"`
	NumGens        int     `mapstructure:"num_gens"`
	StartingLength int     `mapstructure:"starting_length"`
	PXO            float64 `mapstructure:"p_xo"`
	PProductMut    float64 `mapstructure:"p_product_mut"`
	PUSPSuiteMut   float64 `mapstructure:"p_usp_suite_mut"`
	PPlusBatchMut  float64 `mapstructure:"p_plus_batch_mut"`
	PMinusBatchMut float64 `mapstructure:"p_minus_batch_mut"`
	PGeneSwap      float64 `mapstructure:"p_gene_swap"`
	RandomState    int64   `mapstructure:"random_state"`
	NumThreads     int     `mapstructure:"num_threads"`
}

func (g gaParams) toConfig() biosched.Config {
	return biosched.Config{
		NumRuns:        g.NumRuns,
		PopSize:        g.PopSize,
		NumGens:        g.NumGens,
		StartingLength: g.StartingLength,
		PXO:            g.PXO,
		PProductMut:    g.PProductMut,
		PUSPSuiteMut:   g.PUSPSuiteMut,
		PPlusBatchMut:  g.PPlusBatchMut,
		PMinusBatchMut: g.PMinusBatchMut,
		PGeneSwap:      g.PGeneSwap,
		RandomState:    g.RandomState,
		NumThreads:     g.NumThreads,
		Logger:         &logger,
	}
}

type objectiveSpec struct {
	Name      string `mapstructure:"name"`
	Direction string `mapstructure:"direction"`
}

type constraintSpec struct {
	Name      string  `mapstructure:"name"`
	Direction string  `mapstructure:"direction"`
	Bound     float64 `mapstructure:"bound"`
}

func (o objectiveSpec) toObjective() biosched.Objective {
	dir := biosched.Minimize
	if o.Direction == "maximize" || o.Direction == "maximise" {
		dir = biosched.Maximize
	}
	return biosched.Objective{Name: o.Name, Direction: dir}
}

func (c constraintSpec) toConstraint() biosched.Constraint {
	dir := biosched.Minimize
	if c.Direction == "maximize" || c.Direction == "maximise" {
		dir = biosched.Maximize
	}
	return biosched.Constraint{Name: c.Name, Direction: dir, Bound: c.Bound}
}

type periodSpec struct {
	End string             `mapstructure:"end"`
	Qty map[string]float64 `mapstructure:"qty"`
}

func (p periodSpec) toPeriod() (model.Period, error) {
	t, err := time.Parse("2006-01-02", p.End)
	if err != nil {
		return model.Period{}, &model.ConfigError{Field: "end", Reason: err.Error()}
	}
	return model.Period{End: t, Qty: p.Qty}, nil
}

func toPeriods(specs []periodSpec) ([]model.Period, error) {
	periods := make([]model.Period, len(specs))
	for i, s := range specs {
		p, err := s.toPeriod()
		if err != nil {
			return nil, err
		}
		periods[i] = p
	}
	return periods, nil
}

// simpleProductSpec mirrors model.SimpleProduct's YAML representation.
type simpleProductSpec struct {
	Label               string  `mapstructure:"label"`
	KgPerBatch          float64 `mapstructure:"kg_per_batch"`
	InoculationDays     int     `mapstructure:"inoculation_days"`
	SeedDays            int     `mapstructure:"seed_days"`
	ProductionDays      int     `mapstructure:"production_days"`
	USPCycleDays        int     `mapstructure:"usp_cycle_days"`
	DSPDays             int     `mapstructure:"dsp_days"`
	ShelfLifeDays       int     `mapstructure:"shelf_life_days"`
	ApprovalDays        int     `mapstructure:"approval_days"`
	MinBatches          int     `mapstructure:"min_batches"`
	MaxBatches          int     `mapstructure:"max_batches"`
	StorageCostPerKgDay float64 `mapstructure:"storage_cost_per_kg_day"`
	BacklogPenaltyPerKg float64 `mapstructure:"backlog_penalty_per_kg"`
	WasteCostPerKg      float64 `mapstructure:"waste_cost_per_kg"`
	SalePricePerKg      float64 `mapstructure:"sale_price_per_kg"`
}

func (s simpleProductSpec) toProduct() model.SimpleProduct {
	return model.SimpleProduct{
		Label:               s.Label,
		KgPerBatch:          s.KgPerBatch,
		InoculationDays:     s.InoculationDays,
		SeedDays:            s.SeedDays,
		ProductionDays:      s.ProductionDays,
		USPCycleDays:        s.USPCycleDays,
		DSPDays:             s.DSPDays,
		ShelfLifeDays:       s.ShelfLifeDays,
		ApprovalDays:        s.ApprovalDays,
		MinBatches:          s.MinBatches,
		MaxBatches:          s.MaxBatches,
		StorageCostPerKgDay: s.StorageCostPerKgDay,
		BacklogPenaltyPerKg: s.BacklogPenaltyPerKg,
		WasteCostPerKg:      s.WasteCostPerKg,
		SalePricePerKg:      s.SalePricePerKg,
	}
}

// multiSuiteProductSpec mirrors model.MultiSuiteProduct's YAML
// representation.
type multiSuiteProductSpec struct {
	Label               string  `mapstructure:"label"`
	USPDays             int     `mapstructure:"usp_days"`
	DSPDays             int     `mapstructure:"dsp_days"`
	YieldPerBatchKg     float64 `mapstructure:"yield_per_batch_kg"`
	ShelfLifeDays       int     `mapstructure:"shelf_life_days"`
	StorageCostPerKgDay float64 `mapstructure:"storage_cost_per_kg_day"`
	BacklogPenaltyPerKg float64 `mapstructure:"backlog_penalty_per_kg"`
	WasteCostPerKg      float64 `mapstructure:"waste_cost_per_kg"`
	SalePricePerKg      float64 `mapstructure:"sale_price_per_kg"`
	MinBatches          int     `mapstructure:"min_batches"`
	MaxBatches          int     `mapstructure:"max_batches"`
}

func (s multiSuiteProductSpec) toProduct() model.MultiSuiteProduct {
	return model.MultiSuiteProduct{
		Label:               s.Label,
		USPDays:             s.USPDays,
		DSPDays:             s.DSPDays,
		YieldPerBatchKg:     s.YieldPerBatchKg,
		ShelfLifeDays:       s.ShelfLifeDays,
		StorageCostPerKgDay: s.StorageCostPerKgDay,
		BacklogPenaltyPerKg: s.BacklogPenaltyPerKg,
		WasteCostPerKg:      s.WasteCostPerKg,
		SalePricePerKg:      s.SalePricePerKg,
		MinBatches:          s.MinBatches,
		MaxBatches:          s.MaxBatches,
	}
}

// scenario is the top-level YAML document a `--config` file holds: GA
// parameters plus the problem data for exactly one facility variant
// (SPEC_FULL.md §4's constructor/builder step, applied to file I/O).
type scenario struct {
	Variant     string           `mapstructure:"variant"`
	StartDate   string           `mapstructure:"start_date"`
	GA          gaParams         `mapstructure:"ga"`
	Objectives  []objectiveSpec  `mapstructure:"objectives"`
	Constraints []constraintSpec `mapstructure:"constraints"`

	// SIMPLE
	Products        []simpleProductSpec `mapstructure:"products"`
	Demand          []periodSpec        `mapstructure:"demand"`
	InventoryTarget []periodSpec        `mapstructure:"inventory_target"`
	ChangeoverDays  []int               `mapstructure:"changeover_days"`

	// MULTI-SUITE
	NumUSPSuites       int                      `mapstructure:"num_usp_suites"`
	NumDSPSuites       int                      `mapstructure:"num_dsp_suites"`
	MultiSuiteProducts []multiSuiteProductSpec  `mapstructure:"multisuite_products"`
	BatchDemand        []periodSpec             `mapstructure:"batch_demand"`
	USPChangeoverDays  []int                    `mapstructure:"usp_changeover_days"`
	DSPChangeoverDays  []int                    `mapstructure:"dsp_changeover_days"`
}

func loadScenario(path string) (*scenario, error) {
	v, err := loadViper(path)
	if err != nil {
		return nil, err
	}
	var sc scenario
	if err := v.Unmarshal(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *scenario) start() (time.Time, error) {
	t, err := time.Parse("2006-01-02", sc.StartDate)
	if err != nil {
		return time.Time{}, &model.ConfigError{Field: "start_date", Reason: err.Error()}
	}
	return t, nil
}

func (sc *scenario) objectives() []biosched.Objective {
	out := make([]biosched.Objective, len(sc.Objectives))
	for i, o := range sc.Objectives {
		out[i] = o.toObjective()
	}
	return out
}

func (sc *scenario) constraints() []biosched.Constraint {
	out := make([]biosched.Constraint, len(sc.Constraints))
	for i, c := range sc.Constraints {
		out[i] = c.toConstraint()
	}
	return out
}
