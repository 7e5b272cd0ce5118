package biosched

import (
	"context"
	"time"

	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/evaluate"
	"github.com/cbarrick-labs/biosched/model"
	"github.com/cbarrick-labs/biosched/nsga2"
	"github.com/cbarrick-labs/biosched/orchestrator"
	"github.com/cbarrick-labs/biosched/result"
	"github.com/cbarrick-labs/biosched/simulate"
)

// Objective and Constraint are the public Fit API's direction/bound
// vocabulary (spec.md §4.4), re-exported from evaluate so callers never
// need to import the evaluation package directly.
type Objective = evaluate.Objective
type Constraint = evaluate.Constraint

// well-known directions, re-exported for Fit API callers.
const (
	Minimize = evaluate.Minimize
	Maximize = evaluate.Maximize
)

// Model is the Fit API's return value: the Pareto front plus whether
// the run was cooperatively stopped early (spec.md §6, §7 "Cancelled").
type Model struct {
	Schedules []result.Schedule
	Stopped   bool
}

// AnyFeasible reports whether at least one returned schedule satisfies
// every constraint (spec.md §7 "InfeasibleRun ... not fatal").
func (m *Model) AnyFeasible() bool {
	for _, s := range m.Schedules {
		if s.Feasible {
			return true
		}
	}
	return false
}

// SimplePlanner runs the SIMPLE (single production line) facility
// model, reusable across repeated Fit calls (SPEC_FULL.md §4).
type SimplePlanner struct {
	cfg Config
}

// NewSimplePlanner builds a SimplePlanner from fixed GA parameters.
func NewSimplePlanner(cfg Config) *SimplePlanner {
	return &SimplePlanner{cfg: cfg}
}

// Fit searches for Pareto-optimal SIMPLE production schedules (spec.md
// §6 Fit API). It returns a ConfigError immediately if the input tables
// are malformed or reference an unknown objective/constraint name.
func (p *SimplePlanner) Fit(
	startDate time.Time,
	objectives []Objective,
	kgDemand []model.Period,
	productData []model.SimpleProduct,
	changeoverDays []int,
	kgInventoryTarget []model.Period,
	constraints []Constraint,
) (*Model, error) {
	if len(objectives) == 0 {
		return nil, &ConfigError{Field: "objectives", Reason: "at least one objective is required"}
	}
	for _, o := range objectives {
		if err := validateAccumulatorName("objectives", o.Name); err != nil {
			return nil, err
		}
	}
	for _, c := range constraints {
		if err := validateAccumulatorName("constraints", c.Name); err != nil {
			return nil, err
		}
	}

	m, err := model.NewSimpleModel(startDate, kgDemand, productData, changeoverDays, kgInventoryTarget)
	if err != nil {
		return nil, err
	}

	return p.run(context.Background(), m, objectives, constraints, nil)
}

// FitWithCancel behaves like Fit but polls cancel once per generation
// in every run, returning a partial archive with Model.Stopped set if
// cancel.Stop() is called mid-search (spec.md §5, §7 "Cancelled").
func (p *SimplePlanner) FitWithCancel(
	ctx context.Context,
	startDate time.Time,
	objectives []Objective,
	kgDemand []model.Period,
	productData []model.SimpleProduct,
	changeoverDays []int,
	kgInventoryTarget []model.Period,
	constraints []Constraint,
	cancel *Cancel,
) (*Model, error) {
	if len(objectives) == 0 {
		return nil, &ConfigError{Field: "objectives", Reason: "at least one objective is required"}
	}
	for _, o := range objectives {
		if err := validateAccumulatorName("objectives", o.Name); err != nil {
			return nil, err
		}
	}
	for _, c := range constraints {
		if err := validateAccumulatorName("constraints", c.Name); err != nil {
			return nil, err
		}
	}
	m, err := model.NewSimpleModel(startDate, kgDemand, productData, changeoverDays, kgInventoryTarget)
	if err != nil {
		return nil, err
	}
	return p.run(ctx, m, objectives, constraints, cancel.Stopped)
}

// CreateSchedule re-simulates a user-supplied gene sequence, used for
// validation (spec.md §6 "create_schedule(known_chromosome)").
func (p *SimplePlanner) CreateSchedule(
	startDate time.Time,
	kgDemand []model.Period,
	productData []model.SimpleProduct,
	changeoverDays []int,
	kgInventoryTarget []model.Period,
	objectives []Objective,
	constraints []Constraint,
	genes []chromosome.Gene,
) (*result.Schedule, error) {
	m, err := model.NewSimpleModel(startDate, kgDemand, productData, changeoverDays, kgInventoryTarget)
	if err != nil {
		return nil, err
	}
	c := &chromosome.Chromosome{Variant: chromosome.Simple, Genes: append([]chromosome.Gene{}, genes...)}
	sched, err := simulate.Simple(m, c)
	if err != nil {
		return nil, err
	}
	eval := evaluate.Evaluate(sched.Raw, objectives, constraints)
	ind := &nsga2.Individual{Chromosome: c, Schedule: sched, Eval: eval}
	archive := result.FromIndividuals([]*nsga2.Individual{ind}, objectiveNames(objectives), simpleTaskLookup(m))
	return &archive.Schedules[0], nil
}

func (p *SimplePlanner) run(ctx context.Context, m *model.SimpleModel, objectives []Objective, constraints []Constraint, stop nsga2.StopFn) (*Model, error) {
	lMax := chromosome.MaxLength(m.Horizon.NumPeriods())

	evalFn := func(c *chromosome.Chromosome) (*simulate.Schedule, evaluate.Evaluation) {
		sched, err := simulate.Simple(m, c)
		if err != nil {
			return nil, evaluate.WorstCase(len(objectives))
		}
		eval := evaluate.Evaluate(sched.Raw, objectives, constraints)
		if !eval.Numeric {
			return sched, evaluate.WorstCase(len(objectives))
		}
		return sched, eval
	}

	orchCfg := orchestrator.Config{
		NumRuns:        p.cfg.NumRuns,
		PopSize:        p.cfg.PopSize,
		NumGens:        p.cfg.NumGens,
		StartingLength: p.cfg.StartingLength,
		NumThreads:     p.cfg.NumThreads,
		RandomState:    p.cfg.RandomState,
		Logger:         p.cfg.Logger,
		Generation: nsga2.Config{
			PXO:        p.cfg.PXO,
			Variation:  p.cfg.variationConfig(),
			LMax:       lMax,
			ProductRng: m,
		},
	}

	archive, stopped, err := orchestrator.RunAll(ctx, orchCfg, chromosome.Simple, m, nil, evalFn, stop)
	if err != nil {
		return nil, err
	}

	res := result.FromIndividuals(archive, objectiveNames(objectives), simpleTaskLookup(m))
	return &Model{Schedules: res.Schedules, Stopped: stopped}, nil
}

func objectiveNames(objectives []Objective) []string {
	names := make([]string, len(objectives))
	for i, o := range objectives {
		names[i] = o.Name
	}
	return names
}

func simpleTaskLookup(m *model.SimpleModel) result.TaskDurationLookup {
	return func(productID int) (int, int, int) {
		p := m.Products[productID]
		return p.InoculationDays, p.SeedDays, p.ProductionDays
	}
}
