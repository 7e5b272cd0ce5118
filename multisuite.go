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

// MultiSuitePlanner runs the MULTI-SUITE (separate upstream/downstream
// suite pools) facility model, reusable across repeated Fit calls
// (SPEC_FULL.md §4).
type MultiSuitePlanner struct {
	cfg Config
}

// NewMultiSuitePlanner builds a MultiSuitePlanner from fixed GA
// parameters.
func NewMultiSuitePlanner(cfg Config) *MultiSuitePlanner {
	return &MultiSuitePlanner{cfg: cfg}
}

// Fit searches for Pareto-optimal MULTI-SUITE production schedules
// (spec.md §6 Fit API).
func (p *MultiSuitePlanner) Fit(
	startDate time.Time,
	objectives []Objective,
	numUSPSuites, numDSPSuites int,
	batchDemand []model.Period,
	productData []model.MultiSuiteProduct,
	uspChangeoverDays []int,
	dspChangeoverDays []int,
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

	m, err := model.NewMultiSuiteModel(startDate, numUSPSuites, numDSPSuites, batchDemand, productData, uspChangeoverDays, dspChangeoverDays)
	if err != nil {
		return nil, err
	}

	return p.run(context.Background(), m, objectives, constraints, nil)
}

// FitWithCancel behaves like Fit but polls cancel once per generation
// in every run (spec.md §5, §7 "Cancelled").
func (p *MultiSuitePlanner) FitWithCancel(
	ctx context.Context,
	startDate time.Time,
	objectives []Objective,
	numUSPSuites, numDSPSuites int,
	batchDemand []model.Period,
	productData []model.MultiSuiteProduct,
	uspChangeoverDays []int,
	dspChangeoverDays []int,
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
	m, err := model.NewMultiSuiteModel(startDate, numUSPSuites, numDSPSuites, batchDemand, productData, uspChangeoverDays, dspChangeoverDays)
	if err != nil {
		return nil, err
	}
	return p.run(ctx, m, objectives, constraints, cancel.Stopped)
}

// CreateSchedule re-simulates a user-supplied gene sequence, used for
// validation (spec.md §6).
func (p *MultiSuitePlanner) CreateSchedule(
	startDate time.Time,
	numUSPSuites, numDSPSuites int,
	batchDemand []model.Period,
	productData []model.MultiSuiteProduct,
	uspChangeoverDays []int,
	dspChangeoverDays []int,
	objectives []Objective,
	constraints []Constraint,
	genes []chromosome.Gene,
) (*result.Schedule, error) {
	m, err := model.NewMultiSuiteModel(startDate, numUSPSuites, numDSPSuites, batchDemand, productData, uspChangeoverDays, dspChangeoverDays)
	if err != nil {
		return nil, err
	}
	c := &chromosome.Chromosome{Variant: chromosome.MultiSuite, Genes: append([]chromosome.Gene{}, genes...)}
	sched, err := simulate.MultiSuite(m, c)
	if err != nil {
		return nil, err
	}
	eval := evaluate.Evaluate(sched.Raw, objectives, constraints)
	ind := &nsga2.Individual{Chromosome: c, Schedule: sched, Eval: eval}
	archive := result.FromIndividuals([]*nsga2.Individual{ind}, objectiveNames(objectives), nil)
	return &archive.Schedules[0], nil
}

func (p *MultiSuitePlanner) run(ctx context.Context, m *model.MultiSuiteModel, objectives []Objective, constraints []Constraint, stop nsga2.StopFn) (*Model, error) {
	lMax := chromosome.MaxLength(m.Horizon.NumPeriods())

	evalFn := func(c *chromosome.Chromosome) (*simulate.Schedule, evaluate.Evaluation) {
		sched, err := simulate.MultiSuite(m, c)
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
			SuitePool:  m,
		},
	}

	archive, stopped, err := orchestrator.RunAll(ctx, orchCfg, chromosome.MultiSuite, m, m, evalFn, stop)
	if err != nil {
		return nil, err
	}

	// MULTI-SUITE schedules have no per-batch task decomposition in
	// spec.md §3 ("Tasks" is named only for the SIMPLE upstream train).
	res := result.FromIndividuals(archive, objectiveNames(objectives), nil)
	return &Model{Schedules: res.Schedules, Stopped: stopped}, nil
}
