// Package orchestrator launches the num_runs independent NSGA-II
// evolutions of spec.md §4.6 across a bounded worker pool and reduces
// their terminal populations to a single Pareto archive. The teacher
// (_examples/cbarrick-evo) fans work out with hand-rolled
// sync.WaitGroup closures (gen/generational.go's mate, diffusion/diffusion.go's
// node goroutines); those channel-actor population topologies model
// always-live background state machines, which spec.md §5 rules out
// for a run ("strictly synchronous within a run" — only coarse,
// run-level parallelism is allowed). This package keeps the teacher's
// bounded-fan-out idiom but expresses it with golang.org/x/sync/errgroup,
// the idiomatic ecosystem upgrade the rest of the retrieval pack reaches
// for instead of hand-rolled WaitGroups (SPEC_FULL.md §3).
package orchestrator

import (
	"context"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/internal/logging"
	"github.com/cbarrick-labs/biosched/internal/rng"
	"github.com/cbarrick-labs/biosched/nsga2"
)

// Config holds the GA parameters of spec.md §6's configuration table
// that govern the orchestrator and the generation loop it drives.
type Config struct {
	NumRuns        int
	PopSize        int
	NumGens        int
	StartingLength int
	NumThreads     int // -1 = hardware_concurrency
	RandomState    int64

	Generation nsga2.Config

	// Logger receives one progress line per completed run, summarising
	// the run's first objective across its terminal front via
	// nsga2.ObjectiveStats (SPEC_FULL.md §2). Nil falls back to
	// internal/logging's library default.
	Logger *zerolog.Logger
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	l := logging.Default()
	return &l
}

// resolveThreads maps NumThreads==-1 to runtime.GOMAXPROCS(0) per
// spec.md §4.6.
func (c Config) resolveThreads() int {
	if c.NumThreads < 0 {
		return runtime.GOMAXPROCS(0)
	}
	if c.NumThreads < 1 {
		return 1
	}
	return c.NumThreads
}

// Result is the outcome of one independent run: its terminal front 0
// plus whether the cooperative stop flag ended it early.
type Result struct {
	Front   []*nsga2.Individual
	Stopped bool
}

// RunAll launches cfg.NumRuns independent evolutions, each seeded with
// (RandomState XOR run_index) via internal/rng (spec.md §4.6). Each run
// gets its own goroutine; errgroup's SetLimit keeps at most
// cfg.resolveThreads() of them running at once (SPEC_FULL.md §3). A
// run's result depends only on its own seed, so the schedule of
// goroutines does not affect the outcome. After every run completes, the union
// of terminal fronts is non-dominated sorted once more; front 0 becomes
// the returned archive, sorted lexicographically by the first objective
// (spec.md §4.6).
func RunAll(
	ctx context.Context,
	cfg Config,
	variant chromosome.Variant,
	pr chromosome.ProductRange,
	sp chromosome.SuitePool,
	evalFn nsga2.EvalFn,
	stop nsga2.StopFn,
) ([]*nsga2.Individual, bool, error) {
	numThreads := cfg.resolveThreads()
	startingLength := chromosome.ClampStartingLength(cfg.StartingLength, cfg.Generation.LMax)
	logger := cfg.logger()

	results := make([]Result, cfg.NumRuns)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numThreads)

	for run := 0; run < cfg.NumRuns; run++ {
		run := run
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			workerRNG := rng.New(cfg.RandomState, run)

			chromosomes := chromosome.NewPopulation(workerRNG, variant, cfg.PopSize, startingLength, pr, sp)
			initial := nsga2.NewPopulation(chromosomes)

			front, stopped := nsga2.Run(workerRNG, initial, cfg.Generation, evalFn, cfg.NumGens, 1, stop)
			results[run] = Result{Front: front, Stopped: stopped}
			logger.Debug().Int("run", run).Int("front_size", len(front)).Bool("stopped", stopped).
				Str("objective_0", nsga2.ObjectiveStats(front, 0).String()).Msg("run complete")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	var union []*nsga2.Individual
	var anyStopped bool
	for _, r := range results {
		union = append(union, r.Front...)
		anyStopped = anyStopped || r.Stopped
	}

	if len(union) == 0 {
		logger.Warn().Int("num_runs", cfg.NumRuns).Msg("every run returned an empty front")
		return nil, anyStopped, nil
	}

	fronts := nsga2.FastNonDominatedSort(union)
	archive := fronts[0]
	nsga2.AssignCrowdingDistance(archive)

	sort.Slice(archive, func(i, j int) bool {
		return archive[i].Objective(0) < archive[j].Objective(0)
	})

	logger.Info().Int("archive_size", len(archive)).Bool("stopped", anyStopped).
		Str("objective_0", nsga2.ObjectiveStats(archive, 0).String()).Msg("archive merged")

	return archive, anyStopped, nil
}
