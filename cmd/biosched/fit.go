package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cbarrick-labs/biosched"
	"github.com/cbarrick-labs/biosched/model"
	"github.com/cbarrick-labs/biosched/result"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Search for Pareto-optimal production schedules",
	Long: `fit loads a scenario file (--config) describing GA parameters and
problem data, runs the NSGA-II search (spec.md §4.5, §4.6), and prints
the resulting Pareto archive as a summary table. Use --campaigns to
also print the campaign table for the first archived schedule.`,
	RunE: runFit,
}

var showCampaigns bool

func init() {
	fitCmd.Flags().BoolVar(&showCampaigns, "campaigns", false, "print the campaign table for the best schedule")
}

func runFit(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(cfgFile)
	if err != nil {
		return err
	}
	start, err := sc.start()
	if err != nil {
		return err
	}

	objectives := sc.objectives()
	constraints := sc.constraints()
	cfg := sc.GA.toConfig()

	logger.Info().Str("variant", sc.Variant).Int("num_runs", cfg.NumRuns).Int("popsize", cfg.PopSize).Int("num_gens", cfg.NumGens).Msg("starting fit")

	var archive *biosched.Model
	var objNames []string
	for _, o := range objectives {
		objNames = append(objNames, o.Name)
	}

	switch sc.Variant {
	case "multisuite", "multi-suite", "multi_suite":
		products := make([]model.MultiSuiteProduct, len(sc.MultiSuiteProducts))
		for i, p := range sc.MultiSuiteProducts {
			products[i] = p.toProduct()
		}
		batchDemand, err := toPeriods(sc.BatchDemand)
		if err != nil {
			return err
		}
		planner := biosched.NewMultiSuitePlanner(cfg)
		m, err := planner.Fit(start, objectives, sc.NumUSPSuites, sc.NumDSPSuites, batchDemand, products, sc.USPChangeoverDays, sc.DSPChangeoverDays, constraints)
		if err != nil {
			return err
		}
		archive = m
	default:
		products := make([]model.SimpleProduct, len(sc.Products))
		for i, p := range sc.Products {
			products[i] = p.toProduct()
		}
		demand, err := toPeriods(sc.Demand)
		if err != nil {
			return err
		}
		invTarget, err := toPeriods(sc.InventoryTarget)
		if err != nil {
			return err
		}
		planner := biosched.NewSimplePlanner(cfg)
		m, err := planner.Fit(start, objectives, demand, products, sc.ChangeoverDays, invTarget, constraints)
		if err != nil {
			return err
		}
		archive = m
	}

	if archive.Stopped {
		logger.Warn().Msg("run was cancelled; returning partial archive")
	}
	if !archive.AnyFeasible() {
		logger.Warn().Msg("no feasible schedule found after num_gens generations (InfeasibleRun)")
	}

	res := result.Archive{Schedules: archive.Schedules}
	result.WriteArchiveTable(os.Stdout, res, objNames)

	if showCampaigns && len(archive.Schedules) > 0 {
		fmt.Println()
		result.WriteCampaignsTable(os.Stdout, archive.Schedules[0])
	}

	return nil
}
