package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cbarrick-labs/biosched"
	"github.com/cbarrick-labs/biosched/chromosome"
	"github.com/cbarrick-labs/biosched/model"
	"github.com/cbarrick-labs/biosched/result"
)

var genesFlag string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-simulate a known chromosome (create_schedule)",
	Long: `replay re-simulates a user-supplied gene sequence against a
scenario's problem data, for validating a schedule found elsewhere
(spec.md §6 "create_schedule(known_chromosome)"). Genes are given as
--genes "Label:numBatches[:uspSuiteID],...", e.g.
--genes "D:15,C:9,A:28,B:2" for SIMPLE or
--genes "A:4:0,B:3:1" for MULTI-SUITE.`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&genesFlag, "genes", "", "comma-separated gene sequence")
}

func runReplay(cmd *cobra.Command, args []string) error {
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

	var objNames []string
	for _, o := range objectives {
		objNames = append(objNames, o.Name)
	}

	var sched *result.Schedule

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
		m, err := model.NewMultiSuiteModel(start, sc.NumUSPSuites, sc.NumDSPSuites, batchDemand, products, sc.USPChangeoverDays, sc.DSPChangeoverDays)
		if err != nil {
			return err
		}
		genes, err := parseGenes(genesFlag, m, true)
		if err != nil {
			return err
		}
		planner := biosched.NewMultiSuitePlanner(biosched.Config{})
		sched, err = planner.CreateSchedule(start, sc.NumUSPSuites, sc.NumDSPSuites, batchDemand, products, sc.USPChangeoverDays, sc.DSPChangeoverDays, objectives, constraints, genes)
		if err != nil {
			return err
		}
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
		m, err := model.NewSimpleModel(start, demand, products, sc.ChangeoverDays, invTarget)
		if err != nil {
			return err
		}
		genes, err := parseGenes(genesFlag, m, false)
		if err != nil {
			return err
		}
		planner := biosched.NewSimplePlanner(biosched.Config{})
		sched, err = planner.CreateSchedule(start, demand, products, sc.ChangeoverDays, invTarget, objectives, constraints, genes)
		if err != nil {
			return err
		}
	}

	res := result.Archive{Schedules: []result.Schedule{*sched}}
	result.WriteArchiveTable(os.Stdout, res, objNames)
	fmt.Println()
	result.WriteCampaignsTable(os.Stdout, *sched)
	return nil
}

type labelIndex interface {
	ProductIndex(label string) (int, bool)
}

func parseGenes(s string, idx labelIndex, wantSuite bool) ([]chromosome.Gene, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &model.ConfigError{Field: "genes", Reason: "at least one gene is required"}
	}
	parts := strings.Split(s, ",")
	genes := make([]chromosome.Gene, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(strings.TrimSpace(part), ":")
		wantFields := 2
		if wantSuite {
			wantFields = 3
		}
		if len(fields) != wantFields {
			return nil, &model.ConfigError{Field: "genes", Reason: fmt.Sprintf("gene %q must have %d fields", part, wantFields)}
		}
		productID, ok := idx.ProductIndex(fields[0])
		if !ok {
			return nil, &model.ConfigError{Field: "genes", Reason: fmt.Sprintf("unknown product label %q", fields[0])}
		}
		numBatches, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &model.ConfigError{Field: "genes", Reason: fmt.Sprintf("invalid num_batches in gene %q", part)}
		}
		gene := chromosome.Gene{ProductID: productID, NumBatches: numBatches, USPSuiteID: -1}
		if wantSuite {
			suiteID, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &model.ConfigError{Field: "genes", Reason: fmt.Sprintf("invalid usp_suite_id in gene %q", part)}
			}
			gene.USPSuiteID = suiteID
		}
		genes = append(genes, gene)
	}
	return genes, nil
}
