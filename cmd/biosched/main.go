// Command biosched is the CLI front end for the biosched capacity
// planner (SPEC_FULL.md §2). It replaces the teacher's os.Args-switch
// dispatcher (_examples/cbarrick-evo/example/run.go) with a cobra
// command tree, grounded on
// other_examples/14fc51c3_untoldecay-BeadsLog__cmd-bd-mol_squash.go.go's
// var xCmd = &cobra.Command{...} / init() AddCommand shape.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cbarrick-labs/biosched/internal/logging"
)

var (
	cfgFile  string
	logLevel string

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "biosched",
	Short: "Biopharmaceutical capacity planning and scheduling",
	Long: `biosched searches for Pareto-optimal production schedules for a
single manufacturing site under the SIMPLE (one production line) or
MULTI-SUITE (separate upstream/downstream suite pools) facility model,
given per-period demand, product kinetics and inventory targets.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(os.Stderr, logging.ParseLevel(logLevel))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scenario/GA-parameter file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadViper(path string) (*viper.Viper, error) {
	v := viper.New()
	if path == "" {
		return nil, fmt.Errorf("--config is required")
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return v, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
