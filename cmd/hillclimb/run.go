package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configPath    string
	problemName   string
	maxIterations int
	quadStart     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run hill climbing on one problem instance",
	Long: `Loads a YAML run config (optional), applies flag overrides, climbs
from the configured initial state and prints a YAML report on stdout.`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run config")
	runCmd.Flags().StringVar(&problemName, "problem", "", "Problem: quadratic, queens, tour, knapsack")
	runCmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "Iteration budget (overrides the config)")
	runCmd.Flags().IntVar(&quadStart, "start", 0, "Starting x for the quadratic problem")

	rootCmd.AddCommand(runCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := LoadRunConfig(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("problem") {
		cfg.Problem = problemName
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations = maxIterations
	}
	if flags.Changed("start") {
		cfg.Quadratic.Start = quadStart
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With("run_id", runID, "problem", cfg.Problem)
	log.Info("starting search", "max_iterations", cfg.MaxIterations)

	start := time.Now()
	rep, err := runProblem(cfg, log)
	if err != nil {
		return err
	}
	rep.RunID = runID

	log.Info("search complete",
		"elapsed", time.Since(start),
		"initial_score", rep.InitialScore,
		"score", rep.Score,
		"accepted", rep.Accepted,
		"reason", rep.Reason,
	)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err = enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}
