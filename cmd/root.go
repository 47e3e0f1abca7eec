package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aethonholdings/aethon-arion-pipeline/analysis"
	"github.com/aethonholdings/aethon-arion-pipeline/analysis/record"
)

var (
	// CLI flags for the analyze command
	resultsPath string   // Path to the YAML result batch exported by the simulation engine
	binCount    int      // Histogram bins per state-vector dimension
	stateNames  []string // Agent state names, index-aligned with agentStates
	perRun      bool     // Also print per-trajectory statistics
	logLevel    string   // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "arion-analyze",
	Short: "Post-run statistics for arion organisation simulations",
}

// analyzeCmd aggregates a result batch using parameters from CLI flags
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Aggregate a batch of simulation results",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if resultsPath == "" {
			logrus.Fatalf("No results file provided. Exiting analysis.")
		}
		results, err := record.LoadResults(resultsPath)
		if err != nil {
			logrus.Fatalf("Unable to read results: %v", err)
		}
		logrus.Infof("Aggregating %d runs with %d histogram bins", len(results), binCount)

		set := analysis.NewResultSet(results, binCount)
		PrintSummary(os.Stdout, set)

		if perRun {
			for _, r := range set.Results() {
				if r.StateSpace == nil {
					continue
				}
				PrintRun(os.Stdout, r, stateNames)
			}
		}

		logrus.Info("Analysis complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	analyzeCmd.Flags().StringVar(&resultsPath, "results", "", "Path to the YAML result batch")
	analyzeCmd.Flags().IntVar(&binCount, "bins", analysis.DefaultBinCount, "Histogram bins per state-vector dimension")
	analyzeCmd.Flags().StringSliceVar(&stateNames, "state-names", nil, "Comma-separated agent state names")
	analyzeCmd.Flags().BoolVar(&perRun, "per-run", false, "Print per-trajectory statistics for runs with an embedded trajectory")
	analyzeCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `analyze` as a subcommand to `root`
	rootCmd.AddCommand(analyzeCmd)
}
