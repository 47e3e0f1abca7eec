package cmd

import (
	"fmt"
	"io"

	"github.com/aethonholdings/aethon-arion-pipeline/analysis"
	"github.com/aethonholdings/aethon-arion-pipeline/analysis/record"
)

// PrintSummary writes the cross-run statistics of a result set.
func PrintSummary(w io.Writer, set *analysis.ResultSet) {
	summary := set.Summary()
	fmt.Fprintln(w, "===== Batch Summary =====")
	fmt.Fprintf(w, "runs:               %d\n", len(set.Results()))
	fmt.Fprintf(w, "histogram bins:     %d\n", set.BinCount())
	fmt.Fprintf(w, "avg performance:    %s\n", formatAbsent(summary.AvgPerformance))
	fmt.Fprintf(w, "stdev performance:  %s\n", formatAbsent(summary.StDevPerformance))
	fmt.Fprintf(w, "entropy (bits):     %s\n", formatAbsent(summary.Entropy))
}

// PrintRun writes the per-trajectory statistics of one run. stateNames may
// be empty, in which case the probability table is skipped.
func PrintRun(w io.Writer, r record.Result, stateNames []string) {
	ss := analysis.NewStateSpace(r.StateSpace)
	fmt.Fprintf(w, "run %s: %d agents over %d ticks\n", r.RunID, ss.AgentCount(), ss.Length())
	fmt.Fprintf(w, "  state averages:  %v\n", ss.AgentStateAverage())
	if len(stateNames) > 0 {
		fmt.Fprintf(w, "  state probabilities: %v\n", ss.AgentStateProbabilities(stateNames))
	}
	fmt.Fprintf(w, "  coordination:    %v\n", ss.AgentStateCoordinationMatrix())
}

// formatAbsent renders a possibly-nil statistic; nil means no data.
func formatAbsent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.6f", *v)
}
