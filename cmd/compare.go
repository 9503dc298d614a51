package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pixbench/pixbench/bench"
	"github.com/pixbench/pixbench/internal/logging"
)

var (
	flagBaseline   string
	flagCandidate  string
	flagCompareOut string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two persisted benchmark runs",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&flagBaseline, "baseline", bench.DefaultSerialMetricsPath, "metrics file of the reference run")
	compareCmd.Flags().StringVar(&flagCandidate, "candidate", bench.DefaultParallelMetricsPath, "metrics file of the run judged against the baseline")
	compareCmd.Flags().StringVar(&flagCompareOut, "out", bench.DefaultComparisonPath, "comparison file to write")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	log := logging.New(flagLogLevel, flagLogFormat)

	baseline, err := bench.LoadRunRecord(flagBaseline)
	if err != nil {
		log.Error("loading baseline run failed", "path", flagBaseline, "error", err)
		return err
	}
	candidate, err := bench.LoadRunRecord(flagCandidate)
	if err != nil {
		log.Error("loading candidate run failed", "path", flagCandidate, "error", err)
		return err
	}

	rec := bench.NewComparisonRecord(baseline, candidate)
	if err := bench.SaveComparisonRecord(flagCompareOut, rec); err != nil {
		log.Error("writing comparison failed", "path", flagCompareOut, "error", err)
		return err
	}

	log.Info("comparison written",
		"path", flagCompareOut,
		"baseline_variant", baseline.Variant,
		"candidate_variant", candidate.Variant,
		"speedup_wall_time", rec.Comparison.SpeedupWallTime,
		"speedup_pixels_per_sec", rec.Comparison.SpeedupPixelsPerSec,
		"parallel_efficiency", rec.Comparison.ParallelEfficiency,
	)
	return nil
}
