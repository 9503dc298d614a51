package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pixbench/pixbench/bench"
)

var parallelCmd = &cobra.Command{
	Use:   "parallel",
	Short: "Run the pipeline over the input set with a worker pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmark(bench.VariantParallel)
	},
}

func init() {
	parallelCmd.Flags().StringVarP(&flagInput, "input", "i", "", "input directory (default "+bench.DefaultInputDir+")")
	parallelCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (default "+bench.DefaultParallelOutputDir+")")
	parallelCmd.Flags().StringVarP(&flagMetrics, "metrics", "m", "", "metrics file to write (default "+bench.DefaultParallelMetricsPath+")")
	parallelCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "config file, YAML or JSON")
	parallelCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "worker pool size, 0 means all CPUs")
	rootCmd.AddCommand(parallelCmd)
}
