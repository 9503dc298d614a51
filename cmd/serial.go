package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pixbench/pixbench/bench"
)

var serialCmd = &cobra.Command{
	Use:   "serial",
	Short: "Run the pipeline over the input set one image at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmark(bench.VariantSerial)
	},
}

func init() {
	serialCmd.Flags().StringVarP(&flagInput, "input", "i", "", "input directory (default "+bench.DefaultInputDir+")")
	serialCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (default "+bench.DefaultSerialOutputDir+")")
	serialCmd.Flags().StringVarP(&flagMetrics, "metrics", "m", "", "metrics file to write (default "+bench.DefaultSerialMetricsPath+")")
	serialCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "config file, YAML or JSON")
	rootCmd.AddCommand(serialCmd)
}
