// Package cmd - Command line interface of the pixbench binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pixbench",
	Short: "Benchmark an image filter pipeline under sequential and parallel execution",
	Long: `pixbench runs a fixed filter pipeline (grayscale, box blur, Sobel edge
detection) over a directory of images, either one file at a time or fanned
out across a worker pool, and records wall clock, CPU time, and cycle
figures for each run. Two persisted runs can then be compared to measure
speedup and parallel efficiency.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file is optional; a missing one is not an error.
		_ = godotenv.Load()
	},
}

// Execute runs the command tree. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error (default info)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text or json (default text)")
}
