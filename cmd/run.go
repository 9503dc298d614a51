package cmd

import (
	"github.com/pixbench/pixbench/bench"
	"github.com/pixbench/pixbench/internal/logging"
)

// Flags shared by the serial and parallel commands.
var (
	flagInput   string
	flagOutput  string
	flagMetrics string
	flagConfig  string
	flagWorkers int
)

// resolveConfig layers the configuration for one run: stock defaults for
// the variant, then an optional config file, then PIXBENCH_* environment
// variables, then whatever flags were set on the command line.
func resolveConfig(variant string) (*bench.Config, error) {
	cfg := bench.DefaultConfig(variant)

	if flagConfig != "" {
		fileCfg, err := bench.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}
	cfg.ApplyEnv()

	cfg.Merge(&bench.Config{
		InputDir:    flagInput,
		OutputDir:   flagOutput,
		MetricsPath: flagMetrics,
		Workers:     flagWorkers,
		LogLevel:    flagLogLevel,
		LogFormat:   flagLogFormat,
	})
	cfg.Variant = variant
	return cfg, nil
}

// runBenchmark executes one benchmark run end to end: resolve the config,
// run the variant's strategy, persist the run record, log the summary.
//
// A fatal setup failure still persists the record so a zeroed metrics file
// marks the attempt, and the command exits non-zero.
func runBenchmark(variant string) error {
	cfg, err := resolveConfig(variant)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	runner := bench.NewRunner(log, cfg.Workers)

	log.Info("starting benchmark run",
		"variant", cfg.Variant,
		"input_dir", cfg.InputDir,
		"output_dir", cfg.OutputDir,
		"workers", runner.Workers(),
	)

	var (
		metrics bench.RunMetrics
		runErr  error
	)
	switch cfg.Variant {
	case bench.VariantParallel:
		metrics, runErr = runner.RunParallel(cfg.InputDir, cfg.OutputDir)
	default:
		metrics, runErr = runner.RunSequential(cfg.InputDir, cfg.OutputDir)
	}

	if runErr != nil {
		log.Error("benchmark run failed", "variant", cfg.Variant, "error", runErr)
	} else {
		log.Info("benchmark run finished",
			"images_processed", metrics.ImagesProcessed,
			"total_pixels", metrics.TotalPixels,
			"wall_time_sec", metrics.WallTimeSec,
			"avg_time_per_image_ms", metrics.AvgTimePerImageMS,
			"threads_used", metrics.ThreadsUsed,
		)
	}

	rec := bench.NewRunRecord(cfg.Variant, cfg.InputDir, cfg.OutputDir, metrics)
	if err := bench.SaveRunRecord(cfg.MetricsPath, rec); err != nil {
		log.Error("writing metrics failed", "path", cfg.MetricsPath, "error", err)
		if runErr != nil {
			return runErr
		}
		return err
	}
	log.Info("metrics written", "path", cfg.MetricsPath, "run_id", rec.RunID)

	return runErr
}
