// Package bench - Benchmark harness, run metrics, and cross-run comparison.
package bench

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pixbench/pixbench/codec"
	"github.com/pixbench/pixbench/filters"
)

// Runner drives the filter pipeline over a directory of images and produces
// the metrics for one run. Pipeline code never reads a clock; the Runner
// captures the timing samples around the whole pass and hands them to the
// metrics constructor.
type Runner struct {
	log     *slog.Logger
	workers int
}

// NewRunner builds a Runner.
//
// Arguments:
// - log: Diagnostic sink for setup and per-file failures. nil falls back to
//   slog.Default().
// - workers: Worker pool size for parallel runs; values <= 0 mean
//   runtime.NumCPU().
func NewRunner(log *slog.Logger, workers int) *Runner {
	if log == nil {
		log = slog.Default()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{log: log, workers: workers}
}

// Workers returns the pool size parallel runs execute with.
func (r *Runner) Workers() int {
	return r.workers
}

// RunSequential processes every image in inputDir one at a time in
// enumeration order, writing results to outputDir.
//
// A missing or unreadable input directory aborts the run and returns
// all-zero metrics alongside the error. Per-file load and save failures are
// logged and skipped; they never abort the run.
func (r *Runner) RunSequential(inputDir, outputDir string) (RunMetrics, error) {
	files, err := r.prepare(inputDir, outputDir)
	if err != nil {
		return RunMetrics{}, err
	}
	if len(files) == 0 {
		r.log.Info("no images found", "input_dir", inputDir)
		s := ReadSample()
		return NewRunMetrics(Tally{}, s, s, 1), nil
	}

	start := ReadSample()
	var tally Tally
	for _, path := range files {
		r.processFile(path, outputDir, &tally)
	}
	end := ReadSample()

	return NewRunMetrics(tally, start, end, 1), nil
}

// RunParallel processes the images with a fixed pool of workers pulling one
// image task at a time. An image is owned by exactly one worker from load
// to save; the only state crossing workers is the per-worker tallies, which
// merge after the pool drains. Because Merge is associative and
// commutative, the final metrics are identical however tasks interleave.
func (r *Runner) RunParallel(inputDir, outputDir string) (RunMetrics, error) {
	files, err := r.prepare(inputDir, outputDir)
	if err != nil {
		return RunMetrics{}, err
	}
	if len(files) == 0 {
		r.log.Info("no images found", "input_dir", inputDir)
		s := ReadSample()
		return NewRunMetrics(Tally{}, s, s, r.workers), nil
	}

	workers := r.workers
	if workers > len(files) {
		workers = len(files)
	}

	start := ReadSample()

	tasks := make(chan string, len(files))
	for _, path := range files {
		tasks <- path
	}
	close(tasks)

	partials := make([]Tally, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			var local Tally
			for path := range tasks {
				r.processFile(path, outputDir, &local)
			}
			partials[slot] = local
		}(i)
	}
	wg.Wait()

	var tally Tally
	for _, partial := range partials {
		tally = tally.Merge(partial)
	}
	end := ReadSample()

	return NewRunMetrics(tally, start, end, r.workers), nil
}

// prepare enumerates the input set and makes sure the output directory
// exists. Only the input side can abort a run; a bad output directory just
// means every save will fail and be reported per file.
func (r *Runner) prepare(inputDir, outputDir string) ([]string, error) {
	files, err := codec.ListImages(inputDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		r.log.Warn("cannot create output directory, saves will fail",
			"output_dir", outputDir, "error", err)
	}
	return files, nil
}

// processFile runs load, pipeline, save for one image and accounts for it
// in the tally. A load failure skips the file entirely; a save failure is
// reported but the processing work stays counted.
func (r *Runner) processFile(path, outputDir string, tally *Tally) {
	img, err := codec.Load(path)
	if err != nil {
		r.log.Warn("skipping image that failed to load", "path", path, "error", err)
		return
	}

	filters.Apply(img)
	tally.Add(img.Width, img.Height)

	outPath := filepath.Join(outputDir, filepath.Base(path))
	if err := codec.Save(outPath, img); err != nil {
		r.log.Warn("failed to save processed image", "path", outPath, "error", err)
	}
}
