package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunRecord is the on-disk envelope for one run's metrics.
type RunRecord struct {
	RunID     string     `json:"run_id"`
	Variant   string     `json:"variant"`
	InputDir  string     `json:"input_dir"`
	OutputDir string     `json:"output_dir"`
	CreatedAt time.Time  `json:"created_at"`
	Metrics   RunMetrics `json:"metrics"`
}

// NewRunRecord stamps metrics with their run context for persistence.
func NewRunRecord(variant, inputDir, outputDir string, metrics RunMetrics) RunRecord {
	return RunRecord{
		RunID:     uuid.NewString(),
		Variant:   variant,
		InputDir:  inputDir,
		OutputDir: outputDir,
		CreatedAt: time.Now().UTC(),
		Metrics:   metrics,
	}
}

// ComparisonRecord embeds both source runs next to the derived figures so
// the comparison file stands on its own.
type ComparisonRecord struct {
	RunID      string     `json:"run_id"`
	CreatedAt  time.Time  `json:"created_at"`
	Baseline   RunRecord  `json:"baseline"`
	Candidate  RunRecord  `json:"candidate"`
	Comparison Comparison `json:"comparison"`
}

// NewComparisonRecord compares two persisted runs and wraps the result for
// persistence.
func NewComparisonRecord(baseline, candidate RunRecord) ComparisonRecord {
	return ComparisonRecord{
		RunID:      uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Baseline:   baseline,
		Candidate:  candidate,
		Comparison: Compare(baseline.Metrics, candidate.Metrics),
	}
}

// SaveRunRecord writes a run record as indented JSON, creating parent
// directories as needed.
func SaveRunRecord(path string, rec RunRecord) error {
	return writeJSON(path, rec)
}

// LoadRunRecord reads a run record back. Decoding is typed against the
// record schema; there is no alternate-key fallback for any field.
func LoadRunRecord(path string) (RunRecord, error) {
	var rec RunRecord
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("failed to read metrics file: %w", err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("failed to unmarshal metrics file: %w", err)
	}
	return rec, nil
}

// SaveComparisonRecord writes a comparison record as indented JSON.
func SaveComparisonRecord(path string, rec ComparisonRecord) error {
	return writeJSON(path, rec)
}

// LoadComparisonRecord reads a comparison record back.
func LoadComparisonRecord(path string) (ComparisonRecord, error) {
	var rec ComparisonRecord
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("failed to read comparison file: %w", err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("failed to unmarshal comparison file: %w", err)
	}
	return rec, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create metrics directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
