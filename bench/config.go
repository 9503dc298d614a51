package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Variant labels stamped on run records.
const (
	VariantSerial   = "serial"
	VariantParallel = "parallel"
)

// Stock locations, relative to the working directory.
const (
	DefaultInputDir            = "data/input"
	DefaultSerialOutputDir     = "data/output_serial"
	DefaultParallelOutputDir   = "data/output_parallel"
	DefaultSerialMetricsPath   = "results/logs/serial_metrics.json"
	DefaultParallelMetricsPath = "results/logs/parallel_metrics.json"
	DefaultComparisonPath      = "results/logs/compare_metrics.json"
)

// Config carries the knobs of one benchmark run.
type Config struct {
	InputDir    string `json:"input_dir"    yaml:"input_dir"`
	OutputDir   string `json:"output_dir"   yaml:"output_dir"`
	MetricsPath string `json:"metrics_path" yaml:"metrics_path"`
	Variant     string `json:"variant"      yaml:"variant"`
	Workers     int    `json:"workers"      yaml:"workers"`
	LogLevel    string `json:"log_level"    yaml:"log_level"`
	LogFormat   string `json:"log_format"   yaml:"log_format"`
}

// DefaultConfig returns the stock configuration for a variant. Workers is
// left at 0, which the runner resolves to the hardware concurrency.
func DefaultConfig(variant string) *Config {
	cfg := &Config{
		InputDir:  DefaultInputDir,
		Variant:   variant,
		LogLevel:  "info",
		LogFormat: "text",
	}
	switch variant {
	case VariantParallel:
		cfg.OutputDir = DefaultParallelOutputDir
		cfg.MetricsPath = DefaultParallelMetricsPath
	default:
		cfg.OutputDir = DefaultSerialOutputDir
		cfg.MetricsPath = DefaultSerialMetricsPath
	}
	return cfg
}

// Merge overlays the non-zero fields of o on top of c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.InputDir != "" {
		c.InputDir = o.InputDir
	}
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if o.MetricsPath != "" {
		c.MetricsPath = o.MetricsPath
	}
	if o.Variant != "" {
		c.Variant = o.Variant
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
}

// ApplyEnv overlays PIXBENCH_* environment variables on top of c. Unset
// and empty variables leave the current values alone.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PIXBENCH_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("PIXBENCH_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("PIXBENCH_METRICS_PATH"); v != "" {
		c.MetricsPath = v
	}
	if v := os.Getenv("PIXBENCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv("PIXBENCH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PIXBENCH_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// LoadConfig reads a configuration file, YAML or JSON by extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	return &cfg, nil
}

// SaveConfig writes the configuration to a file, YAML or JSON by extension.
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
