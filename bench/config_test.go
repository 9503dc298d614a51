package bench

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	serial := DefaultConfig(VariantSerial)
	assert.Equal(t, DefaultInputDir, serial.InputDir)
	assert.Equal(t, DefaultSerialOutputDir, serial.OutputDir)
	assert.Equal(t, DefaultSerialMetricsPath, serial.MetricsPath)
	assert.Equal(t, VariantSerial, serial.Variant)
	assert.Zero(t, serial.Workers)
	assert.Equal(t, "info", serial.LogLevel)
	assert.Equal(t, "text", serial.LogFormat)

	parallel := DefaultConfig(VariantParallel)
	assert.Equal(t, DefaultParallelOutputDir, parallel.OutputDir)
	assert.Equal(t, DefaultParallelMetricsPath, parallel.MetricsPath)
	assert.Equal(t, VariantParallel, parallel.Variant)
}

func TestConfigMerge(t *testing.T) {
	cfg := DefaultConfig(VariantSerial)

	cfg.Merge(&Config{InputDir: "custom/in", Workers: 6})
	assert.Equal(t, "custom/in", cfg.InputDir)
	assert.Equal(t, 6, cfg.Workers)
	// Zero-valued overlay fields leave the base alone.
	assert.Equal(t, DefaultSerialOutputDir, cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)

	cfg.Merge(nil)
	assert.Equal(t, "custom/in", cfg.InputDir)

	cfg.Merge(&Config{OutputDir: "custom/out", LogFormat: "json"})
	assert.Equal(t, "custom/in", cfg.InputDir)
	assert.Equal(t, "custom/out", cfg.OutputDir)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestConfigApplyEnv(t *testing.T) {
	t.Setenv("PIXBENCH_INPUT_DIR", "env/in")
	t.Setenv("PIXBENCH_OUTPUT_DIR", "env/out")
	t.Setenv("PIXBENCH_METRICS_PATH", "env/metrics.json")
	t.Setenv("PIXBENCH_WORKERS", "5")
	t.Setenv("PIXBENCH_LOG_LEVEL", "debug")
	t.Setenv("PIXBENCH_LOG_FORMAT", "json")

	cfg := DefaultConfig(VariantParallel)
	cfg.ApplyEnv()

	assert.Equal(t, "env/in", cfg.InputDir)
	assert.Equal(t, "env/out", cfg.OutputDir)
	assert.Equal(t, "env/metrics.json", cfg.MetricsPath)
	assert.Equal(t, 5, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestConfigApplyEnvIgnoresBadWorkers(t *testing.T) {
	t.Setenv("PIXBENCH_WORKERS", "many")

	cfg := DefaultConfig(VariantSerial)
	cfg.Workers = 2
	cfg.ApplyEnv()

	assert.Equal(t, 2, cfg.Workers)
}

func TestConfigFileRoundTrip(t *testing.T) {
	cfg := &Config{
		InputDir:    "data/in",
		OutputDir:   "data/out",
		MetricsPath: "results/m.json",
		Variant:     VariantParallel,
		Workers:     8,
		LogLevel:    "warn",
		LogFormat:   "json",
	}

	for _, name := range []string{"cfg.yaml", "cfg.yml", "cfg.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, cfg.SaveConfig(path))

			got, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
