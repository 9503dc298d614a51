package bench

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixbench/pixbench/codec"
	"github.com/pixbench/pixbench/pixel"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTestImage saves a deterministic PNG of the given size under dir.
func writeTestImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := pixel.New(width, height)
	for i := range img.Pix {
		img.Pix[i] = byte((i*7 + 13) % 251)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, codec.Save(path, img))
	return path
}

// fixtureSet writes a small mixed-size input set and returns its directory.
func fixtureSet(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestImage(t, dir, "a.png", 8, 6)
	writeTestImage(t, dir, "b.png", 5, 9)
	writeTestImage(t, dir, "c.png", 12, 4)
	writeTestImage(t, dir, "d.png", 7, 7)
	writeTestImage(t, dir, "e.png", 3, 3)
	return dir
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, 0)
	assert.Equal(t, runtime.NumCPU(), r.Workers())
	assert.NotNil(t, r.log)

	r = NewRunner(discardLogger(), -2)
	assert.Equal(t, runtime.NumCPU(), r.Workers())

	r = NewRunner(discardLogger(), 3)
	assert.Equal(t, 3, r.Workers())
}

func TestRunSequential(t *testing.T) {
	inDir := fixtureSet(t)
	outDir := filepath.Join(t.TempDir(), "out")

	m, err := NewRunner(discardLogger(), 1).RunSequential(inDir, outDir)
	require.NoError(t, err)

	assert.Equal(t, 5, m.ImagesProcessed)
	assert.Equal(t, int64(8*6+5*9+12*4+7*7+3*3), m.TotalPixels)
	assert.Equal(t, 12, m.MaxWidth)
	assert.Equal(t, 9, m.MaxHeight)
	assert.Equal(t, 1, m.ThreadsUsed)
	assert.GreaterOrEqual(t, m.WallTimeSec, 0.0)

	outputs, err := codec.ListImages(outDir)
	require.NoError(t, err)
	assert.Len(t, outputs, 5)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	inDir := fixtureSet(t)
	seqOut := filepath.Join(t.TempDir(), "seq")
	parOut := filepath.Join(t.TempDir(), "par")

	seq, err := NewRunner(discardLogger(), 1).RunSequential(inDir, seqOut)
	require.NoError(t, err)
	par, err := NewRunner(discardLogger(), 4).RunParallel(inDir, parOut)
	require.NoError(t, err)

	assert.Equal(t, seq.ImagesProcessed, par.ImagesProcessed)
	assert.Equal(t, seq.TotalPixels, par.TotalPixels)
	assert.Equal(t, seq.MaxWidth, par.MaxWidth)
	assert.Equal(t, seq.MaxHeight, par.MaxHeight)
	assert.Equal(t, 1, seq.ThreadsUsed)
	assert.Equal(t, 4, par.ThreadsUsed)

	// Same pipeline, same inputs: outputs must be byte-identical no
	// matter which strategy produced them.
	seqFiles, err := codec.ListImages(seqOut)
	require.NoError(t, err)
	parFiles, err := codec.ListImages(parOut)
	require.NoError(t, err)
	require.Len(t, parFiles, len(seqFiles))

	for i := range seqFiles {
		assert.Equal(t, filepath.Base(seqFiles[i]), filepath.Base(parFiles[i]))
		a, err := os.ReadFile(seqFiles[i])
		require.NoError(t, err)
		b, err := os.ReadFile(parFiles[i])
		require.NoError(t, err)
		assert.Equal(t, a, b, "output %s differs between strategies", filepath.Base(seqFiles[i]))
	}
}

func TestRunParallelMoreWorkersThanFiles(t *testing.T) {
	inDir := t.TempDir()
	writeTestImage(t, inDir, "one.png", 6, 6)
	writeTestImage(t, inDir, "two.png", 4, 4)

	m, err := NewRunner(discardLogger(), 8).RunParallel(inDir, filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	assert.Equal(t, 2, m.ImagesProcessed)
	// The pool is clamped to the file count, but the metrics report the
	// configured pool size.
	assert.Equal(t, 8, m.ThreadsUsed)
}

func TestRunSkipsUnreadableFiles(t *testing.T) {
	inDir := t.TempDir()
	writeTestImage(t, inDir, "good1.png", 6, 5)
	writeTestImage(t, inDir, "good2.png", 4, 8)
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "corrupt.png"), []byte("not a png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("ignore me"), 0o644))

	m, err := NewRunner(discardLogger(), 2).RunSequential(inDir, filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	assert.Equal(t, 2, m.ImagesProcessed)
	assert.Equal(t, int64(6*5+4*8), m.TotalPixels)
}

func TestRunOnlyCorruptFiles(t *testing.T) {
	inDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "corrupt.png"), []byte{0x00, 0x01}, 0o644))

	m, err := NewRunner(discardLogger(), 1).RunSequential(inDir, filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	assert.Zero(t, m.ImagesProcessed)
	assert.Zero(t, m.TotalPixels)
}

func TestRunMissingInputDirFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	m, err := NewRunner(discardLogger(), 1).RunSequential(missing, t.TempDir())
	require.Error(t, err)
	assert.Zero(t, m.ImagesProcessed)
	assert.Zero(t, m.WallTimeSec)

	m, err = NewRunner(discardLogger(), 4).RunParallel(missing, t.TempDir())
	require.Error(t, err)
	assert.Zero(t, m.ImagesProcessed)
}

func TestRunEmptyInputDir(t *testing.T) {
	m, err := NewRunner(discardLogger(), 1).RunSequential(t.TempDir(), filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	assert.Zero(t, m.ImagesProcessed)
	assert.Equal(t, 1, m.ThreadsUsed)

	m, err = NewRunner(discardLogger(), 4).RunParallel(t.TempDir(), filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	assert.Zero(t, m.ImagesProcessed)
	assert.Equal(t, 4, m.ThreadsUsed)
}

func TestRunSaveFailureStillCounts(t *testing.T) {
	inDir := t.TempDir()
	writeTestImage(t, inDir, "a.png", 5, 5)
	writeTestImage(t, inDir, "b.png", 6, 6)

	// A regular file where the output directory should be makes every
	// save fail; processing is still accounted for.
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("in the way"), 0o644))

	m, err := NewRunner(discardLogger(), 1).RunSequential(inDir, blocked)
	require.NoError(t, err)
	assert.Equal(t, 2, m.ImagesProcessed)
	assert.Equal(t, int64(5*5+6*6), m.TotalPixels)
}
