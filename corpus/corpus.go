// Package corpus - Synthetic input generation for benchmark runs.
package corpus

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/pixbench/pixbench/codec"
)

// Render patterns cycled by image index.
var patternNames = []string{"gradient", "checker", "noise"}

// scaleLadder steps the output size after every full pattern cycle.
var scaleLadder = []float64{1, 1.5, 2, 0.5}

// Spec configures one corpus build. The same Spec always produces the same
// files byte for byte, so corpora are reproducible across machines.
type Spec struct {
	// Count is the number of images to write.
	Count int `json:"count" yaml:"count"`
	// BaseWidth and BaseHeight set the 1x rung of the size ladder.
	BaseWidth  int `json:"base_width"  yaml:"base_width"`
	BaseHeight int `json:"base_height" yaml:"base_height"`
	// Seed drives the noise renders.
	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultSpec returns a corpus sized for a quick local benchmark run.
func DefaultSpec() Spec {
	return Spec{Count: 12, BaseWidth: 320, BaseHeight: 240, Seed: 1}
}

// Generate writes spec.Count synthetic PNG images into dir and returns the
// written paths in index order. Images cycle through gradient, checker, and
// noise renders, stepping the size ladder after each full cycle; rungs off
// the base size are produced by Lanczos3 resampling of the base render.
// Each image depends only on the spec and its own index, so the parallel
// generation below yields identical files however the work interleaves.
//
// Arguments:
// - dir: Output directory, created if missing.
// - spec: Corpus parameters; a non-positive Count writes nothing.
//
// Returns:
// - []string: Paths of the generated files, ordered by index.
// - error: First directory, render, or save failure.
func Generate(dir string, spec Spec) ([]string, error) {
	if spec.Count <= 0 {
		return nil, nil
	}
	if spec.BaseWidth <= 0 || spec.BaseHeight <= 0 {
		return nil, errors.Errorf("corpus base size %dx%d is not positive", spec.BaseWidth, spec.BaseHeight)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating corpus directory %s", dir)
	}

	paths := make([]string, spec.Count)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < spec.Count; i++ {
		i := i
		g.Go(func() error {
			path := filepath.Join(dir, fileName(spec, i))
			if err := writeImage(path, spec, i); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// fileName encodes the index, pattern, and output size, so a directory
// listing sorts back into generation order.
func fileName(spec Spec, i int) string {
	w, h := dimensions(spec, i)
	return fmt.Sprintf("img_%03d_%s_%dx%d.png", i, patternNames[i%len(patternNames)], w, h)
}

// dimensions returns the output size for image index i.
func dimensions(spec Spec, i int) (int, int) {
	scale := scaleLadder[(i/len(patternNames))%len(scaleLadder)]
	w := int(float64(spec.BaseWidth)*scale + 0.5)
	h := int(float64(spec.BaseHeight)*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func writeImage(path string, spec Spec, i int) error {
	base := renderBase(spec, i)

	var out image.Image = base
	if w, h := dimensions(spec, i); w != spec.BaseWidth || h != spec.BaseHeight {
		out = resize.Resize(uint(w), uint(h), base, resize.Lanczos3)
	}
	return codec.Save(path, codec.FromImage(out))
}

func renderBase(spec Spec, i int) *image.NRGBA {
	w, h := spec.BaseWidth, spec.BaseHeight
	switch i % len(patternNames) {
	case 0:
		return renderGradient(w, h, i)
	case 1:
		return renderChecker(w, h, i)
	default:
		return renderNoise(w, h, rand.New(rand.NewSource(spec.Seed+int64(i))))
	}
}

// renderGradient fills a two-axis color ramp. Odd indexes flip the ramp so
// consecutive gradient images differ.
func renderGradient(w, h, i int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	maxX, maxY := w-1, h-1
	if maxX < 1 {
		maxX = 1
	}
	if maxY < 1 {
		maxY = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := byte(255 * x / maxX)
			g := byte(255 * y / maxY)
			if i%2 == 1 {
				r, g = 255-r, 255-g
			}

			o := img.PixOffset(x, y)
			img.Pix[o] = r
			img.Pix[o+1] = g
			img.Pix[o+2] = byte((int(r) + int(g)) / 2)
			img.Pix[o+3] = 0xFF
		}
	}
	return img
}

// renderChecker draws an alternating tile pattern whose tile size steps
// with the image index. The hard tile borders give Sobel something to find.
func renderChecker(w, h, i int) *image.NRGBA {
	tile := 8 + (i%4)*4
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(35)
			if (x/tile+y/tile)%2 == 0 {
				v = 220
			}

			o := img.PixOffset(x, y)
			img.Pix[o] = v
			img.Pix[o+1] = v
			img.Pix[o+2] = v
			img.Pix[o+3] = 0xFF
		}
	}
	return img
}

func renderNoise(w, h int, rng *rand.Rand) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for o := 0; o < len(img.Pix); o += 4 {
		img.Pix[o] = byte(rng.Intn(256))
		img.Pix[o+1] = byte(rng.Intn(256))
		img.Pix[o+2] = byte(rng.Intn(256))
		img.Pix[o+3] = 0xFF
	}
	return img
}
