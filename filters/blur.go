package filters

import (
	"sync"

	"github.com/pixbench/pixbench/pixel"
)

// scratch recycles intermediate buffers between filter calls. Parallel runs
// blur distinct images concurrently, so the pool must be safe for that.
var scratch sync.Pool

func scratchBytes(n int) []byte {
	if v := scratch.Get(); v != nil {
		buf := v.([]byte)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]byte, n)
}

func recycle(buf []byte) {
	scratch.Put(buf)
}

// BoxBlur applies a separable mean blur in two passes: horizontal into a
// scratch buffer, then vertical back into the image. Windows clamp to the
// image bounds and shrink near borders, so the divisor is the actual sample
// count for that pixel; division truncates. A radius <= 0, an empty image,
// or fewer than three channels is a no-op.
func BoxBlur(img *pixel.Image, radius int) {
	if img.Empty() || img.Channels < pixel.RGBChannels || radius <= 0 {
		return
	}

	w, h, c := img.Width, img.Height, img.Channels
	tmp := scratchBytes(len(img.Pix))
	defer recycle(tmp)

	// Horizontal pass.
	for y := 0; y < h; y++ {
		row := y * w * c
		for x := 0; x < w; x++ {
			lo := x - radius
			if lo < 0 {
				lo = 0
			}
			hi := x + radius
			if hi > w-1 {
				hi = w - 1
			}
			n := hi - lo + 1

			var sumR, sumG, sumB int
			for xx := lo; xx <= hi; xx++ {
				idx := row + xx*c
				sumR += int(img.Pix[idx])
				sumG += int(img.Pix[idx+1])
				sumB += int(img.Pix[idx+2])
			}

			idx := row + x*c
			tmp[idx] = byte(sumR / n)
			tmp[idx+1] = byte(sumG / n)
			tmp[idx+2] = byte(sumB / n)
		}
	}

	// Vertical pass over the horizontal result, writing the final values
	// back into the original buffer.
	for y := 0; y < h; y++ {
		lo := y - radius
		if lo < 0 {
			lo = 0
		}
		hi := y + radius
		if hi > h-1 {
			hi = h - 1
		}
		n := hi - lo + 1

		for x := 0; x < w; x++ {
			var sumR, sumG, sumB int
			for yy := lo; yy <= hi; yy++ {
				idx := (yy*w + x) * c
				sumR += int(tmp[idx])
				sumG += int(tmp[idx+1])
				sumB += int(tmp[idx+2])
			}

			idx := (y*w + x) * c
			img.Pix[idx] = byte(sumR / n)
			img.Pix[idx+1] = byte(sumG / n)
			img.Pix[idx+2] = byte(sumB / n)
		}
	}
}
