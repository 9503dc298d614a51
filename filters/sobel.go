package filters

import (
	"github.com/chewxy/math32"

	"github.com/pixbench/pixbench/pixel"
)

// SobelEdge replaces interior pixels with the Sobel gradient magnitude of
// the image luminance, written to all three channels. Only x in [1, w-2]
// and y in [1, h-2] is written; the outermost ring keeps whatever values it
// entered with. Magnitude is round(sqrt(gx^2+gy^2)) clamped to 255. Images
// without an interior (smaller than 3x3) are left untouched, as are empty
// images and images with fewer than three channels.
func SobelEdge(img *pixel.Image) {
	if img.Empty() || img.Channels < pixel.RGBChannels {
		return
	}

	w, h, c := img.Width, img.Height, img.Channels
	if w < 3 || h < 3 {
		return
	}

	lum := scratchBytes(w * h)
	defer recycle(lum)
	for i, j := 0, 0; i < len(img.Pix); i, j = i+c, j+1 {
		lum[j] = luma(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	}

	// Fixed 3x3 gradient kernels, unrolled with the zero taps omitted:
	//   gx: {-1 0 1, -2 0 2, -1 0 1}   gy: {-1 -2 -1, 0 0 0, 1 2 1}
	for y := 1; y < h-1; y++ {
		up := (y - 1) * w
		mid := y * w
		down := (y + 1) * w

		for x := 1; x < w-1; x++ {
			gx := -int(lum[up+x-1]) + int(lum[up+x+1]) -
				2*int(lum[mid+x-1]) + 2*int(lum[mid+x+1]) -
				int(lum[down+x-1]) + int(lum[down+x+1])
			gy := -int(lum[up+x-1]) - 2*int(lum[up+x]) - int(lum[up+x+1]) +
				int(lum[down+x-1]) + 2*int(lum[down+x]) + int(lum[down+x+1])

			mag := math32.Round(math32.Sqrt(float32(gx*gx + gy*gy)))
			if mag > 255 {
				mag = 255
			}

			e := byte(mag)
			idx := (mid + x) * c
			img.Pix[idx], img.Pix[idx+1], img.Pix[idx+2] = e, e, e
		}
	}
}
