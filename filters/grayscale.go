package filters

import "github.com/pixbench/pixbench/pixel"

// luma returns the luminance of an RGB triple using the fixed
// 0.299/0.587/0.114 weighting. The float result is truncated on the byte
// conversion, so pure white maps to 254.
func luma(r, g, b byte) byte {
	return byte(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}

// Grayscale overwrites every pixel with its luminance in all three
// channels. Empty images and images with fewer than three channels are
// left untouched.
func Grayscale(img *pixel.Image) {
	if img.Empty() || img.Channels < pixel.RGBChannels {
		return
	}

	c := img.Channels
	for i := 0; i < len(img.Pix); i += c {
		l := luma(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = l, l, l
	}
}
