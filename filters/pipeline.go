// Package filters - In-place pixel transforms producing the benchmark workload.
package filters

import "github.com/pixbench/pixbench/pixel"

// DefaultBlurRadius is the blur radius the composed pipeline runs with.
const DefaultBlurRadius = 2

// Apply runs the full workload on one image: grayscale conversion, box blur
// at the default radius, then Sobel edge detection. The output depends only
// on the input bytes, which is what makes per-image parallelism safe.
func Apply(img *pixel.Image) {
	Grayscale(img)
	BoxBlur(img, DefaultBlurRadius)
	SobelEdge(img)
}
