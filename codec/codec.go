// Package codec - Image decode/encode and input enumeration for the pipeline.
package codec

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/pixbench/pixbench/pixel"
)

// jpegQuality applied on save. High enough to keep edge maps crisp.
const jpegQuality = 95

// Load reads and decodes a PNG, JPEG, or BMP file into a packed RGB image.
// Sources with an alpha channel are normalized to three channels; the alpha
// values are dropped.
//
// Arguments:
// - path: File to decode. The format is sniffed from the content, not the
//   extension.
//
// Returns:
// - *pixel.Image: The decoded three-channel image.
// - error: Error if the file cannot be opened or decoded.
func Load(path string) (*pixel.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening image %s", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding image %s", path)
	}

	return FromImage(src), nil
}

// Save encodes an image to path, choosing the format from the extension:
// .png, .jpg/.jpeg, or .bmp (case-insensitive). PNG and BMP are lossless
// round-trips of the pixel bytes.
func Save(path string, img *pixel.Image) error {
	if img.Empty() {
		return errors.New("cannot save an empty image")
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp":
	default:
		return errors.Errorf("unsupported image extension %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	dst := toNRGBA(img)
	var encErr error
	switch ext {
	case ".png":
		encErr = png.Encode(f, dst)
	case ".jpg", ".jpeg":
		encErr = jpeg.Encode(f, dst, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		encErr = bmp.Encode(f, dst)
	}

	closeErr := f.Close()
	if encErr != nil {
		return errors.Wrapf(encErr, "encoding %s", path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "writing %s", path)
	}
	return nil
}

// FromImage packs any image.Image into interleaved RGB. Decoders hand
// back NRGBA or RGBA for the formats we accept; those take the byte-copy
// path, everything else goes through the color model.
func FromImage(src image.Image) *pixel.Image {
	bounds := src.Bounds()
	out := pixel.New(bounds.Dx(), bounds.Dy())

	switch m := src.(type) {
	case *image.NRGBA:
		packRGBA(out, m.Pix[m.PixOffset(bounds.Min.X, bounds.Min.Y):], m.Stride)
	case *image.RGBA:
		packRGBA(out, m.Pix[m.PixOffset(bounds.Min.X, bounds.Min.Y):], m.Stride)
	default:
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := src.At(x, y).RGBA()
				out.Pix[i] = byte(r >> 8)
				out.Pix[i+1] = byte(g >> 8)
				out.Pix[i+2] = byte(b >> 8)
				i += pixel.RGBChannels
			}
		}
	}

	return out
}

// packRGBA copies the RGB bytes out of a 4-byte interleaved buffer.
func packRGBA(dst *pixel.Image, pix []byte, stride int) {
	i := 0
	for y := 0; y < dst.Height; y++ {
		row := y * stride
		for x := 0; x < dst.Width; x++ {
			s := row + x*4
			dst.Pix[i] = pix[s]
			dst.Pix[i+1] = pix[s+1]
			dst.Pix[i+2] = pix[s+2]
			i += pixel.RGBChannels
		}
	}
}

// toNRGBA expands packed RGB into an opaque NRGBA for the encoders.
func toNRGBA(img *pixel.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	s := 0
	for y := 0; y < img.Height; y++ {
		d := y * dst.Stride
		for x := 0; x < img.Width; x++ {
			dst.Pix[d] = img.Pix[s]
			dst.Pix[d+1] = img.Pix[s+1]
			dst.Pix[d+2] = img.Pix[s+2]
			dst.Pix[d+3] = 0xFF
			d += 4
			s += img.Channels
		}
	}
	return dst
}
