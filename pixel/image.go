// Package pixel - In-memory image buffer shared by the filter pipeline.
package pixel

// RGBChannels is the channel count of every image entering the pipeline.
// Sources with an alpha channel are normalized down to three channels by
// the codec before they get here.
const RGBChannels = 3

// Image is a packed, interleaved byte image. Pix holds Width*Height*Channels
// bytes laid out row-major, one Channels-sized group per pixel.
type Image struct {
	// The width of the image in pixels.
	Width int `json:"width" yaml:"width"`
	// The height of the image in pixels.
	Height int `json:"height" yaml:"height"`
	// The number of interleaved channels per pixel.
	Channels int `json:"channels" yaml:"channels"`
	// The raw interleaved channel data.
	Pix []byte `json:"pix" yaml:"pix"`
}

// New allocates a zeroed RGB image of the given dimensions.
//
// Arguments:
// - width: Image width in pixels.
// - height: Image height in pixels.
//
// Returns:
// - *Image: A three-channel image whose buffer length is width*height*3.
func New(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: RGBChannels,
		Pix:      make([]byte, width*height*RGBChannels),
	}
}

// Empty reports whether the image holds no pixel data. Filters treat empty
// images as silent no-ops.
func (img *Image) Empty() bool {
	return img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) == 0
}

// PixelCount returns the number of pixels in the image.
func (img *Image) PixelCount() int {
	if img == nil {
		return 0
	}
	return img.Width * img.Height
}

// Offset returns the index of the first channel of the pixel at (x, y).
func (img *Image) Offset(x, y int) int {
	return (y*img.Width + x) * img.Channels
}

// Clone returns a deep copy with its own pixel buffer.
func (img *Image) Clone() *Image {
	if img == nil {
		return nil
	}
	dup := &Image{
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Channels,
		Pix:      make([]byte, len(img.Pix)),
	}
	copy(dup.Pix, img.Pix)
	return dup
}
