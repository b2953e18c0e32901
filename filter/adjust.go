package filter

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/gogpu/rasterkit"
)

// ErrUnpaddedBuffer is returned when a buffer's length is not a
// multiple of 4 (whole RGBA pixels).
var ErrUnpaddedBuffer = errors.New("filter: buffer length not a multiple of 4")

// Adjust applies brightness, contrast, and saturation adjustments to
// an RGBA buffer in place. Alpha is never modified.
//
// Per pixel, in order, before any clamping:
//   - brightness in [-1, 1]: additive, channel += brightness*255
//   - contrast in [-1, 1]: channel = (channel-128)*(1+contrast)^2 + 128
//   - saturation: channel = gray + saturation*(channel-gray), where
//     gray is the Rec. 601 luma 0.299R + 0.587G + 0.114B of the
//     adjusted values. 0 desaturates fully, 1 is identity; values
//     outside [0, 1] extrapolate (oversaturate or invert chroma).
//
// R, G, B are finally clamped to [0, 255] and truncated.
func Adjust(data []uint8, brightness, contrast, saturation float32) error {
	if len(data)%4 != 0 {
		return ErrUnpaddedBuffer
	}

	contrastFactor := (1 + contrast) * (1 + contrast)

	for i := 0; i < len(data); i += 4 {
		r := float32(data[i+0])
		g := float32(data[i+1])
		b := float32(data[i+2])

		// Brightness
		r += brightness * 255
		g += brightness * 255
		b += brightness * 255

		// Contrast, centered on the midpoint
		r = (r-128)*contrastFactor + 128
		g = (g-128)*contrastFactor + 128
		b = (b-128)*contrastFactor + 128

		// Saturation, toward the luma of the adjusted values
		gray := 0.299*r + 0.587*g + 0.114*b
		r = gray + saturation*(r-gray)
		g = gray + saturation*(g-gray)
		b = gray + saturation*(b-gray)

		data[i+0] = uint8(math32.Min(math32.Max(r, 0), 255))
		data[i+1] = uint8(math32.Min(math32.Max(g, 0), 255))
		data[i+2] = uint8(math32.Min(math32.Max(b, 0), 255))
	}

	return nil
}

// AdjustPixmap is Adjust for hosts holding a Pixmap. The pixmap's
// buffer is modified in place.
func AdjustPixmap(p *rasterkit.Pixmap, brightness, contrast, saturation float32) error {
	return Adjust(p.Data(), brightness, contrast, saturation)
}
