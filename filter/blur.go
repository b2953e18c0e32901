package filter

import (
	"github.com/gogpu/rasterkit"
)

// BoxBlur applies a separable box (mean) blur to an RGBA buffer and
// returns a newly allocated buffer of the same length. The input is
// never modified.
//
// The blur runs in two passes: a horizontal mean over the inclusive
// window [x-radius, x+radius] into a temp buffer, then a vertical mean
// over [y-radius, y+radius] into the output. Windows are clamped to
// the buffer edges, so the sample count shrinks near borders; there is
// no wraparound or zero padding. Per-channel sums use truncating
// integer division, and alpha is averaged like any other channel.
//
// radius <= 0 returns a copy of the input. Returns an error if
// len(data) != width*height*4.
func BoxBlur(data []uint8, width, height, radius int) ([]uint8, error) {
	if err := rasterkit.ValidateBuffer(data, width, height); err != nil {
		return nil, err
	}

	out := make([]uint8, len(data))
	if radius <= 0 {
		copy(out, data)
		return out, nil
	}

	// The vertical pass reads values the horizontal pass wrote, so the
	// intermediate buffer must not alias the input or output.
	temp := make([]uint8, len(data))

	blurRows(data, temp, width, height, radius)
	blurColumns(temp, out, width, height, radius)

	return out, nil
}

// BoxBlurPixmap is BoxBlur for hosts holding a Pixmap. It returns a
// new pixmap and leaves the source untouched.
func BoxBlurPixmap(src *rasterkit.Pixmap, radius int) (*rasterkit.Pixmap, error) {
	out, err := BoxBlur(src.Data(), src.Width(), src.Height(), radius)
	if err != nil {
		return nil, err
	}
	return rasterkit.WrapPixmap(out, src.Width(), src.Height())
}

// blurRows performs the horizontal pass: each output pixel is the
// truncated mean of the in-bounds samples in [x-radius, x+radius].
func blurRows(src, dst []uint8, width, height, radius int) {
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			lo := x - radius
			if lo < 0 {
				lo = 0
			}
			hi := x + radius
			if hi > width-1 {
				hi = width - 1
			}

			var rSum, gSum, bSum, aSum uint32
			for nx := lo; nx <= hi; nx++ {
				i := (row + nx) * 4
				rSum += uint32(src[i+0])
				gSum += uint32(src[i+1])
				bSum += uint32(src[i+2])
				aSum += uint32(src[i+3])
			}

			count := uint32(hi - lo + 1)
			i := (row + x) * 4
			dst[i+0] = uint8(rSum / count)
			dst[i+1] = uint8(gSum / count)
			dst[i+2] = uint8(bSum / count)
			dst[i+3] = uint8(aSum / count)
		}
	}
}

// blurColumns performs the vertical pass with the same clamped-window
// mean applied along columns.
func blurColumns(src, dst []uint8, width, height, radius int) {
	for y := 0; y < height; y++ {
		lo := y - radius
		if lo < 0 {
			lo = 0
		}
		hi := y + radius
		if hi > height-1 {
			hi = height - 1
		}
		count := uint32(hi - lo + 1)

		for x := 0; x < width; x++ {
			var rSum, gSum, bSum, aSum uint32
			for ny := lo; ny <= hi; ny++ {
				i := (ny*width + x) * 4
				rSum += uint32(src[i+0])
				gSum += uint32(src[i+1])
				bSum += uint32(src[i+2])
				aSum += uint32(src[i+3])
			}

			i := (y*width + x) * 4
			dst[i+0] = uint8(rSum / count)
			dst[i+1] = uint8(gSum / count)
			dst[i+2] = uint8(bSum / count)
			dst[i+3] = uint8(aSum / count)
		}
	}
}
