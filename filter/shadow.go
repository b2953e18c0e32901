package filter

import (
	"github.com/gogpu/rasterkit"
)

// DropShadow derives a drop shadow layer from an RGBA buffer and
// returns it as a newly allocated buffer of the same length.
//
// The algorithm:
//  1. Build the silhouette: each destination pixel samples the source
//     at (x-offsetX, y-offsetY). Out-of-bounds samples produce
//     transparent black. In-bounds samples take the shadow color's RGB
//     and alpha srcAlpha*shadowAlpha/255 (truncating).
//  2. Blur the silhouette with BoxBlur when blurRadius > 0.
//
// The result is the shadow layer alone; compositing it under the
// original image is the host's job.
func DropShadow(data []uint8, width, height, offsetX, offsetY, blurRadius int, shadowColor rasterkit.PackedColor) ([]uint8, error) {
	if err := rasterkit.ValidateBuffer(data, width, height); err != nil {
		return nil, err
	}

	sr, sg, sb, sa := shadowColor.RGBA8()

	shadow := make([]uint8, len(data))
	for y := 0; y < height; y++ {
		srcY := y - offsetY
		for x := 0; x < width; x++ {
			srcX := x - offsetX

			if srcX < 0 || srcX >= width || srcY < 0 || srcY >= height {
				continue // stays transparent black
			}

			srcIdx := (srcY*width + srcX) * 4
			dstIdx := (y*width + x) * 4

			alpha := uint32(data[srcIdx+3]) * uint32(sa) / 255
			shadow[dstIdx+0] = sr
			shadow[dstIdx+1] = sg
			shadow[dstIdx+2] = sb
			shadow[dstIdx+3] = uint8(alpha)
		}
	}

	if blurRadius > 0 {
		return BoxBlur(shadow, width, height, blurRadius)
	}
	return shadow, nil
}

// DropShadowPixmap is DropShadow for hosts holding a Pixmap.
func DropShadowPixmap(src *rasterkit.Pixmap, offsetX, offsetY, blurRadius int, shadowColor rasterkit.PackedColor) (*rasterkit.Pixmap, error) {
	out, err := DropShadow(src.Data(), src.Width(), src.Height(), offsetX, offsetY, blurRadius, shadowColor)
	if err != nil {
		return nil, err
	}
	return rasterkit.WrapPixmap(out, src.Width(), src.Height())
}
