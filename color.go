package rasterkit

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Common colors.
var (
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// PackedColor is a 32-bit RGBA color packed as (R<<24)|(G<<16)|(B<<8)|A,
// one byte per channel. This is the wire format editors typically use
// when handing colors across a raw-memory boundary, so kernels accept
// it directly and decode with plain shift/mask operations.
type PackedColor uint32

// Pack assembles a PackedColor from four channel bytes.
func Pack(r, g, b, a uint8) PackedColor {
	return PackedColor(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// PackColor converts a float RGBA color to its packed representation.
func PackColor(c RGBA) PackedColor {
	return Pack(
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)),
		uint8(clamp255(c.A*255)),
	)
}

// RGBA8 decomposes the packed value into its four channel bytes.
func (p PackedColor) RGBA8() (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// RGBA converts the packed value to a float RGBA color.
func (p PackedColor) RGBA() RGBA {
	r, g, b, a := p.RGBA8()
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// clamp255 clamps a float64 to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
