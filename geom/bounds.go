package geom

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and
// dimensions.
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64 // Dimensions
}

// RotatedBounds returns the axis-aligned bounding box of a width x
// height rectangle rotated by angle radians about its own origin and
// translated to (x, y).
//
// The four corners of (0,0)-(width,height) are rotated around the
// origin and offset by (x, y); the result is the tight AABB of those
// corners. At angle 0 this is exactly (x, y, width, height).
func RotatedBounds(x, y, width, height, angle float64) Rect {
	corners := [4]Point{
		{0, 0},
		{width, 0},
		{width, height},
		{0, height},
	}

	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	for _, c := range corners {
		r := c.Rotate(angle).Add(Point{X: x, Y: y})
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.X)
		maxY = math.Max(maxY, r.Y)
	}

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
