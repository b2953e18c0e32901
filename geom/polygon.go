package geom

import (
	"github.com/gogpu/rasterkit"
)

// PointInPolygon reports whether (px, py) lies inside the polygon with
// vertices (vx[i], vy[i]), using the even-odd ray casting rule. The
// polygon is implicitly closed from the last vertex back to the first.
//
// Polygons with fewer than 3 vertices contain nothing and return
// false. Degenerate polygons (self-intersecting, collinear) follow the
// standard ray-casting result without special-casing.
//
// Returns ErrLengthMismatch if vx and vy have different lengths.
func PointInPolygon(px, py float64, vx, vy []float64) (bool, error) {
	if len(vx) != len(vy) {
		return false, rasterkit.ErrLengthMismatch
	}

	n := len(vx)
	if n < 3 {
		return false, nil
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := vx[i], vy[i]
		xj, yj := vx[j], vy[j]

		// Edge crosses the horizontal ray through py, and the point is
		// left of the crossing.
		if (yi > py) != (yj > py) && px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}

	return inside, nil
}
