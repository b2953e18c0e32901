// Package path provides path-geometry kernels for drawing tools.
package path

import (
	"github.com/gogpu/rasterkit"
)

// segmentSamples is the number of interpolated samples emitted per
// control-point pair.
const segmentSamples = 10

// Smooth densifies a sparse polyline into a smooth curve using
// Catmull-Rom interpolation, as a pen tool does when turning captured
// input points into a stroke.
//
// xs and ys are paired by index. The result interleaves coordinates
// as (x0, y0, x1, y1, ...). Fewer than 2 points pass through
// unchanged. Otherwise each consecutive control-point pair produces
// exactly 10 samples at t = j/10, and the final control point is
// appended once, giving (n-1)*10 + 1 output pairs. Neighbor points
// are clamped at both ends of the polyline, so the curve starts and
// ends at the first and last control points.
//
// tension scales the whole basis: 1 traces the standard Catmull-Rom
// spline, other values scale the curve's amplitude away from it.
//
// Returns ErrLengthMismatch if xs and ys have different lengths.
func Smooth(xs, ys []float64, tension float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, rasterkit.ErrLengthMismatch
	}

	n := len(xs)
	if n < 2 {
		result := make([]float64, 0, n*2)
		for i := 0; i < n; i++ {
			result = append(result, xs[i], ys[i])
		}
		return result, nil
	}

	result := make([]float64, 0, (n-1)*segmentSamples*2+2)

	for i := 0; i < n-1; i++ {
		// Local neighborhood, clamped at the polyline ends.
		prev := i - 1
		if i == 0 {
			prev = 0
		}
		next := i + 2
		if next >= n {
			next = n - 1
		}

		p0x, p0y := xs[prev], ys[prev]
		p1x, p1y := xs[i], ys[i]
		p2x, p2y := xs[i+1], ys[i+1]
		p3x, p3y := xs[next], ys[next]

		for j := 0; j < segmentSamples; j++ {
			t := float64(j) / segmentSamples
			result = append(result,
				catmullRom(p0x, p1x, p2x, p3x, t, tension),
				catmullRom(p0y, p1y, p2y, p3y, t, tension),
			)
		}
	}

	// The loop samples t in [0, 1) per segment; close the curve with
	// the last control point exactly once.
	result = append(result, xs[n-1], ys[n-1])

	return result, nil
}

// catmullRom evaluates one coordinate of the cubic Catmull-Rom basis
// at parameter t, scaled by tension/2.
func catmullRom(p0, p1, p2, p3, t, tension float64) float64 {
	t2 := t * t
	t3 := t2 * t

	return tension * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3) / 2
}
