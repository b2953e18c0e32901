package geom

// SegmentDistance returns the distance from (px, py) to the nearest
// point on the segment (x1, y1)-(x2, y2).
//
// The projection parameter is clamped to [0, 1], so the result is the
// distance to the segment, not to the infinite line through it. A
// zero-length segment falls back to point-to-point distance.
func SegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	p := Point{X: px, Y: py}
	a := Point{X: x1, Y: y1}
	b := Point{X: x2, Y: y2}

	d := b.Sub(a)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.Distance(a.Add(d.Mul(t)))
}
