package geom

// Shape descriptor layout for batch hit testing. Each shape occupies
// ShapeStride consecutive floats: {type, x, y, w, h, rotation}.
// Shapes are ordered by ascending paint order: index 0 is bottom-most.
const (
	// ShapeStride is the number of floats per shape descriptor.
	ShapeStride = 6

	// ShapeRect is an axis-aligned rectangle (before rotation).
	ShapeRect = 0

	// ShapeEllipse is an ellipse inscribed in the shape's w x h box.
	ShapeEllipse = 1
)

// HitTest returns the index of the top-most shape containing
// (px, py), or -1 if no shape does.
//
// shapes is a flat descriptor array (see ShapeStride); shapeCount
// gives how many descriptors to consider. Shapes are tested from the
// highest index down so the visually top-most shape wins. A descriptor
// that would read past the end of shapes is skipped; trailing floats
// beyond shapeCount*ShapeStride are ignored.
//
// Containment is evaluated in the shape's local frame: the test point
// is translated to the shape center, rotated by the inverse of the
// shape's rotation, then offset by the half extents. Type ShapeRect
// tests the [0,w]x[0,h] box, ShapeEllipse the inscribed ellipse; any
// other type never hits.
func HitTest(px, py float64, shapes []float64, shapeCount int) int {
	for i := shapeCount - 1; i >= 0; i-- {
		offset := i * ShapeStride
		if offset+ShapeStride > len(shapes) {
			continue
		}

		shapeType := int(shapes[offset+0])
		x := shapes[offset+1]
		y := shapes[offset+2]
		w := shapes[offset+3]
		h := shapes[offset+4]
		rotation := shapes[offset+5]

		// Transform the test point into the shape's unrotated frame.
		center := Point{X: x + w/2, Y: y + h/2}
		local := Point{X: px, Y: py}.Sub(center).Rotate(-rotation).
			Add(Point{X: w / 2, Y: h / 2})

		hit := false
		switch shapeType {
		case ShapeRect:
			hit = local.X >= 0 && local.X <= w && local.Y >= 0 && local.Y <= h
		case ShapeEllipse:
			rx := w / 2
			ry := h / 2
			dx := local.X - rx
			dy := local.Y - ry
			hit = (dx*dx)/(rx*rx)+(dy*dy)/(ry*ry) <= 1
		}

		if hit {
			return i
		}
	}

	return -1
}
