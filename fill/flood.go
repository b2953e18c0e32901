// Package fill provides the flood fill kernel: a tolerance-bounded,
// 4-connected region fill mutating an RGBA buffer in place.
package fill

import (
	"github.com/gogpu/rasterkit"
)

// coord is a pixel position on the explicit fill stack.
type coord struct {
	x, y int
}

// Flood performs a 4-connected flood fill starting at (startX, startY),
// mutating data in place. It returns true if a fill pass ran.
//
// The target color is captured from the start pixel before any
// mutation. A pixel matches when every channel independently differs
// from the target by at most tolerance. Matching pixels are overwritten
// with fillColor and their in-bounds 4-neighbors pushed; non-matching
// pixels bound the region.
//
// Returns (false, nil) without mutating when the start coordinate is
// out of bounds or the start pixel already equals fillColor exactly.
// Once those checks pass the call reports true even if the start pixel
// fails its own tolerance match; callers relying on the boolean get the
// same answer the editor's original fill tool gave.
//
// The fill uses an explicit growable stack rather than recursion, so
// region size is bounded by memory, not call depth.
func Flood(data []uint8, width, height, startX, startY int, fillColor rasterkit.PackedColor, tolerance uint8) (bool, error) {
	if err := rasterkit.ValidateBuffer(data, width, height); err != nil {
		return false, err
	}
	if startX < 0 || startX >= width || startY < 0 || startY >= height {
		return false, nil
	}

	fr, fg, fb, fa := fillColor.RGBA8()

	startIdx := (startY*width + startX) * 4
	tr := data[startIdx+0]
	tg := data[startIdx+1]
	tb := data[startIdx+2]
	ta := data[startIdx+3]

	// Already the fill color: nothing to do.
	if tr == fr && tg == fg && tb == fb && ta == fa {
		return false, nil
	}

	visited := make([]bool, width*height)
	stack := make([]coord, 1, 256)
	stack[0] = coord{startX, startY}

	filled := 0
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pixel := c.y*width + c.x
		if visited[pixel] {
			continue
		}

		idx := pixel * 4
		if !withinTolerance(data[idx+0], tr, tolerance) ||
			!withinTolerance(data[idx+1], tg, tolerance) ||
			!withinTolerance(data[idx+2], tb, tolerance) ||
			!withinTolerance(data[idx+3], ta, tolerance) {
			continue
		}

		visited[pixel] = true
		data[idx+0] = fr
		data[idx+1] = fg
		data[idx+2] = fb
		data[idx+3] = fa
		filled++

		if c.x > 0 {
			stack = append(stack, coord{c.x - 1, c.y})
		}
		if c.x < width-1 {
			stack = append(stack, coord{c.x + 1, c.y})
		}
		if c.y > 0 {
			stack = append(stack, coord{c.x, c.y - 1})
		}
		if c.y < height-1 {
			stack = append(stack, coord{c.x, c.y + 1})
		}
	}

	rasterkit.Logger().Debug("flood fill complete",
		"width", width, "height", height,
		"start_x", startX, "start_y", startY,
		"filled", filled)

	return true, nil
}

// FloodPixmap is Flood for hosts holding a Pixmap. The pixmap's buffer
// is modified in place.
func FloodPixmap(p *rasterkit.Pixmap, startX, startY int, fillColor rasterkit.PackedColor, tolerance uint8) (bool, error) {
	return Flood(p.Data(), p.Width(), p.Height(), startX, startY, fillColor, tolerance)
}

// withinTolerance reports whether two channel bytes differ by at most tol.
func withinTolerance(v, target, tol uint8) bool {
	d := int(v) - int(target)
	if d < 0 {
		d = -d
	}
	return d <= int(tol)
}
