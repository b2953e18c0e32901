// Package rasterkit provides stateless pixel- and geometry-processing
// kernels for raster/vector editing applications.
//
// # Overview
//
// rasterkit is a Pure Go library of synchronous, allocation-light
// kernels designed to be embedded in a larger editor: the host owns
// the canvas, event dispatch, and undo history; rasterkit owns the
// per-buffer number crunching. Every kernel is a deterministic
// function of its inputs with no cross-call state.
//
// # Kernels
//
// The library is organized into small focused packages:
//   - filter: box blur, drop shadow, brightness/contrast/saturation
//   - fill: tolerance-bounded flood fill
//   - geom: point-in-polygon, rotated bounds, segment distance,
//     z-ordered batch hit testing
//   - path: Catmull-Rom path densification
//
// # Buffers
//
// Pixel kernels operate on flat RGBA byte slices, row-major, 4 bytes
// per pixel, so the host can hand over canvas memory directly. The
// root package also provides Pixmap, a thin owning wrapper with image
// interop, for hosts that prefer a typed handle:
//
//	pm := rasterkit.NewPixmap(512, 512)
//	out, err := filter.BoxBlurPixmap(pm, 4)
//
// Kernels that take explicit dimensions fail fast with a sentinel
// error when len(data) != width*height*4 rather than index out of
// bounds; in-range edge cases (empty polygon, missed hit test, ...)
// return sentinel values instead.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// Kernels are side-effect-free except for their documented in-place
// mutations (fill.Flood, filter.Adjust). Distinct buffers can be
// processed from distinct goroutines; a single buffer must not be
// mutated concurrently. The library performs no internal locking.
package rasterkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
