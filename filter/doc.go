// Package filter provides pixel-buffer filter kernels: separable box
// blur, drop shadow generation, and brightness/contrast/saturation
// adjustment.
//
// All kernels operate on flat RGBA byte slices (row-major, 4 bytes per
// pixel) and use exact integer arithmetic where the visual contract
// demands pixel-for-pixel reproducibility: box blur means use
// truncating integer division, and shadow alpha scaling truncates.
// Pixmap wrappers are provided for hosts holding a rasterkit.Pixmap.
package filter
