// Package raster provides the in-memory raster buffer used by every
// rasterlab algorithm.
//
// What:
//
//   - Raster[T] owns a flat, row-major buffer of Width×Height elements of a
//     single numeric type T (8/16/32-bit signed or unsigned integers,
//     32/64-bit floats).
//   - Pixels are addressed by (x,y) with explicit bounds checks; access outside
//     [0,Width)×[0,Height) is rejected, never clamped.
//   - Bulk operations stamp a coordinate list with one value, recode values,
//     compute value ranges and copy sub-rectangles.
//
// Ownership:
//
//   - A Raster is exclusively owned by whoever created it. Algorithms never
//     mutate a raster they did not create or receive as an explicit output.
//   - Distinct rasters may be processed from different goroutines without
//     coordination; a single raster is not safe for concurrent mutation.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrAllocation: the requested buffer cannot be represented.
//   - ErrOutOfBounds: coordinate or rectangle outside the raster.
//   - ErrDimensionMismatch: two rasters expected to share a shape differ.
//   - ErrEmptyGrid, ErrNonRectangular: invalid 2-D input to From2D.
//
// Complexity:
//
//   - At, Set: O(1).
//   - SetCoords, Values: O(k) for k coordinates.
//   - Range, Recode, Fill, Remap: O(W×H).
package raster
