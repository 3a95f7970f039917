// Package histogram implements a fixed-bin frequency table over a closed
// value range [Min, Max].
//
// The table is created once with a range and a bin count and is never
// resized. Step is (Max-Min)/Bins and is always positive: New rejects
// Max <= Min. Callers histogramming a single repeated value must widen the
// range first (the stats package lowers Min by 1e-5).
//
// Binning:
//
//	bin(v) = floor((v - Min) / Step), clamped to [0, Bins-1]
//
// so v == Max, and values a rounding error past the last edge, land in the
// last bin.
//
// Derived queries:
//
//   - LargestBin: first bin with the highest count (first wins on ties).
//   - Percentile: bin edge whose cumulative count is closest to p·Total.
//   - Occupied: number of non-empty bins.
package histogram
