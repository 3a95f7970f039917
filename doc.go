// Package rasterlab is an in-memory engine for finding and measuring
// connected regions in 2-D rasters: labeling, clumping, region growing and
// histogram statistics over grids of numeric pixels.
//
// 🚀 What is rasterlab?
//
//	A small, dependency-light toolkit that brings together:
//		• Raster buffers: typed W×H grids (int8 … float64) with recode, remap, sub-windows
//		• Histograms: fixed-bin counts, cumulative form, percentiles, largest bin
//		• Labeling: two-pass 4-connected labeling with equivalence resolution and compaction
//		• Clumping: frontier flood fill producing ID maps and size maps, tiled and concurrent
//		• Region growing: threshold-bounded growth from seeds into a mask
//		• Statistics: min/max/mean/stddev/mode/median plus band metadata items
//
// Under the hood, everything is organized in subpackages:
//
//	raster/      Raster[T], element types, connectivity, pixel operations
//	histogram/   fixed-bin Histogram
//	equiv/       union-find over labels, resolved to class minimum
//	label/       Label and Compact
//	clump/       Clump, ClumpTiled, Sizes, SizeImage
//	grow/        Grower
//	stats/       Compute, Metadata, ColorTable, ZoneMeans
//	progress/    progress callbacks throttled to whole percents
//	rasterimage/ image.Image ⇄ raster adapters
//
// Quick ASCII example (8-connected clumping, 0 = background):
//
//	1 1 0 1        1 1 0 1
//	1 1 1 0   ──►  1 1 1 0   one clump of 9 pixels;
//	0 0 1 1        0 0 1 1   4-connected labeling finds two
//	0 0 0 1        0 0 0 1
//
//	go get github.com/katalvlaran/rasterlab
package rasterlab
