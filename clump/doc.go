// Package clump groups connected non-background pixels by explicit frontier
// expansion and produces an ID map and/or a size map.
//
// What:
//
//   - Clump scans pixels in raster order. At each unassigned foreground pixel
//     (value ≠ ignore) it expands a frontier round by round: every neighbor of
//     every frontier pixel that is foreground and not yet part of the region
//     joins the next frontier. The region is stamped only when no round adds
//     a pixel, so a region is never partially written.
//   - IDs are dense, start at 1 and follow raster-scan discovery order; each
//     region consumes exactly one ID. In the size map every pixel of a region
//     holds the region's pixel count. Background is 0 in both.
//   - Connectivity defaults to Conn8 (diagonal touches join), unlike package
//     label which is 4-connected.
//   - WithEqualValues restricts joins to neighbors holding the same value, so
//     adjacent classes of a thematic raster become separate clumps.
//   - ClumpTiled clumps tiles concurrently and merges them across tile seams,
//     producing the same result as Clump.
//
// Options:
//
//   - WithMode: ByID, BySize or Both (default Both).
//   - WithConnectivity: Conn4 or Conn8 (default Conn8).
//   - WithEqualValues: join only equal-valued neighbors.
//   - WithProgress, WithContext: reporting and cancellation, once per row.
//   - WithWorkers: concurrency limit for ClumpTiled.
//
// Complexity:
//
//   - Clump:      O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//   - ClumpTiled: O(W×H×d) total work spread over the tiles, plus O(W×H) to
//     merge seams and renumber.
package clump
