// Package label implements two-pass connected-component labeling with
// equivalence merging.
//
// What:
//
//   - Label scans a raster top-to-bottom, left-to-right. Every foreground
//     pixel (value ≠ 0) looks at its already-scanned left and up neighbors
//     (4-connectivity):
//
//     left=0, up=0        → new label (1, 2, 3, …)
//     exactly one labeled → copy that label
//     both labeled, equal → copy it
//     both labeled, differ→ copy left, record left≡up
//
//   - After the scan every label is rewritten to the minimum member of its
//     equivalence class (see package equiv).
//   - Compact optionally renumbers the surviving labels into 1..N by filling
//     each empty low bin of the label histogram with the highest remaining
//     non-empty bin ("fill from the end").
//
// Options:
//
//   - WithCompact: run Compact after resolution.
//   - WithProgress: fractional progress callback, once per percent.
//   - WithContext: cancellation, checked once per row.
//
// Complexity:
//
//   - Label:   O(W×H·α(L)) time, O(W×H + L) memory (L = provisional labels).
//   - Compact: O(W×H) for the histogram and remap, O(L) for gap filling.
package label
