// Package grow implements threshold-bounded region growing: starting from
// seed pixels, it floods outward over a guide raster and marks every reached
// pixel whose guide value lies in [min, max] in a separate uint8 mask.
//
// What:
//
//   - A seed is accepted only if its own guide value is in range and its mask
//     pixel is still 0; an out-of-range seed leaves the mask untouched.
//   - Accepted pixels are set to 1. Growth proceeds in frontier rounds: each
//     round tests the neighbors of the previous round's accepted pixels.
//   - The mask doubles as the visited set: a pixel already 1 is never tested
//     again, so several seeds grown into one mask merge where they touch.
//     Pixels rejected by the range test are not recorded and may be tested
//     again from another direction.
//
// Options:
//
//   - WithConnectivity: Conn4 or Conn8 (default Conn8).
//   - WithProgress: progress over the seeds of GrowSeeds or the rows of
//     GrowFromMask.
//   - WithContext: cancellation, checked once per frontier round.
//
// Complexity: O(P×d) per Grow call for P accepted pixels (d = 4 or 8).
package grow
