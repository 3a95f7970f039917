// Package stats computes summary statistics and a binned histogram for a
// raster and renders them as the metadata items image formats expect
// (STATISTICS_MINIMUM, STATISTICS_HISTOBINVALUES, ...).
//
// What:
//
//   - Compute gathers min, max, mean and population standard deviation over
//     every pixel except the ignore value and NaN, then bins the pixels and
//     estimates mode and median from the histogram.
//   - Binning policy:
//     uint8 rasters use 256 direct bins for 0..255;
//     thematic rasters use one direct bin per class 0..ceil(max);
//     other rasters whose integer span ceil(max)-floor(min) is at most 256
//     use one direct bin per integer; the rest use 256 linear bins over
//     [min, max].
//   - Direct bins are valued at their center (the integer they hold); linear
//     bins at their lower edge.
//   - ColorTable builds a colour table for thematic rasters; ZoneMeans
//     reduces a data raster per zone of a clump ID map.
//
// Options:
//
//   - WithIgnore: value excluded from every statistic.
//   - WithThematic: treat pixel values as class numbers.
//   - WithProgress, WithContext: reporting and cancellation, once per row.
package stats
