package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rasterlab/histogram"
	"github.com/katalvlaran/rasterlab/progress"
	"github.com/katalvlaran/rasterlab/raster"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// maxDirectBins is the widest integer span binned one value per bin, and
	// the bin count of linear histograms.
	maxDirectBins = 256
	// maxThematicClasses bounds the class count of a thematic histogram.
	maxThematicClasses = 1 << 24
	// singleValueNudge widens a single-valued range so it has extent.
	singleValueNudge = 1e-5
	// maxHalfExact bounds the magnitudes at which x±0.5 is still exact, as
	// direct bins need.
	maxHalfExact = 1 << 52
)

// Statistics summarises one raster band.
type Statistics struct {
	Min, Max     float64
	Mean, StdDev float64
	Mode, Median float64

	// HistMin and HistMax are the values of the first and last bins.
	HistMin, HistMax float64
	// Histogram holds the per-bin pixel counts.
	Histogram   []int
	BinFunction BinFunction

	Ignore    float64
	HasIgnore bool
	Thematic  bool
	// Count is the number of contributing pixels.
	Count int
}

// BinValue returns the pixel value bin i stands for.
func (s *Statistics) BinValue(i int) float64 {
	if s.BinFunction == Direct || len(s.Histogram) == 0 {
		return s.HistMin + float64(i)
	}

	return s.HistMin + float64(i)*(s.HistMax-s.HistMin)/float64(len(s.Histogram))
}

// Compute returns the statistics of r over every pixel that is neither NaN
// nor the ignore value. Integer rasters report mode and median rounded to
// the nearest integer.
//
// Returns ErrNilRaster, ErrOptionViolation, ErrNoValues when no pixel
// contributes, ErrNegativeClass for a thematic raster with values below 0,
// an error wrapping histogram.ErrInvalidRange when max-min overflows
// float64, or the context error on cancellation.
func Compute[T raster.Number](r *raster.Raster[T], opts ...Option) (*Statistics, error) {
	if r == nil {
		return nil, ErrNilRaster
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// The ignore value is compared in the raster's own type; one T cannot
	// hold matches no pixel.
	ignore, skip := raster.FromFloat[T](o.Ignore)
	skip = skip && o.HasIgnore

	tr := progress.NewTracker(o.Progress, 2*r.Height)
	values := make([]float64, 0, r.Len())
	for y := 0; y < r.Height; y++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		for _, p := range r.Pix[y*r.Width : (y+1)*r.Width] {
			v := float64(p)
			if math.IsNaN(v) || (skip && p == ignore) {
				continue
			}
			values = append(values, v)
		}
		tr.Update(y + 1)
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	s := &Statistics{
		Min:       floats.Min(values),
		Max:       floats.Max(values),
		Ignore:    o.Ignore,
		HasIgnore: o.HasIgnore,
		Thematic:  o.Thematic,
		Count:     len(values),
	}
	s.Mean, s.StdDev = stat.PopMeanStdDev(values, nil)

	h, err := s.binning(r.Type())
	if err != nil {
		return nil, err
	}
	rows, n := r.Height, len(values)
	for k, v := range values {
		if err = h.Add(v); err != nil {
			return nil, err
		}
		tr.Update(rows + (k+1)*rows/n)
	}
	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}
	tr.Done()

	s.Histogram = h.Counts()
	s.Mode = s.BinValue(h.LargestBin())
	s.Median = s.median(h.Total())
	if !r.Type().IsFloat() {
		s.Mode = math.Floor(s.Mode + 0.5)
		s.Median = math.Floor(s.Median + 0.5)
	}

	return s, nil
}

// binning chooses the histogram layout for the value range in s and records
// HistMin, HistMax and BinFunction.
func (s *Statistics) binning(et raster.ElementType) (*histogram.Histogram, error) {
	s.BinFunction = Direct
	switch {
	case et == raster.Uint8:
		s.HistMin, s.HistMax = 0, 255

		return histogram.New(-0.5, 255.5, 256)
	case s.Thematic:
		if s.Min < 0 {
			return nil, fmt.Errorf("%w: %g", ErrNegativeClass, s.Min)
		}
		top := math.Ceil(s.Max)
		if top >= maxThematicClasses {
			return nil, fmt.Errorf("%w: %g classes", raster.ErrAllocation, top+1)
		}
		s.HistMin, s.HistMax = 0, top

		return histogram.New(-0.5, top+0.5, int(top)+1)
	}

	lo, hi := s.Min, s.Max
	if lo == hi {
		// Large magnitudes need at least one ulp to move.
		lo = math.Min(lo-singleValueNudge, math.Nextafter(lo, math.Inf(-1)))
	}
	fl, cl := math.Floor(lo), math.Ceil(hi)
	exact := math.Abs(fl) < maxHalfExact && math.Abs(cl) < maxHalfExact
	if span := cl - fl; span <= maxDirectBins && exact {
		s.HistMin, s.HistMax = fl, cl

		return histogram.New(fl-0.5, cl+0.5, int(span)+1)
	}
	if math.IsInf(hi-lo, 0) {
		return nil, fmt.Errorf("%w: span of [%g, %g] overflows", histogram.ErrInvalidRange, lo, hi)
	}
	s.BinFunction = Linear
	s.HistMin, s.HistMax = lo, hi

	return histogram.New(lo, hi, maxDirectBins)
}

// median returns the value of the first bin whose running count exceeds
// half of total, averaged with the next bin's value unless it is the last.
func (s *Statistics) median(total int) float64 {
	half := float64(total) / 2
	run := 0
	which := len(s.Histogram) - 1
	for i, c := range s.Histogram {
		run += c
		if float64(run) > half {
			which = i
			break
		}
	}
	m := s.BinValue(which)
	if which < len(s.Histogram)-1 {
		m = (m + s.BinValue(which+1)) / 2
	}

	return m
}
