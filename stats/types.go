package stats

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rasterlab/progress"
)

// Sentinel errors for statistics.
var (
	// ErrNilRaster is returned when a nil raster is passed.
	ErrNilRaster = errors.New("stats: raster is nil")
	// ErrNoValues is returned when no pixel contributes to the statistics.
	ErrNoValues = errors.New("stats: no values to compute statistics from")
	// ErrNegativeClass is returned for a thematic raster holding a value below 0.
	ErrNegativeClass = errors.New("stats: thematic raster has negative class")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stats: invalid option supplied")
)

// BinFunction tells readers how histogram bins map to pixel values.
type BinFunction int

const (
	// Direct bins hold one integer value each.
	Direct BinFunction = iota
	// Linear bins split [HistMin, HistMax] evenly.
	Linear
)

// String returns "direct" or "linear".
func (b BinFunction) String() string {
	if b == Linear {
		return "linear"
	}

	return "direct"
}

// Option configures Compute.
type Option func(*Options)

// Options holds Compute parameters.
type Options struct {
	Ctx      context.Context
	Progress progress.Func
	// Ignore is excluded from every statistic when HasIgnore is set.
	Ignore    float64
	HasIgnore bool
	// Thematic treats pixel values as class numbers.
	Thematic bool

	err error
}

// DefaultOptions returns Options with no ignore value, athematic binning and
// no progress reporting.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Progress: progress.Nop,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn progress.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

// WithIgnore excludes pixels equal to v. NaN is rejected since NaN pixels
// are always excluded.
func WithIgnore(v float64) Option {
	return func(o *Options) {
		if math.IsNaN(v) {
			o.err = fmt.Errorf("%w: NaN ignore value", ErrOptionViolation)
			return
		}
		o.Ignore = v
		o.HasIgnore = true
	}
}

// WithThematic marks the raster as thematic.
func WithThematic() Option {
	return func(o *Options) {
		o.Thematic = true
	}
}
