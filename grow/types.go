package grow

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rasterlab/progress"
	"github.com/katalvlaran/rasterlab/raster"
)

// Sentinel errors for region growing. Shape and coordinate problems wrap
// raster.ErrDimensionMismatch and raster.ErrOutOfBounds.
var (
	// ErrNilRaster is returned when the guide, output or seed mask is nil.
	ErrNilRaster = errors.New("grow: raster is nil")
	// ErrInvalidRange is returned when min > max.
	ErrInvalidRange = errors.New("grow: min must not exceed max")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grow: invalid option supplied")
)

// Option configures a Grower.
type Option func(*Options)

// Options holds Grower parameters.
type Options struct {
	Ctx      context.Context
	Progress progress.Func
	Conn     raster.Connectivity

	err error
}

// DefaultOptions returns Options with Conn8 and no progress reporting.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Progress: progress.Nop,
		Conn:     raster.Conn8,
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

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c raster.Connectivity) Option {
	return func(o *Options) {
		if !c.Valid() {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}
