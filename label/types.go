package label

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rasterlab/progress"
)

// Sentinel errors for labeling.
var (
	// ErrNilRaster is returned when a nil raster is passed.
	ErrNilRaster = errors.New("label: raster is nil")
	// ErrLabelOverflow is returned when more provisional labels are needed
	// than a uint32 label raster can hold.
	ErrLabelOverflow = errors.New("label: too many provisional labels")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("label: invalid option supplied")
)

// Option configures Label via functional arguments.
type Option func(*Options)

// Options holds parameters for Label.
type Options struct {
	// Ctx allows cancellation; it is checked once per row.
	Ctx context.Context
	// Progress receives the completed fraction of the scan.
	Progress progress.Func
	// Compact renumbers labels into a contiguous 1..N range.
	Compact bool

	err error
}

// DefaultOptions returns Options with a background context, no progress
// reporting and no compaction.
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

// WithCompact enables compaction of the resolved labels into 1..N.
func WithCompact() Option {
	return func(o *Options) {
		o.Compact = true
	}
}
