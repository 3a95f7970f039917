package clump

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rasterlab/progress"
	"github.com/katalvlaran/rasterlab/raster"
)

// Sentinel errors for clumping.
var (
	// ErrNilRaster is returned when a nil raster is passed.
	ErrNilRaster = errors.New("clump: raster is nil")
	// ErrInvalidTile is returned when the tile size is not positive.
	ErrInvalidTile = errors.New("clump: tile size must be positive")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("clump: invalid option supplied")
)

// Band descriptions attached to the outputs when they are written out.
const (
	DescriptionID   = "id"
	DescriptionSize = "size"
)

// Mode selects which outputs Clump produces.
type Mode int

const (
	// Both produces the ID map and the size map.
	Both Mode = iota
	// ByID produces only the ID map.
	ByID
	// BySize produces only the size map.
	BySize
)

func (m Mode) ids() bool   { return m == Both || m == ByID }
func (m Mode) sizes() bool { return m == Both || m == BySize }

// Result holds the outputs of a clumping run. IDs is nil in BySize mode and
// Sizes is nil in ByID mode. Count is the number of clumps found.
type Result struct {
	IDs   *raster.Raster[uint32]
	Sizes *raster.Raster[uint32]
	Count int
}

// Option configures clumping via functional arguments.
type Option func(*Options)

// Options holds parameters for Clump and ClumpTiled.
type Options struct {
	// Ctx allows cancellation; it is checked once per row.
	Ctx context.Context
	// Progress receives the completed fraction of the scan.
	Progress progress.Func
	// Mode selects the outputs.
	Mode Mode
	// Conn selects 4- or 8-neighbor connectivity.
	Conn raster.Connectivity
	// EqualValues joins only neighbors with identical values.
	EqualValues bool
	// Workers bounds concurrent tiles in ClumpTiled; 0 means one per tile.
	Workers int

	err error
}

// DefaultOptions returns Options with Mode=Both, Conn=Conn8, no value
// matching and unbounded tile concurrency.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Progress: progress.Nop,
		Mode:     Both,
		Conn:     raster.Conn8,
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
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

// WithMode selects which outputs to produce.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m < Both || m > BySize {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, m)
			return
		}
		o.Mode = m
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

// WithEqualValues makes only equal-valued neighbors join a clump.
func WithEqualValues() Option {
	return func(o *Options) {
		o.EqualValues = true
	}
}

// WithWorkers bounds the number of tiles clumped concurrently.
//
//	n > 0: at most n tiles at once
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
