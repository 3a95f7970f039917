package grow

import (
	"fmt"

	"github.com/katalvlaran/rasterlab/progress"
	"github.com/katalvlaran/rasterlab/raster"
)

// Grower grows regions of a guide raster into an output mask.
// It is not safe for concurrent use.
type Grower[T raster.Number] struct {
	guide    *raster.Raster[T]
	out      *raster.Raster[uint8]
	min, max T
	opts     Options
}

// New binds guide and out with the closed value range [min, max].
// The dimensions are checked before any pixel is touched.
//
// Returns ErrNilRaster, an error wrapping raster.ErrDimensionMismatch,
// ErrInvalidRange, or ErrOptionViolation.
func New[T raster.Number](guide *raster.Raster[T], out *raster.Raster[uint8], min, max T, opts ...Option) (*Grower[T], error) {
	if guide == nil || out == nil {
		return nil, ErrNilRaster
	}
	if err := raster.CheckSameSize(guide, out); err != nil {
		return nil, fmt.Errorf("grow: guide and output: %w", err)
	}
	if min > max {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Grower[T]{guide: guide, out: out, min: min, max: max, opts: o}, nil
}

// Output returns the mask the Grower writes to.
func (g *Grower[T]) Output() *raster.Raster[uint8] {
	return g.out
}

func (g *Grower[T]) accepts(i int) bool {
	v := g.guide.Pix[i]

	return g.out.Pix[i] == 0 && v >= g.min && v <= g.max
}

// Grow floods from (x, y) and returns the number of pixels newly set to 1.
//
// Returns an error wrapping raster.ErrOutOfBounds for a seed outside the
// raster, or the context error on cancellation. Pixels accepted before a
// cancellation stay set.
func (g *Grower[T]) Grow(x, y int) (int, error) {
	if !g.guide.InBounds(x, y) {
		return 0, fmt.Errorf("%w: seed (%d,%d) in %dx%d", raster.ErrOutOfBounds, x, y, g.guide.Width, g.guide.Height)
	}
	start := g.guide.Index(x, y)
	if !g.accepts(start) {
		return 0, nil
	}
	g.out.Pix[start] = 1
	added := 1

	offsets := g.opts.Conn.Offsets()
	frontier := []int{start}
	for len(frontier) > 0 {
		if err := g.opts.Ctx.Err(); err != nil {
			return added, err
		}
		var next []int
		for _, i := range frontier {
			cx, cy := g.guide.Coordinate(i)
			for _, d := range offsets {
				nx, ny := cx+d[0], cy+d[1]
				if !g.guide.InBounds(nx, ny) {
					continue
				}
				j := g.guide.Index(nx, ny)
				if !g.accepts(j) {
					continue
				}
				g.out.Pix[j] = 1
				next = append(next, j)
			}
		}
		added += len(next)
		frontier = next
	}

	return added, nil
}

// GrowSeeds grows from every seed in order and returns the total number of
// pixels set. It stops at the first error.
func (g *Grower[T]) GrowSeeds(seeds []raster.Coord) (int, error) {
	tr := progress.NewTracker(g.opts.Progress, len(seeds))
	total := 0
	for k, s := range seeds {
		n, err := g.Grow(s.X, s.Y)
		total += n
		if err != nil {
			return total, err
		}
		tr.Update(k + 1)
	}
	tr.Done()

	return total, nil
}

// GrowFromMask grows from every non-zero pixel of mask, in raster order,
// and returns the total number of pixels set.
//
// Returns ErrNilRaster, an error wrapping raster.ErrDimensionMismatch, or
// the context error on cancellation.
func (g *Grower[T]) GrowFromMask(mask *raster.Raster[uint8]) (int, error) {
	if mask == nil {
		return 0, ErrNilRaster
	}
	if err := raster.CheckSameSize(g.guide, mask); err != nil {
		return 0, fmt.Errorf("grow: guide and seed mask: %w", err)
	}
	tr := progress.NewTracker(g.opts.Progress, mask.Height)
	total := 0
	for y := 0; y < mask.Height; y++ {
		if err := g.opts.Ctx.Err(); err != nil {
			return total, err
		}
		for x := 0; x < mask.Width; x++ {
			if mask.Pix[mask.Index(x, y)] == 0 {
				continue
			}
			n, err := g.Grow(x, y)
			total += n
			if err != nil {
				return total, err
			}
		}
		tr.Update(y + 1)
	}

	return total, nil
}
