package clump

import (
	"github.com/katalvlaran/rasterlab/progress"
	"github.com/katalvlaran/rasterlab/raster"
)

// Clump groups the connected foreground pixels of src (every value other
// than ignore) and returns the ID map and/or the size map selected by the
// mode, plus the number of clumps.
//
// For float rasters a NaN ignore value matches nothing, so every pixel is
// foreground.
//
// Returns ErrNilRaster, ErrOptionViolation, an allocation error from
// package raster, or the context error on cancellation.
func Clump[T raster.Number](src *raster.Raster[T], ignore T, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	res, err := newResult(src.Width, src.Height, o.Mode)
	if err != nil {
		return nil, err
	}

	c := &clumper[T]{
		src:     src,
		ignore:  ignore,
		equal:   o.EqualValues,
		offsets: o.Conn.Offsets(),
		seen:    make([]bool, src.Len()),
	}
	tr := progress.NewTracker(o.Progress, src.Height)
	id := uint32(1)

	for y := 0; y < src.Height; y++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		for x := 0; x < src.Width; x++ {
			i := src.Index(x, y)
			if c.seen[i] || src.Pix[i] == ignore {
				continue
			}
			region := c.region(i)
			// coordinates come from region() and are always in bounds
			if res.Sizes != nil {
				_ = res.Sizes.SetCoords(region, uint32(len(region)))
			}
			if res.IDs != nil {
				_ = res.IDs.SetCoords(region, id)
			}
			id++
		}
		tr.Update(y + 1)
	}
	res.Count = int(id - 1)

	return res, nil
}

func newResult(w, h int, m Mode) (*Result, error) {
	res := &Result{}
	var err error
	if m.ids() {
		if res.IDs, err = raster.New[uint32](w, h); err != nil {
			return nil, err
		}
	}
	if m.sizes() {
		if res.Sizes, err = raster.New[uint32](w, h); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// clumper holds the scan state shared by every region of one run.
type clumper[T raster.Number] struct {
	src     *raster.Raster[T]
	ignore  T
	equal   bool
	offsets [][2]int
	seen    []bool
}

// joins reports whether the pixel at j may extend a region through the
// pixel at i.
func (c *clumper[T]) joins(i, j int) bool {
	v := c.src.Pix[j]
	if v == c.ignore {
		return false
	}

	return !c.equal || v == c.src.Pix[i]
}

// region discovers the whole clump containing start. Each round visits the
// neighbors of the current frontier; newly accepted pixels form the next
// frontier. The returned coordinates are the region's complete pixel set.
func (c *clumper[T]) region(start int) []raster.Coord {
	x, y := c.src.Coordinate(start)
	total := []raster.Coord{{X: x, Y: y}}
	c.seen[start] = true
	frontier := []int{start}

	for len(frontier) > 0 {
		var next []int
		for _, i := range frontier {
			x, y = c.src.Coordinate(i)
			for _, d := range c.offsets {
				nx, ny := x+d[0], y+d[1]
				if !c.src.InBounds(nx, ny) {
					continue
				}
				j := c.src.Index(nx, ny)
				if c.seen[j] || !c.joins(i, j) {
					continue
				}
				c.seen[j] = true
				next = append(next, j)
				total = append(total, raster.Coord{X: nx, Y: ny})
			}
		}
		frontier = next
	}

	return total
}
