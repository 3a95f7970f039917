package clump

import (
	"context"
	"sync"

	"github.com/katalvlaran/rasterlab/equiv"
	"github.com/katalvlaran/rasterlab/progress"
	"github.com/katalvlaran/rasterlab/raster"
	"golang.org/x/sync/errgroup"
)

// tileResult is the local clumping of one tile.
type tileResult struct {
	x0, y0 int
	ids    *raster.Raster[uint32]
	count  int
}

// ClumpTiled clumps src in square tiles of the given size, concurrently,
// then joins clumps that touch across tile seams. IDs are renumbered by
// first appearance in raster order, so the result equals Clump on the same
// input with the same options.
//
// ctx takes precedence over WithContext. WithWorkers bounds the number of
// tiles processed at once. Progress is reported per finished tile.
//
// Returns ErrNilRaster, ErrInvalidTile, ErrOptionViolation, or the first
// error of any tile (including ctx cancellation).
func ClumpTiled[T raster.Number](ctx context.Context, src *raster.Raster[T], ignore T, tile int, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if tile <= 0 {
		return nil, ErrInvalidTile
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = o.Ctx
	}

	tilesX := (src.Width + tile - 1) / tile
	tilesY := (src.Height + tile - 1) / tile
	tiles := make([]tileResult, tilesX*tilesY)

	var mu sync.Mutex
	finished := 0
	tr := progress.NewTracker(o.Progress, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			k := ty*tilesX + tx
			tl := raster.Coord{X: tx * tile, Y: ty * tile}
			br := raster.Coord{X: min(tl.X+tile, src.Width), Y: min(tl.Y+tile, src.Height)}
			g.Go(func() error {
				sub, err := src.Sub(tl, br)
				if err != nil {
					return err
				}
				local := []Option{
					WithContext(gctx),
					WithMode(ByID),
					WithConnectivity(o.Conn),
				}
				if o.EqualValues {
					local = append(local, WithEqualValues())
				}
				r, err := Clump(sub, ignore, local...)
				if err != nil {
					return err
				}
				tiles[k] = tileResult{x0: tl.X, y0: tl.Y, ids: r.IDs, count: r.Count}

				mu.Lock()
				finished++
				tr.Update(finished)
				mu.Unlock()

				return nil
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	ids, total, err := stitch(src.Width, src.Height, tiles)
	if err != nil {
		return nil, err
	}
	eq := mergeSeams(src, ids, ignore, tile, total, o)
	count := renumber(ids, eq.Table(uint32(total)), total)

	res := &Result{Count: count}
	if o.Mode.sizes() {
		if res.Sizes, err = SizeImage(ids); err != nil {
			return nil, err
		}
	}
	if o.Mode.ids() {
		res.IDs = ids
	}

	return res, nil
}

// stitch copies every tile's local IDs into one raster, offsetting each
// tile by the number of clumps in the tiles before it.
func stitch(w, h int, tiles []tileResult) (*raster.Raster[uint32], int, error) {
	ids, err := raster.New[uint32](w, h)
	if err != nil {
		return nil, 0, err
	}
	offset := uint32(0)
	for _, t := range tiles {
		for y := 0; y < t.ids.Height; y++ {
			for x := 0; x < t.ids.Width; x++ {
				if v := t.ids.Pix[t.ids.Index(x, y)]; v != 0 {
					ids.Pix[ids.Index(t.x0+x, t.y0+y)] = v + offset
				}
			}
		}
		offset += uint32(t.count)
	}

	return ids, int(offset), nil
}

// mergeSeams records as equivalent every pair of provisional IDs whose
// pixels are neighbors in different tiles and may join.
func mergeSeams[T raster.Number](src *raster.Raster[T], ids *raster.Raster[uint32], ignore T, tile, total int, o Options) *equiv.Set {
	eq := equiv.New(total + 1)
	// Forward half of the neighborhood; each adjacent pair is visited once.
	forward := [][2]int{{1, 0}, {0, 1}}
	if o.Conn == raster.Conn8 {
		forward = append(forward, [2]int{1, 1}, [2]int{-1, 1})
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			i := src.Index(x, y)
			if ids.Pix[i] == 0 {
				continue
			}
			for _, d := range forward {
				nx, ny := x+d[0], y+d[1]
				if !src.InBounds(nx, ny) || (nx/tile == x/tile && ny/tile == y/tile) {
					continue
				}
				j := src.Index(nx, ny)
				if ids.Pix[j] == 0 || src.Pix[j] == ignore {
					continue
				}
				if o.EqualValues && src.Pix[j] != src.Pix[i] {
					continue
				}
				eq.Union(ids.Pix[i], ids.Pix[j])
			}
		}
	}

	return eq
}

// renumber resolves every provisional ID through table and assigns final
// IDs 1..N in order of first appearance. It returns N.
func renumber(ids *raster.Raster[uint32], table []uint32, total int) int {
	final := make([]uint32, total+1)
	next := uint32(1)
	for i, v := range ids.Pix {
		if v == 0 {
			continue
		}
		root := table[v]
		if final[root] == 0 {
			final[root] = next
			next++
		}
		ids.Pix[i] = final[root]
	}

	return int(next - 1)
}
