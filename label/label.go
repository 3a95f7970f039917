package label

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/rasterlab/equiv"
	"github.com/katalvlaran/rasterlab/histogram"
	"github.com/katalvlaran/rasterlab/progress"
	"github.com/katalvlaran/rasterlab/raster"
)

// Label assigns a positive label to every 4-connected group of non-zero
// pixels in src and returns the label raster (0 = background).
//
// The int result is the highest label left after equivalence resolution,
// or, with WithCompact, the number of regions N (labels are then 1..N).
//
// Returns ErrNilRaster, ErrOptionViolation, ErrLabelOverflow, or the
// context error on cancellation.
func Label[T raster.Number](src *raster.Raster[T], opts ...Option) (*raster.Raster[uint32], int, error) {
	if src == nil {
		return nil, 0, ErrNilRaster
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	out, err := raster.New[uint32](src.Width, src.Height)
	if err != nil {
		return nil, 0, err
	}

	w := src.Width
	eq := equiv.New(0)
	next := uint32(1)
	tr := progress.NewTracker(o.Progress, src.Height)

	for y := 0; y < src.Height; y++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, 0, err
		}
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x
			if src.Pix[i] == 0 {
				continue
			}
			var left, up uint32
			if x > 0 {
				left = out.Pix[i-1]
			}
			if y > 0 {
				up = out.Pix[i-w]
			}
			switch {
			case left == 0 && up == 0:
				if next == math.MaxUint32 {
					return nil, 0, fmt.Errorf("%w: at (%d,%d)", ErrLabelOverflow, x, y)
				}
				out.Pix[i] = next
				next++
			case left == 0:
				out.Pix[i] = up
			case up == 0 || left == up:
				out.Pix[i] = left
			default:
				out.Pix[i] = left
				eq.Union(left, up)
			}
		}
		tr.Update(y + 1)
	}

	if eq.Merges() > 0 {
		raster.Remap(out, eq.Table(next-1))
	}

	if o.Compact {
		n, err := Compact(out)
		if err != nil {
			return nil, 0, err
		}
		return out, n, nil
	}
	_, hi := out.Range()

	return out, int(hi), nil
}

// Compact renumbers the labels of a label raster into the contiguous range
// 1..N, in place, and returns N. Background (0) is untouched, and pixels
// sharing a label before still share one after.
//
// The label histogram is scanned from the low end; each empty label slot is
// filled with the highest remaining occupied label. Gap filling costs
// O(max label); the renumbering is applied in a single raster pass.
// Compacting an already contiguous raster leaves it unchanged.
//
// Labels far above the pixel count are compacted from the sorted set of
// distinct labels instead, with the same result.
func Compact(labels *raster.Raster[uint32]) (int, error) {
	if labels == nil {
		return 0, ErrNilRaster
	}
	hi, err := raster.LabelSpan(labels)
	if errors.Is(err, raster.ErrAllocation) {
		return compactSparse(labels), nil
	}
	if hi == 0 {
		return 0, nil
	}

	h, err := histogram.New(-0.5, float64(hi)+0.5, int(hi)+1)
	if err != nil {
		return 0, err
	}
	for _, v := range labels.Pix {
		if err := h.Add(float64(v)); err != nil {
			return 0, err
		}
	}

	counts := h.Counts()
	table := make([]uint32, len(counts))
	for i := range table {
		table[i] = uint32(i)
	}
	moved := false
	fill := len(counts) - 1
	for lo := 1; lo < fill; lo++ {
		if counts[lo] != 0 {
			continue
		}
		for fill > lo && counts[fill] == 0 {
			fill--
		}
		if fill <= lo {
			break
		}
		table[fill] = uint32(lo)
		counts[lo], counts[fill] = counts[fill], 0
		fill--
		moved = true
	}
	if moved {
		raster.Remap(labels, table)
	}

	n := h.Occupied()
	if h.Count(0) > 0 {
		n--
	}

	return n, nil
}

// compactSparse fills every missing label of 1..N with the highest
// remaining label, N being the number of distinct labels.
func compactSparse(labels *raster.Raster[uint32]) int {
	present := make(map[uint32]struct{})
	for _, v := range labels.Pix {
		if v != 0 {
			present[v] = struct{}{}
		}
	}
	sorted := make([]uint32, 0, len(present))
	for v := range present {
		sorted = append(sorted, v)
	}
	slices.Sort(sorted)

	n := uint32(len(sorted))
	table := make(map[uint32]uint32)
	top := len(sorted) - 1
	for gap := uint32(1); gap <= n; gap++ {
		if _, ok := present[gap]; ok {
			continue
		}
		table[sorted[top]] = gap
		top--
	}
	for i, v := range labels.Pix {
		if to, ok := table[v]; ok {
			labels.Pix[i] = to
		}
	}

	return int(n)
}
