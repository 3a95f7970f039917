package raster

import "fmt"

// Range returns the minimum and maximum pixel values in one scan.
func (r *Raster[T]) Range() (lo, hi T) {
	lo, hi = r.Pix[0], r.Pix[0]
	for _, v := range r.Pix[1:] {
		if v > hi {
			hi = v
		} else if v < lo {
			lo = v
		}
	}

	return lo, hi
}

// RangeIgnore is Range skipping pixels equal to ignore. ok is false when
// every pixel equals ignore.
func (r *Raster[T]) RangeIgnore(ignore T) (lo, hi T, ok bool) {
	for _, v := range r.Pix {
		if v == ignore {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v > hi {
			hi = v
		} else if v < lo {
			lo = v
		}
	}

	return lo, hi, ok
}

// Recode rewrites every pixel equal to from as to and returns the number of
// pixels changed.
func (r *Raster[T]) Recode(from, to T) int {
	n := 0
	for i, v := range r.Pix {
		if v == from {
			r.Pix[i] = to
			n++
		}
	}

	return n
}

// RecodeGreater rewrites every pixel greater than limit as to.
func (r *Raster[T]) RecodeGreater(limit, to T) int {
	n := 0
	for i, v := range r.Pix {
		if v > limit {
			r.Pix[i] = to
			n++
		}
	}

	return n
}

// RecodeLess rewrites every pixel less than limit as to.
func (r *Raster[T]) RecodeLess(limit, to T) int {
	n := 0
	for i, v := range r.Pix {
		if v < limit {
			r.Pix[i] = to
			n++
		}
	}

	return n
}

// Remap applies a lookup table to a label raster in a single pass:
// every pixel v < len(table) becomes table[v]; larger values are left as is.
func Remap(r *Raster[uint32], table []uint32) {
	n := uint32(len(table))
	for i, v := range r.Pix {
		if v < n {
			r.Pix[i] = table[v]
		}
	}
}

// Sub copies the rectangle [tl, br) into a new raster of size
// (br.X-tl.X)×(br.Y-tl.Y). The rectangle must be non-empty and inside r.
func (r *Raster[T]) Sub(tl, br Coord) (*Raster[T], error) {
	if tl.X < 0 || tl.Y < 0 || br.X > r.Width || br.Y > r.Height || tl.X >= br.X || tl.Y >= br.Y {
		return nil, fmt.Errorf("%w: rectangle (%d,%d)-(%d,%d) in %dx%d",
			ErrOutOfBounds, tl.X, tl.Y, br.X, br.Y, r.Width, r.Height)
	}
	w, h := br.X-tl.X, br.Y-tl.Y
	out, err := New[T](w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		src := (tl.Y+y)*r.Width + tl.X
		copy(out.Pix[y*w:(y+1)*w], r.Pix[src:src+w])
	}

	return out, nil
}

// PasteIgnore writes src into r with its top-left corner at tl, skipping
// src pixels equal to ignore. src must fit entirely inside r.
func (r *Raster[T]) PasteIgnore(src *Raster[T], tl Coord, ignore T) error {
	if tl.X < 0 || tl.Y < 0 || tl.X+src.Width > r.Width || tl.Y+src.Height > r.Height {
		return fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d",
			ErrOutOfBounds, src.Width, src.Height, tl.X, tl.Y, r.Width, r.Height)
	}
	for y := 0; y < src.Height; y++ {
		row := src.Pix[y*src.Width : (y+1)*src.Width]
		dst := (tl.Y+y)*r.Width + tl.X
		for x, v := range row {
			if v != ignore {
				r.Pix[dst+x] = v
			}
		}
	}

	return nil
}

// Mean returns the arithmetic mean of all pixels.
func (r *Raster[T]) Mean() float64 {
	var sum float64
	for _, v := range r.Pix {
		sum += float64(v)
	}

	return sum / float64(len(r.Pix))
}

// MeanIgnore returns the mean of pixels not equal to ignore; ok is false when
// no pixel contributed.
func (r *Raster[T]) MeanIgnore(ignore T) (mean float64, ok bool) {
	var (
		sum float64
		n   int
	)
	for _, v := range r.Pix {
		if v != ignore {
			sum += float64(v)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}

	return sum / float64(n), true
}

// Convert returns a copy of r with every pixel converted to U using Go
// conversion rules.
func Convert[U, T Number](r *Raster[T]) *Raster[U] {
	out := &Raster[U]{Width: r.Width, Height: r.Height, Pix: make([]U, len(r.Pix))}
	for i, v := range r.Pix {
		out.Pix[i] = U(v)
	}

	return out
}

// minLabelTable is the label-table length always considered affordable.
const minLabelTable = 1 << 16

// LabelSpan returns the highest label in r. A lookup table indexed by label
// needs hi+1 entries; when hi exceeds both the pixel count and
// minLabelTable the labels are too sparse for such a table and LabelSpan
// returns an error wrapping ErrAllocation together with hi.
func LabelSpan(r *Raster[uint32]) (uint32, error) {
	_, hi := r.Range()
	if limit := max(r.Len(), minLabelTable); uint64(hi) > uint64(limit) {
		return hi, fmt.Errorf("%w: label %d needs a %d-entry table for %d pixels", ErrAllocation, hi, uint64(hi)+1, r.Len())
	}

	return hi, nil
}
