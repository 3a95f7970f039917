package raster

import (
	"fmt"
	"math"
)

// Raster is a Width×Height grid of T stored row-major in Pix:
// pixel (x,y) lives at Pix[y*Width+x]. len(Pix) == Width*Height always.
type Raster[T Number] struct {
	Width, Height int
	Pix           []T
}

// New allocates a zero-filled Width×Height raster.
// Returns ErrInvalidDimensions for non-positive sizes and ErrAllocation when
// Width*Height elements of T cannot be addressed.
// Complexity: O(W×H) time and memory.
func New[T Number](width, height int) (*Raster[T], error) {
	n, err := pixelCount[T](width, height)
	if err != nil {
		return nil, err
	}

	return &Raster[T]{Width: width, Height: height, Pix: make([]T, n)}, nil
}

// pixelCount validates the dimensions and returns Width*Height.
func pixelCount[T Number](width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	size := TypeOf[T]().Size()
	if width > math.MaxInt/height || width*height > math.MaxInt/size {
		return 0, fmt.Errorf("%w: %dx%d elements of %s", ErrAllocation, width, height, TypeOf[T]())
	}

	return width * height, nil
}

// FromSlice builds a raster from a row-major slice, copying pix.
// Returns ErrDimensionMismatch if len(pix) != width*height.
func FromSlice[T Number](width, height int, pix []T) (*Raster[T], error) {
	n, err := pixelCount[T](width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != n {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrDimensionMismatch, len(pix), width, height)
	}
	r := &Raster[T]{Width: width, Height: height, Pix: make([]T, n)}
	copy(r.Pix, pix)

	return r, nil
}

// From2D builds a raster from rows[y][x], deep-copying the input.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D[T Number](rows [][]T) (*Raster[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	r, err := New[T](w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(r.Pix[y*w:(y+1)*w], row)
	}

	return r, nil
}

// Clone returns a deep copy of r.
func (r *Raster[T]) Clone() *Raster[T] {
	out := &Raster[T]{Width: r.Width, Height: r.Height, Pix: make([]T, len(r.Pix))}
	copy(out.Pix, r.Pix)

	return out
}

// Type returns the element type of the raster.
func (r *Raster[T]) Type() ElementType {
	return TypeOf[T]()
}

// Len returns the number of pixels, Width*Height.
func (r *Raster[T]) Len() int {
	return len(r.Pix)
}

// InBounds reports whether (x,y) lies within the raster.
func (r *Raster[T]) InBounds(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// Index maps (x,y) to its row-major offset in Pix. The caller must have
// checked InBounds.
func (r *Raster[T]) Index(x, y int) int {
	return y*r.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (r *Raster[T]) Coordinate(idx int) (x, y int) {
	return idx % r.Width, idx / r.Width
}

func (r *Raster[T]) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, r.Width, r.Height)
}

// At returns the value at (x,y) or ErrOutOfBounds.
func (r *Raster[T]) At(x, y int) (T, error) {
	if !r.InBounds(x, y) {
		var zero T
		return zero, r.outOfBounds(x, y)
	}

	return r.Pix[y*r.Width+x], nil
}

// Set writes v at (x,y) or returns ErrOutOfBounds.
func (r *Raster[T]) Set(x, y int, v T) error {
	if !r.InBounds(x, y) {
		return r.outOfBounds(x, y)
	}
	r.Pix[y*r.Width+x] = v

	return nil
}

// Values returns the values at coords, in order.
func (r *Raster[T]) Values(coords []Coord) ([]T, error) {
	out := make([]T, len(coords))
	for i, c := range coords {
		if !r.InBounds(c.X, c.Y) {
			return nil, r.outOfBounds(c.X, c.Y)
		}
		out[i] = r.Pix[c.Y*r.Width+c.X]
	}

	return out, nil
}

// SetCoords stamps v at every coordinate in coords. All coordinates are
// validated first; on ErrOutOfBounds nothing has been written.
func (r *Raster[T]) SetCoords(coords []Coord, v T) error {
	for _, c := range coords {
		if !r.InBounds(c.X, c.Y) {
			return r.outOfBounds(c.X, c.Y)
		}
	}
	for _, c := range coords {
		r.Pix[c.Y*r.Width+c.X] = v
	}

	return nil
}

// Fill sets every pixel to v.
func (r *Raster[T]) Fill(v T) {
	for i := range r.Pix {
		r.Pix[i] = v
	}
}

// SameSize reports whether r has the given width and height.
func (r *Raster[T]) SameSize(width, height int) bool {
	return r.Width == width && r.Height == height
}

// CheckSameSize returns ErrDimensionMismatch unless a and b share a shape.
func CheckSameSize[A, B Number](a *Raster[A], b *Raster[B]) error {
	if a.Width != b.Width || a.Height != b.Height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, a.Width, a.Height, b.Width, b.Height)
	}

	return nil
}
