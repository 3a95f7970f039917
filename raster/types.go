package raster

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Sentinel errors for raster operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("raster: width and height must be positive")
	// ErrAllocation indicates a buffer of the requested size cannot be obtained.
	ErrAllocation = errors.New("raster: buffer allocation failed")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("raster: coordinate out of bounds")
	// ErrDimensionMismatch indicates two rasters with differing shapes.
	ErrDimensionMismatch = errors.New("raster: dimension mismatch")
	// ErrEmptyGrid indicates input rows with no rows or no columns.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
)

// Number is the set of element types a Raster may hold.
type Number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32 | ~float64
}

// ElementType tags the storage type of a raster's pixels.
type ElementType int

const (
	// Unknown is never produced by TypeOf for a valid Number.
	Unknown ElementType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

var elementNames = [...]string{"Unknown", "Int8", "Uint8", "Int16", "Uint16", "Int32", "Uint32", "Float32", "Float64"}

// String returns the type name, e.g. "Uint8".
func (e ElementType) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return fmt.Sprintf("ElementType(%d)", int(e))
	}

	return elementNames[e]
}

// IsFloat reports whether the element type is a floating-point type.
func (e ElementType) IsFloat() bool {
	return e == Float32 || e == Float64
}

// Size returns the element size in bytes.
func (e ElementType) Size() int {
	switch e {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	}

	return 0
}

// TypeOf returns the ElementType for T. The kind of the underlying type is
// used, so named types such as `type Class uint8` map to Uint8.
func TypeOf[T Number]() ElementType {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Uint8:
		return Uint8
	case reflect.Int16:
		return Int16
	case reflect.Uint16:
		return Uint16
	case reflect.Int32:
		return Int32
	case reflect.Uint32:
		return Uint32
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	}

	return Unknown
}

// Limits returns the lowest and highest values the element type can hold.
func (e ElementType) Limits() (lo, hi float64) {
	switch e {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Uint8:
		return 0, math.MaxUint8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Uint16:
		return 0, math.MaxUint16
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Uint32:
		return 0, math.MaxUint32
	case Float32:
		return -math.MaxFloat32, math.MaxFloat32
	case Float64:
		return -math.MaxFloat64, math.MaxFloat64
	}

	return 0, 0
}

// FromFloat converts v to T. For integer types ok is false unless v is a
// whole number within the type's limits; for float types v is rounded to
// the nearest T, and ok is false only when a finite v overflows T or v is
// NaN.
func FromFloat[T Number](v float64) (t T, ok bool) {
	if math.IsNaN(v) {
		return t, false
	}
	et := TypeOf[T]()
	if et.IsFloat() {
		t = T(v)
		if f := float64(t); math.IsInf(f, 0) && !math.IsInf(v, 0) {
			return 0, false
		}

		return t, true
	}
	lo, hi := et.Limits()
	if v != math.Trunc(v) || v < lo || v > hi {
		return t, false
	}

	return T(v), true
}

// Coord is a pixel coordinate: X is the column, Y the row.
type Coord struct {
	X, Y int
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// Offsets returns the (dx,dy) neighbor offsets for c. The slice is shared and
// must not be modified.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// String returns "Conn4" or "Conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	}

	return fmt.Sprintf("Connectivity(%d)", int(c))
}
