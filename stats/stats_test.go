package stats_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/rasterlab/histogram"
	"github.com/katalvlaran/rasterlab/raster"
	"github.com/katalvlaran/rasterlab/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRaster[T raster.Number](t testing.TB, rows [][]T) *raster.Raster[T] {
	t.Helper()
	r, err := raster.From2D(rows)
	require.NoError(t, err)

	return r
}

func TestCompute_Uint8(t *testing.T) {
	r := mustRaster(t, [][]uint8{{0, 1, 1}, {2, 2, 2}})
	s, err := stats.Compute(r)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 2.0, s.Max)
	assert.InDelta(t, 4.0/3.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/9.0), s.StdDev, 1e-12)
	assert.Equal(t, 6, s.Count)

	assert.Equal(t, stats.Direct, s.BinFunction)
	assert.Equal(t, 0.0, s.HistMin)
	assert.Equal(t, 255.0, s.HistMax)
	require.Len(t, s.Histogram, 256)
	assert.Equal(t, []int{1, 2, 3, 0}, s.Histogram[:4])

	assert.Equal(t, 2.0, s.Mode)
	// Bin 2 first passes half the total; averaged with bin 3 and rounded.
	assert.Equal(t, 3.0, s.Median)
}

func TestCompute_SingleValue(t *testing.T) {
	r := mustRaster(t, [][]float32{{5, 5}, {5, 5}})
	s, err := stats.Compute(r)
	require.NoError(t, err)

	assert.Equal(t, 5.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, 0, s.StdDev, 1e-9)
	assert.Equal(t, stats.Direct, s.BinFunction)
	assert.Equal(t, []int{0, 4}, s.Histogram)
	assert.Equal(t, 4.0, s.HistMin)
	assert.Equal(t, 5.0, s.HistMax)
	assert.Equal(t, 5.0, s.Mode)
	assert.Equal(t, 5.0, s.Median)
}

func TestCompute_DirectFloat(t *testing.T) {
	r := mustRaster(t, [][]float64{{1.5, 2.5, 3.5}})
	s, err := stats.Compute(r)
	require.NoError(t, err)

	assert.Equal(t, stats.Direct, s.BinFunction)
	assert.Equal(t, []int{0, 1, 1, 1}, s.Histogram)
	assert.Equal(t, 1.0, s.HistMin)
	assert.Equal(t, 4.0, s.HistMax)
	assert.Equal(t, 2.0, s.Mode)
	assert.Equal(t, 3.5, s.Median)
}

func TestCompute_Linear(t *testing.T) {
	r := mustRaster(t, [][]int16{{0, 0}, {0, 1000}})
	s, err := stats.Compute(r)
	require.NoError(t, err)

	assert.Equal(t, stats.Linear, s.BinFunction)
	require.Len(t, s.Histogram, 256)
	assert.Equal(t, 3, s.Histogram[0])
	assert.Equal(t, 1, s.Histogram[255])
	assert.Equal(t, 0.0, s.HistMin)
	assert.Equal(t, 1000.0, s.HistMax)
	assert.InDelta(t, 1000.0/256, s.BinValue(1), 1e-12)
	assert.Equal(t, 0.0, s.Mode)
	// (0 + 3.90625)/2 rounded to the nearest integer.
	assert.Equal(t, 2.0, s.Median)
}

func TestCompute_Thematic(t *testing.T) {
	r := mustRaster(t, [][]uint32{{0, 3}, {3, 1}})
	s, err := stats.Compute(r, stats.WithThematic())
	require.NoError(t, err)

	assert.True(t, s.Thematic)
	assert.Equal(t, []int{1, 1, 0, 2}, s.Histogram)
	assert.Equal(t, 0.0, s.HistMin)
	assert.Equal(t, 3.0, s.HistMax)
	assert.Equal(t, 3.0, s.Mode)
	assert.Equal(t, 3.0, s.Median)

	neg := mustRaster(t, [][]int16{{-1, 2}})
	_, err = stats.Compute(neg, stats.WithThematic())
	assert.ErrorIs(t, err, stats.ErrNegativeClass)
}

func TestCompute_IgnoreAndNaN(t *testing.T) {
	r := mustRaster(t, [][]float64{{0, 5}, {math.NaN(), 7}, {5, 0}})
	s, err := stats.Compute(r, stats.WithIgnore(0))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 5.0, s.Min)
	assert.Equal(t, 7.0, s.Max)
	assert.InDelta(t, 17.0/3.0, s.Mean, 1e-12)
	assert.Equal(t, 5.0, s.Mode)
}

func TestCompute_AllBackground(t *testing.T) {
	r, err := raster.New[uint8](4, 4)
	require.NoError(t, err)

	_, err = stats.Compute(r, stats.WithIgnore(0))
	assert.ErrorIs(t, err, stats.ErrNoValues)

	nan := mustRaster(t, [][]float32{{float32(math.NaN())}})
	_, err = stats.Compute(nan)
	assert.ErrorIs(t, err, stats.ErrNoValues)
}

func TestCompute_Progress(t *testing.T) {
	r, err := raster.New[int32](8, 10)
	require.NoError(t, err)
	var calls []float64
	_, err = stats.Compute(r, stats.WithProgress(func(f float64) { calls = append(calls, f) }))
	require.NoError(t, err)
	require.NotEmpty(t, calls)
	assert.InDelta(t, 1.0, calls[len(calls)-1], 1e-12)
}

func TestCompute_Errors(t *testing.T) {
	_, err := stats.Compute[uint8](nil)
	assert.ErrorIs(t, err, stats.ErrNilRaster)

	r := mustRaster(t, [][]uint8{{1}})
	_, err = stats.Compute(r, stats.WithIgnore(math.NaN()))
	assert.ErrorIs(t, err, stats.ErrOptionViolation)

	_, err = stats.Compute(r, stats.WithContext(nil))
	assert.ErrorIs(t, err, stats.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = stats.Compute(r, stats.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompute_Float32Nodata(t *testing.T) {
	for _, nodata := range []float64{0.1, -9999.9} {
		r, err := raster.FromSlice(4, 1, []float32{float32(nodata), float32(nodata), 5, 7})
		require.NoError(t, err)

		s, err := stats.Compute(r, stats.WithIgnore(nodata))
		require.NoError(t, err)
		assert.Equal(t, 2, s.Count, "nodata %v", nodata)
		assert.Equal(t, 5.0, s.Min)
		assert.Equal(t, 6.0, s.Mean)
	}

	// A fractional ignore value cannot match an integer pixel.
	ints := mustRaster(t, [][]int16{{0, 1, 2}})
	s, err := stats.Compute(ints, stats.WithIgnore(0.5))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
}

func TestCompute_ExtremeValues(t *testing.T) {
	huge, err := raster.FromSlice(2, 1, []float64{-1.7e308, 1.7e308})
	require.NoError(t, err)
	_, err = stats.Compute(huge)
	assert.ErrorIs(t, err, histogram.ErrInvalidRange)

	wide, err := raster.FromSlice(2, 1, []float64{-8e307, 8e307})
	require.NoError(t, err)
	s, err := stats.Compute(wide)
	require.NoError(t, err)
	assert.Equal(t, stats.Linear, s.BinFunction)
	assert.Equal(t, 1, s.Histogram[0])
	assert.Equal(t, 1, s.Histogram[255])
}

func TestCompute_LargeConstant(t *testing.T) {
	for _, v := range []float64{1e11, 1e16, -3e20} {
		r, err := raster.FromSlice(2, 1, []float64{v, v})
		require.NoError(t, err)

		s, err := stats.Compute(r)
		require.NoError(t, err, "value %g", v)
		assert.Equal(t, v, s.Min)
		assert.Equal(t, v, s.Max)
		assert.InDelta(t, v, s.Mode, math.Abs(v)*1e-12+1)
		assert.InDelta(t, v, s.Median, math.Abs(v)*1e-12+1)
		total := 0
		for _, c := range s.Histogram {
			total += c
		}
		assert.Equal(t, 2, total)
	}
}

// Progress keeps advancing through the histogram pass when nodata pixels
// are skipped.
func TestCompute_ProgressWithNodata(t *testing.T) {
	r, err := raster.New[float64](4, 10)
	require.NoError(t, err)
	for y := 0; y < r.Height; y++ {
		require.NoError(t, r.Set(2, y, 3))
		require.NoError(t, r.Set(3, y, 4))
	}

	var calls []float64
	_, err = stats.Compute(r, stats.WithIgnore(0), stats.WithProgress(func(f float64) { calls = append(calls, f) }))
	require.NoError(t, err)
	assert.Len(t, calls, 20)
	assert.Contains(t, calls, 0.95)
	assert.Equal(t, 1.0, calls[len(calls)-1])
}
