package histogram_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rasterlab/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidRange rejects degenerate ranges and bin counts.
func TestNew_InvalidRange(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
		bins     int
	}{
		{"MaxEqualsMin", 3, 3, 4},
		{"MaxBelowMin", 5, 1, 4},
		{"ZeroBins", 0, 1, 0},
		{"NegativeBins", 0, 1, -2},
		{"NaN", math.NaN(), 1, 2},
		{"Inf", 0, math.Inf(1), 2},
		{"SpanOverflows", -1.7e308, 1.7e308, 5},
		{"StepUnderflows", 0, 5e-324, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := histogram.New(tc.min, tc.max, tc.bins)
			assert.ErrorIs(t, err, histogram.ErrInvalidRange)
		})
	}
}

// TestAdd_Scenario places [0,2,2,9.999] into 5 bins over [0,10].
func TestAdd_Scenario(t *testing.T) {
	h, err := histogram.New(0, 10, 5)
	require.NoError(t, err)
	for _, v := range []float64{0, 2, 2, 9.999} {
		require.NoError(t, h.Add(v))
	}
	assert.Equal(t, []int{1, 2, 0, 0, 1}, h.Counts())
	assert.Equal(t, 4, h.Total())
	assert.Equal(t, 2.0, h.Step())
	assert.Equal(t, 3, h.Occupied())

	assert.InDelta(t, 4.0, h.Percentile(0.5), 1e-9)
	// Percentile must not have mutated the stored bins.
	assert.Equal(t, []int{1, 2, 0, 0, 1}, h.Counts())
	assert.False(t, h.Cumulative())
}

// TestAdd_MaxClampsToLastBin checks the rounding clamp at the top edge.
func TestAdd_MaxClampsToLastBin(t *testing.T) {
	h, err := histogram.New(0, 1, 3)
	require.NoError(t, err)
	require.NoError(t, h.Add(1))
	assert.Equal(t, 1, h.Count(2))
}

// TestAdd_OutOfRange rejects values outside [Min,Max].
func TestAdd_OutOfRange(t *testing.T) {
	h, _ := histogram.New(0, 10, 5)
	assert.ErrorIs(t, h.Add(-0.1), histogram.ErrInvalidRange)
	assert.ErrorIs(t, h.Add(10.5), histogram.ErrInvalidRange)
	assert.ErrorIs(t, h.Add(math.NaN()), histogram.ErrInvalidRange)
	assert.Zero(t, h.Total())
}

// TestLargestBin_FirstWins verifies the tie-break on equal counts.
func TestLargestBin_FirstWins(t *testing.T) {
	h, _ := histogram.New(0, 4, 4)
	for _, v := range []float64{1.5, 1.5, 3.5, 3.5, 0.5} {
		require.NoError(t, h.Add(v))
	}
	assert.Equal(t, 1, h.LargestBin())
}

// TestMakeCumulative checks the running sum and that queries still agree.
func TestMakeCumulative(t *testing.T) {
	h, _ := histogram.New(0, 10, 5)
	for _, v := range []float64{0, 2, 2, 9.999} {
		require.NoError(t, h.Add(v))
	}
	before := h.Percentile(0.5)
	h.MakeCumulative()
	h.MakeCumulative()
	assert.True(t, h.Cumulative())
	assert.Equal(t, []int{1, 3, 3, 3, 4}, h.Counts())
	assert.Equal(t, before, h.Percentile(0.5))
	assert.Equal(t, 1, h.LargestBin())
	assert.Equal(t, 3, h.Occupied())

	require.NoError(t, h.Add(5))
	assert.Equal(t, []int{1, 3, 4, 4, 5}, h.Counts())
}

// TestPercentile_Extremes checks p=0 and p=1 land on the first and last edges.
func TestPercentile_Extremes(t *testing.T) {
	h, _ := histogram.New(0, 10, 10)
	for v := 0.5; v < 10; v++ {
		require.NoError(t, h.Add(v))
	}
	assert.InDelta(t, 1.0, h.Percentile(0), 1e-9)
	assert.InDelta(t, 10.0, h.Percentile(1), 1e-9)
	assert.InDelta(t, 5.0, h.Percentile(0.5), 1e-9)
}

// TestBinValueMapping round-trips ValueForBin and BinForValue.
func TestBinValueMapping(t *testing.T) {
	h, _ := histogram.New(-0.5, 255.5, 256)
	for bin := 0; bin < 256; bin++ {
		center := h.ValueForBin(bin) + h.Step()/2
		assert.Equal(t, bin, h.BinForValue(center))
	}
	assert.Equal(t, 0, h.Count(-1))
	assert.Equal(t, 0, h.Count(256))
}

// TestAdd_ExtremeFiniteRange bins values across nearly the whole float64
// range without overflowing the step.
func TestAdd_ExtremeFiniteRange(t *testing.T) {
	h, err := histogram.New(-8e307, 8e307, 4)
	require.NoError(t, err)
	for _, v := range []float64{-8e307, 0, 8e307} {
		require.NoError(t, h.Add(v))
	}
	assert.Equal(t, []int{1, 0, 1, 1}, h.Counts())
}

// TestPercentile_TieTakesLaterBin: distances to bins i-1 and i are equal,
// so bin i is returned.
func TestPercentile_TieTakesLaterBin(t *testing.T) {
	h, err := histogram.New(0, 4, 4)
	require.NoError(t, err)
	for _, v := range []float64{0.5, 1.5, 1.5, 3.5} {
		require.NoError(t, h.Add(v))
	}
	// cumulative [1 3 3 4], target 2: |2-1| == |3-2| → bin 1, upper edge 2.
	assert.InDelta(t, 2.0, h.Percentile(0.5), 1e-12)
}
