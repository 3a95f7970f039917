package grow_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/rasterlab/grow"
	"github.com/katalvlaran/rasterlab/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guide has a valley of values 10..20 shaped like a U, surrounded by 90s.
var guide = [][]uint8{
	{10, 90, 90, 12},
	{11, 90, 90, 13},
	{15, 16, 17, 20},
	{90, 90, 90, 90},
}

func setup(t *testing.T, opts ...grow.Option) (*grow.Grower[uint8], *raster.Raster[uint8]) {
	t.Helper()
	g, err := raster.From2D(guide)
	require.NoError(t, err)
	out, err := raster.New[uint8](4, 4)
	require.NoError(t, err)
	gr, err := grow.New(g, out, 10, 20, opts...)
	require.NoError(t, err)

	return gr, out
}

func TestGrow_FillsValley(t *testing.T) {
	gr, out := setup(t)
	n, err := gr.Grow(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []uint8{
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 1, 1, 1,
		0, 0, 0, 0,
	}, out.Pix)
	assert.Same(t, out, gr.Output())
}

func TestGrow_SeedOutOfRange(t *testing.T) {
	gr, out := setup(t)
	n, err := gr.Grow(1, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, make([]uint8, 16), out.Pix)
}

func TestGrow_OverlappingSeedsMerge(t *testing.T) {
	gr, out := setup(t)
	n, err := gr.GrowSeeds([]raster.Coord{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 2}})
	require.NoError(t, err)
	// The first seed accepts the whole valley; later seeds add nothing.
	assert.Equal(t, 8, n)

	ones := 0
	for _, v := range out.Pix {
		assert.LessOrEqual(t, v, uint8(1))
		ones += int(v)
	}
	assert.Equal(t, 8, ones)
}

func TestGrow_Connectivity(t *testing.T) {
	g, err := raster.From2D([][]int32{
		{5, 0, 0},
		{0, 5, 0},
		{0, 0, 5},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		conn raster.Connectivity
		want int
	}{
		{"Conn8 follows the diagonal", raster.Conn8, 3},
		{"Conn4 stops at the seed", raster.Conn4, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := raster.New[uint8](3, 3)
			require.NoError(t, err)
			gr, err := grow.New(g, out, 1, 9, grow.WithConnectivity(tc.conn))
			require.NoError(t, err)
			n, err := gr.Grow(0, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestGrow_PresetMaskBlocks(t *testing.T) {
	gr, out := setup(t, grow.WithConnectivity(raster.Conn4))
	// (0,2) already accepted: growth from the top-left stops there.
	require.NoError(t, out.Set(0, 2, 1))
	n, err := gr.Grow(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	// A seed that is already set adds nothing.
	n, err = gr.Grow(0, 2)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGrowFromMask(t *testing.T) {
	var calls []float64
	gr, out := setup(t, grow.WithProgress(func(f float64) { calls = append(calls, f) }))
	mask, err := raster.From2D([][]uint8{
		{0, 0, 0, 0},
		{0, 0, 0, 7},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
	})
	require.NoError(t, err)

	n, err := gr.GrowFromMask(mask)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.EqualValues(t, 0, out.Pix[out.Index(0, 3)], "seed at a 90 is rejected")
	assert.Len(t, calls, 4)
	assert.InDelta(t, 1.0, calls[3], 1e-12)
}

func TestGrow_Errors(t *testing.T) {
	g, err := raster.From2D(guide)
	require.NoError(t, err)
	out, err := raster.New[uint8](4, 4)
	require.NoError(t, err)
	small, err := raster.New[uint8](3, 4)
	require.NoError(t, err)

	_, err = grow.New(g, small, 10, 20)
	assert.ErrorIs(t, err, raster.ErrDimensionMismatch)

	_, err = grow.New(g, out, 20, 10)
	assert.ErrorIs(t, err, grow.ErrInvalidRange)

	_, err = grow.New[uint8](nil, out, 10, 20)
	assert.ErrorIs(t, err, grow.ErrNilRaster)

	_, err = grow.New(g, out, 10, 20, grow.WithConnectivity(raster.Connectivity(5)))
	assert.ErrorIs(t, err, grow.ErrOptionViolation)

	gr, err := grow.New(g, out, 10, 20)
	require.NoError(t, err)
	_, err = gr.Grow(4, 0)
	assert.ErrorIs(t, err, raster.ErrOutOfBounds)
	_, err = gr.Grow(-1, 2)
	assert.ErrorIs(t, err, raster.ErrOutOfBounds)

	_, err = gr.GrowFromMask(small)
	assert.ErrorIs(t, err, raster.ErrDimensionMismatch)
	_, err = gr.GrowFromMask(nil)
	assert.ErrorIs(t, err, grow.ErrNilRaster)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gr, err = grow.New(g, out, 10, 20, grow.WithContext(ctx))
	require.NoError(t, err)
	_, err = gr.Grow(0, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
