package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rasterlab/raster"
	"gonum.org/v1/gonum/stat"
)

// ZoneMeans returns the mean and population standard deviation of data over
// each zone of a zone raster such as a clump ID map. Both slices are indexed
// by zone ID from 0 to the highest ID; zones with no contributing pixel hold
// 0. Pixels whose data value equals ignore, or is NaN, are skipped.
//
// Returns ErrNilRaster, an error wrapping raster.ErrDimensionMismatch or
// raster.ErrAllocation (zone IDs too sparse to index, see raster.LabelSpan),
// or ErrNoValues when no pixel contributes at all.
func ZoneMeans[T raster.Number](zones *raster.Raster[uint32], data *raster.Raster[T], ignore T) (means, stddevs []float64, err error) {
	if zones == nil || data == nil {
		return nil, nil, ErrNilRaster
	}
	if err = raster.CheckSameSize(zones, data); err != nil {
		return nil, nil, fmt.Errorf("stats: zones and data: %w", err)
	}

	hi, err := raster.LabelSpan(zones)
	if err != nil {
		return nil, nil, err
	}
	groups := make([][]float64, int(hi)+1)
	found := false
	for i, z := range zones.Pix {
		p := data.Pix[i]
		if p == ignore || math.IsNaN(float64(p)) {
			continue
		}
		groups[z] = append(groups[z], float64(p))
		found = true
	}
	if !found {
		return nil, nil, ErrNoValues
	}

	means = make([]float64, len(groups))
	stddevs = make([]float64, len(groups))
	for z, g := range groups {
		if len(g) == 0 {
			continue
		}
		means[z], stddevs[z] = stat.PopMeanStdDev(g, nil)
	}

	return means, stddevs, nil
}
