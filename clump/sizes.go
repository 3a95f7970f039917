package clump

import "github.com/katalvlaran/rasterlab/raster"

// Sizes returns the pixel count of every ID in an ID map, indexed by ID.
// Index 0 (background) is always 0.
//
// Returns ErrNilRaster, or an error wrapping raster.ErrAllocation when the
// highest ID is too sparse to index (see raster.LabelSpan).
func Sizes(ids *raster.Raster[uint32]) ([]int, error) {
	if ids == nil {
		return nil, ErrNilRaster
	}
	hi, err := raster.LabelSpan(ids)
	if err != nil {
		return nil, err
	}
	counts := make([]int, int(hi)+1)
	for _, id := range ids.Pix {
		if id != 0 {
			counts[id]++
		}
	}

	return counts, nil
}

// SizeImage builds a size map from an ID map: each pixel holds the pixel
// count of its ID, background stays 0. Errors are those of Sizes.
func SizeImage(ids *raster.Raster[uint32]) (*raster.Raster[uint32], error) {
	counts, err := Sizes(ids)
	if err != nil {
		return nil, err
	}
	out, err := raster.New[uint32](ids.Width, ids.Height)
	if err != nil {
		return nil, err
	}
	for i, id := range ids.Pix {
		out.Pix[i] = uint32(counts[id])
	}

	return out, nil
}
