// Package rasterimage converts between image.Image and rasterlab rasters,
// so decoded images can feed the labeling and clumping algorithms and their
// results can be inspected as pictures. Decoding and encoding stay with the
// caller.
//
// Images are reduced to 8-bit luminance (Rec. 601 weights) on the way in.
// Label rasters are painted with the thematic colour table of package stats
// on the way out.
package rasterimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/katalvlaran/rasterlab/raster"
	"github.com/katalvlaran/rasterlab/stats"
)

// Sentinel errors for image conversion.
var (
	// ErrNilImage is returned when a nil image or raster is passed.
	ErrNilImage = errors.New("rasterimage: image is nil")
	// ErrEmptyImage is returned for an image or crop with no pixels.
	ErrEmptyImage = errors.New("rasterimage: image has no pixels")
)

// FromImage returns the luminance of img as a uint8 raster whose (0,0) is
// the top-left pixel of img.Bounds().
func FromImage(img image.Image) (*raster.Raster[uint8], error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	return fromNRGBA(imaging.Grayscale(img))
}

func fromNRGBA(g *image.NRGBA) (*raster.Raster[uint8], error) {
	b := g.Bounds()
	r, err := raster.New[uint8](b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < r.Height; y++ {
		row := g.Pix[y*g.Stride:]
		for x := 0; x < r.Width; x++ {
			r.Pix[r.Index(x, y)] = row[x*4]
		}
	}

	return r, nil
}

// Crop returns the luminance raster of the part of img inside rect.
// Returns ErrEmptyImage when rect does not overlap img.
func Crop(img image.Image, rect image.Rectangle) (*raster.Raster[uint8], error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if rect.Intersect(img.Bounds()).Empty() {
		return nil, fmt.Errorf("%w: %v outside %v", ErrEmptyImage, rect, img.Bounds())
	}

	return fromNRGBA(imaging.Grayscale(imaging.Crop(img, rect)))
}

// MaskToImage renders a mask as a grayscale picture: 0 stays black and
// every other value becomes white.
func MaskToImage(mask *raster.Raster[uint8]) (*image.Gray, error) {
	if mask == nil {
		return nil, ErrNilImage
	}
	img := image.NewGray(image.Rect(0, 0, mask.Width, mask.Height))
	for i, v := range mask.Pix {
		if v != 0 {
			x, y := mask.Coordinate(i)
			img.Pix[y*img.Stride+x] = 0xff
		}
	}

	return img, nil
}

// LabelsToImage paints every label with its entry of stats.ColorTable;
// label 0 is transparent. Labels too sparse for a colour table fail with an
// error wrapping raster.ErrAllocation.
func LabelsToImage(labels *raster.Raster[uint32]) (*image.NRGBA, error) {
	if labels == nil {
		return nil, ErrNilImage
	}
	hi, err := raster.LabelSpan(labels)
	if err != nil {
		return nil, err
	}
	table := stats.ColorTable(int(hi) + 1)
	img := image.NewNRGBA(image.Rect(0, 0, labels.Width, labels.Height))
	for i, l := range labels.Pix {
		x, y := labels.Coordinate(i)
		img.SetNRGBA(x, y, nrgba(table[l]))
	}

	return img, nil
}

// nrgba converts a colour table entry; entries are either opaque or fully
// transparent, so no un-premultiplying is needed.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
