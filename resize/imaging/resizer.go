package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/ttview/view"
)

// resizer uses "github.com/disintegration/imaging"
type resizer struct {
	filter imaging.ResampleFilter
}

var _ view.Resizer = (*resizer)(nil)

// Lanczos creates a resizer with the Lanczos kernel.
func Lanczos() view.Resizer { return &resizer{filter: imaging.Lanczos} }

// Gaussian creates a resizer with a gaussian kernel.
func Gaussian() view.Resizer { return &resizer{filter: imaging.Gaussian} }

// Box creates a resizer with box averaging (good for strong downscaling).
func Box() view.Resizer { return &resizer{filter: imaging.Box} }

// Resize ...
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return imaging.Resize(img, size.X, size.Y, r.filter), nil
}
