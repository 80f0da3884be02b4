package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/ttview/view"
)

// resizer uses "github.com/anthonynsimon/bild/transform"
type resizer struct {
	filter transform.ResampleFilter
}

var _ view.Resizer = (*resizer)(nil)

// Lanczos creates a resizer with the Lanczos kernel.
func Lanczos() view.Resizer { return &resizer{filter: transform.Lanczos} }

// Linear creates a resizer with triangle (linear) interpolation.
func Linear() view.Resizer { return &resizer{filter: transform.Linear} }

// Gaussian creates a resizer with a gaussian kernel.
func Gaussian() view.Resizer { return &resizer{filter: transform.Gaussian} }

// Resize ...
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := transform.Resize(img, size.X, size.Y, r.filter)
	return m, nil
}
