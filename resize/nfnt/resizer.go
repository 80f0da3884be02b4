package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/ttview/view"
)

// Resizer uses "github.com/nfnt/resize" with the Lanczos3 kernel.
type Resizer struct{}

var _ view.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
	return m, nil
}

// Bicubic creates a resizer with bicubic interpolation.
func Bicubic() view.Resizer { return &resizerBicubic{} }

type resizerBicubic struct{}

var _ view.Resizer = (*resizerBicubic)(nil)

func (r *resizerBicubic) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := resize.Resize(uint(size.X), uint(size.Y), img, resize.Bicubic)
	return m, nil
}
