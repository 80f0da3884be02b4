package rez

import (
	"image"

	"github.com/bamiaux/rez"

	"github.com/srlehn/ttview/view"
)

// Resizer uses "github.com/bamiaux/rez" (SIMD assembly on amd64),
// bilinear interpolation.
type Resizer struct{}

var _ view.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	err := rez.Convert(m, img, rez.NewBilinearFilter())
	if err != nil {
		return nil, err
	}
	return m, nil
}
