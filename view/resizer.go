package view

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
)

// Resizer scales an image to the given size in pixels.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

var _ Resizer = (*resizerFallback)(nil)

// resizerFallback is used when no Resizer was set.
type resizerFallback struct{}

func (r *resizerFallback) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X < 1 || size.Y < 1 {
		return nil, errors.New(`rectangle side with length 0`)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst, nil
}
