package view

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
)

var _ image.Image = (*Image)(nil)

// Image is a lazily decoded image source. Exactly one of Original,
// FileName, Encoded is the origin; Decode fills Original from it.
type Image struct {
	Original image.Image
	FileName string // lazily loaded
	Encoded  []byte // lazily loaded
}

// NewImage ...
func NewImage(img image.Image) *Image {
	if img != nil {
		if m, ok := img.(*Image); ok {
			return m
		}
	}
	return &Image{Original: img}
}

// NewImageFilename - for lazy loading the file
func NewImageFilename(imgFile string) *Image {
	if imgFilenameAbs, err := filepath.Abs(imgFile); err == nil {
		imgFile = imgFilenameAbs
	}
	return &Image{FileName: imgFile}
}

// NewImageBytes - for lazy loading the encoded image
func NewImageBytes(imgBytes []byte) *Image {
	return &Image{Encoded: imgBytes}
}

// Decode decodes and stores the image in the struct.
//
// Decode requires registration of image decoders.
func (i *Image) Decode() error {
	if i == nil {
		return errors.NilReceiver()
	}
	if i.Original != nil {
		return nil
	}
	var rdr io.Reader
	if len(i.Encoded) > 0 {
		if len(i.FileName) > 0 {
			return errors.New(`image contains 2 sources`)
		}
		rdr = bytes.NewReader(i.Encoded)
	} else if len(i.FileName) > 0 {
		f, err := os.Open(i.FileName)
		if err != nil {
			return errors.New(err)
		}
		defer f.Close()
		rdr = f
	} else {
		return errors.New(consts.ErrNilImage)
	}
	img, _, err := image.Decode(rdr)
	if err != nil {
		return errors.New(err)
	}
	if b := img.Bounds(); b.Dx() < 1 || b.Dy() < 1 {
		return errors.New(consts.ErrInvalidImage)
	}
	i.Original = img
	return nil
}

// ColorModel ...
func (i *Image) ColorModel() color.Model {
	if i == nil {
		return color.RGBAModel
	}
	if err := i.Decode(); err != nil {
		return color.RGBAModel
	}
	return i.Original.ColorModel()
}

// Bounds ...
func (i *Image) Bounds() image.Rectangle {
	if i == nil {
		return image.Rectangle{}
	}
	if err := i.Decode(); err != nil {
		return image.Rectangle{}
	}
	return i.Original.Bounds()
}

// At ...
func (i *Image) At(x, y int) color.Color {
	if i == nil {
		return color.RGBA{}
	}
	if err := i.Decode(); err != nil {
		return color.RGBA{}
	}
	return i.Original.At(x, y)
}

// Image ...
func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, errors.NilReceiver()
	}
	if err := i.Decode(); err != nil {
		return nil, err
	}
	return i.Original, nil
}
