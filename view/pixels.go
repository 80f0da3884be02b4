package view

import (
	"image"
	"image/color"
)

// Pixels is a decoded pixel buffer with channel values normalized to the
// 0..1 range, the working representation between the resize and style
// stages. Ownership moves along the pipeline; stylers are free to modify
// the buffer in place (the dithering styles do). Channel values may leave
// the 0..1 range transiently during error diffusion, Clamp8 requantizes
// on output.
type Pixels struct {
	W, H int
	Pix  [][3]float64 // row-major, length W*H
}

// NewPixels ...
func NewPixels(w, h int) *Pixels {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Pixels{W: w, H: h, Pix: make([][3]float64, w*h)}
}

// PixelsFromImage flattens img into a normalized buffer. Alpha is dropped,
// not composited.
func PixelsFromImage(img image.Image) *Pixels {
	if img == nil {
		return NewPixels(0, 0)
	}
	bounds := img.Bounds()
	p := NewPixels(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			p.Pix[i] = [3]float64{
				float64(c.R) / 255,
				float64(c.G) / 255,
				float64(c.B) / 255,
			}
			i++
		}
	}
	return p
}

// At ...
func (p *Pixels) At(x, y int) [3]float64 {
	if p == nil || x < 0 || y < 0 || x >= p.W || y >= p.H {
		return [3]float64{}
	}
	return p.Pix[y*p.W+x]
}

// Set ...
func (p *Pixels) Set(x, y int, c [3]float64) {
	if p == nil || x < 0 || y < 0 || x >= p.W || y >= p.H {
		return
	}
	p.Pix[y*p.W+x] = c
}

// Luma returns the Rec. 601 luma of the pixel at (x, y).
func (p *Pixels) Luma(x, y int) float64 {
	return Luma(p.At(x, y))
}

// Luma returns the Rec. 601 weighted brightness of a normalized RGB triple.
func Luma(c [3]float64) float64 {
	return 0.299*c[0] + 0.587*c[1] + 0.114*c[2]
}

// Clamp8 requantizes a normalized channel value to 8 bits.
func Clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// NRGBAAt returns the pixel at (x, y) requantized to 8 bits per channel.
func (p *Pixels) NRGBAAt(x, y int) color.NRGBA {
	c := p.At(x, y)
	return color.NRGBA{R: Clamp8(c[0]), G: Clamp8(c[1]), B: Clamp8(c[2]), A: 0xff}
}

// Image converts the buffer back into an image, requantized to 8 bits.
// Used by stylers that hand off to pixel based encoders.
func (p *Pixels) Image() *image.NRGBA {
	if p == nil {
		return image.NewNRGBA(image.Rectangle{})
	}
	m := image.NewNRGBA(image.Rect(0, 0, p.W, p.H))
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			m.SetNRGBA(x, y, p.NRGBAAt(x, y))
		}
	}
	return m
}
