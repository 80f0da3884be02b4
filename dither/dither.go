// Package dither holds the buffer transforms shared by the greyscale
// and dithered output styles.
package dither

import (
	"github.com/srlehn/ttview/view"
)

// Greyscale replaces every pixel with its Rec. 601 luma, in place.
func Greyscale(px *view.Pixels) {
	if px == nil {
		return
	}
	for i, c := range px.Pix {
		l := view.Luma(c)
		px.Pix[i] = [3]float64{l, l, l}
	}
}

// FloydSteinberg quantizes every channel to 0 or 1 in place, diffusing
// the quantization error over the unvisited neighbors with the usual
// 7/16, 3/16, 5/16, 1/16 kernel. Traversal is row-major, so the result
// is deterministic. Error pushed past the buffer edge is lost.
func FloydSteinberg(px *view.Pixels) {
	if px == nil {
		return
	}
	for y := 0; y < px.H; y++ {
		for x := 0; x < px.W; x++ {
			old := px.At(x, y)
			var quantized, qerr [3]float64
			for ch := 0; ch < 3; ch++ {
				if old[ch] >= 0.5 {
					quantized[ch] = 1
				}
				qerr[ch] = old[ch] - quantized[ch]
			}
			px.Set(x, y, quantized)
			diffuse(px, x+1, y, qerr, 7.0/16)
			diffuse(px, x-1, y+1, qerr, 3.0/16)
			diffuse(px, x, y+1, qerr, 5.0/16)
			diffuse(px, x+1, y+1, qerr, 1.0/16)
		}
	}
}

func diffuse(px *view.Pixels, x, y int, qerr [3]float64, weight float64) {
	if x < 0 || y < 0 || x >= px.W || y >= px.H {
		return
	}
	c := px.At(x, y)
	for ch := 0; ch < 3; ch++ {
		c[ch] += qerr[ch] * weight
	}
	px.Set(x, y, c)
}
