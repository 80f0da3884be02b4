package dither_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/ttview/dither"
	"github.com/srlehn/ttview/view"
)

func TestGreyscale(t *testing.T) {
	px := view.NewPixels(2, 1)
	px.Set(0, 0, [3]float64{1, 0, 0})
	px.Set(1, 0, [3]float64{0, 1, 0})
	dither.Greyscale(px)
	assert.Equal(t, [3]float64{0.299, 0.299, 0.299}, px.At(0, 0))
	assert.Equal(t, [3]float64{0.587, 0.587, 0.587}, px.At(1, 0))
}

func TestGreyscaleNilSafe(t *testing.T) {
	assert.NotPanics(t, func() { dither.Greyscale(nil) })
	assert.NotPanics(t, func() { dither.FloydSteinberg(nil) })
}

func TestFloydSteinbergBinarizes(t *testing.T) {
	px := view.NewPixels(4, 4)
	for i := range px.Pix {
		px.Pix[i] = [3]float64{0.3, 0.6, 0.9}
	}
	dither.FloydSteinberg(px)
	for _, c := range px.Pix {
		for ch := 0; ch < 3; ch++ {
			assert.Contains(t, []float64{0, 1}, c[ch])
		}
	}
}

// a uniform mid-grey square diffuses into a checkerboard
func TestFloydSteinbergMidGreyCheckerboard(t *testing.T) {
	px := view.NewPixels(2, 2)
	for i := range px.Pix {
		px.Pix[i] = [3]float64{0.5, 0.5, 0.5}
	}
	dither.FloydSteinberg(px)
	one := [3]float64{1, 1, 1}
	zero := [3]float64{0, 0, 0}
	assert.Equal(t, one, px.At(0, 0))
	assert.Equal(t, zero, px.At(1, 0))
	assert.Equal(t, zero, px.At(0, 1))
	assert.Equal(t, one, px.At(1, 1))
}

func TestFloydSteinbergExtremesUntouched(t *testing.T) {
	px := view.NewPixels(3, 3)
	for i := range px.Pix {
		if i%2 == 0 {
			px.Pix[i] = [3]float64{1, 1, 1}
		}
	}
	want := make([][3]float64, len(px.Pix))
	copy(want, px.Pix)
	dither.FloydSteinberg(px)
	assert.Equal(t, want, px.Pix)
}

// diffusion roughly conserves brightness, up to error lost at the
// bottom and right borders
func TestFloydSteinbergConservesBrightness(t *testing.T) {
	px := view.NewPixels(16, 16)
	for i := range px.Pix {
		px.Pix[i] = [3]float64{0.25, 0.25, 0.25}
	}
	dither.FloydSteinberg(px)
	var sum float64
	for _, c := range px.Pix {
		sum += c[0]
	}
	require.InDelta(t, 0.25*16*16, sum, 16)
}
