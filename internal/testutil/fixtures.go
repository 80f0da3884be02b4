// Package testutil generates deterministic image fixtures for tests.
// All fixtures are built in code, there are no binary test files.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Grid builds an image from a row-major color grid. All rows must have
// the same length.
func Grid(t *testing.T, rows [][]color.Color) *image.NRGBA {
	t.Helper()
	if len(rows) == 0 || len(rows[0]) == 0 {
		t.Fatal(`empty color grid`)
	}
	m := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf(`ragged color grid: row %d has %d cells, want %d`, y, len(row), len(rows[0]))
		}
		for x, c := range row {
			m.Set(x, y, c)
		}
	}
	return m
}

// Solid builds a w x h image of a single color.
func Solid(t *testing.T, w, h int, c color.Color) *image.NRGBA {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

// HSVRamp builds a w x h image sweeping hue left to right and value top
// to bottom at full saturation.
func HSVRamp(t *testing.T, w, h int) *image.NRGBA {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := 1.0
		if h > 1 {
			v = 1 - float64(y)/float64(h-1)
		}
		for x := 0; x < w; x++ {
			hue := 0.0
			if w > 1 {
				hue = 360 * float64(x) / float64(w-1)
			}
			m.Set(x, y, colorful.Hsv(hue, 1, v))
		}
	}
	return m
}

// Disc draws a centered filled disc in fg over a bg fill.
func Disc(t *testing.T, w, h int, fg, bg color.Color) image.Image {
	t.Helper()
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetColor(fg)
	dc.DrawCircle(float64(w)/2, float64(h)/2, float64(min(w, h))/3)
	dc.Fill()
	return dc.Image()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// PNGBytes encodes img as PNG.
func PNGBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf(`encoding fixture png: %v`, err)
	}
	return buf.Bytes()
}

// WritePNG encodes img into dir and returns the file path.
func WritePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, PNGBytes(t, img), 0o644); err != nil {
		t.Fatalf(`writing fixture png: %v`, err)
	}
	return path
}

// WriteJPEG encodes img into dir at full quality and returns the file path.
func WriteJPEG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf(`encoding fixture jpeg: %v`, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf(`writing fixture jpeg: %v`, err)
	}
	return path
}
