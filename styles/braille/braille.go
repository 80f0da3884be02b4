// Package braille renders an image with braille patterns, packing a
// 2x4 pixel tile into each cell. A dot is raised where the pixel is
// dark (luma below 0.5); pixels past the buffer edge stay blank.
package braille

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/ttview/dither"
	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
	"github.com/srlehn/ttview/view"
)

func init() {
	view.RegisterStyler(&styler{})
	view.RegisterStyler(&stylerDithered{})
}

// dot offsets within a tile in braille bit order (U+2800 block):
// dots 1-3 are the left column, 4-6 the right column, 7 and 8 the
// bottom pair.
var dotOffsets = [8][2]int{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 1}, {1, 2},
	{0, 3}, {1, 3},
}

const dotThreshold = 0.5

var _ view.Styler = (*styler)(nil)

type styler struct{}

func (s *styler) Name() string     { return consts.StylerBrailleName }
func (s *styler) New() view.Styler { return &styler{} }

func (s *styler) Render(w io.Writer, px *view.Pixels, prof termenv.Profile) error {
	return renderTiles(w, px)
}

var _ view.Styler = (*stylerDithered)(nil)

type stylerDithered struct{}

func (s *stylerDithered) Name() string     { return consts.StylerDitheredBrailleName }
func (s *stylerDithered) New() view.Styler { return &stylerDithered{} }

func (s *stylerDithered) Render(w io.Writer, px *view.Pixels, prof termenv.Profile) error {
	dither.Greyscale(px)
	dither.FloydSteinberg(px)
	return renderTiles(w, px)
}

func renderTiles(w io.Writer, px *view.Pixels) error {
	if w == nil || px == nil {
		return errors.NilParam()
	}
	var sb strings.Builder
	for y := 0; y < px.H; y += 4 {
		sb.Reset()
		for x := 0; x < px.W; x += 2 {
			var bits rune
			for bit, off := range dotOffsets {
				dx, dy := x+off[0], y+off[1]
				if dx >= px.W || dy >= px.H {
					continue
				}
				if px.Luma(dx, dy) < dotThreshold {
					bits |= 1 << bit
				}
			}
			sb.WriteRune('⠀' + bits)
		}
		sb.WriteString("\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return errors.New(err)
		}
	}
	return nil
}
