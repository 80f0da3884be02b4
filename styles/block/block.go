// Package block renders two pixel rows per terminal line with the upper
// half block glyph: the foreground color carries the top pixel, the
// background color the bottom pixel.
package block

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
	view.RegisterStyler(&stylerColor{})
	view.RegisterStyler(&stylerGreyscale{})
	view.RegisterStyler(&stylerDithered{})
}

const upperHalfBlock = `▀`

var _ view.Styler = (*stylerColor)(nil)

type stylerColor struct{}

func (s *stylerColor) Name() string     { return consts.StylerBlockName }
func (s *stylerColor) New() view.Styler { return &stylerColor{} }

func (s *stylerColor) Render(w io.Writer, px *view.Pixels, prof termenv.Profile) error {
	return renderCells(w, px, prof)
}

var _ view.Styler = (*stylerGreyscale)(nil)

type stylerGreyscale struct{}

func (s *stylerGreyscale) Name() string     { return consts.StylerGreyscaleName }
func (s *stylerGreyscale) New() view.Styler { return &stylerGreyscale{} }

func (s *stylerGreyscale) Render(w io.Writer, px *view.Pixels, prof termenv.Profile) error {
	dither.Greyscale(px)
	return renderCells(w, px, prof)
}

var _ view.Styler = (*stylerDithered)(nil)

type stylerDithered struct{}

func (s *stylerDithered) Name() string     { return consts.StylerDitheredName }
func (s *stylerDithered) New() view.Styler { return &stylerDithered{} }

func (s *stylerDithered) Render(w io.Writer, px *view.Pixels, prof termenv.Profile) error {
	dither.Greyscale(px)
	dither.FloydSteinberg(px)
	return renderCells(w, px, prof)
}

// renderCells emits ceil(H/2) lines of W cells each. A trailing
// unpaired row is rendered as a space with only the background color
// set, so it stays visible as a solid color. Attributes are reset at
// the end of every line to keep colors from bleeding into following
// output.
func renderCells(w io.Writer, px *view.Pixels, prof termenv.Profile) error {
	if w == nil || px == nil {
		return errors.NilParam()
	}
	var sb strings.Builder
	for y := 0; y < px.H; y += 2 {
		sb.Reset()
		for x := 0; x < px.W; x++ {
			if y+1 < px.H {
				sb.WriteString(view.FgSeq(prof, px.At(x, y)))
				sb.WriteString(view.BgSeq(prof, px.At(x, y+1)))
				sb.WriteString(upperHalfBlock)
			} else {
				sb.WriteString(view.BgSeq(prof, px.At(x, y)))
				sb.WriteString(` `)
			}
		}
		if prof != termenv.Ascii {
			sb.WriteString(view.SGRReset)
		}
		sb.WriteString("\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return errors.New(err)
		}
	}
	return nil
}
