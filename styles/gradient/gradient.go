// Package gradient renders an image as plain character art: each cell's
// brightness picks a rune from a darkest-to-lightest ramp. No escape
// sequences are emitted, so the output is pipe-safe.
package gradient

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
	"github.com/srlehn/ttview/view"
)

func init() { view.RegisterStyler(&Styler{Charset: DefaultCharset}) }

// DefaultCharset is the ramp used when the user provides none.
const DefaultCharset = ` .:-=+*#%@`

var _ view.Styler = (*Styler)(nil)

// Styler maps cell brightness onto Charset, darkest to lightest.
type Styler struct {
	Charset string
}

func (s *Styler) Name() string     { return consts.StylerGradientName }
func (s *Styler) New() view.Styler { return &Styler{Charset: DefaultCharset} }

func (s *Styler) Render(w io.Writer, px *view.Pixels, _ termenv.Profile) error {
	if w == nil || px == nil {
		return errors.NilParam()
	}
	ramp := []rune(s.Charset)
	if len(ramp) == 0 {
		return errors.New(consts.ErrEmptyGradient)
	}
	var sb strings.Builder
	for y := 0; y < px.H; y += 2 {
		sb.Reset()
		for x := 0; x < px.W; x++ {
			l := px.Luma(x, y)
			if y+1 < px.H {
				l = (l + px.Luma(x, y+1)) / 2
			}
			// index by truncation; the epsilon keeps full brightness on
			// the last rune (the luma weights sum to just under 1 in
			// float64, so bare truncation would land white on len-2)
			idx := int(float64(len(ramp)-1)*l + 1e-9)
			if idx < 0 {
				idx = 0
			} else if idx > len(ramp)-1 {
				idx = len(ramp) - 1
			}
			sb.WriteRune(ramp[idx])
		}
		sb.WriteString("\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return errors.New(err)
		}
	}
	return nil
}
