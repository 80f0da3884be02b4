// Package sixel emits the image as DECSIXEL graphics instead of text
// cells. Only useful on sixel-capable terminals; never the default.
package sixel

import (
	"io"

	sixel "github.com/mattn/go-sixel"
	"github.com/muesli/termenv"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
	"github.com/srlehn/ttview/view"
)

func init() { view.RegisterStyler(&styler{}) }

var _ view.Styler = (*styler)(nil)

type styler struct{}

func (s *styler) Name() string     { return consts.StylerSixelName }
func (s *styler) New() view.Styler { return &styler{} }

func (s *styler) Render(w io.Writer, px *view.Pixels, _ termenv.Profile) error {
	if w == nil || px == nil {
		return errors.NilParam()
	}
	if err := sixel.NewEncoder(w).Encode(px.Image()); err != nil {
		return errors.New(err)
	}
	return nil
}
