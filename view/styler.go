package view

import (
	"io"

	"github.com/muesli/termenv"
)

// Styler turns a pixel buffer into terminal output. Render writes the
// complete output for one image, line by line, leaving the terminal
// attributes reset.
//
// The buffer is owned by the styler during Render and may be modified
// in place.
type Styler interface {
	Name() string
	New() Styler
	Render(w io.Writer, px *Pixels, prof termenv.Profile) error
}
