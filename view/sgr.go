package view

import (
	"image/color"

	"github.com/muesli/termenv"
)

// SGRReset clears all terminal attributes. Emitted at the end of every
// rendered line so colors never bleed into following output.
const SGRReset = termenv.CSI + termenv.ResetSeq + `m`

// FgSeq returns the SGR sequence setting the foreground color for a
// normalized RGB triple, degraded through the given color profile.
// The empty string means the profile carries no color (Ascii).
func FgSeq(prof termenv.Profile, c [3]float64) string {
	return colorSeq(prof, c, false)
}

// BgSeq returns the SGR sequence setting the background color.
func BgSeq(prof termenv.Profile, c [3]float64) string {
	return colorSeq(prof, c, true)
}

func colorSeq(prof termenv.Profile, c [3]float64, bg bool) string {
	col := prof.FromColor(rgbColor(c))
	if col == nil {
		return ``
	}
	seq := col.Sequence(bg)
	if len(seq) == 0 {
		return ``
	}
	return termenv.CSI + seq + `m`
}

func rgbColor(c [3]float64) color.NRGBA {
	return color.NRGBA{R: Clamp8(c[0]), G: Clamp8(c[1]), B: Clamp8(c[2]), A: 0xff}
}
