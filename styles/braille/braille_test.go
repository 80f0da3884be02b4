package braille_test

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/testutil"
	"github.com/srlehn/ttview/view"

	_ "github.com/srlehn/ttview/styles/braille"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func styler(t *testing.T, name string) view.Styler {
	t.Helper()
	s := view.GetRegStylerByName(name)
	require.NotNil(t, s, name)
	return s.New()
}

func renderTile(t *testing.T, rows [][]color.Color) string {
	t.Helper()
	px := view.PixelsFromImage(testutil.Grid(t, rows))
	var buf bytes.Buffer
	require.NoError(t, styler(t, consts.StylerBrailleName).Render(&buf, px, termenv.TrueColor))
	return buf.String()
}

func TestFullTile(t *testing.T) {
	assert.Equal(t, "⣿\n", renderTile(t, [][]color.Color{
		{black, black},
		{black, black},
		{black, black},
		{black, black},
	}))
}

func TestEmptyTile(t *testing.T) {
	assert.Equal(t, "⠀\n", renderTile(t, [][]color.Color{
		{white, white},
		{white, white},
		{white, white},
		{white, white},
	}))
}

func TestLeftColumnTile(t *testing.T) {
	// dots 1, 2, 3, 7 -> bits 0x47 -> U+2847
	assert.Equal(t, "⡇\n", renderTile(t, [][]color.Color{
		{black, white},
		{black, white},
		{black, white},
		{black, white},
	}))
}

func TestTopRowTile(t *testing.T) {
	// dots 1 and 4 -> bits 0x09 -> U+2809
	assert.Equal(t, "⠉\n", renderTile(t, [][]color.Color{
		{black, black},
		{white, white},
		{white, white},
		{white, white},
	}))
}

func TestPartialTilesStayBlank(t *testing.T) {
	// 3x5 buffer: 2 cell columns, 2 cell rows; samples past the buffer
	// edge must not raise dots
	px := view.PixelsFromImage(testutil.Solid(t, 3, 5, white))
	var buf bytes.Buffer
	require.NoError(t, styler(t, consts.StylerBrailleName).Render(&buf, px, termenv.TrueColor))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, `⠀⠀`, line)
	}
}

func TestDitheredBrailleDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, styler(t, consts.StylerDitheredBrailleName).Render(&first,
		view.PixelsFromImage(testutil.HSVRamp(t, 10, 8)), termenv.TrueColor))
	require.NoError(t, styler(t, consts.StylerDitheredBrailleName).Render(&second,
		view.PixelsFromImage(testutil.HSVRamp(t, 10, 8)), termenv.TrueColor))
	assert.Equal(t, first.String(), second.String())
	assert.Len(t, strings.Split(strings.TrimSuffix(first.String(), "\n"), "\n"), 2)
}
