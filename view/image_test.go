package view_test

import (
	"image/color"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/ttview/internal/errors"
	"github.com/srlehn/ttview/internal/testutil"
	"github.com/srlehn/ttview/view"
)

func TestImageDecodeBytes(t *testing.T) {
	m := testutil.Solid(t, 3, 2, color.NRGBA{R: 255, A: 255})
	img := view.NewImageBytes(testutil.PNGBytes(t, m))
	require.NoError(t, img.Decode())
	require.NotNil(t, img.Original)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}

func TestImageDecodeFile(t *testing.T) {
	m := testutil.HSVRamp(t, 8, 4)
	path := testutil.WritePNG(t, t.TempDir(), `ramp.png`, m)
	img := view.NewImageFilename(path)
	require.NoError(t, img.Decode())
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
}

func TestImageDecodeMissingFile(t *testing.T) {
	img := view.NewImageFilename(filepath.Join(t.TempDir(), `nonexistent.png`))
	err := img.Decode()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestImageDecodeGarbage(t *testing.T) {
	img := view.NewImageBytes([]byte(`not an image`))
	assert.Error(t, img.Decode())
}

func TestImageDecodeTwoSources(t *testing.T) {
	img := &view.Image{FileName: `a.png`, Encoded: []byte{1, 2, 3}}
	assert.Error(t, img.Decode())
}

func TestImageDecodeNoSource(t *testing.T) {
	assert.Error(t, (&view.Image{}).Decode())
}

func TestImageDecodeIsLazyAndCached(t *testing.T) {
	m := testutil.Solid(t, 1, 1, color.NRGBA{B: 255, A: 255})
	img := view.NewImageBytes(testutil.PNGBytes(t, m))
	require.Nil(t, img.Original)
	require.NoError(t, img.Decode())
	decoded := img.Original
	require.NoError(t, img.Decode())
	assert.Same(t, decoded, img.Original)
}

func TestNewImageUnwrapsItself(t *testing.T) {
	img := view.NewImageFilename(`x.png`)
	assert.Same(t, img, view.NewImage(img))
}
