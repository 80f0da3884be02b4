package view

import (
	"image"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/muesli/termenv"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
	"github.com/srlehn/ttview/internal/logx"
)

// Viewer owns one rendering pipeline: output writer, geometry, resizer,
// styler, color profile and logger. It is built once per invocation via
// NewViewer and holds no state between Render calls.
type Viewer struct {
	out     io.Writer
	width   int
	height  int
	resizer Resizer
	styler  Styler
	profile termenv.Profile
	logger  *slog.Logger
	closers []io.Closer
}

var _ logx.LoggerProvider = (*Viewer)(nil)

// NewViewer ...
func NewViewer(opts ...Option) (*Viewer, error) {
	v := &Viewer{profile: termenv.TrueColor}
	if err := v.SetOptions(opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// Logger ...
func (v *Viewer) Logger() *slog.Logger {
	if v == nil {
		return nil
	}
	return v.logger
}

// Width returns the output width in character cells.
func (v *Viewer) Width() int {
	if v == nil || v.width < 1 {
		return consts.DefaultWidth
	}
	return v.width
}

// Profile returns the color profile SGR sequences are generated with.
func (v *Viewer) Profile() termenv.Profile {
	if v == nil {
		return termenv.TrueColor
	}
	return v.profile
}

// TargetSize derives the output size in pixels from the source extent.
// A height of 0 derives the height from the source aspect ratio,
// clamped to at least 1 row.
func TargetSize(src image.Point, width, height int) (image.Point, error) {
	if src.X < 1 || src.Y < 1 {
		return image.Point{}, errors.New(consts.ErrInvalidImage)
	}
	if width < 1 {
		return image.Point{}, errors.New(consts.ErrInvalidWidth)
	}
	if height < 0 {
		return image.Point{}, errors.New(consts.ErrInvalidHeight)
	}
	if height == 0 {
		height = int(math.Round(float64(width) * float64(src.Y) / float64(src.X)))
		if height < 1 {
			height = 1
		}
	}
	return image.Point{X: width, Y: height}, nil
}

// Render runs the pipeline for one image: decode (for lazy Images),
// validate the extent, derive the output geometry, resize, style.
// The resize step is skipped when the image already has the target
// extent, which makes rendering at a fixed target idempotent for every
// resampling filter.
func (v *Viewer) Render(img image.Image) error {
	if v == nil {
		return errors.NilReceiver()
	}
	if img == nil {
		return errors.New(consts.ErrNilImage)
	}
	if lazy, ok := img.(*Image); ok {
		m, err := lazy.Image()
		if err != nil {
			return err
		}
		img = m
	}
	size, err := TargetSize(img.Bounds().Size(), v.Width(), v.height)
	if err != nil {
		return err
	}
	if img.Bounds().Size() != size {
		rsz := v.resizer
		if rsz == nil {
			rsz = &resizerFallback{}
		}
		var m image.Image
		err := logx.TimeIt(func() error {
			var err error
			m, err = rsz.Resize(img, size)
			return err
		}, `resize`, v, `width`, size.X, `height`, size.Y)
		if err != nil {
			return errors.New(err)
		}
		if m == nil {
			return errors.New(consts.ErrNilImage)
		}
		img = m
	}
	styler := v.styler
	if styler == nil {
		styler = GetRegStylerByName(consts.StylerBlockName)
		if styler == nil {
			return errors.New(`no styler set and none registered`)
		}
	}
	out := v.out
	if out == nil {
		out = os.Stdout
	}
	px := PixelsFromImage(img)
	return logx.TimeIt(func() error {
		return styler.Render(out, px, v.Profile())
	}, `render`, v, `styler`, styler.Name())
}

// RenderFile renders the image file at path.
//
// Requires registration of image decoders.
func (v *Viewer) RenderFile(path string) error {
	if v == nil {
		return errors.NilReceiver()
	}
	return v.Render(NewImageFilename(path))
}

// RenderBytes renders an encoded image - for use with "embed", etc.
//
// Requires registration of image decoders.
func (v *Viewer) RenderBytes(imgBytes []byte) error {
	if v == nil {
		return errors.NilReceiver()
	}
	return v.Render(NewImageBytes(imgBytes))
}

// Close releases resources acquired through options (log files).
func (v *Viewer) Close() error {
	if v == nil {
		return nil
	}
	var errRet error
	for _, closer := range v.closers {
		if closer == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			errRet = errors.Join(errRet, err)
		}
	}
	v.closers = nil
	return errRet
}
