package view

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
)

type Option interface {
	ApplyOption(v *Viewer) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Viewer) error

func (o OptFunc) ApplyOption(v *Viewer) error { return o(v) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(v *Viewer) error { return v.SetOptions([]Option(o)...) }

func (v *Viewer) SetOptions(opts ...Option) error {
	if v == nil {
		return errors.New(consts.ErrNilReceiver)
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(v); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetOutput sets the writer rendered lines go to. Defaults to stdout.
func SetOutput(w io.Writer) Option {
	return OptFunc(func(v *Viewer) error { v.out = w; return nil })
}

// SetWidth sets the output width in character cells.
func SetWidth(width int) Option {
	return OptFunc(func(v *Viewer) error {
		if width < 1 {
			return errors.New(consts.ErrInvalidWidth)
		}
		v.width = width
		return nil
	})
}

// SetHeight overrides the output height in pixel rows. A height of 0
// derives the height from the source aspect ratio.
func SetHeight(height int) Option {
	return OptFunc(func(v *Viewer) error {
		if height < 0 {
			return errors.New(consts.ErrInvalidHeight)
		}
		v.height = height
		return nil
	})
}

func SetResizer(rsz Resizer) Option {
	return OptFunc(func(v *Viewer) error { v.resizer = rsz; return nil })
}

func SetStyler(s Styler) Option {
	return OptFunc(func(v *Viewer) error { v.styler = s; return nil })
}

// SetProfile fixes the terminal color profile used for SGR generation.
func SetProfile(prof termenv.Profile) Option {
	return OptFunc(func(v *Viewer) error { v.profile = prof; return nil })
}

// SetColors selects the color profile by name: "truecolor", "256", "16"
// or "auto". "auto" resolves from the environment.
func SetColors(mode string) Option {
	return OptFunc(func(v *Viewer) error {
		switch mode {
		case `truecolor`, `24bit`, ``:
			v.profile = termenv.TrueColor
		case `256`:
			v.profile = termenv.ANSI256
		case `16`, `ansi`:
			v.profile = termenv.ANSI
		case `auto`:
			v.profile = termenv.EnvColorProfile()
		default:
			return errors.Errorf(`unknown color mode %q`, mode)
		}
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(v *Viewer) error {
		if enable {
			if h == nil {
				v.logger = slog.Default()
			} else {
				v.logger = slog.New(h)
			}
		} else {
			v.logger = nil
		}
		return nil
	})
}

// SetLogFile logs to the file at logFilename. The file is closed by
// (*Viewer).Close().
func SetLogFile(logFilename string, enable bool) Option {
	return OptFunc(func(v *Viewer) error {
		if !enable {
			v.logger = nil
			return nil
		}
		f, err := os.OpenFile(logFilename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.New(err)
		}
		v.logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		v.closers = append(v.closers, f)
		return nil
	})
}
