package consts

import (
	"errors"
)

var (
	ErrNilReceiver   = errors.New(`nil receiver`)
	ErrNilParam      = errors.New(`nil parameter`)
	ErrNilImage      = errors.New(`nil image`)
	ErrInvalidImage  = errors.New(`image has zero extent`)
	ErrInvalidWidth  = errors.New(`width must be a positive integer`)
	ErrInvalidHeight = errors.New(`height must not be negative`)
	ErrUnknownStyle  = errors.New(`unknown style`)
	ErrUnknownFilter = errors.New(`unknown filter`)
	ErrEmptyGradient = errors.New(`gradient must contain at least one character`)
)

const (
	StylerBlockName           = `color`
	StylerGreyscaleName       = `greyscale`
	StylerDitheredName        = `dithered`
	StylerBrailleName         = `braille`
	StylerDitheredBrailleName = `dithered-braille`
	StylerGradientName        = `gradient`
	StylerSixelName           = `sixel`

	LibraryName = `ttview`

	DefaultWidth      = 80
	DefaultFilterName = `gaussian`
)
