package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/spf13/cobra"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
	"github.com/srlehn/ttview/internal/logx"
	"github.com/srlehn/ttview/resize"
	"github.com/srlehn/ttview/styles/gradient"
	"github.com/srlehn/ttview/view"
)

// run renders each file in argument order. A failing file is reported
// and the remaining files are still rendered; the process exits
// non-zero if any file failed. Flag validation errors abort before any
// output is written.
func run(cmd *cobra.Command, paths []string) error {
	v, err := viewerFromFlags(cmd)
	if err != nil {
		// show usage for bad flag values, as for unknown flags
		cmd.SilenceUsage = false
		return err
	}
	defer v.Close()
	for _, path := range paths {
		fmt.Println(path + `:`)
		if err := v.RenderFile(path); err != nil {
			logx.IsErr(err, v, slog.LevelError, `file`, path)
			reportErr(path, err)
		}
	}
	return nil
}

func viewerFromFlags(cmd *cobra.Command) (*view.Viewer, error) {
	if widthFlag < 1 {
		return nil, errors.New(consts.ErrInvalidWidth)
	}
	styler, err := stylerFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	resizer, err := resize.ByName(filterFlag)
	if err != nil {
		return nil, errors.Errorf(`%w %q`, consts.ErrUnknownFilter, filterFlag)
	}
	opts := view.Options{
		view.SetWidth(widthFlag),
		view.SetHeight(heightFlag),
		view.SetResizer(resizer),
		view.SetStyler(styler),
		view.SetColors(colorsFlag),
	}
	if len(logFileFlag) > 0 {
		opts = append(opts, view.SetLogFile(logFileFlag, true))
	}
	return view.NewViewer(opts)
}

func stylerFromFlags(cmd *cobra.Command) (view.Styler, error) {
	if cmd.Flags().Changed(`gradient`) {
		if len(gradientFlag) == 0 {
			return nil, errors.New(consts.ErrEmptyGradient)
		}
		return &gradient.Styler{Charset: gradientFlag}, nil
	}
	prototype := view.GetRegStylerByName(styleFlag)
	if prototype == nil {
		return nil, errors.Errorf(`%w %q`, consts.ErrUnknownStyle, styleFlag)
	}
	return prototype.New(), nil
}
