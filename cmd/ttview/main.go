package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/resize"
	"github.com/srlehn/ttview/view"

	// output styles register themselves
	_ "github.com/srlehn/ttview/styles/block"
	_ "github.com/srlehn/ttview/styles/braille"
	_ "github.com/srlehn/ttview/styles/gradient"
	_ "github.com/srlehn/ttview/styles/sixel"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]) + ` [flags] file...`,
	Short:        "ttview - view images in the terminal",
	Long:         "ttview - view images in the terminal as colored text",
	SilenceUsage: true,
	Version:      version(),
	Args:         cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	// local flags
	rootCmd.Flags().IntVarP(&widthFlag, `width`, `w`, consts.DefaultWidth, `output width in character cells`)
	rootCmd.Flags().IntVar(&heightFlag, `height`, 0, `output height in pixel rows (0: derive from aspect ratio)`)
	rootCmd.Flags().StringVarP(&filterFlag, `filter`, `f`, consts.DefaultFilterName,
		`resampling filter (`+strings.Join(resize.FilterNames(), `, `)+`)`)
	rootCmd.Flags().StringVarP(&styleFlag, `style`, `s`, consts.StylerBlockName,
		`output style (`+strings.Join(view.RegStylerNames(), `, `)+`)`)
	rootCmd.Flags().StringVarP(&gradientFlag, `gradient`, `g`, ``, `character ramp, darkest to lightest (implies gradient style)`)
	rootCmd.Flags().StringVar(&colorsFlag, `colors`, `truecolor`, `color mode (truecolor, 256, 16, auto)`)
	rootCmd.Flags().BoolVar(&debugFlag, `debug`, false, `debug errors`)
	rootCmd.Flags().BoolVar(&silentFlag, `silent`, false, `silence errors`)
	rootCmd.Flags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	rootCmd.MarkFlagsMutuallyExclusive(`style`, `gradient`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

var (
	widthFlag    int
	heightFlag   int
	filterFlag   string
	styleFlag    string
	gradientFlag string
	colorsFlag   string
	debugFlag    bool
	silentFlag   bool
	logFileFlag  string
	exitCode     int
)

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && len(info.Main.Version) > 0 {
		return info.Main.Version
	}
	return `(devel)`
}

// reportErr prints a per-file error without stopping the remaining files.
func reportErr(path string, err error) {
	exitCode = 1
	if silentFlag {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, path+`: `+stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, path+`: `+err.Error())
	}
}
