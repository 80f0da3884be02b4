package ttview

import (
	"image"

	"github.com/srlehn/ttview/resize/rdefault"
	"github.com/srlehn/ttview/view"

	// default styler
	_ "github.com/srlehn/ttview/styles/block"
)

var (
	// chosen defaults
	resizer view.Resizer = &rdefault.Resizer{}
)

var (
	DefaultConfig = view.Options{
		view.SetResizer(resizer),
	}
)

var (
	viewerActive *view.Viewer
)

// Viewer ...
func Viewer() (*view.Viewer, error) {
	return viewerActive, initViewer()
}

func initViewer() error {
	if viewerActive != nil {
		return nil
	}
	var err error
	viewerActive, err = view.NewViewer(DefaultConfig)
	if err != nil {
		return err
	}
	return nil
}

// View ...
func View(img image.Image) error {
	v, err := Viewer()
	if err != nil {
		return err
	}
	return v.Render(img)
}

// ViewBytes - for use with "embed", etc.
// requires the prior registration of a decoder. e.g.:
//
//	import _ "image/png"
func ViewBytes(imgBytes []byte) error {
	v, err := Viewer()
	if err != nil {
		return err
	}
	return v.RenderBytes(imgBytes)
}

// ViewFile ...
func ViewFile(imgFile string) error {
	v, err := Viewer()
	if err != nil {
		return err
	}
	return v.RenderFile(imgFile)
}

// CleanUp ...
func CleanUp() error {
	if viewerActive == nil {
		return nil
	}
	return viewerActive.Close()
}

// NewImage ...
func NewImage(img image.Image) *view.Image { return view.NewImage(img) }

// NewImageFileName ...
func NewImageFileName(imgfile string) *view.Image { return view.NewImageFilename(imgfile) }

// NewImageBytes - for use with "embed", etc.
// requires the prior registration of a decoder. e.g.:
//
//	import _ "image/png"
func NewImageBytes(imgBytes []byte) *view.Image { return view.NewImageBytes(imgBytes) }
