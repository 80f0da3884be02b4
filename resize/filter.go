// Package resize maps resampling filter names to the resizer
// implementations living in its subpackages.
package resize

import (
	"sort"

	"github.com/srlehn/ttview/internal/consts"
	"github.com/srlehn/ttview/internal/errors"
	"github.com/srlehn/ttview/resize/bild"
	"github.com/srlehn/ttview/resize/gift"
	"github.com/srlehn/ttview/resize/imaging"
	"github.com/srlehn/ttview/resize/nfnt"
	"github.com/srlehn/ttview/resize/rdefault"
	"github.com/srlehn/ttview/resize/rez"
	"github.com/srlehn/ttview/resize/xdraw"
	"github.com/srlehn/ttview/view"
)

// filters maps CLI filter names to constructors. Each name is served by
// the library whose kernel matches it.
var filters = map[string]func() view.Resizer{
	`nearest`:         xdraw.NearestNeighbor,
	`triangle`:        bild.Linear,
	`catmull-rom`:     xdraw.CatmullRom,
	`gaussian`:        imaging.Gaussian,
	`lanczos3`:        func() view.Resizer { return &nfnt.Resizer{} },
	`bicubic`:         nfnt.Bicubic,
	`bilinear`:        func() view.Resizer { return &rez.Resizer{} },
	`lanczos`:         func() view.Resizer { return &gift.Resizer{} },
	`box`:             imaging.Box,
	`approx-bilinear`: xdraw.ApproxBiLinear,
	`default`:         func() view.Resizer { return &rdefault.Resizer{} },
}

// ByName returns the resizer registered for the given filter name.
func ByName(name string) (view.Resizer, error) {
	if len(name) == 0 {
		name = consts.DefaultFilterName
	}
	ctor, ok := filters[name]
	if !ok {
		return nil, errors.New(consts.ErrUnknownFilter)
	}
	return ctor(), nil
}

// FilterNames returns the known filter names, sorted.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
