package octasphere

import (
	"image/color"

	"github.com/mazznoer/colorgrad"
)

// NumColors is the number of entries in the palette.
const NumColors = 10

var palette = newPalette()

func newPalette() []color.NRGBA {
	colorGrad := colorgrad.Rainbow()
	cols := colorGrad.Colors(NumColors)
	res := make([]color.NRGBA, len(cols))
	for i, c := range cols {
		res[i] = genColor(c)
	}
	return res
}

// Palette returns a copy of the colors the color indices refer to.
func Palette() []color.NRGBA {
	res := make([]color.NRGBA, len(palette))
	copy(res, palette)
	return res
}

// PolygonColor returns the color of triangle t.
func (s *Sphere) PolygonColor(t int) color.NRGBA {
	return palette[s.PolygonColors[t]]
}
