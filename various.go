package octasphere

import (
	"image/color"

	"github.com/Flokey82/go_gens/utils"
)

var minMax = utils.MinMax[float64]

// genColor flattens a gradient stop of the triangle palette into the opaque
// NRGBA that fills triangles in the UV layout. The palette never carries
// transparency, so alpha is forced to 255.
func genColor(col color.Color) color.NRGBA {
	r, g, b, _ := col.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: 255,
	}
}
