package octasphere

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"
)

// UVLayoutImage draws all triangles in texture space, filled with their
// color. Triangles stretched by a seam show up as wide bands.
func (s *Sphere) UVLayoutImage(size int) *image.RGBA {
	dest := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dest, dest.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(0.5)

	// The texture origin is bottom-left, the image origin top-left.
	toPixels := func(u, v float64) (float64, float64) {
		return u * float64(size), (1 - v) * float64(size)
	}
	for t, p := range s.PolygonTextureCoord {
		gc.SetFillColor(s.PolygonColor(t))
		gc.BeginPath()
		gc.MoveTo(toPixels(p[0].U, p[0].V))
		gc.LineTo(toPixels(p[1].U, p[1].V))
		gc.LineTo(toPixels(p[2].U, p[2].V))
		gc.Close()
		gc.FillStroke()
	}
	return dest
}

// ExportUVLayoutPNG writes the UV layout of the sphere to a PNG file.
func (s *Sphere) ExportUVLayoutPNG(path string, size int) error {
	return draw2dimg.SaveToPngFile(path, s.UVLayoutImage(size))
}
