// Package uvmap derives equirectangular texture coordinates for triangles
// on the unit sphere, one coordinate per triangle corner.
//
// The texture origin is bottom-left (OpenGL). u grows with the longitude
// atan2(z, x) starting at the -x meridian, v grows from the south pole (v=0)
// to the north pole (v=1).
package uvmap

import (
	"math"

	"github.com/Flokey82/octasphere/spheremesh"
	"github.com/Flokey82/octasphere/various"
	"github.com/ungerik/go3d/float64/vec3"
)

// TexCoord is a texture coordinate in [0,1]x[0,1].
type TexCoord struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// PolygonTexCoord holds the texture coordinates of the three corners of a
// triangle, in the order of the triangle's vertex indices.
type PolygonTexCoord [3]TexCoord

// TexCoordFromVec3 maps a unit length position to its texture coordinate.
// Poles map to u=0.5.
func TexCoordFromVec3(p vec3.T) TexCoord {
	phi := math.Atan2(p[2], p[0])
	theta := math.Acos(various.Clamp(p[1], -1, 1))
	return TexCoord{
		U: (phi + math.Pi) / (2 * math.Pi),
		V: 1 - theta/math.Pi,
	}
}

// Generate computes the corrected texture coordinates of all triangles.
// The vertices are expected to have unit length.
func Generate(vertices []vec3.T, triangles []spheremesh.Triangle) []PolygonTexCoord {
	res := make([]PolygonTexCoord, len(triangles))
	for t, tri := range triangles {
		var corners [3]corner
		for i, r := range tri {
			corners[i] = newCorner(vertices[r])
		}
		res[t] = fixSeam(corners)
	}
	return res
}

// GenerateForMesh is a shorthand for Generate(m.Vertices, m.Triangles).
func GenerateForMesh(m *spheremesh.Mesh) []PolygonTexCoord {
	return Generate(m.Vertices, m.Triangles)
}

// Spread returns the difference between the largest and the smallest u of
// the triangle's corners. If skipPoles is set, corners at a pole are ignored.
func Spread(p PolygonTexCoord, skipPoles bool) float64 {
	min, max := math.Inf(1), math.Inf(-1)
	for _, c := range p {
		if skipPoles && (c.V == 0 || c.V == 1) {
			continue
		}
		min = math.Min(min, c.U)
		max = math.Max(max, c.U)
	}
	if min > max {
		return 0
	}
	return max - min
}
