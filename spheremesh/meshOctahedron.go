package spheremesh

import "github.com/ungerik/go3d/float64/vec3"

// DefaultPolygonColors are the color indices of the eight octahedron faces.
var DefaultPolygonColors = []int{0, 1, 2, 7, 3, 4, 5, 6}

// NewOctahedron returns the unit octahedron the sphere is subdivided from.
//
//	      4 (+y)
//	      |  6 (+z)
//	      | /
//	1 ----+---- 2 (+x)
//	     /|
//	    5 |
//	      3
//
// Vertex 0 is an unused placeholder at the origin; no triangle references it.
func NewOctahedron() *Mesh {
	return &Mesh{
		Vertices: []vec3.T{
			{0, 0, 0},
			{-1, 0, 0},
			{+1, 0, 0},
			{0, -1, 0},
			{0, +1, 0},
			{0, 0, -1},
			{0, 0, +1},
		},
		Triangles: []Triangle{
			{1, 6, 4},
			{3, 6, 1},
			{6, 3, 2},
			{6, 2, 4},
			{4, 2, 5},
			{5, 1, 4},
			{3, 5, 2},
			{3, 1, 5},
		},
	}
}
