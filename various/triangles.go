package various

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// GetCentroidOfTriangle returns the centroid of a triangle defined by
// the xyz coordinates a, b, c, projected onto the unit sphere.
func GetCentroidOfTriangle(a, b, c *vec3.T) vec3.T {
	v := vec3.T{
		(a[0] + b[0] + c[0]) / 3,
		(a[1] + b[1] + c[1]) / 3,
		(a[2] + b[2] + c[2]) / 3,
	}
	return v.Normalized()
}

// TriangleNormal returns the (not normalized) face normal (b-a)x(c-a).
// It points to the side from which a, b, c appear counter-clockwise.
func TriangleNormal(a, b, c *vec3.T) vec3.T {
	ab := vec3.Sub(b, a)
	ac := vec3.Sub(c, a)
	return vec3.Cross(&ab, &ac)
}

// IsOutwardFacing returns true if the triangle a, b, c winds counter-clockwise
// as seen from outside a sphere centered at the origin.
func IsOutwardFacing(a, b, c *vec3.T) bool {
	n := TriangleNormal(a, b, c)
	centroid := vec3.T{a[0] + b[0] + c[0], a[1] + b[1] + c[1], a[2] + b[2] + c[2]}
	return vec3.Dot(&n, &centroid) > 0
}
