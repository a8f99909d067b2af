package various

import (
	"errors"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// MinNormalizeLength is the shortest vector Normalize3 accepts.
const MinNormalizeLength = 1e-12

// ErrZeroLength is returned when a vector is too short to be normalized.
var ErrZeroLength = errors.New("vector too short to normalize")

// Normalize3 returns a unit length copy of v. Unlike vec3.T.Normalize, a
// (near) zero vector is reported as an error instead of being returned as is.
func Normalize3(v vec3.T) (vec3.T, error) {
	l := v.Length()
	if l < MinNormalizeLength || math.IsNaN(l) {
		return v, ErrZeroLength
	}
	return v.Scaled(1 / l), nil
}

// Midpoint3 returns the componentwise average of a and b.
func Midpoint3(a, b *vec3.T) vec3.T {
	return vec3.T{
		(a[0] + b[0]) / 2,
		(a[1] + b[1]) / 2,
		(a[2] + b[2]) / 2,
	}
}

// SphereMidpoint3 returns the midpoint of a and b projected onto the unit sphere.
func SphereMidpoint3(a, b *vec3.T) (vec3.T, error) {
	return Normalize3(Midpoint3(a, b))
}
