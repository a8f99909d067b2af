package various

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// LatLonFromVec3 converts a position on a sphere with y pointing north into
// latitude and longitude in degrees. The longitude is measured from the
// positive x axis towards the positive z axis.
// See: https://rbrundritt.wordpress.com/2008/10/14/conversion-between-spherical-and-cartesian-coordinates-systems/
func LatLonFromVec3(position vec3.T, sphereRadius float64) (float64, float64) {
	return RadToDeg(math.Asin(Clamp(position[1]/sphereRadius, -1, 1))), // theta
		RadToDeg(math.Atan2(position[2], position[0])) // phi
}

// LatLonToVec3 is the inverse of LatLonFromVec3 on the unit sphere.
func LatLonToVec3(latDeg, lonDeg float64) vec3.T {
	latRad := DegToRad(latDeg)
	lonRad := DegToRad(lonDeg)
	return vec3.T{
		math.Cos(latRad) * math.Cos(lonRad),
		math.Sin(latRad),
		math.Cos(latRad) * math.Sin(lonRad),
	}
}

// Haversine returns the great arc distance between two lat/long pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLatSin := math.Sin(DegToRad(lat2-lat1) / 2)
	dLonSin := math.Sin(DegToRad(lon2-lon1) / 2)
	a := dLatSin*dLatSin + dLonSin*dLonSin*math.Cos(DegToRad(lat1))*math.Cos(DegToRad(lat2))
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WrapLongitude wraps the longitude into [-180, 180].
func WrapLongitude(lo float64) float64 {
	lo = math.Mod(lo, 360)
	if lo < -180 {
		lo += 360
	} else if lo > 180 {
		lo -= 360
	}
	return lo
}

// LimitLatitude limits the latitude to [-90, 90].
func LimitLatitude(la float64) float64 {
	return Clamp(la, -90, 90)
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
