package uvmap

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// SeamBandThreshold decides on which side of the texture a triangle that
// straddles the seam is placed: if the mean u of its unambiguous corners is
// above the threshold, the triangle belongs to the right (u≈1) edge.
var SeamBandThreshold = 0.5

// poleEpsilon is the distance from the y axis below which a position counts
// as a pole, where the longitude is undefined.
const poleEpsilon = 1e-9

type cornerKind int

const (
	cornerRegular cornerKind = iota
	cornerSeam               // On the u=0/u=1 meridian.
	cornerPole               // Longitude undefined.
)

type corner struct {
	TexCoord
	kind cornerKind
}

func newCorner(p vec3.T) corner {
	c := corner{TexCoord: TexCoordFromVec3(p)}
	switch {
	case math.Abs(p[0]) < poleEpsilon && math.Abs(p[2]) < poleEpsilon:
		c.kind = cornerPole
		if p[1] > 0 {
			c.V = 1
		} else {
			c.V = 0
		}
	case p[0] < 0 && math.Abs(p[2]) < poleEpsilon:
		c.kind = cornerSeam
	}
	return c
}

// fixSeam moves corners that ended up on the wrong edge of the texture and
// assigns the pole corners a u between their siblings.
//
// u=0 and u=1 are the same meridian. A thin triangle next to the seam may
// have corners computed at both edges, which would stretch it across the
// whole texture; such corners snap to the edge the triangle belongs to.
func fixSeam(corners [3]corner) PolygonTexCoord {
	min, max := math.Inf(1), math.Inf(-1)
	var sumAll, sumRegular float64
	var numAll, numRegular int
	for _, c := range corners {
		if c.kind == cornerPole {
			continue
		}
		min = math.Min(min, c.U)
		max = math.Max(max, c.U)
		sumAll += c.U
		numAll++
		if c.kind == cornerRegular {
			sumRegular += c.U
			numRegular++
		}
	}

	if numAll > 0 && max-min > 0.5 {
		mean := sumAll / float64(numAll)
		if numRegular > 0 {
			mean = sumRegular / float64(numRegular)
		}
		high := mean > SeamBandThreshold
		for i := range corners {
			c := &corners[i]
			if c.kind == cornerPole {
				continue
			}
			if high && c.U < 0.5 {
				c.U = 1
			} else if !high && c.U > 0.5 {
				c.U = 0
			}
		}
	}

	// Poles take the mean u of the other corners.
	poleU := 0.5
	if numAll > 0 {
		var sum float64
		for _, c := range corners {
			if c.kind != cornerPole {
				sum += c.U
			}
		}
		poleU = sum / float64(numAll)
	}

	var res PolygonTexCoord
	for i, c := range corners {
		if c.kind == cornerPole {
			c.U = poleU
		}
		res[i] = c.TexCoord
	}
	return res
}
