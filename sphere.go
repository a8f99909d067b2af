package octasphere

import (
	"math"
	"sort"

	"github.com/Flokey82/geoquad"
	"github.com/Flokey82/octasphere/spheremesh"
	"github.com/Flokey82/octasphere/uvmap"
	"github.com/Flokey82/octasphere/various"
	"github.com/ungerik/go3d/float64/vec3"
)

type Sphere struct {
	*spheremesh.Mesh
	PolygonTextureCoord []uvmap.PolygonTexCoord `json:"polygonTextureCoord"` // Texture coordinates per triangle corner
	PolygonColors       []int                   `json:"polygonColors"`       // Color index per triangle
	TriXYZ              []vec3.T                `json:"-"`                   // Triangle centroids on the unit sphere
	TriLatLon           [][2]float64            `json:"-"`                   // Triangle latitude and longitude
	TextureURL          string                  `json:"textureURL"`
	Scale               float64                 `json:"scale"`
	RecursionDepth      int                     `json:"recursionDepth"`
	triQuadTree         *geoquad.QuadTree       // Quadtree for triangle lookup
}

// generateTriangleCentroids calculates the centroid of each triangle, both
// as xyz and as lat/lon. Must run before applyScale.
func (s *Sphere) generateTriangleCentroids() {
	s.TriXYZ = make([]vec3.T, 0, s.NumTriangles())
	s.TriLatLon = make([][2]float64, 0, s.NumTriangles())
	for t := range s.Triangles {
		v3 := various.GetCentroidOfTriangle(s.Corners(t))
		s.TriXYZ = append(s.TriXYZ, v3)
		nla, nlo := various.LatLonFromVec3(v3, 1.0)
		s.TriLatLon = append(s.TriLatLon, [2]float64{nla, nlo})
	}

	// Create a quadtree for triangle lookup.
	s.triQuadTree = newQuadTreeFromLatLon(s.TriLatLon)
}

func newQuadTreeFromLatLon(latLon [][2]float64) *geoquad.QuadTree {
	var points []geoquad.Point
	for i := range latLon {
		ll := latLon[i]
		points = append(points, geoquad.Point{
			Lat:  ll[0],
			Lon:  ll[1],
			Data: i,
		})
	}
	return geoquad.NewQuadTree(points)
}

// applyScale scales all vertices by the given factor.
func (s *Sphere) applyScale(scale float64) {
	for i := range s.Vertices {
		s.Vertices[i].Scale(scale / s.Scale)
	}
	s.Scale = scale
}

// setColorForAllPolygons assigns the color index to all triangles. With
// ManyColors, every triangle inherits the color of its octahedron face.
func (s *Sphere) setColorForAllPolygons(color int) {
	s.PolygonColors = make([]int, s.NumTriangles())
	perFace := s.NumTriangles() / len(spheremesh.DefaultPolygonColors)
	if perFace < 1 {
		perFace = 1
	}
	for t := range s.PolygonColors {
		if color == ManyColors {
			s.PolygonColors[t] = spheremesh.DefaultPolygonColors[t/perFace%len(spheremesh.DefaultPolygonColors)]
		} else {
			s.PolygonColors[t] = color
		}
	}
}

// TrianglesInBoundingBox returns all triangles whose centroid lies within the
// given lat/lon bounding box. If lon1 > lon2 the box wraps around the
// antimeridian and is queried as two rectangles.
func (s *Sphere) TrianglesInBoundingBox(lat1, lon1, lat2, lon2 float64) []int {
	if s.triQuadTree == nil {
		return nil
	}
	lat1, lat2 = various.LimitLatitude(lat1), various.LimitLatitude(lat2)
	if math.Abs(lon1-lon2) < 360 {
		lon1, lon2 = various.WrapLongitude(lon1), various.WrapLongitude(lon2)
	} else {
		lon1, lon2 = -180, 180
	}
	rects := []geoquad.Rect{{MinLat: lat1, MaxLat: lat2, MinLon: lon1, MaxLon: lon2}}
	if lon1 > lon2 {
		rects = []geoquad.Rect{
			{MinLat: lat1, MaxLat: lat2, MinLon: lon1, MaxLon: 180},
			{MinLat: lat1, MaxLat: lat2, MinLon: -180, MaxLon: lon2},
		}
	}
	var res []int
	seen := make(map[int]bool)
	for _, rect := range rects {
		for _, qd := range s.triQuadTree.FindPointsInRect(rect) {
			// A centroid on the antimeridian may be in both halves.
			if t := qd.Data.(int); !seen[t] {
				seen[t] = true
				res = append(res, t)
			}
		}
	}
	sort.Ints(res)
	return res
}

// ClosestTriangle returns the triangle whose centroid is closest to the given
// lat/lon coordinates, or -1 if the sphere has no triangles.
func (s *Sphere) ClosestTriangle(lat, lon float64) int {
	if s.triQuadTree == nil {
		return -1
	}
	res, ok := s.triQuadTree.FindNearestNeighbor(geoquad.Point{Lat: lat, Lon: lon})
	if !ok {
		return -1
	}
	return res.Data.(int)
}
