package octasphere

import (
	"log"
	"math"

	"github.com/Flokey82/octasphere/uvmap"
)

// Stats summarizes a generated sphere.
type Stats struct {
	NumVertices    int     // Vertices including the unused placeholder
	NumTriangles   int     // Triangles
	MaxRadiusError float64 // Largest deviation of a vertex from the sphere radius
	MaxUVSpread    float64 // Largest u spread of a triangle, ignoring pole corners
}

// Stats calculates the statistics of the sphere.
func (s *Sphere) Stats() Stats {
	radiusErr := make([]float64, 0, s.NumVertices())
	// Vertex 0 is the unused placeholder at the origin.
	for i := 1; i < s.NumVertices(); i++ {
		radiusErr = append(radiusErr, math.Abs(s.Vertices[i].Length()-s.Scale))
	}
	spread := make([]float64, 0, len(s.PolygonTextureCoord))
	for _, p := range s.PolygonTextureCoord {
		spread = append(spread, uvmap.Spread(p, true))
	}
	st := Stats{
		NumVertices:  s.NumVertices(),
		NumTriangles: s.NumTriangles(),
	}
	if len(radiusErr) > 0 {
		_, st.MaxRadiusError = minMax(radiusErr)
	}
	if len(spread) > 0 {
		_, st.MaxUVSpread = minMax(spread)
	}
	return st
}

// LogStats prints the statistics of the sphere.
func (s *Sphere) LogStats() {
	st := s.Stats()
	log.Println("Sphere:")
	log.Printf("  depth: %d, scale: %.2f", s.RecursionDepth, s.Scale)
	log.Printf("  vertices: %d, triangles: %d", st.NumVertices, st.NumTriangles)
	log.Printf("  max radius error: %g", st.MaxRadiusError)
	log.Printf("  max uv spread: %.4f", st.MaxUVSpread)
}
