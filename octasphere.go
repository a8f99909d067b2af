// Package octasphere generates a textured sphere by subdividing the faces of
// a unit octahedron and projecting the new vertices onto the unit sphere.
// See: https://sites.google.com/site/dlampetest/python/triangulating-a-sphere-recursively
// And: http://sol.gfxile.net/sphere/index.html
package octasphere

import (
	"log"
	"time"

	"github.com/Flokey82/octasphere/spheremesh"
	"github.com/Flokey82/octasphere/uvmap"
)

// NewSphereFromConfig generates a sphere with the given configuration.
// A nil config uses the defaults of NewConfig.
func NewSphereFromConfig(cfg *Config) (*Sphere, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	// Subdivide the octahedron; all vertices end up on the unit sphere.
	mesh := spheremesh.NewOctahedron()
	if err := mesh.Subdivide(cfg.RecursionDepth); err != nil {
		return nil, err
	}

	s := &Sphere{
		Mesh:           mesh,
		TextureURL:     cfg.TextureURL,
		Scale:          1,
		RecursionDepth: cfg.RecursionDepth,
	}

	// Texture coordinates and centroids need the unscaled vertices.
	s.PolygonTextureCoord = uvmap.GenerateForMesh(mesh)
	s.generateTriangleCentroids()

	s.applyScale(cfg.Scale)
	s.setColorForAllPolygons(cfg.Color)

	log.Printf("generated sphere (depth %d): %d vertices, %d triangles in %v",
		cfg.RecursionDepth, s.NumVertices(), s.NumTriangles(), time.Since(start))
	return s, nil
}

// NewSphere generates a sphere with the given depth and scale and the
// remaining options at their defaults.
func NewSphere(recursionDepth int, scale float64) (*Sphere, error) {
	cfg := NewConfig()
	cfg.RecursionDepth = recursionDepth
	cfg.Scale = scale
	return NewSphereFromConfig(cfg)
}
