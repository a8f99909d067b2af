// Package spheremesh builds triangle meshes approximating the unit sphere
// by recursive midpoint subdivision of an octahedron.
package spheremesh

import (
	"errors"
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

var (
	ErrNegativeDepth    = errors.New("recursion depth must not be negative")
	ErrVertexOutOfRange = errors.New("triangle references a vertex out of range")
	ErrDegenerateVertex = errors.New("degenerate midpoint cannot be projected onto the sphere")
)

// Triangle holds three vertex indices in counter-clockwise order as seen
// from outside the sphere.
type Triangle [3]int

// Mesh is a growable vertex buffer plus the triangles referencing it.
type Mesh struct {
	Vertices  []vec3.T   `json:"vertices"`
	Triangles []Triangle `json:"triangles"`
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int {
	return len(m.Vertices)
}

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles)
}

// Corners returns the positions of the corners of triangle t.
func (m *Mesh) Corners(t int) (a, b, c *vec3.T) {
	tri := m.Triangles[t]
	return &m.Vertices[tri[0]], &m.Vertices[tri[1]], &m.Vertices[tri[2]]
}

// Validate checks that all triangles reference existing vertices.
func (m *Mesh) Validate() error {
	for t, tri := range m.Triangles {
		for _, r := range tri {
			if r < 0 || r >= len(m.Vertices) {
				return fmt.Errorf("triangle %d, vertex %d: %w", t, r, ErrVertexOutOfRange)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Vertices:  make([]vec3.T, len(m.Vertices)),
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Triangles, m.Triangles)
	return c
}
