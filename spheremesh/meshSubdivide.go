package spheremesh

import (
	"fmt"

	"github.com/Flokey82/octasphere/various"
	"github.com/ungerik/go3d/float64/vec3"
)

// VertexEmitter supplies the vertex index of the midpoint of the edge a-b.
// Swapping the emitter changes how midpoints are shared between triangles
// without touching the subdivision itself.
type VertexEmitter interface {
	Midpoint(m *Mesh, a, b int) (int, error)
}

// AppendEmitter appends a new vertex for every midpoint it is asked for,
// so an edge shared by two triangles yields two identical vertices.
type AppendEmitter struct{}

// Midpoint appends the normalized midpoint of a and b to m.Vertices.
func (AppendEmitter) Midpoint(m *Mesh, a, b int) (int, error) {
	if a < 0 || a >= len(m.Vertices) || b < 0 || b >= len(m.Vertices) {
		return -1, fmt.Errorf("edge %d-%d: %w", a, b, ErrVertexOutOfRange)
	}
	v, err := various.SphereMidpoint3(&m.Vertices[a], &m.Vertices[b])
	if err != nil {
		return -1, fmt.Errorf("edge %d-%d: %w", a, b, ErrDegenerateVertex)
	}
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1, nil
}

// Subdivide splits every triangle into four, depth times, using AppendEmitter.
func (m *Mesh) Subdivide(depth int) error {
	return m.SubdivideWith(depth, AppendEmitter{})
}

// SubdivideWith splits every triangle into four, depth times, asking em for
// the midpoint vertices. A depth of 0 leaves the mesh unchanged. If em fails,
// the mesh is restored to its state before the call.
//
//	       c
//	       /\
//	      /  \
//	  m2 /____\ m1
//	    /\    /\
//	   /  \  /  \
//	  /____\/____\
//	 a     m0     b
func (m *Mesh) SubdivideWith(depth int, em VertexEmitter) error {
	if depth < 0 {
		return fmt.Errorf("%d: %w", depth, ErrNegativeDepth)
	}
	numVertices, prevTriangles := len(m.Vertices), m.Triangles
	for level := 0; level < depth; level++ {
		triangles := make([]Triangle, 0, 4*len(m.Triangles))
		if need := len(m.Vertices) + 3*len(m.Triangles); cap(m.Vertices) < need {
			vertices := make([]vec3.T, len(m.Vertices), need)
			copy(vertices, m.Vertices)
			m.Vertices = vertices
		}
		for t, tri := range m.Triangles {
			var mid [3]int
			for i := 0; i < 3; i++ {
				r, err := em.Midpoint(m, tri[i], tri[(i+1)%3])
				if err != nil {
					m.Vertices, m.Triangles = m.Vertices[:numVertices], prevTriangles
					return fmt.Errorf("level %d, triangle %d: %w", level, t, err)
				}
				mid[i] = r
			}
			triangles = append(triangles,
				Triangle{mid[0], mid[1], mid[2]},
				Triangle{tri[0], mid[0], mid[2]},
				Triangle{tri[1], mid[1], mid[0]},
				Triangle{tri[2], mid[2], mid[1]},
			)
		}
		m.Triangles = triangles
	}
	return nil
}

// NumTriangles returns the number of triangles of an octahedron subdivided
// depth times: 8 * 4^depth.
func NumTriangles(depth int) int {
	return 8 << (2 * uint(depth))
}

// NumVertices returns the number of vertices of an octahedron subdivided
// depth times with AppendEmitter, including the placeholder at index 0.
func NumVertices(depth int) int {
	n := 7
	for k := 0; k < depth; k++ {
		n += 3 * NumTriangles(k)
	}
	return n
}
