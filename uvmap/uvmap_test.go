package uvmap

import (
	"math"
	"testing"

	"github.com/Flokey82/octasphere/spheremesh"
	"github.com/Flokey82/octasphere/various"
	"github.com/ungerik/go3d/float64/vec3"
)

const eps = 1e-9

func TestTexCoordFromVec3(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    vec3.T
		want TexCoord
	}{
		{"+x", vec3.T{1, 0, 0}, TexCoord{0.5, 0.5}},
		{"+z", vec3.T{0, 0, 1}, TexCoord{0.75, 0.5}},
		{"-z", vec3.T{0, 0, -1}, TexCoord{0.25, 0.5}},
		{"-x", vec3.T{-1, 0, 0}, TexCoord{1, 0.5}},
		{"north pole", vec3.T{0, 1, 0}, TexCoord{0.5, 1}},
		{"south pole", vec3.T{0, -1, 0}, TexCoord{0.5, 0}},
	} {
		got := TexCoordFromVec3(tc.p)
		if math.Abs(got.U-tc.want.U) > eps || math.Abs(got.V-tc.want.V) > eps {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func generate(t *testing.T, depth int) (*spheremesh.Mesh, []PolygonTexCoord) {
	t.Helper()
	m := spheremesh.NewOctahedron()
	if err := m.Subdivide(depth); err != nil {
		t.Fatal(err)
	}
	return m, GenerateForMesh(m)
}

func TestGenerateSpread(t *testing.T) {
	for depth := 0; depth <= 5; depth++ {
		m, uv := generate(t, depth)
		if len(uv) != m.NumTriangles() {
			t.Fatalf("depth %d: got %d polygons, want %d", depth, len(uv), m.NumTriangles())
		}
		for i, p := range uv {
			if s := Spread(p, true); s > 0.5 {
				t.Fatalf("depth %d: triangle %d has u spread %v: %v", depth, i, s, p)
			}
			// Pole corners are placed between their siblings.
			if s := Spread(p, false); s > 0.5 {
				t.Fatalf("depth %d: triangle %d has u spread %v with poles: %v", depth, i, s, p)
			}
			for _, c := range p {
				if c.U < 0 || c.U > 1 || c.V < 0 || c.V > 1 {
					t.Fatalf("depth %d: triangle %d out of range: %v", depth, i, p)
				}
			}
		}
	}
}

func TestGenerateOrder(t *testing.T) {
	m, uv := generate(t, 2)
	for i, tri := range m.Triangles {
		for j, r := range tri {
			want := TexCoordFromVec3(m.Vertices[r])
			if math.Abs(uv[i][j].V-want.V) > eps {
				t.Fatalf("triangle %d corner %d: got v=%v, want %v", i, j, uv[i][j].V, want.V)
			}
		}
	}
}

func TestGenerateSeamCorners(t *testing.T) {
	_, uv := generate(t, 0)

	// Triangle (1, 6, 4) lies in the z>0 half, its -x corner stays at u=1.
	if uv[0][0].U != 1 {
		t.Errorf("triangle 0: got u=%v at the seam, want 1", uv[0][0].U)
	}
	// Triangle (5, 1, 4) lies in the z<0 half, its -x corner moves to u=0.
	if uv[5][1].U != 0 {
		t.Errorf("triangle 5: got u=%v at the seam, want 0", uv[5][1].U)
	}
	// The north pole corner sits between u=0.25 and u=0.
	if got := uv[5][2]; math.Abs(got.U-0.125) > eps || got.V != 1 {
		t.Errorf("triangle 5: got %v at the pole, want {0.125 1}", got)
	}
}

func TestGenerateStraddlingTriangle(t *testing.T) {
	vertices := []vec3.T{
		various.LatLonToVec3(10, 175),
		various.LatLonToVec3(-10, -175),
		various.LatLonToVec3(0, 170),
	}
	tris := []spheremesh.Triangle{{0, 1, 2}}
	uv := Generate(vertices, tris)
	if uv[0][1].U != 1 {
		t.Errorf("got u=%v for the corner past the seam, want 1", uv[0][1].U)
	}
	if s := Spread(uv[0], true); s > 0.05 {
		t.Errorf("got spread %v, want a narrow band", s)
	}

	// Mirrored: the band is on the left edge.
	vertices = []vec3.T{
		various.LatLonToVec3(10, -175),
		various.LatLonToVec3(-10, 175),
		various.LatLonToVec3(0, -170),
	}
	uv = Generate(vertices, tris)
	if uv[0][1].U != 0 {
		t.Errorf("got u=%v for the corner past the seam, want 0", uv[0][1].U)
	}
}

func TestGenerateLeavesCenterAlone(t *testing.T) {
	vertices := []vec3.T{
		various.LatLonToVec3(0, -20),
		various.LatLonToVec3(0, 20),
		various.LatLonToVec3(20, 0),
	}
	uv := Generate(vertices, []spheremesh.Triangle{{0, 1, 2}})
	for i, v := range vertices {
		if want := TexCoordFromVec3(v); math.Abs(uv[0][i].U-want.U) > eps {
			t.Errorf("corner %d: got u=%v, want %v", i, uv[0][i].U, want.U)
		}
	}
}
