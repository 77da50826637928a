package heightfield

import (
	"testing"

	"github.com/chazu/scenecraft/pkg/mesh"
)

func TestGridGroundPlaneVertexCount(t *testing.T) {
	buf := mesh.NewBuffer()
	flat := func(x, z float32) float32 { return -1.5 }
	gray := func(x, z float32) mesh.Color { return mesh.Color{0.35, 0.32, 0.28} }

	Grid(buf, -3, -6, 3, 0, 20, 20, flat, gray)

	if buf.VertexCount() != 20*20*6 {
		t.Fatalf("VertexCount = %d, want %d", buf.VertexCount(), 20*20*6)
	}
	if buf.HasCustomNormals {
		t.Fatalf("Grid must not set HasCustomNormals")
	}
}

func TestGridFacesPositiveY(t *testing.T) {
	buf := mesh.NewBuffer()
	flat := func(x, z float32) float32 { return 0 }
	white := func(x, z float32) mesh.Color { return mesh.Color{1, 1, 1} }
	Grid(buf, 0, 0, 1, 1, 1, 1, flat, white)

	pos := buf.Positions()
	if len(pos) < 9 {
		t.Fatalf("expected at least one triangle")
	}
	ax, ay, az := pos[3]-pos[0], pos[4]-pos[1], pos[5]-pos[2]
	bx, by, bz := pos[6]-pos[0], pos[7]-pos[1], pos[8]-pos[2]
	nx := ay*bz - az*by
	ny := az*bx - ax*bz
	nz := ax*by - ay*bx
	_ = nx
	_ = nz
	if ny <= 0 {
		t.Fatalf("first triangle's winding should face +Y, got normal.y = %v", ny)
	}
}

func TestGridBoundsMatchRectangle(t *testing.T) {
	buf := mesh.NewBuffer()
	flat := func(x, z float32) float32 { return 2 }
	white := func(x, z float32) mesh.Color { return mesh.Color{1, 1, 1} }
	Grid(buf, -3, -6, 3, 0, 20, 20, flat, white)

	pos := buf.Positions()
	for i := 0; i < len(pos); i += 3 {
		x, y, z := pos[i], pos[i+1], pos[i+2]
		if x < -3 || x > 3 {
			t.Fatalf("x = %v out of [-3,3]", x)
		}
		if y != 2 {
			t.Fatalf("y = %v, want constant height 2", y)
		}
		if z < -6 || z > 0 {
			t.Fatalf("z = %v out of [-6,0]", z)
		}
	}
}

func TestGridZeroResolutionEmitsNothing(t *testing.T) {
	buf := mesh.NewBuffer()
	flat := func(x, z float32) float32 { return 0 }
	white := func(x, z float32) mesh.Color { return mesh.Color{1, 1, 1} }
	Grid(buf, 0, 0, 1, 1, 0, 5, flat, white)
	if !buf.IsEmpty() {
		t.Fatalf("expected zero triangles when resX < 1")
	}
}
