package mesh

import "testing"

func TestEmitTriangleAppendsThreeVertices(t *testing.T) {
	b := NewBuffer()
	b.EmitTriangle(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, Color{1, 0, 0})
	if b.VertexCount() != 3 {
		t.Fatalf("VertexCount = %d, want 3", b.VertexCount())
	}
	if b.HasCustomNormals {
		t.Fatalf("EmitTriangle must not set HasCustomNormals")
	}
	if len(b.Positions()) != 9 || len(b.Colors()) != 9 || len(b.Normals()) != 9 {
		t.Fatalf("parallel arrays disagree in length: pos=%d col=%d norm=%d",
			len(b.Positions()), len(b.Colors()), len(b.Normals()))
	}
}

func TestEmitQuadEmitsTwoTriangles(t *testing.T) {
	b := NewBuffer()
	b.EmitQuad(
		Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{1, 1, 0}, Vec3{0, 1, 0},
		Color{0, 1, 0},
	)
	if b.VertexCount() != 6 {
		t.Fatalf("VertexCount = %d, want 6", b.VertexCount())
	}
	if b.TriangleCount() != 2 {
		t.Fatalf("TriangleCount = %d, want 2", b.TriangleCount())
	}
	pos := b.Positions()
	// (p1,p2,p3) then (p1,p3,p4): vertex 0 and vertex 3 should both be p1.
	if pos[0] != pos[9] || pos[1] != pos[10] || pos[2] != pos[11] {
		t.Fatalf("second triangle should start at p1")
	}
}

func TestEmitSmoothTriangleSetsCustomNormals(t *testing.T) {
	b := NewBuffer()
	b.EmitSmoothTriangle(
		Vec3{0, 0, 0}, Vec3{0, 1, 0},
		Vec3{1, 0, 0}, Vec3{0, 1, 0},
		Vec3{0, 0, 1}, Vec3{0, 1, 0},
		Color{1, 1, 1},
	)
	if !b.HasCustomNormals {
		t.Fatalf("EmitSmoothTriangle must set HasCustomNormals")
	}
	n := b.Normals()
	if n[1] != 1 || n[4] != 1 || n[7] != 1 {
		t.Fatalf("normals not stored per-vertex: %v", n)
	}
}

func TestGrowthDoublesCapacityAndPreservesOrder(t *testing.T) {
	b := NewBuffer()
	b.capacity = 2 // force growth well before the real 300k default
	b.positions = make([]float32, 0, 2*3)
	b.colors = make([]float32, 0, 2*3)
	b.normals = make([]float32, 0, 2*3)

	b.EmitTriangle(Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 9}, Color{1, 0, 0})
	if b.capacity < 3 {
		t.Fatalf("capacity should have grown past the emitted vertex count, got %d", b.capacity)
	}
	pos := b.Positions()
	want := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i, v := range want {
		if pos[i] != v {
			t.Fatalf("growth reordered data at index %d: got %v want %v", i, pos[i], v)
		}
	}
}

func TestSetMaterialMergesFieldByField(t *testing.T) {
	b := NewBuffer()
	rough := 0.5
	b.SetMaterial(MaterialHints{Roughness: &rough})
	metal := 0.9
	b.SetMaterial(MaterialHints{Metalness: &metal})

	if b.Material.Roughness == nil || *b.Material.Roughness != 0.5 {
		t.Fatalf("first SetMaterial call's roughness should survive the second call")
	}
	if b.Material.Metalness == nil || *b.Material.Metalness != 0.9 {
		t.Fatalf("second SetMaterial call's metalness should be applied")
	}
}

func TestEmptyBufferIsEmpty(t *testing.T) {
	b := NewBuffer()
	if !b.IsEmpty() {
		t.Fatalf("fresh buffer should be empty")
	}
	if b.VertexCount() != 0 || b.TriangleCount() != 0 {
		t.Fatalf("fresh buffer should report zero counts")
	}
}
