package scene

import (
	"math"
	"testing"

	"github.com/chazu/scenecraft/pkg/mesh"
)

func almostEqual(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestBoundsFromEmptyMeshIsAllZero(t *testing.T) {
	buf := mesh.NewBuffer()
	b := BoundsFromMesh(buf)
	want := AABB{}
	if b != want {
		t.Fatalf("empty mesh bounds = %+v, want all-zero", b)
	}
}

func TestBoundsFromMeshTracksExtent(t *testing.T) {
	buf := mesh.NewBuffer()
	buf.EmitTriangle(mesh.Vec3{-1, 0, 0}, mesh.Vec3{1, 2, 0}, mesh.Vec3{0, -1, 3}, mesh.Color{1, 1, 1})
	b := BoundsFromMesh(buf)
	if b.Min != (mesh.Vec3{-1, -1, 0}) || b.Max != (mesh.Vec3{1, 2, 3}) {
		t.Fatalf("bounds = %+v", b)
	}
}

func TestGapReportsLargestSeparatingAxis(t *testing.T) {
	a := AABB{Min: mesh.Vec3{0, 0, 0}, Max: mesh.Vec3{1, 1, 1}}
	b := AABB{Min: mesh.Vec3{5, 0.5, 0.5}, Max: mesh.Vec3{6, 1.5, 1.5}}
	axis, mag := Gap(a, b)
	if axis != "X" || !almostEqual(mag, 4, 1e-9) {
		t.Fatalf("Gap = (%s, %v), want (X, 4)", axis, mag)
	}
}

func TestGapIsSymmetric(t *testing.T) {
	a := AABB{Min: mesh.Vec3{0, 0, 0}, Max: mesh.Vec3{1, 1, 1}}
	b := AABB{Min: mesh.Vec3{5, 0.5, 0.5}, Max: mesh.Vec3{6, 1.5, 1.5}}
	axis1, mag1 := Gap(a, b)
	axis2, mag2 := Gap(b, a)
	if axis1 != axis2 || !almostEqual(mag1, mag2, 1e-9) {
		t.Fatalf("Gap not symmetric: (%s,%v) vs (%s,%v)", axis1, mag1, axis2, mag2)
	}
}

func TestPenetrationReportsShallowestAxis(t *testing.T) {
	a := AABB{Min: mesh.Vec3{0, 0, 0}, Max: mesh.Vec3{1, 1, 1}}
	b := AABB{Min: mesh.Vec3{0.9, 0, 0}, Max: mesh.Vec3{1.9, 1, 1}}
	axis, mag := Penetration(a, b)
	// AABB coordinates are float32, so 0.9 is stored as 0.89999998.
	if axis != "X" || !almostEqual(mag, 0.1, 1e-6) {
		t.Fatalf("Penetration = (%s, %v), want (X, 0.1)", axis, mag)
	}
}

func TestOverlapsRequiresAllThreeAxes(t *testing.T) {
	a := AABB{Min: mesh.Vec3{0, 0, 0}, Max: mesh.Vec3{1, 1, 1}}
	touching := AABB{Min: mesh.Vec3{2, 0, 0}, Max: mesh.Vec3{3, 1, 1}}
	if a.Overlaps(touching) {
		t.Fatalf("expected no overlap on separated X axis")
	}
	overlapping := AABB{Min: mesh.Vec3{0.5, 0.5, 0.5}, Max: mesh.Vec3{1.5, 1.5, 1.5}}
	if !a.Overlaps(overlapping) {
		t.Fatalf("expected overlap")
	}
}

func TestAnalyzeSpatialAbsentWhenNoPriorLayers(t *testing.T) {
	_, _, ok := AnalyzeSpatial(AABB{}, nil)
	if ok {
		t.Fatalf("expected no spatial analysis with zero prior layers")
	}
}

func TestAnalyzeSpatialNearestTieBreaksFirstInsertion(t *testing.T) {
	newBounds := AABB{Center: mesh.Vec3{0, 0, 0}}
	l1 := &Layer{ID: "layer-1", Bounds: AABB{Center: mesh.Vec3{5, 0, 0}}}
	l2 := &Layer{ID: "layer-2", Bounds: AABB{Center: mesh.Vec3{-5, 0, 0}}}
	rels, nearest, ok := AnalyzeSpatial(newBounds, []*Layer{l1, l2})
	if !ok || len(rels) != 2 {
		t.Fatalf("expected 2 relationships, got %d (ok=%v)", len(rels), ok)
	}
	if nearest != "layer-1" {
		t.Fatalf("expected tie-break to favor first-inserted layer-1, got %s", nearest)
	}
}

func TestAnalyzeSpatialPenetrationScenario(t *testing.T) {
	// Mirrors spec's penetration end-to-end scenario: two spheres of radius
	// 0.5 centered 0.3 apart on X overlap by 0.7 on X. AABB coordinates are
	// float32, so the comparisons allow float32 rounding.
	first := AABB{Min: mesh.Vec3{-0.5, -0.5, -0.5}, Max: mesh.Vec3{0.5, 0.5, 0.5}, Center: mesh.Vec3{0, 0, 0}}
	second := AABB{Min: mesh.Vec3{-0.2, -0.5, -0.5}, Max: mesh.Vec3{0.8, 0.5, 0.5}, Center: mesh.Vec3{0.3, 0, 0}}
	rels, _, ok := AnalyzeSpatial(second, []*Layer{{ID: "layer-1", Bounds: first}})
	if !ok || len(rels) != 1 {
		t.Fatalf("expected exactly one relationship")
	}
	r := rels[0]
	if !r.Overlaps {
		t.Fatalf("expected overlap")
	}
	if r.Penetration == nil || r.Penetration.Axis != "X" || !almostEqual(r.Penetration.Magnitude, 0.7, 1e-6) {
		t.Fatalf("penetration = %+v, want (X, 0.7)", r.Penetration)
	}
	if !almostEqual(r.CenterDistance, 0.3, 1e-6) {
		t.Fatalf("center distance = %v, want 0.3", r.CenterDistance)
	}
}
