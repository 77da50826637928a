package sweep

import (
	"math"
	"testing"

	"github.com/chazu/scenecraft/pkg/mesh"
)

func TestLatheSinglePoleSegmentEmitsCapTriangles(t *testing.T) {
	buf := mesh.NewBuffer()
	profile := []ProfilePoint{{R: 1, Y: 0}, {R: 0, Y: 1}}
	segments := 8
	Lathe(buf, mesh.Vec3{0, 0, 0}, profile, segments, 0, mesh.Color{1, 0, 0})
	if buf.TriangleCount() != uint32(segments) {
		t.Fatalf("TriangleCount = %d, want %d cap triangles", buf.TriangleCount(), segments)
	}
}

func TestLatheZeroRadiiEmitsNothing(t *testing.T) {
	buf := mesh.NewBuffer()
	profile := []ProfilePoint{{R: 0, Y: 0}, {R: 0, Y: 1}}
	Lathe(buf, mesh.Vec3{0, 0, 0}, profile, 8, 0, mesh.Color{1, 0, 0})
	if !buf.IsEmpty() {
		t.Fatalf("expected zero triangles when both radii are zero, got %d vertices", buf.VertexCount())
	}
}

func TestLatheTooFewSegmentsEmitsNothing(t *testing.T) {
	buf := mesh.NewBuffer()
	profile := []ProfilePoint{{R: 1, Y: 0}, {R: 1, Y: 1}}
	Lathe(buf, mesh.Vec3{0, 0, 0}, profile, 2, 0, mesh.Color{1, 0, 0})
	if !buf.IsEmpty() {
		t.Fatalf("expected zero triangles when segments < 3")
	}
}

func TestExtrudePathShortInputsEmitNothing(t *testing.T) {
	buf := mesh.NewBuffer()
	ExtrudePath(buf, []ProfileUV{{U: 1, V: 0}}, []mesh.Vec3{{0, 0, 0}, {0, 0, 1}}, true, mesh.Color{1, 1, 1})
	if !buf.IsEmpty() {
		t.Fatalf("expected zero triangles when profile has fewer than 2 points")
	}

	buf = mesh.NewBuffer()
	ExtrudePath(buf, []ProfileUV{{U: 1, V: 0}, {U: 0, V: 1}}, []mesh.Vec3{{0, 0, 0}}, true, mesh.Color{1, 1, 1})
	if !buf.IsEmpty() {
		t.Fatalf("expected zero triangles when path has fewer than 2 points")
	}
}

func circleProfile(n int, r float64) []ProfileUV {
	pts := make([]ProfileUV, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = ProfileUV{U: r * math.Cos(theta), V: r * math.Sin(theta)}
	}
	return pts
}

func TestExtrudeStraightPathApproximatesCylinder(t *testing.T) {
	buf := mesh.NewBuffer()
	profile := circleProfile(16, 0.5)
	path := []mesh.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}, {0, 0, 3}}
	ExtrudePath(buf, profile, path, true, mesh.Color{0.5, 0.5, 0.5})

	if buf.IsEmpty() {
		t.Fatalf("expected a non-empty tube mesh")
	}
	pos := buf.Positions()
	for i := 0; i < len(pos); i += 3 {
		x, y := float64(pos[i]), float64(pos[i+1])
		radius := math.Hypot(x, y)
		if math.Abs(radius-0.5) > 0.05 {
			t.Fatalf("vertex %d radius = %v, want ~0.5 for a straight-path cylinder", i/3, radius)
		}
	}
}

func TestExtrudeDuplicateAdjacentPointsInheritsFrame(t *testing.T) {
	buf := mesh.NewBuffer()
	profile := circleProfile(8, 0.3)
	path := []mesh.Vec3{{0, 0, 0}, {0, 0, 0}, {0, 0, 1}}
	// must not panic on a zero-length segment
	ExtrudePath(buf, profile, path, true, mesh.Color{1, 1, 1})
	if buf.IsEmpty() {
		t.Fatalf("expected geometry even with a duplicate adjacent path point")
	}
}
