package scene

import (
	"math"
	"testing"

	"github.com/chazu/scenecraft/pkg/mesh"
)

func TestValidateMeshEmptyIsWarningOnly(t *testing.T) {
	buf := mesh.NewBuffer()
	findings := ValidateMesh(buf)
	if HasError(findings) {
		t.Fatalf("empty mesh should not be a hard error")
	}
	if len(findings) != 1 || findings[0].Message != "zero vertices" {
		t.Fatalf("expected a single zero-vertices warning, got %+v", findings)
	}
}

func TestValidateMeshNonFinitePositionIsError(t *testing.T) {
	buf := mesh.NewBuffer()
	buf.EmitTriangle(mesh.Vec3{float32(math.NaN()), 0, 0}, mesh.Vec3{1, 0, 0}, mesh.Vec3{0, 1, 0}, mesh.Color{1, 1, 1})
	findings := ValidateMesh(buf)
	if !HasError(findings) {
		t.Fatalf("expected a non-finite position to be a hard error")
	}
}

func TestValidateMeshOffScenePositionIsWarning(t *testing.T) {
	buf := mesh.NewBuffer()
	buf.EmitTriangle(mesh.Vec3{2000, 0, 0}, mesh.Vec3{1, 0, 0}, mesh.Vec3{0, 1, 0}, mesh.Color{1, 1, 1})
	findings := ValidateMesh(buf)
	if HasError(findings) {
		t.Fatalf("off-scene position alone should not be a hard error")
	}
	found := false
	for _, f := range findings {
		if f.Severity == SeverityWarning && f.Message != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an off-scene warning, got %+v", findings)
	}
}

func TestValidateMeshDegenerateTriangleFlagged(t *testing.T) {
	buf := mesh.NewBuffer()
	// Three collinear points: zero area.
	buf.EmitTriangle(mesh.Vec3{0, 0, 0}, mesh.Vec3{1, 0, 0}, mesh.Vec3{2, 0, 0}, mesh.Color{1, 1, 1})
	findings := ValidateMesh(buf)
	found := false
	for _, f := range findings {
		if f.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected degenerate triangle warning, got %+v", findings)
	}
}

func TestValidateMeshHighVertexCountIsError(t *testing.T) {
	buf := mesh.NewBuffer()
	for i := 0; i < 500_000/3+1; i++ {
		buf.EmitTriangle(mesh.Vec3{0, 0, 0}, mesh.Vec3{1, 0, 0}, mesh.Vec3{0, 1, 0}, mesh.Color{1, 1, 1})
	}
	findings := ValidateMesh(buf)
	if !HasError(findings) {
		t.Fatalf("expected vertex count above 500000 to be a hard error")
	}
}
