package sdf

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSphereSurfaceZero(t *testing.T) {
	d := Sphere(1, 0, 0, 1)
	if !almostEqual(d, 0, 1e-9) {
		t.Fatalf("Sphere on surface = %v, want 0", d)
	}
	if Sphere(0, 0, 0, 1) >= 0 {
		t.Fatalf("Sphere at center should be negative (inside)")
	}
	if Sphere(2, 0, 0, 1) <= 0 {
		t.Fatalf("Sphere outside should be positive")
	}
}

func TestBoxCenterAndCorner(t *testing.T) {
	d := Box(0, 0, 0, 1, 1, 1)
	if !almostEqual(d, -1, 1e-9) {
		t.Fatalf("Box center = %v, want -1", d)
	}
	// exact corner distance
	d = Box(2, 2, 2, 1, 1, 1)
	want := math.Sqrt(3)
	if !almostEqual(d, want, 1e-9) {
		t.Fatalf("Box corner = %v, want %v", d, want)
	}
}

func TestCapsuleEndpoints(t *testing.T) {
	d := Capsule(0, 0, 0, 0, -1, 0, 0, 1, 0, 0.5)
	if !almostEqual(d, -0.5, 1e-9) {
		t.Fatalf("Capsule midpoint = %v, want -0.5", d)
	}
	d = Capsule(0, 2, 0, 0, -1, 0, 0, 1, 0, 0.5)
	if !almostEqual(d, 0.5, 1e-9) {
		t.Fatalf("Capsule beyond endpoint = %v, want 0.5", d)
	}
}

func TestTorusRing(t *testing.T) {
	d := Torus(2, 0, 0, 2, 0.5)
	if !almostEqual(d, -0.5, 1e-9) {
		t.Fatalf("Torus ring center = %v, want -0.5", d)
	}
}

func TestPlaneSignedSide(t *testing.T) {
	if Plane(0, 1, 0, 0, 1, 0, 0) <= 0 {
		t.Fatalf("Plane above should be positive")
	}
	if Plane(0, -1, 0, 0, 1, 0, 0) >= 0 {
		t.Fatalf("Plane below should be negative")
	}
}

func TestCylinderCappedBounds(t *testing.T) {
	if Cylinder(0, 0, 0, 1, 1) >= 0 {
		t.Fatalf("Cylinder center should be inside")
	}
	if Cylinder(0, 2, 0, 1, 1) <= 0 {
		t.Fatalf("Cylinder beyond cap should be outside")
	}
}

func TestOctahedronCenterNegative(t *testing.T) {
	if Octahedron(0, 0, 0, 1) >= 0 {
		t.Fatalf("Octahedron center should be inside")
	}
	if Octahedron(10, 10, 10, 1) <= 0 {
		t.Fatalf("Octahedron far point should be outside")
	}
}

func TestTaperedCylinderMatchesCylinderWhenEqualRadii(t *testing.T) {
	a := TaperedCylinder(0.5, 0, 0.5, 1, 1, 2)
	b := Cylinder(0.5, 0, 0.5, 1, 2)
	if !almostEqual(a, b, 1e-6) {
		t.Fatalf("TaperedCylinder(r1=r2) = %v, want %v (Cylinder)", a, b)
	}
}

func TestSmoothUnionApproachesHardUnion(t *testing.T) {
	d1, d2 := Sphere(0, 0, 0, 1), Sphere(3, 0, 0, 1)
	hard := Union(d1, d2)
	smooth := SmoothUnion(d1, d2, 1e-6)
	if !almostEqual(hard, smooth, 1e-3) {
		t.Fatalf("SmoothUnion(k->0) = %v, want ~%v", smooth, hard)
	}
}

func TestSmoothUnionBlendsBelowHardMin(t *testing.T) {
	d1, d2 := Sphere(0, 0, 0, 1), Sphere(1.5, 0, 0, 1)
	hard := Union(d1, d2)
	smooth := SmoothUnion(d1, d2, 0.5)
	if smooth > hard {
		t.Fatalf("SmoothUnion = %v should be <= hard union %v", smooth, hard)
	}
}

func TestXorInsideExactlyOne(t *testing.T) {
	// point inside sphere A only
	d1, d2 := Sphere(0, 0, 0, 1), Sphere(5, 0, 0, 1)
	if Xor(d1, d2) >= 0 {
		t.Fatalf("Xor inside exactly one solid should be negative")
	}
	// point inside neither
	d1, d2 = Sphere(5, 0, 0, 1), Sphere(10, 0, 0, 1)
	if Xor(d1, d2) <= 0 {
		t.Fatalf("Xor inside neither should be positive")
	}
}

func TestRoundGrowsSolid(t *testing.T) {
	d := Sphere(0, 0, 0, 1)
	if Round(d, 0.1) >= d {
		t.Fatalf("Round should decrease the distance value (offset the surface outward)")
	}
}

func TestShellIsThinNearSurface(t *testing.T) {
	d := Sphere(0, 0, 0, 1) // center, d=-1
	if Shell(d, 0.1) <= 0 {
		t.Fatalf("Shell at center of thick solid should read outside the thin shell")
	}
	d = Sphere(0.95, 0, 0, 1)
	if Shell(d, 0.1) >= 0 {
		t.Fatalf("Shell near surface should read inside")
	}
}

func TestMirrorFoldsNegativeAxis(t *testing.T) {
	if Mirror(-3) != 3 {
		t.Fatalf("Mirror(-3) = %v, want 3", Mirror(-3))
	}
}

func TestRepeatTilesAndCenters(t *testing.T) {
	// 2.5 lies 0.5 into the cell [2,4); cells map onto [-1,1), so 2.5 -> -0.5.
	got := Repeat(2.5, 2)
	if !almostEqual(got, -0.5, 1e-9) {
		t.Fatalf("Repeat(2.5,2) = %v, want -0.5", got)
	}
}

func TestTwistPreservesY(t *testing.T) {
	_, ny, _ := Twist(1, 2, 3, 0.5)
	if ny != 2 {
		t.Fatalf("Twist should leave y unchanged, got %v", ny)
	}
}

func TestTwistZeroKIsIdentity(t *testing.T) {
	nx, ny, nz := Twist(1, 2, 3, 0)
	if !almostEqual(nx, 1, 1e-9) || ny != 2 || !almostEqual(nz, 3, 1e-9) {
		t.Fatalf("Twist(k=0) should be identity, got (%v,%v,%v)", nx, ny, nz)
	}
}

func TestRotateYPreservesDistanceFromAxis(t *testing.T) {
	nx, ny, nz := RotateY(1, 5, 0, math.Pi/2)
	if !almostEqual(ny, 5, 1e-9) {
		t.Fatalf("RotateY should preserve y, got %v", ny)
	}
	distBefore := math.Hypot(1, 0)
	distAfter := math.Hypot(nx, nz)
	if !almostEqual(distBefore, distAfter, 1e-9) {
		t.Fatalf("RotateY should preserve distance from the axis: %v != %v", distBefore, distAfter)
	}
}

func TestElongateClampsWithinCore(t *testing.T) {
	qx, qy, qz := Elongate(0.2, 0, 0, 1, 1, 1)
	if qx != 0 || qy != 0 || qz != 0 {
		t.Fatalf("Elongate inside the core should return the origin, got (%v,%v,%v)", qx, qy, qz)
	}
	qx, _, _ = Elongate(3, 0, 0, 1, 1, 1)
	if !almostEqual(qx, 2, 1e-9) {
		t.Fatalf("Elongate beyond the core should subtract the half-extent, got %v", qx)
	}
}

func TestAsSDF3ReportsSuppliedBounds(t *testing.T) {
	f := DistFunc(func(p Vec3) float64 { return Sphere(p.X, p.Y, p.Z, 1) })
	s := f.AsSDF3(Vec3{X: -1, Y: -1, Z: -1}, Vec3{X: 1, Y: 1, Z: 1})
	bb := s.BoundingBox()
	if bb.Min.X != -1 || bb.Max.X != 1 {
		t.Fatalf("AsSDF3 bounding box = %+v, want [-1,1] on X", bb)
	}
	if s.Evaluate(Vec3{X: 2, Y: 0, Z: 0}) <= 0 {
		t.Fatalf("adapted Evaluate should delegate to the DistFunc")
	}
}
