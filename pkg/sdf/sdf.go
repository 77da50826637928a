// Package sdf implements the signed-distance-function primitive library and
// its combinators: negative inside the surface, positive outside, zero on
// the surface. Every primitive takes the query point as its first
// arguments, centered at the origin: callers subtract the desired center
// before calling in.
//
// Primitives are plain float64 functions so the sandbox can bind them
// directly, but each also has an sdfx-compatible adapter (AsSDF3) so the
// same vocabulary composes with the wider sdfx ecosystem.
package sdf

import (
	"math"

	sdfx "github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec3 is the point type shared with the sdfx ecosystem.
type Vec3 = v3.Vec

// DistFunc is a signed distance function of a single point.
type DistFunc func(p Vec3) float64

// sdf3Adapter satisfies sdfx's sdf.SDF3 interface for a DistFunc, reporting
// a caller-supplied bounding box rather than trying to infer one generically.
type sdf3Adapter struct {
	f        DistFunc
	min, max Vec3
}

func (a sdf3Adapter) Evaluate(p Vec3) float64 { return a.f(p) }

func (a sdf3Adapter) BoundingBox() sdfx.Box3 {
	return sdfx.Box3{Min: a.min, Max: a.max}
}

// AsSDF3 adapts f to sdfx's SDF3 interface, reporting [min,max] as its
// bounding box.
func (f DistFunc) AsSDF3(min, max Vec3) sdfx.SDF3 {
	return sdf3Adapter{f: f, min: min, max: max}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// Sphere: ‖p‖ − r.
func Sphere(x, y, z, r float64) float64 {
	return math.Sqrt(x*x+y*y+z*z) - r
}

// Box is the exact distance to an axis-aligned box of half-extents
// (sx,sy,sz) centered at the origin.
func Box(x, y, z, sx, sy, sz float64) float64 {
	qx := math.Abs(x) - sx
	qy := math.Abs(y) - sy
	qz := math.Abs(z) - sz
	outsideLen := math.Sqrt(math.Max(qx, 0)*math.Max(qx, 0) + math.Max(qy, 0)*math.Max(qy, 0) + math.Max(qz, 0)*math.Max(qz, 0))
	insideDist := math.Min(math.Max(qx, math.Max(qy, qz)), 0)
	return outsideLen + insideDist
}

// Capsule is the distance to the segment A→B, minus r.
func Capsule(x, y, z, ax, ay, az, bx, by, bz, r float64) float64 {
	pax, pay, paz := x-ax, y-ay, z-az
	bax, bay, baz := bx-ax, by-ay, bz-az
	dotPaBa := pax*bax + pay*bay + paz*baz
	dotBaBa := bax*bax + bay*bay + baz*baz
	h := 0.0
	if dotBaBa > 0 {
		h = clamp(dotPaBa/dotBaBa, 0, 1)
	}
	dx := pax - bax*h
	dy := pay - bay*h
	dz := paz - baz*h
	return math.Sqrt(dx*dx+dy*dy+dz*dz) - r
}

// Torus is the standard XZ-plane torus with major radius R, tube radius r.
func Torus(x, y, z, R, r float64) float64 {
	qx := math.Hypot(x, z) - R
	qy := y
	return math.Hypot(qx, qy) - r
}

// Cone has its tip at the origin, opening downward along -Y to base radius
// r at y=-h.
func Cone(x, y, z, r, h float64) float64 {
	qx, qy := r, -h
	wx, wy := math.Hypot(x, z), y

	dotWQ := wx*qx + wy*qy
	dotQQ := qx*qx + qy*qy
	t := 0.0
	if dotQQ > 0 {
		t = clamp(dotWQ/dotQQ, 0, 1)
	}
	ax, ay := wx-qx*t, wy-qy*t

	tb := 0.0
	if qx != 0 {
		tb = clamp(wx/qx, 0, 1)
	}
	bx, by := wx-qx*tb, wy-qy*1

	k := sign(qy)
	d := math.Min(ax*ax+ay*ay, bx*bx+by*by)
	s := math.Max(k*(wx*qy-wy*qx), k*(wy-qy))
	return math.Sqrt(d) * sign(s)
}

// Plane is the half-space p·n − d.
func Plane(x, y, z, nx, ny, nz, d float64) float64 {
	return x*nx + y*ny + z*nz - d
}

// Cylinder is an infinite-axis-Y cylinder capped at ±half_h.
func Cylinder(x, y, z, r, halfH float64) float64 {
	dx := math.Hypot(x, z) - r
	dy := math.Abs(y) - halfH
	outsideLen := math.Sqrt(math.Max(dx, 0)*math.Max(dx, 0) + math.Max(dy, 0)*math.Max(dy, 0))
	insideDist := math.Min(math.Max(dx, dy), 0)
	return outsideLen + insideDist
}

// Ellipsoid is a sign-correct approximation for radii (rx,ry,rz).
func Ellipsoid(x, y, z, rx, ry, rz float64) float64 {
	px, py, pz := x/rx, y/ry, z/rz
	k0 := math.Sqrt(px*px + py*py + pz*pz)
	qx, qy, qz := x/(rx*rx), y/(ry*ry), z/(rz*rz)
	k1 := math.Sqrt(qx*qx + qy*qy + qz*qz)
	if k1 == 0 {
		return -math.Min(rx, math.Min(ry, rz))
	}
	return k0 * (k0 - 1) / k1
}

// Octahedron is the exact distance to a regular octahedron of "radius" s.
func Octahedron(x, y, z, s float64) float64 {
	px, py, pz := math.Abs(x), math.Abs(y), math.Abs(z)
	m := px + py + pz - s

	var qx, qy, qz float64
	switch {
	case 3*px < m:
		qx, qy, qz = px, py, pz
	case 3*py < m:
		qx, qy, qz = py, pz, px
	case 3*pz < m:
		qx, qy, qz = pz, px, py
	default:
		return m * 0.57735027
	}

	k := clamp(0.5*(qz-qy+s), 0, s)
	dx, dy, dz := qx, qy-s+k, qz-k
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// HexPrism is an approximate distance to a hexagonal prism with half-height
// h along Z and hex radius r.
func HexPrism(x, y, z, h, r float64) float64 {
	const kx, ky, kz = -0.8660254, 0.5, 0.57735
	px, py, pz := math.Abs(x), math.Abs(y), math.Abs(z)

	proj := kx*px + ky*py
	if proj < 0 {
		px -= 2 * proj * kx
		py -= 2 * proj * ky
	}

	clampedX := clamp(px, -kz*r, kz*r)
	dax := math.Hypot(px-clampedX, py-r) * sign(py-r)
	daz := pz - h

	return math.Min(math.Max(dax, daz), 0) + math.Sqrt(math.Max(dax, 0)*math.Max(dax, 0)+math.Max(daz, 0)*math.Max(daz, 0))
}

// TaperedCylinder has radius r1 at y=-h and r2 at y=+h (half-height h).
func TaperedCylinder(x, y, z, r1, r2, h float64) float64 {
	qx := math.Hypot(x, z)
	qy := y

	k1x, k1y := r2, h
	k2x, k2y := r2-r1, 2*h

	rCap := r2
	if qy < 0 {
		rCap = r1
	}
	cax := qx - math.Min(qx, rCap)
	cay := math.Abs(qy) - h

	pax, pay := k1x-qx, k1y-qy
	dotPK2 := pax*k2x + pay*k2y
	dotK2K2 := k2x*k2x + k2y*k2y
	t := 0.0
	if dotK2K2 > 0 {
		t = clamp(dotPK2/dotK2K2, 0, 1)
	}
	cbx := qx - k1x + k2x*t
	cby := qy - k1y + k2y*t

	s := 1.0
	if cbx < 0 && cay < 0 {
		s = -1.0
	}
	return s * math.Sqrt(math.Min(cax*cax+cay*cay, cbx*cbx+cby*cby))
}
