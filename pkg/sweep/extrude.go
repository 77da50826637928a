package sweep

import (
	"math"

	"github.com/chazu/scenecraft/pkg/mesh"
)

// ProfileUV is one (u,v) sample of a 2D cross-section profile.
type ProfileUV struct {
	U, V float64
}

type vec3 struct{ x, y, z float64 }

func sub(a, b vec3) vec3    { return vec3{a.x - b.x, a.y - b.y, a.z - b.z} }
func add(a, b vec3) vec3    { return vec3{a.x + b.x, a.y + b.y, a.z + b.z} }
func scale(a vec3, s float64) vec3 {
	return vec3{a.x * s, a.y * s, a.z * s}
}
func dot(a, b vec3) float64 { return a.x*b.x + a.y*b.y + a.z*b.z }
func cross(a, b vec3) vec3 {
	return vec3{a.y*b.z - a.z*b.y, a.z*b.x - a.x*b.z, a.x*b.y - a.y*b.x}
}
func length(a vec3) float64 { return math.Sqrt(dot(a, a)) }
func normalize(a vec3) vec3 {
	l := length(a)
	if l == 0 {
		return a
	}
	return scale(a, 1/l)
}

// reflect reflects v through the plane with normal n passing through the
// origin of v's frame, per the double-reflection method: v - 2*(v.n/n.n)*n.
func reflect(v, n vec3) vec3 {
	nn := dot(n, n)
	if nn == 0 {
		return v
	}
	return sub(v, scale(n, 2*dot(v, n)/nn))
}

// ExtrudePath sweeps profile along path using rotation-minimizing frames
// (double-reflection method), emitting one ring of quads per path segment.
// Degenerate (< 2 points) inputs emit nothing.
func ExtrudePath(buf *mesh.Buffer, profile []ProfileUV, path []mesh.Vec3, closed bool, color mesh.Color) {
	if len(profile) < 2 || len(path) < 2 {
		return
	}
	n := len(path)
	pts := make([]vec3, n)
	for i, p := range path {
		pts[i] = vec3{float64(p[0]), float64(p[1]), float64(p[2])}
	}

	tangents := make([]vec3, n)
	for i := 0; i < n; i++ {
		var raw vec3
		switch {
		case i == 0:
			raw = sub(pts[1], pts[0])
		case i == n-1:
			raw = sub(pts[n-1], pts[n-2])
		default:
			raw = sub(pts[i+1], pts[i-1])
		}
		if length(raw) == 0 {
			if i > 0 {
				tangents[i] = tangents[i-1]
			} else {
				tangents[i] = vec3{0, 0, 1}
			}
			continue
		}
		tangents[i] = normalize(raw)
	}

	normals := make([]vec3, n)
	binormals := make([]vec3, n)

	t0 := tangents[0]
	a := vec3{0, 1, 0}
	if math.Abs(t0.x) < 0.9 {
		a = vec3{1, 0, 0}
	}
	n0 := normalize(cross(t0, a))
	b0 := cross(t0, n0)
	normals[0] = n0
	binormals[0] = b0

	for k := 1; k < n; k++ {
		v1 := sub(pts[k], pts[k-1])
		if length(v1) == 0 {
			normals[k] = normals[k-1]
			binormals[k] = binormals[k-1]
			continue
		}
		rL := reflect(normals[k-1], v1)
		tL := reflect(tangents[k-1], v1)

		v2 := sub(tangents[k], tL)
		var nK vec3
		if length(v2) == 0 {
			nK = rL
		} else {
			nK = reflect(rL, v2)
		}
		nK = normalize(nK)
		bK := cross(tangents[k], nK)
		normals[k] = nK
		binormals[k] = bK
	}

	ringAt := func(k int) []mesh.Vec3 {
		ring := make([]mesh.Vec3, len(profile))
		for j, uv := range profile {
			p := add(pts[k], add(scale(normals[k], uv.U), scale(binormals[k], uv.V)))
			ring[j] = mesh.Vec3{float32(p.x), float32(p.y), float32(p.z)}
		}
		return ring
	}

	rings := make([][]mesh.Vec3, n)
	for k := 0; k < n; k++ {
		rings[k] = ringAt(k)
	}

	P := len(profile)
	for k := 0; k+1 < n; k++ {
		ringA, ringB := rings[k], rings[k+1]
		for j := 0; j+1 < P; j++ {
			buf.EmitQuad(ringA[j], ringA[j+1], ringB[j+1], ringB[j], color)
		}
		if closed {
			buf.EmitQuad(ringA[P-1], ringA[0], ringB[0], ringB[P-1], color)
		}
	}
}
