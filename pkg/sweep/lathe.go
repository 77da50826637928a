// Package sweep implements surface-of-revolution and rotation-minimizing
// frame path extrusion, emitting flat-shaded quads (and pole triangles)
// into a mesh.Buffer.
package sweep

import (
	"math"

	"github.com/chazu/scenecraft/pkg/mesh"
)

// ProfilePoint is one (radius, height-offset) sample of a lathe profile,
// ordered bottom to top.
type ProfilePoint struct {
	R, Y float64
}

// Lathe revolves profile around the Y axis through center, emitting S
// angular segments per adjacent profile pair. thetaOffset rotates the seam;
// pass 0 for the default seam at angle 0.
func Lathe(buf *mesh.Buffer, center mesh.Vec3, profile []ProfilePoint, segments int, thetaOffset float64, color mesh.Color) {
	if segments < 3 || len(profile) < 2 {
		return
	}
	cx, cy, cz := float64(center[0]), float64(center[1]), float64(center[2])

	ringPoint := func(r, y, theta float64) mesh.Vec3 {
		return mesh.Vec3{
			float32(cx + r*math.Cos(theta)),
			float32(cy + y),
			float32(cz + r*math.Sin(theta)),
		}
	}

	for i := 0; i+1 < len(profile); i++ {
		r0, y0 := profile[i].R, profile[i].Y
		r1, y1 := profile[i+1].R, profile[i+1].Y

		for s := 0; s < segments; s++ {
			theta0 := thetaOffset + 2*math.Pi*float64(s)/float64(segments)
			theta1 := thetaOffset + 2*math.Pi*float64(s+1)/float64(segments)

			switch {
			case r0 == 0 && r1 == 0:
				continue
			case r0 == 0:
				pole := ringPoint(0, y0, theta0)
				a := ringPoint(r1, y1, theta0)
				b := ringPoint(r1, y1, theta1)
				buf.EmitTriangle(pole, a, b, color)
			case r1 == 0:
				pole := ringPoint(0, y1, theta0)
				a := ringPoint(r0, y0, theta0)
				b := ringPoint(r0, y0, theta1)
				buf.EmitTriangle(a, b, pole, color)
			default:
				p00 := ringPoint(r0, y0, theta0)
				p01 := ringPoint(r0, y0, theta1)
				p10 := ringPoint(r1, y1, theta0)
				p11 := ringPoint(r1, y1, theta1)
				buf.EmitQuad(p00, p01, p11, p10, color)
			}
		}
	}
}
