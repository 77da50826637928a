// Package heightfield emits a regular quad grid over a rectangle in the XZ
// plane, with per-vertex height and per-cell color supplied by callback
// functions.
package heightfield

import "github.com/chazu/scenecraft/pkg/mesh"

// HeightFunc returns the Y coordinate at a given (x,z).
type HeightFunc func(x, z float32) float32

// ColorFunc returns the color for a cell, evaluated at its centroid.
type ColorFunc func(x, z float32) mesh.Color

// Grid emits one quad per cell over the rectangle (x0,z0)-(x1,z1), sampling
// heightFn at (resX+1)*(resZ+1) grid vertices and colorFn once per cell at
// its centroid. Winding faces +Y.
func Grid(buf *mesh.Buffer, x0, z0, x1, z1 float32, resX, resZ int, heightFn HeightFunc, colorFn ColorFunc) {
	if resX < 1 || resZ < 1 {
		return
	}
	nx, nz := resX+1, resZ+1
	dx := (x1 - x0) / float32(resX)
	dz := (z1 - z0) / float32(resZ)

	positions := make([]mesh.Vec3, nx*nz)
	idx := func(ix, iz int) int { return iz*nx + ix }
	for iz := 0; iz < nz; iz++ {
		z := z0 + float32(iz)*dz
		for ix := 0; ix < nx; ix++ {
			x := x0 + float32(ix)*dx
			positions[idx(ix, iz)] = mesh.Vec3{x, heightFn(x, z), z}
		}
	}

	for cz := 0; cz < resZ; cz++ {
		for cx := 0; cx < resX; cx++ {
			p00 := positions[idx(cx, cz)]
			p10 := positions[idx(cx+1, cz)]
			p11 := positions[idx(cx+1, cz+1)]
			p01 := positions[idx(cx, cz+1)]

			centroidX := x0 + (float32(cx)+0.5)*dx
			centroidZ := z0 + (float32(cz)+0.5)*dz
			color := colorFn(centroidX, centroidZ)

			buf.EmitQuad(p00, p01, p11, p10, color)
		}
	}
}
