// Package marching extracts a triangle mesh from a sampled scalar field
// using marching cubes, computing gradient-based smooth normals and a
// per-triangle color via a caller-supplied color function.
package marching

import (
	"math"

	"github.com/chazu/scenecraft/pkg/mesh"
)

// DistFunc evaluates a signed distance field at a point.
type DistFunc func(x, y, z float32) float32

// ColorFunc evaluates a color at a point, typically a triangle centroid.
type ColorFunc func(x, y, z float32) mesh.Color

// corner offsets, in the order the tables assume.
var cornerOffset = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// edge endpoints, indexed by cube-edge number 0..11.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// March samples sdfFn over the dense (R+1)^3 grid spanning [bMin,bMax] and
// emits the extracted surface into buf via EmitSmoothTriangle, coloring
// each triangle at its centroid via colorFn.
func March(buf *mesh.Buffer, sdfFn DistFunc, colorFn ColorFunc, bMin, bMax mesh.Vec3, resolution int) {
	if resolution < 1 {
		resolution = 1
	}
	n := resolution + 1
	dx := (bMax[0] - bMin[0]) / float32(resolution)
	dy := (bMax[1] - bMin[1]) / float32(resolution)
	dz := (bMax[2] - bMin[2]) / float32(resolution)

	field := make([]float32, n*n*n)
	idx := func(ix, iy, iz int) int { return iz*n*n + iy*n + ix }

	for iz := 0; iz < n; iz++ {
		z := bMin[2] + float32(iz)*dz
		for iy := 0; iy < n; iy++ {
			y := bMin[1] + float32(iy)*dy
			for ix := 0; ix < n; ix++ {
				x := bMin[0] + float32(ix)*dx
				field[idx(ix, iy, iz)] = sdfFn(x, y, z)
			}
		}
	}

	eps := float32(math.Max(float64(dx), math.Max(float64(dy), float64(dz)))) * 0.5
	gradient := func(x, y, z float32) mesh.Vec3 {
		gx := sdfFn(x+eps, y, z) - sdfFn(x-eps, y, z)
		gy := sdfFn(x, y+eps, z) - sdfFn(x, y-eps, z)
		gz := sdfFn(x, y, z+eps) - sdfFn(x, y, z-eps)
		length := float32(math.Sqrt(float64(gx*gx + gy*gy + gz*gz)))
		if length == 0 {
			return mesh.Vec3{0, 1, 0}
		}
		return mesh.Vec3{gx / length, gy / length, gz / length}
	}

	pointAt := func(ix, iy, iz int) mesh.Vec3 {
		return mesh.Vec3{
			bMin[0] + float32(ix)*dx,
			bMin[1] + float32(iy)*dy,
			bMin[2] + float32(iz)*dz,
		}
	}

	for cz := 0; cz < resolution; cz++ {
		for cy := 0; cy < resolution; cy++ {
			for cx := 0; cx < resolution; cx++ {
				var corner [8]mesh.Vec3
				var value [8]float32
				for c := 0; c < 8; c++ {
					ix := cx + cornerOffset[c][0]
					iy := cy + cornerOffset[c][1]
					iz := cz + cornerOffset[c][2]
					corner[c] = pointAt(ix, iy, iz)
					value[c] = field[idx(ix, iy, iz)]
				}

				cubeIndex := 0
				for c := 0; c < 8; c++ {
					if value[c] < 0 {
						cubeIndex |= 1 << uint(c)
					}
				}
				if edgeTable[cubeIndex] == 0 {
					continue
				}

				var edgeVertex [12]mesh.Vec3
				var edgeNormal [12]mesh.Vec3
				var edgeSet [12]bool
				for e := 0; e < 12; e++ {
					if edgeTable[cubeIndex]&(1<<uint(e)) == 0 {
						continue
					}
					a, b := edgeCorners[e][0], edgeCorners[e][1]
					v0, v1 := value[a], value[b]
					var t float32
					if v0 == v1 {
						t = 0.5
					} else {
						t = v0 / (v0 - v1)
					}
					p := mesh.Vec3{
						corner[a][0] + t*(corner[b][0]-corner[a][0]),
						corner[a][1] + t*(corner[b][1]-corner[a][1]),
						corner[a][2] + t*(corner[b][2]-corner[a][2]),
					}
					edgeVertex[e] = p
					edgeNormal[e] = gradient(p[0], p[1], p[2])
					edgeSet[e] = true
				}

				tris := triTable[cubeIndex]
				for i := 0; i+2 < len(tris); i += 3 {
					e0, e1, e2 := int(tris[i]), int(tris[i+1]), int(tris[i+2])
					if !edgeSet[e0] || !edgeSet[e1] || !edgeSet[e2] {
						continue
					}
					p1, p2, p3 := edgeVertex[e0], edgeVertex[e1], edgeVertex[e2]
					n1, n2, n3 := edgeNormal[e0], edgeNormal[e1], edgeNormal[e2]
					centroidX := (p1[0] + p2[0] + p3[0]) / 3
					centroidY := (p1[1] + p2[1] + p3[1]) / 3
					centroidZ := (p1[2] + p2[2] + p3[2]) / 3
					color := colorFn(centroidX, centroidY, centroidZ)
					buf.EmitSmoothTriangle(p1, n1, p2, n2, p3, n3, color)
				}
			}
		}
	}
}
