package sdf

import "math"

// ---------------------------------------------------------------------------
// Domain operators: these transform the query point before a primitive or
// combinator sees it, rather than transforming a distance value.
// ---------------------------------------------------------------------------

// Mirror folds the axis across zero, so a primitive defined for x>=0
// appears reflected into x<0 as well.
func Mirror(x float64) float64 { return math.Abs(x) }

// Repeat tiles an axis into cells of size s, remapping each cell back to
// one centered on the origin.
func Repeat(x, s float64) float64 {
	if s <= 0 {
		return x
	}
	m := math.Mod(math.Mod(x, s)+s, s)
	return m - s/2
}

// Twist rotates the (x,z) plane by an angle proportional to y, by k radians
// per unit of y.
func Twist(x, y, z, k float64) (nx, ny, nz float64) {
	c, s := math.Cos(k*y), math.Sin(k*y)
	return c*x - s*z, y, s*x + c*z
}

// Bend rotates the (x,y) plane by an angle proportional to x, by k radians
// per unit of x.
func Bend(x, y, z, k float64) (nx, ny, nz float64) {
	c, s := math.Cos(k*x), math.Sin(k*x)
	return c*x - s*y, s*x + c*y, z
}

// RotateY rotates the (x,z) plane by theta radians about the Y axis.
func RotateY(x, y, z, theta float64) (nx, ny, nz float64) {
	c, s := math.Cos(theta), math.Sin(theta)
	return x*c - z*s, y, x*s + z*c
}

// Elongate stretches a primitive by splitting space around a central
// rectangular core of half-extents (hx,hy,hz): points within the core see
// distance zero from the split, and the primitive is evaluated against the
// point pulled back to its surface.
func Elongate(x, y, z, hx, hy, hz float64) (qx, qy, qz float64) {
	clampAbs := func(v, h float64) float64 {
		if v > h {
			return h
		}
		if v < -h {
			return -h
		}
		return v
	}
	return x - clampAbs(x, hx), y - clampAbs(y, hy), z - clampAbs(z, hz)
}
