package sdf

import "math"

// ---------------------------------------------------------------------------
// Boolean and smooth-blend combinators
// ---------------------------------------------------------------------------

// Union is the hard boolean union of two distance fields.
func Union(d1, d2 float64) float64 { return math.Min(d1, d2) }

// Subtract removes d2's solid from d1's.
func Subtract(d1, d2 float64) float64 { return math.Max(d1, -d2) }

// Intersect is the hard boolean intersection.
func Intersect(d1, d2 float64) float64 { return math.Max(d1, d2) }

func mix(a, b, h float64) float64 { return a*(1-h) + b*h }

// SmoothUnion blends d1 and d2 over a region of size k.
func SmoothUnion(d1, d2, k float64) float64 {
	if k <= 0 {
		return Union(d1, d2)
	}
	h := clamp(0.5+0.5*(d2-d1)/k, 0, 1)
	return mix(d2, d1, h) - k*h*(1-h)
}

// SmoothSubtract is the smooth analog of Subtract.
func SmoothSubtract(d1, d2, k float64) float64 {
	if k <= 0 {
		return Subtract(d1, d2)
	}
	h := clamp(0.5-0.5*(d1+d2)/k, 0, 1)
	return mix(d1, -d2, h) + k*h*(1-h)
}

// SmoothIntersect is the smooth analog of Intersect.
func SmoothIntersect(d1, d2, k float64) float64 {
	if k <= 0 {
		return Intersect(d1, d2)
	}
	h := clamp(0.5-0.5*(d2-d1)/k, 0, 1)
	return mix(d2, d1, h) + k*h*(1-h)
}

func smoothMin(a, b, k float64) float64 { return SmoothUnion(a, b, k) }
func smoothMax(a, b, k float64) float64 { return -SmoothUnion(-a, -b, k) }

// Round offsets a distance field outward by r, rounding its corners.
func Round(d, r float64) float64 { return d - r }

// Displace adds a scalar perturbation to a base field (e.g. noise), trading
// an exact distance field for a cheap approximate one.
func Displace(d, x float64) float64 { return d + x }

// Shell carves a hollow surface of thickness t out of a solid field.
func Shell(d, t float64) float64 { return math.Abs(d) - t }

// Xor keeps the region inside exactly one of the two solids.
func Xor(d1, d2 float64) float64 {
	return math.Max(math.Min(d1, d2), -math.Max(d1, d2))
}

// SmoothXor is the smooth analog of Xor, blending over a region of size k.
func SmoothXor(d1, d2, k float64) float64 {
	if k <= 0 {
		return Xor(d1, d2)
	}
	return smoothMax(smoothMin(d1, d2, k), -smoothMax(d1, d2, k), k)
}

// Chamfer cuts a flat 45-degree bevel of size r into a union.
func Chamfer(d1, d2, r float64) float64 {
	return math.Min(math.Min(d1, d2), (d1-r+d2)*0.70710678)
}

// Stairs folds the seam between d1 and d2 into n steps of size r.
func Stairs(d1, d2, r float64, n float64) float64 {
	if n <= 0 {
		return Union(d1, d2)
	}
	s := r / n
	u := d2 - r
	diff := u - d1 + s
	folded := math.Mod(math.Mod(diff, 2*s)+2*s, 2*s) - s
	return math.Min(math.Min(d1, d2), 0.5*(u+d1+math.Abs(folded)))
}
