package sandbox

import (
	"fmt"
	"math"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/scenecraft/pkg/heightfield"
	"github.com/chazu/scenecraft/pkg/marching"
	"github.com/chazu/scenecraft/pkg/mesh"
	"github.com/chazu/scenecraft/pkg/noise"
	"github.com/chazu/scenecraft/pkg/sceneconfig"
	"github.com/chazu/scenecraft/pkg/sdf"
	"github.com/chazu/scenecraft/pkg/sweep"
)

// regFloatFn registers a fixed-arity, all-numeric-argument builtin that
// returns a single float.
func regFloatFn(env *zygo.Zlisp, name string, arity int, f func(a []float64) float64) {
	env.AddFunction(name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != arity {
			return zygo.SexpNull, fmt.Errorf("%s: expected %d args, got %d", name, arity, len(args))
		}
		a, err := floats(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		return &zygo.SexpFloat{Val: f(a)}, nil
	})
}

// regVec3Fn registers a fixed-arity, all-numeric-argument builtin that
// returns a 3-element array (used by the domain operators, which return a
// displaced query point rather than a distance).
func regVec3Fn(env *zygo.Zlisp, name string, arity int, f func(a []float64) (float64, float64, float64)) {
	env.AddFunction(name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != arity {
			return zygo.SexpNull, fmt.Errorf("%s: expected %d args, got %d", name, arity, len(args))
		}
		a, err := floats(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		x, y, z := f(a)
		return &zygo.SexpArray{Val: []zygo.Sexp{
			&zygo.SexpFloat{Val: x},
			&zygo.SexpFloat{Val: y},
			&zygo.SexpFloat{Val: z},
		}}, nil
	})
}

func vecArg(s zygo.Sexp) (mesh.Vec3, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return mesh.Vec3{}, err
	}
	return toVec3(items)
}

// registerBuiltins binds every generation-source-visible name into env:
// noise/RNG (C1), SDF primitives and operators (C2), mesh emission (C3),
// sdf_mesh (C4), sweep operations (C5), heightfield grids (C6), math
// helpers, and the sphere/box/cylinder/torus convenience wrappers. The
// SCENE_* constants are not bound here; run defines them in a prologue
// (see scenePrologue).
// Every function follows the teacher's registerBuiltins shape: an
// env.AddFunction closure over shared Go state (here buf and rng) rather
// than the language having any notion of shared mutable globals of its
// own.
func registerBuiltins(env *zygo.Zlisp, buf *mesh.Buffer, bounds sceneconfig.SceneBounds, rng *noise.RNG) {
	registerNoiseBuiltins(env, rng)
	registerSDFBuiltins(env)
	registerEmissionBuiltins(env, buf)
	registerMeshGenBuiltins(env, buf)
	registerMathBuiltins(env)
}

func registerNoiseBuiltins(env *zygo.Zlisp, rng *noise.RNG) {
	env.AddFunction("rng_next", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpInt{Val: int64(rng.Next())}, nil
	})
	env.AddFunction("rng_float", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpFloat{Val: rng.Float64()}, nil
	})

	env.AddFunction("noise2d", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("noise2d: expected (seed x y)")
		}
		seed, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, err
		}
		x, err := toFloat32(args[1])
		if err != nil {
			return zygo.SexpNull, err
		}
		y, err := toFloat32(args[2])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpFloat{Val: float64(noise.Noise2D(uint32(seed), x, y))}, nil
	})

	env.AddFunction("noise3d", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("noise3d: expected (seed x y z)")
		}
		seed, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, err
		}
		f, err := floats(args[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &zygo.SexpFloat{Val: float64(noise.Noise3D(uint32(seed), float32(f[0]), float32(f[1]), float32(f[2])))}, nil
	})

	env.AddFunction("fbm2d", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return fbmCall(args, false)
	})
	env.AddFunction("fbm3d", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return fbmCall(args, true)
	})
}

// fbmCall implements both fbm2d and fbm3d: (fbm2d seed x y [octaves gain
// lacunarity]) or (fbm3d seed x y z [octaves gain lacunarity]).
func fbmCall(args []zygo.Sexp, is3d bool) (zygo.Sexp, error) {
	minArgs := 3
	if is3d {
		minArgs = 4
	}
	if len(args) < minArgs {
		return zygo.SexpNull, fmt.Errorf("fbm: expected at least %d args", minArgs)
	}
	seed, err := toInt(args[0])
	if err != nil {
		return zygo.SexpNull, err
	}
	f, err := floats(args[1:])
	if err != nil {
		return zygo.SexpNull, err
	}
	var params noise.FBMParams
	rest := f[minArgs-1:]
	if len(rest) > 0 {
		params.Octaves = int(rest[0])
	}
	if len(rest) > 1 {
		params.Gain = float32(rest[1])
	}
	if len(rest) > 2 {
		params.Lacunarity = float32(rest[2])
	}
	if is3d {
		v := noise.FBM3D(uint32(seed), float32(f[0]), float32(f[1]), float32(f[2]), params)
		return &zygo.SexpFloat{Val: float64(v)}, nil
	}
	v := noise.FBM2D(uint32(seed), float32(f[0]), float32(f[1]), params)
	return &zygo.SexpFloat{Val: float64(v)}, nil
}

func registerSDFBuiltins(env *zygo.Zlisp) {
	regFloatFn(env, "sd_sphere", 4, func(a []float64) float64 { return sdf.Sphere(a[0], a[1], a[2], a[3]) })
	regFloatFn(env, "sd_box", 6, func(a []float64) float64 { return sdf.Box(a[0], a[1], a[2], a[3], a[4], a[5]) })
	regFloatFn(env, "sd_capsule", 10, func(a []float64) float64 {
		return sdf.Capsule(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8], a[9])
	})
	regFloatFn(env, "sd_torus", 5, func(a []float64) float64 { return sdf.Torus(a[0], a[1], a[2], a[3], a[4]) })
	regFloatFn(env, "sd_cone", 5, func(a []float64) float64 { return sdf.Cone(a[0], a[1], a[2], a[3], a[4]) })
	regFloatFn(env, "sd_plane", 7, func(a []float64) float64 {
		return sdf.Plane(a[0], a[1], a[2], a[3], a[4], a[5], a[6])
	})
	regFloatFn(env, "sd_cylinder", 5, func(a []float64) float64 { return sdf.Cylinder(a[0], a[1], a[2], a[3], a[4]) })
	regFloatFn(env, "sd_ellipsoid", 6, func(a []float64) float64 {
		return sdf.Ellipsoid(a[0], a[1], a[2], a[3], a[4], a[5])
	})
	regFloatFn(env, "sd_octahedron", 4, func(a []float64) float64 { return sdf.Octahedron(a[0], a[1], a[2], a[3]) })
	regFloatFn(env, "sd_hexprism", 5, func(a []float64) float64 { return sdf.HexPrism(a[0], a[1], a[2], a[3], a[4]) })
	regFloatFn(env, "sd_tapered_cylinder", 6, func(a []float64) float64 {
		return sdf.TaperedCylinder(a[0], a[1], a[2], a[3], a[4], a[5])
	})

	regFloatFn(env, "op_union", 2, func(a []float64) float64 { return sdf.Union(a[0], a[1]) })
	regFloatFn(env, "op_subtract", 2, func(a []float64) float64 { return sdf.Subtract(a[0], a[1]) })
	regFloatFn(env, "op_intersect", 2, func(a []float64) float64 { return sdf.Intersect(a[0], a[1]) })
	regFloatFn(env, "op_smooth_union", 3, func(a []float64) float64 { return sdf.SmoothUnion(a[0], a[1], a[2]) })
	regFloatFn(env, "op_smooth_subtract", 3, func(a []float64) float64 { return sdf.SmoothSubtract(a[0], a[1], a[2]) })
	regFloatFn(env, "op_smooth_intersect", 3, func(a []float64) float64 { return sdf.SmoothIntersect(a[0], a[1], a[2]) })
	regFloatFn(env, "op_round", 2, func(a []float64) float64 { return sdf.Round(a[0], a[1]) })
	regFloatFn(env, "op_displace", 2, func(a []float64) float64 { return sdf.Displace(a[0], a[1]) })
	regFloatFn(env, "op_shell", 2, func(a []float64) float64 { return sdf.Shell(a[0], a[1]) })
	regFloatFn(env, "op_xor", 2, func(a []float64) float64 { return sdf.Xor(a[0], a[1]) })
	regFloatFn(env, "op_smooth_xor", 3, func(a []float64) float64 { return sdf.SmoothXor(a[0], a[1], a[2]) })
	regFloatFn(env, "op_chamfer", 3, func(a []float64) float64 { return sdf.Chamfer(a[0], a[1], a[2]) })
	regFloatFn(env, "op_stairs", 4, func(a []float64) float64 { return sdf.Stairs(a[0], a[1], a[2], a[3]) })

	regFloatFn(env, "dom_mirror", 1, func(a []float64) float64 { return sdf.Mirror(a[0]) })
	regFloatFn(env, "dom_repeat", 2, func(a []float64) float64 { return sdf.Repeat(a[0], a[1]) })
	regVec3Fn(env, "dom_twist", 4, func(a []float64) (float64, float64, float64) { return sdf.Twist(a[0], a[1], a[2], a[3]) })
	regVec3Fn(env, "dom_bend", 4, func(a []float64) (float64, float64, float64) { return sdf.Bend(a[0], a[1], a[2], a[3]) })
	regVec3Fn(env, "dom_rotate_y", 4, func(a []float64) (float64, float64, float64) { return sdf.RotateY(a[0], a[1], a[2], a[3]) })
	regVec3Fn(env, "dom_elongate", 6, func(a []float64) (float64, float64, float64) {
		return sdf.Elongate(a[0], a[1], a[2], a[3], a[4], a[5])
	})
}

func registerEmissionBuiltins(env *zygo.Zlisp, buf *mesh.Buffer) {
	env.AddFunction("emit_triangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("emit_triangle: expected (p1 p2 p3 color)")
		}
		p1, err := vecArg(args[0])
		if err != nil {
			return zygo.SexpNull, err
		}
		p2, err := vecArg(args[1])
		if err != nil {
			return zygo.SexpNull, err
		}
		p3, err := vecArg(args[2])
		if err != nil {
			return zygo.SexpNull, err
		}
		c, err := vecArg(args[3])
		if err != nil {
			return zygo.SexpNull, err
		}
		buf.EmitTriangle(p1, p2, p3, mesh.Color(c))
		return zygo.SexpNull, nil
	})

	env.AddFunction("emit_quad", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 5 {
			return zygo.SexpNull, fmt.Errorf("emit_quad: expected (p1 p2 p3 p4 color)")
		}
		pts := make([]mesh.Vec3, 4)
		for i := 0; i < 4; i++ {
			p, err := vecArg(args[i])
			if err != nil {
				return zygo.SexpNull, err
			}
			pts[i] = p
		}
		c, err := vecArg(args[4])
		if err != nil {
			return zygo.SexpNull, err
		}
		buf.EmitQuad(pts[0], pts[1], pts[2], pts[3], mesh.Color(c))
		return zygo.SexpNull, nil
	})

	env.AddFunction("emit_smooth_triangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 7 {
			return zygo.SexpNull, fmt.Errorf("emit_smooth_triangle: expected (p1 n1 p2 n2 p3 n3 color)")
		}
		v := make([]mesh.Vec3, 7)
		for i := 0; i < 7; i++ {
			p, err := vecArg(args[i])
			if err != nil {
				return zygo.SexpNull, err
			}
			v[i] = p
		}
		buf.EmitSmoothTriangle(v[0], v[1], v[2], v[3], v[4], v[5], mesh.Color(v[6]))
		return zygo.SexpNull, nil
	})

	env.AddFunction("set_material", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw := parseArgs(args)
		var patch mesh.MaterialHints
		if v, ok := kw.kw["roughness"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, err
			}
			patch.Roughness = &f
		}
		if v, ok := kw.kw["metalness"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, err
			}
			patch.Metalness = &f
		}
		if v, ok := kw.kw["opacity"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, err
			}
			patch.Opacity = &f
		}
		buf.SetMaterial(patch)
		return zygo.SexpNull, nil
	})
}

// registerMeshGenBuiltins wires sdf_mesh, lathe, extrude_path, grid, and
// the sphere/box/cylinder/torus convenience wrappers. sdf_fn/color_fn/
// height_fn arguments are zygomys function values (typically lambdas the
// generation source composes from the op_*/sd_*/dom_* builtins above);
// callFloatFn/callColorFn/callHeightFn invoke them once per sample and
// panic with sandboxPanic on any evaluation error, which run recovers.
func registerMeshGenBuiltins(env *zygo.Zlisp, buf *mesh.Buffer) {
	env.AddFunction("sdf_mesh", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 5 {
			return zygo.SexpNull, fmt.Errorf("sdf_mesh: expected (sdf_fn color_fn bmin bmax resolution)")
		}
		sdfFn, colorFn := args[0], args[1]
		bMin, err := vecArg(args[2])
		if err != nil {
			return zygo.SexpNull, err
		}
		bMax, err := vecArg(args[3])
		if err != nil {
			return zygo.SexpNull, err
		}
		res, err := toInt(args[4])
		if err != nil {
			return zygo.SexpNull, err
		}
		marching.March(buf,
			func(x, y, z float32) float32 { return callFloatFn(env, sdfFn, x, y, z) },
			func(x, y, z float32) mesh.Color { return callColorFn(env, colorFn, x, y, z) },
			bMin, bMax, res)
		return zygo.SexpNull, nil
	})

	env.AddFunction("lathe", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 5 {
			return zygo.SexpNull, fmt.Errorf("lathe: expected (center profile segments theta_offset color)")
		}
		center, err := vecArg(args[0])
		if err != nil {
			return zygo.SexpNull, err
		}
		profileItems, err := sexpListToSlice(args[1])
		if err != nil {
			return zygo.SexpNull, err
		}
		profile := make([]sweep.ProfilePoint, len(profileItems))
		for i, item := range profileItems {
			pair, err := sexpListToSlice(item)
			if err != nil || len(pair) != 2 {
				return zygo.SexpNull, fmt.Errorf("lathe: profile point %d must be (r y)", i)
			}
			r, err := toFloat64(pair[0])
			if err != nil {
				return zygo.SexpNull, err
			}
			y, err := toFloat64(pair[1])
			if err != nil {
				return zygo.SexpNull, err
			}
			profile[i] = sweep.ProfilePoint{R: r, Y: y}
		}
		segments, err := toInt(args[2])
		if err != nil {
			return zygo.SexpNull, err
		}
		theta, err := toFloat64(args[3])
		if err != nil {
			return zygo.SexpNull, err
		}
		color, err := vecArg(args[4])
		if err != nil {
			return zygo.SexpNull, err
		}
		sweep.Lathe(buf, center, profile, segments, theta, mesh.Color(color))
		return zygo.SexpNull, nil
	})

	env.AddFunction("extrude_path", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("extrude_path: expected (profile path closed color)")
		}
		profileItems, err := sexpListToSlice(args[0])
		if err != nil {
			return zygo.SexpNull, err
		}
		profile := make([]sweep.ProfileUV, len(profileItems))
		for i, item := range profileItems {
			pair, err := sexpListToSlice(item)
			if err != nil || len(pair) != 2 {
				return zygo.SexpNull, fmt.Errorf("extrude_path: profile point %d must be (u v)", i)
			}
			u, err := toFloat64(pair[0])
			if err != nil {
				return zygo.SexpNull, err
			}
			v, err := toFloat64(pair[1])
			if err != nil {
				return zygo.SexpNull, err
			}
			profile[i] = sweep.ProfileUV{U: u, V: v}
		}
		pathItems, err := sexpListToSlice(args[1])
		if err != nil {
			return zygo.SexpNull, err
		}
		path := make([]mesh.Vec3, len(pathItems))
		for i, item := range pathItems {
			p, err := vecArg(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("extrude_path: path point %d: %w", i, err)
			}
			path[i] = p
		}
		closed := toBool(args[2])
		color, err := vecArg(args[3])
		if err != nil {
			return zygo.SexpNull, err
		}
		sweep.ExtrudePath(buf, profile, path, closed, mesh.Color(color))
		return zygo.SexpNull, nil
	})

	env.AddFunction("grid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 8 {
			return zygo.SexpNull, fmt.Errorf("grid: expected (x0 z0 x1 z1 res_x res_z height_fn color_fn)")
		}
		f, err := floats(args[0:4])
		if err != nil {
			return zygo.SexpNull, err
		}
		resX, err := toInt(args[4])
		if err != nil {
			return zygo.SexpNull, err
		}
		resZ, err := toInt(args[5])
		if err != nil {
			return zygo.SexpNull, err
		}
		heightFn, colorFn := args[6], args[7]
		heightfield.Grid(buf, float32(f[0]), float32(f[1]), float32(f[2]), float32(f[3]), resX, resZ,
			func(x, z float32) float32 { return callHeightFn(env, heightFn, x, z) },
			func(x, z float32) mesh.Color { return callColorFn2(env, colorFn, x, z) })
		return zygo.SexpNull, nil
	})

	registerConvenienceWrappers(env, buf)
}

// registerConvenienceWrappers computes bounds padded 30% past the
// primitive's extent and delegates to marching.March directly with a
// Go-composed distance/color pair, so these do not need to call back into
// generation-source lambdas at all.
func registerConvenienceWrappers(env *zygo.Zlisp, buf *mesh.Buffer) {
	solidColor := func(c mesh.Color) marching.ColorFunc {
		return func(x, y, z float32) mesh.Color { return c }
	}
	padded := func(extent float64) float32 {
		return float32(extent * 1.3)
	}

	env.AddFunction("sphere_mesh", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 8 {
			return zygo.SexpNull, fmt.Errorf("sphere_mesh: expected (cx cy cz radius r g b resolution)")
		}
		f, err := floats(args[0:7])
		if err != nil {
			return zygo.SexpNull, err
		}
		res, err := toInt(args[7])
		if err != nil {
			return zygo.SexpNull, err
		}
		cx, cy, cz, r := f[0], f[1], f[2], f[3]
		color := mesh.Color{float32(f[4]), float32(f[5]), float32(f[6])}
		bMin, bMax := paddedBoxAround(cx, cy, cz, padded(r))
		marching.March(buf, func(x, y, z float32) float32 {
			return float32(sdf.Sphere(float64(x)-cx, float64(y)-cy, float64(z)-cz, r))
		}, solidColor(color), bMin, bMax, res)
		return zygo.SexpNull, nil
	})

	env.AddFunction("box_mesh", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 10 {
			return zygo.SexpNull, fmt.Errorf("box_mesh: expected (cx cy cz sx sy sz r g b resolution)")
		}
		f, err := floats(args[0:9])
		if err != nil {
			return zygo.SexpNull, err
		}
		res, err := toInt(args[9])
		if err != nil {
			return zygo.SexpNull, err
		}
		cx, cy, cz := f[0], f[1], f[2]
		sx, sy, sz := f[3], f[4], f[5]
		color := mesh.Color{float32(f[6]), float32(f[7]), float32(f[8])}
		maxExtent := math.Max(sx, math.Max(sy, sz))
		bMin, bMax := paddedBoxAround(cx, cy, cz, padded(maxExtent))
		marching.March(buf, func(x, y, z float32) float32 {
			return float32(sdf.Box(float64(x)-cx, float64(y)-cy, float64(z)-cz, sx, sy, sz))
		}, solidColor(color), bMin, bMax, res)
		return zygo.SexpNull, nil
	})

	env.AddFunction("cylinder_mesh", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 9 {
			return zygo.SexpNull, fmt.Errorf("cylinder_mesh: expected (cx cy cz radius half_height r g b resolution)")
		}
		f, err := floats(args[0:8])
		if err != nil {
			return zygo.SexpNull, err
		}
		res, err := toInt(args[8])
		if err != nil {
			return zygo.SexpNull, err
		}
		cx, cy, cz, r, halfH := f[0], f[1], f[2], f[3], f[4]
		color := mesh.Color{float32(f[5]), float32(f[6]), float32(f[7])}
		bMin, bMax := paddedBoxAround(cx, cy, cz, padded(math.Max(r, halfH)))
		marching.March(buf, func(x, y, z float32) float32 {
			return float32(sdf.Cylinder(float64(x)-cx, float64(y)-cy, float64(z)-cz, r, halfH))
		}, solidColor(color), bMin, bMax, res)
		return zygo.SexpNull, nil
	})

	env.AddFunction("torus_mesh", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 9 {
			return zygo.SexpNull, fmt.Errorf("torus_mesh: expected (cx cy cz major_radius minor_radius r g b resolution)")
		}
		f, err := floats(args[0:8])
		if err != nil {
			return zygo.SexpNull, err
		}
		res, err := toInt(args[8])
		if err != nil {
			return zygo.SexpNull, err
		}
		cx, cy, cz, major, minor := f[0], f[1], f[2], f[3], f[4]
		color := mesh.Color{float32(f[5]), float32(f[6]), float32(f[7])}
		horizontal := padded(major + minor)
		vertical := padded(minor)
		bMin := mesh.Vec3{float32(cx) - horizontal, float32(cy) - vertical, float32(cz) - horizontal}
		bMax := mesh.Vec3{float32(cx) + horizontal, float32(cy) + vertical, float32(cz) + horizontal}
		marching.March(buf, func(x, y, z float32) float32 {
			return float32(sdf.Torus(float64(x)-cx, float64(y)-cy, float64(z)-cz, major, minor))
		}, solidColor(color), bMin, bMax, res)
		return zygo.SexpNull, nil
	})
}

// paddedBoxAround returns bounds centered at (cx,cy,cz) extending half by
// the given padded radius on every axis.
func paddedBoxAround(cx, cy, cz float64, half float32) (mesh.Vec3, mesh.Vec3) {
	c := mesh.Vec3{float32(cx), float32(cy), float32(cz)}
	return mesh.Vec3{c[0] - half, c[1] - half, c[2] - half}, mesh.Vec3{c[0] + half, c[1] + half, c[2] + half}
}

func registerMathBuiltins(env *zygo.Zlisp) {
	unary := map[string]func(float64) float64{
		"m_sin": math.Sin, "m_cos": math.Cos, "m_tan": math.Tan,
		"m_asin": math.Asin, "m_acos": math.Acos, "m_atan": math.Atan,
		"m_sqrt": math.Sqrt, "m_abs": math.Abs,
	}
	for name, f := range unary {
		fn := f
		regFloatFn(env, name, 1, func(a []float64) float64 { return fn(a[0]) })
	}
	regFloatFn(env, "m_pow", 2, func(a []float64) float64 { return math.Pow(a[0], a[1]) })
	regFloatFn(env, "m_atan2", 2, func(a []float64) float64 { return math.Atan2(a[0], a[1]) })
	regFloatFn(env, "m_clamp", 3, func(a []float64) float64 {
		if a[0] < a[1] {
			return a[1]
		}
		if a[0] > a[2] {
			return a[2]
		}
		return a[0]
	})
	regFloatFn(env, "m_mix", 3, func(a []float64) float64 { return a[0]*(1-a[2]) + a[1]*a[2] })
}
