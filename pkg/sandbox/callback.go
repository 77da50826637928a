package sandbox

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/scenecraft/pkg/mesh"
)

// sandboxPanic wraps an error raised while calling back into a user-supplied
// lambda from a Go closure (e.g. sdf_fn during marching cubes). Go panics
// are the only way to unwind out of a foreign callback mid-algorithm; run
// recovers this specific type and turns it into a RuntimeError.
type sandboxPanic struct{ err error }

// callFloatFn invokes a zygomys function value with three float arguments
// and returns a float32 result, panicking (via sandboxPanic) on any error.
func callFloatFn(env *zygo.Zlisp, fn zygo.Sexp, x, y, z float32) float32 {
	fnVal, ok := fn.(*zygo.SexpFunction)
	if !ok {
		panic(sandboxPanic{fmt.Errorf("expected function, got %T", fn)})
	}
	res, err := env.Apply(fnVal, []zygo.Sexp{
		&zygo.SexpFloat{Val: float64(x)},
		&zygo.SexpFloat{Val: float64(y)},
		&zygo.SexpFloat{Val: float64(z)},
	})
	if err != nil {
		panic(sandboxPanic{err})
	}
	f, err := toFloat32(res)
	if err != nil {
		panic(sandboxPanic{err})
	}
	return f
}

// callColorFn invokes a zygomys function value with three float arguments
// and returns a 3-element color.
func callColorFn(env *zygo.Zlisp, fn zygo.Sexp, x, y, z float32) mesh.Color {
	fnVal, ok := fn.(*zygo.SexpFunction)
	if !ok {
		panic(sandboxPanic{fmt.Errorf("expected function, got %T", fn)})
	}
	res, err := env.Apply(fnVal, []zygo.Sexp{
		&zygo.SexpFloat{Val: float64(x)},
		&zygo.SexpFloat{Val: float64(y)},
		&zygo.SexpFloat{Val: float64(z)},
	})
	if err != nil {
		panic(sandboxPanic{err})
	}
	items, err := sexpListToSlice(res)
	if err != nil {
		panic(sandboxPanic{err})
	}
	c, err := toColor(items)
	if err != nil {
		panic(sandboxPanic{err})
	}
	return c
}

// callHeightFn invokes a two-argument (x,z)->y zygomys function value.
func callHeightFn(env *zygo.Zlisp, fn zygo.Sexp, x, z float32) float32 {
	fnVal, ok := fn.(*zygo.SexpFunction)
	if !ok {
		panic(sandboxPanic{fmt.Errorf("expected function, got %T", fn)})
	}
	res, err := env.Apply(fnVal, []zygo.Sexp{
		&zygo.SexpFloat{Val: float64(x)},
		&zygo.SexpFloat{Val: float64(z)},
	})
	if err != nil {
		panic(sandboxPanic{err})
	}
	f, err := toFloat32(res)
	if err != nil {
		panic(sandboxPanic{err})
	}
	return f
}

// callColorFn2 invokes a two-argument (x,z)->Color zygomys function value.
func callColorFn2(env *zygo.Zlisp, fn zygo.Sexp, x, z float32) mesh.Color {
	fnVal, ok := fn.(*zygo.SexpFunction)
	if !ok {
		panic(sandboxPanic{fmt.Errorf("expected function, got %T", fn)})
	}
	res, err := env.Apply(fnVal, []zygo.Sexp{
		&zygo.SexpFloat{Val: float64(x)},
		&zygo.SexpFloat{Val: float64(z)},
	})
	if err != nil {
		panic(sandboxPanic{err})
	}
	items, err := sexpListToSlice(res)
	if err != nil {
		panic(sandboxPanic{err})
	}
	c, err := toColor(items)
	if err != nil {
		panic(sandboxPanic{err})
	}
	return c
}
