package sandbox

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/scenecraft/pkg/mesh"
)

// kwPrefix is the marker preprocessSource prepends to keyword names.
const kwPrefix = "__kw_"

func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs is the result of splitting a builtin call's argument list into
// keyword and positional arguments.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T", s)
}

func toFloat32(s zygo.Sexp) (float32, error) {
	f, err := toFloat64(s)
	return float32(f), err
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T", s)
}

func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T", s)
}

func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

func floats(args []zygo.Sexp) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// toColor extracts a 3-element color from a positional (r,g,b) triple or a
// single array/list argument [r,g,b].
func toColor(args []zygo.Sexp) (mesh.Color, error) {
	if len(args) == 1 {
		items, err := sexpListToSlice(args[0])
		if err == nil && len(items) == 3 {
			args = items
		}
	}
	if len(args) != 3 {
		return mesh.Color{}, fmt.Errorf("expected 3 color components, got %d", len(args))
	}
	r, err := toFloat32(args[0])
	if err != nil {
		return mesh.Color{}, err
	}
	g, err := toFloat32(args[1])
	if err != nil {
		return mesh.Color{}, err
	}
	bl, err := toFloat32(args[2])
	if err != nil {
		return mesh.Color{}, err
	}
	return mesh.Color{r, g, bl}, nil
}

func toVec3(args []zygo.Sexp) (mesh.Vec3, error) {
	c, err := toColor(args)
	return mesh.Vec3(c), err
}

// toBool treats a SexpBool by its value and any other non-null Sexp as
// truthy, matching the usual Lisp convention that only an explicit false
// (or the empty list) is falsy.
func toBool(s zygo.Sexp) bool {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val
	case *zygo.SexpSentinel:
		return v != zygo.SexpNull
	default:
		return true
	}
}
