package batch

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/MacroPower/pathkit/pkg/paths"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArity            = errors.New("wrong number of arguments")
)

type opFunc func(p paths.Platform, native bool, args []string) any

type opSpec struct {
	fn    opFunc
	nargs int // Exact argument count, or -1 for any.
}

func fixed(nargs int, fn opFunc) opSpec { return opSpec{fn: fn, nargs: nargs} }

func variadic(fn opFunc) opSpec { return opSpec{fn: fn, nargs: -1} }

var ops = map[string]opSpec{
	"root": fixed(1, func(p paths.Platform, _ bool, args []string) any {
		return paths.RootSep(args[0], p.Separator())
	}),
	"normalize": fixed(1, func(p paths.Platform, native bool, args []string) any {
		return p.Normalize(args[0], native)
	}),
	"join": variadic(func(_ paths.Platform, _ bool, args []string) any {
		return paths.Join(args...)
	}),
	"relative": fixed(2, func(_ paths.Platform, _ bool, args []string) any {
		return paths.Relative(args[0], args[1])
	}),
	"is_equal_or_parent": fixed(2, func(p paths.Platform, _ bool, args []string) any {
		return p.IsEqualOrParent(args[0], args[1])
	}),
	"is_valid_basename": fixed(1, func(p paths.Platform, _ bool, args []string) any {
		return p.IsValidBasename(args[0])
	}),
	"dirname": fixed(1, func(_ paths.Platform, _ bool, args []string) any {
		return paths.Dirname(args[0])
	}),
	"basename": fixed(1, func(_ paths.Platform, _ bool, args []string) any {
		return paths.Basename(args[0])
	}),
	"extname": fixed(1, func(_ paths.Platform, _ bool, args []string) any {
		return paths.Extname(args[0])
	}),
	"is_absolute": fixed(1, func(_ paths.Platform, _ bool, args []string) any {
		return paths.IsAbsolute(args[0])
	}),
	"is_unc": fixed(1, func(p paths.Platform, _ bool, args []string) any {
		return p.IsUNC(args[0])
	}),
	"is_relative": fixed(1, func(_ paths.Platform, _ bool, args []string) any {
		return paths.IsRelative(args[0])
	}),
	"make_absolute": fixed(1, func(_ paths.Platform, _ bool, args []string) any {
		return paths.MakeAbsolute(args[0], false)
	}),
}

// aliases maps alternative operation names to their canonical name.
var aliases = map[string]string{
	"get_root": "root",
}

// CanonicalOp returns the snake_case form of an operation name, so that
// "isEqualOrParent", "IsEqualOrParent" and "is-equal-or-parent" all resolve
// to "is_equal_or_parent". Aliases such as "getRoot" resolve to the name they
// stand for.
func CanonicalOp(name string) string {
	name = strcase.ToSnake(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		return target
	}

	return name
}

// Ops returns the sorted canonical names of all supported operations.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Call invokes the operation named op with args on platform p. The result is
// either a string or a bool.
func Call(p paths.Platform, native bool, op string, args ...string) (any, error) {
	name := CanonicalOp(op)

	spec, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	if spec.nargs >= 0 && len(args) != spec.nargs {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrArity, name, spec.nargs, len(args))
	}

	return spec.fn(p, native, args), nil
}
