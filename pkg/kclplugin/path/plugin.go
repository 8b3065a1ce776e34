package path

import (
	"fmt"
	"log/slog"

	"kcl-lang.io/kcl-go/pkg/plugin"

	"github.com/MacroPower/pathkit/pkg/kclplugin/plugins"
	"github.com/MacroPower/pathkit/pkg/paths"
)

const (
	argPlatform string = "platform"
	argNative   string = "native"

	defaultPlatform = "linux"
)

// Register registers the path [Plugin] with the KCL plugin system.
func Register() {
	plugin.RegisterPlugin(Plugin)
}

// Plugin is the KCL plugin that exposes [paths] functions. Every method
// accepts an optional `platform` keyword argument, which defaults to "linux".
var Plugin = plugin.Plugin{
	Name: "path",
	MethodMap: map[string]plugin.MethodSpec{
		"root": strMethod("root", func(p paths.Platform, s string) any {
			return paths.RootSep(s, p.Separator())
		}),
		"normalize": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"str"},
				KwArgsType: map[string]string{argPlatform: "str", argNative: "bool"},
				ResultType: "str",
			},
			Body: body("normalize", func(args *plugins.SafeMethodArgs, p paths.Platform) (any, error) {
				path, err := args.StrArg(0)
				if err != nil {
					return nil, err
				}

				return p.Normalize(path, args.BoolKwArg(argNative, false)), nil
			}),
		},
		"join": {
			Type: &plugin.MethodType{
				ArgsType:   []string{"[str]"},
				KwArgsType: map[string]string{argPlatform: "str"},
				ResultType: "str",
			},
			Body: body("join", func(args *plugins.SafeMethodArgs, _ paths.Platform) (any, error) {
				parts, err := args.ListStrArg(0)
				if err != nil {
					return nil, err
				}

				return paths.Join(parts...), nil
			}),
		},
		"relative": pairMethod("relative", "str", func(_ paths.Platform, from, to string) any {
			return paths.Relative(from, to)
		}),
		"is_equal_or_parent": pairMethod("is_equal_or_parent", "bool", func(p paths.Platform, path, candidate string) any {
			return p.IsEqualOrParent(path, candidate)
		}),
		"is_valid_basename": boolMethod("is_valid_basename", func(p paths.Platform, s string) bool {
			return p.IsValidBasename(s)
		}),
		"dirname": strMethod("dirname", func(_ paths.Platform, s string) any {
			return paths.Dirname(s)
		}),
		"basename": strMethod("basename", func(_ paths.Platform, s string) any {
			return paths.Basename(s)
		}),
		"extname": strMethod("extname", func(_ paths.Platform, s string) any {
			return paths.Extname(s)
		}),
		"is_absolute": boolMethod("is_absolute", func(_ paths.Platform, s string) bool {
			return paths.IsAbsolute(s)
		}),
		"is_unc": boolMethod("is_unc", func(p paths.Platform, s string) bool {
			return p.IsUNC(s)
		}),
		"is_relative": boolMethod("is_relative", func(_ paths.Platform, s string) bool {
			return paths.IsRelative(s)
		}),
	},
}

type methodFunc func(args *plugins.SafeMethodArgs, p paths.Platform) (any, error)

// body wraps fn with logging, argument handling and platform parsing.
func body(method string, fn methodFunc) func(*plugin.MethodArgs) (*plugin.MethodResult, error) {
	return func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
		logger := slog.With(
			slog.String("plugin", "path"),
			slog.String("method", method),
		)
		logger.Debug("invoking kcl plugin")

		safeArgs := &plugins.SafeMethodArgs{Args: args}

		p, err := paths.ParsePlatform(safeArgs.StrKwArg(argPlatform, defaultPlatform))
		if err != nil {
			return nil, fmt.Errorf("invalid argument: %w", err)
		}

		result, err := fn(safeArgs, p)
		if err != nil {
			return nil, fmt.Errorf("invalid argument: %w", err)
		}

		logger.Debug("returning results")

		return &plugin.MethodResult{V: result}, nil
	}
}

func strMethod(method string, fn func(p paths.Platform, s string) any) plugin.MethodSpec {
	return plugin.MethodSpec{
		Type: &plugin.MethodType{
			ArgsType:   []string{"str"},
			KwArgsType: map[string]string{argPlatform: "str"},
			ResultType: "str",
		},
		Body: body(method, func(args *plugins.SafeMethodArgs, p paths.Platform) (any, error) {
			s, err := args.StrArg(0)
			if err != nil {
				return nil, err
			}

			return fn(p, s), nil
		}),
	}
}

func boolMethod(method string, fn func(p paths.Platform, s string) bool) plugin.MethodSpec {
	spec := strMethod(method, func(p paths.Platform, s string) any {
		return fn(p, s)
	})
	spec.Type.ResultType = "bool"

	return spec
}

func pairMethod(method, resultType string, fn func(p paths.Platform, a, b string) any) plugin.MethodSpec {
	return plugin.MethodSpec{
		Type: &plugin.MethodType{
			ArgsType:   []string{"str", "str"},
			KwArgsType: map[string]string{argPlatform: "str"},
			ResultType: resultType,
		},
		Body: body(method, func(args *plugins.SafeMethodArgs, p paths.Platform) (any, error) {
			a, err := args.StrArg(0)
			if err != nil {
				return nil, err
			}

			b, err := args.StrArg(1)
			if err != nil {
				return nil, err
			}

			return fn(p, a, b), nil
		}),
	}
}
