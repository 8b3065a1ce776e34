package plugins

import (
	"fmt"

	"kcl-lang.io/kcl-go/pkg/plugin"
)

// SafeMethodArgs wraps [plugin.MethodArgs] with accessors that return errors
// or defaults instead of panicking on missing or mistyped arguments.
type SafeMethodArgs struct {
	Args *plugin.MethodArgs
}

func (sma *SafeMethodArgs) Exists(name string) bool {
	_, ok := sma.Args.KwArgs[name]

	return ok
}

func (sma *SafeMethodArgs) StrKwArg(name, defaultValue string) string {
	if sma.Exists(name) {
		return sma.Args.StrKwArg(name)
	}

	return defaultValue
}

func (sma *SafeMethodArgs) BoolKwArg(name string, defaultValue bool) bool {
	if sma.Exists(name) {
		return sma.Args.BoolKwArg(name)
	}

	return defaultValue
}

// StrArg returns the positional string argument at idx.
func (sma *SafeMethodArgs) StrArg(idx int) (string, error) {
	if len(sma.Args.Args) <= idx {
		return "", fmt.Errorf("expected at least %d argument(s), got %d", idx+1, len(sma.Args.Args))
	}

	s, ok := sma.Args.Args[idx].(string)
	if !ok {
		return "", fmt.Errorf("expected string argument at index %d, got %T", idx, sma.Args.Args[idx])
	}

	return s, nil
}

// ListStrArg returns the positional list of strings at idx.
func (sma *SafeMethodArgs) ListStrArg(idx int) ([]string, error) {
	if len(sma.Args.Args) <= idx {
		return nil, fmt.Errorf("expected at least %d argument(s), got %d", idx+1, len(sma.Args.Args))
	}

	list, ok := sma.Args.Args[idx].([]any)
	if !ok {
		return nil, fmt.Errorf("expected []string argument at index %d, got %T", idx, sma.Args.Args[idx])
	}

	strs := make([]string, 0, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string at index %d, got %T", i, v)
		}

		strs = append(strs, s)
	}

	return strs, nil
}
