package paths

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnknownPlatform is returned by [ParsePlatform] for unrecognized names.
var ErrUnknownPlatform = errors.New("unknown platform")

// Kind is the separator and naming convention of a [Platform].
type Kind int

const (
	KindPosix Kind = iota
	KindWindows
)

func (k Kind) String() string {
	switch k {
	case KindPosix:
		return "posix"
	case KindWindows:
		return "windows"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Platform selects the conventions used by the platform-dependent functions in
// this package. The zero value is [Linux].
type Platform struct {
	Kind            Kind
	CaseInsensitive bool
}

var (
	// Linux is a case-sensitive POSIX platform.
	Linux = Platform{Kind: KindPosix}

	// Darwin is a case-insensitive POSIX platform.
	Darwin = Platform{Kind: KindPosix, CaseInsensitive: true}

	// Windows is a case-insensitive Windows platform.
	Windows = Platform{Kind: KindWindows, CaseInsensitive: true}
)

// ParsePlatform returns the [Platform] for a name such as "linux", "darwin" or
// "windows".
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linux", "posix", "unix":
		return Linux, nil
	case "darwin", "macos", "osx":
		return Darwin, nil
	case "windows", "win32", "win":
		return Windows, nil
	default:
		return Platform{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
}

// Native returns the [Platform] matching the operating system the binary was
// built for. It is intended for defaults at the edges of a program, such as CLI
// flags.
func Native() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin", "ios":
		return Darwin
	default:
		return Linux
	}
}

// IsWindows reports whether p uses Windows conventions.
func (p Platform) IsWindows() bool {
	return p.Kind == KindWindows
}

// Separator returns the native path separator of p.
func (p Platform) Separator() byte {
	if p.IsWindows() {
		return '\\'
	}

	return '/'
}

func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	case Windows:
		return "windows"
	}

	if p.CaseInsensitive {
		return p.Kind.String() + "(case-insensitive)"
	}

	return p.Kind.String() + "(case-sensitive)"
}
