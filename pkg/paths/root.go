package paths

import (
	"fmt"
	"strings"
)

// Sep is the forward slash separator used by all non-native output.
const Sep = '/'

// RootKind classifies the root prefix of a path.
type RootKind int

const (
	// RootNone is the root of a relative path.
	RootNone RootKind = iota
	// RootPosix is a single leading separator, e.g. `/usr`.
	RootPosix
	// RootDrive is a Windows drive letter, e.g. `C:\` or the drive-relative `C:`.
	RootDrive
	// RootUNC is a Windows network share, e.g. `\\host\share\`.
	RootUNC
	// RootURI is a scheme and authority, e.g. `file:///` or `http://host/`.
	RootURI
)

func (k RootKind) String() string {
	switch k {
	case RootNone:
		return "none"
	case RootPosix:
		return "posix"
	case RootDrive:
		return "drive"
	case RootUNC:
		return "unc"
	case RootURI:
		return "uri"
	default:
		return fmt.Sprintf("RootKind(%d)", int(k))
	}
}

// RootInfo is the result of [Classify].
type RootInfo struct {
	Text string
	Kind RootKind
}

// Root returns the root prefix of path using `/` for any separators it
// rewrites. See [RootSep].
func Root(path string) string {
	return RootSep(path, Sep)
}

// RootSep returns the non-traversable prefix of path, e.g. `c:\` for
// `c:\files`, `files:///` for `files:///files/path`, or `\\server\shares\` for
// `\\server\shares\path`. Separators inside POSIX, drive and UNC roots are
// rewritten to sep. URI roots are returned verbatim. Relative paths have an
// empty root.
func RootSep(path string, sep byte) string {
	return Classify(path, sep).Text
}

// Classify scans path for its root prefix and reports its kind alongside the
// text returned by [RootSep].
func Classify(path string, sep byte) RootInfo {
	n := len(path)
	if n == 0 {
		return RootInfo{}
	}

	c := path[0]
	if isSep(c) {
		if unc, ok := uncRoot(path, sep); ok {
			return RootInfo{Text: unc, Kind: RootUNC}
		}

		// /user/far
		// ^
		return RootInfo{Text: string(sep), Kind: RootPosix}
	}

	if isASCIILetter(c) && n > 1 && path[1] == ':' {
		if n > 2 && isSep(path[2]) {
			// C:\fff
			// ^^^
			return RootInfo{Text: path[:2] + string(sep), Kind: RootDrive}
		}

		// C:
		// ^^
		return RootInfo{Text: path[:2], Kind: RootDrive}
	}

	// scheme://authority/path
	// ^^^^^^^^^^^^^^^^^^^
	if i := strings.Index(path, "://"); i != -1 {
		for pos := i + len("://"); pos < n; pos++ {
			if isSep(path[pos]) {
				return RootInfo{Text: path[:pos+1], Kind: RootURI}
			}
		}
	}

	return RootInfo{}
}

// uncRoot matches `\\host\share\` at the start of path. Both separator styles
// are accepted on input. The terminating separator after the share is
// required; without it the path only has a single separator root.
func uncRoot(path string, sep byte) (string, bool) {
	n := len(path)
	if n < 3 || !isSep(path[0]) || !isSep(path[1]) || isSep(path[2]) {
		return "", false
	}

	// \\localhost\shares\ddd
	//    ^^^^^^^^
	// The scan starts after the first host character, so a host needs at
	// least two characters.
	const start = 3

	pos := start
	for pos < n && !isSep(path[pos]) {
		pos++
	}

	// The share name must be non-empty.
	if pos == start || pos+1 >= n || isSep(path[pos+1]) {
		return "", false
	}

	for pos++; pos < n; pos++ {
		if isSep(path[pos]) {
			return replaceSeps(path[:pos+1], sep), true
		}
	}

	return "", false
}

func isSep(c byte) bool {
	return c == '/' || c == '\\'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func replaceSeps(s string, sep byte) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return rune(sep)
		}

		return r
	}, s)
}
