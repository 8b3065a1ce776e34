package paths

import (
	"regexp"
	"strings"
)

var absoluteRegexp = regexp.MustCompile(`^((/|[a-zA-Z]:\\)[^()<>\\'"\[\]]+)`)

// IsAbsolute is a surface check for absolute paths: a leading `/` or a drive
// letter followed by `:\`, then at least one character that is not a
// bracket, quote or backslash. It does not consider UNC or URI roots; use
// [Classify] for that.
func IsAbsolute(path string) bool {
	return absoluteRegexp.MatchString(path)
}

// IsUNC reports whether path is a UNC path. UNC paths only exist on Windows,
// so this is always false for other platforms.
func (p Platform) IsUNC(path string) bool {
	if !p.IsWindows() || path == "" {
		return false
	}

	return strings.HasPrefix(p.Normalize(path, true), `\\`)
}

// IsRelative reports whether path explicitly starts relative to the current
// directory, like `./x` or `../x`.
func IsRelative(path string) bool {
	return len(path) > 1 && path[0] == '.'
}

// MakeAbsolute prefixes path with `/` unless it already starts with one. If
// normalized is false the check is made against the normalized form of path;
// the returned path itself is never normalized.
func MakeAbsolute(path string, normalized bool) string {
	check := path
	if !normalized {
		check = Normalize(path)
	}

	if strings.HasPrefix(check, "/") {
		return path
	}

	return "/" + path
}
