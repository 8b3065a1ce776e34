package paths

import "strings"

// lastSep returns the index of the last `/` in path, or of the last `\` when
// path contains no `/`. Forward slashes take precedence so that URIs and mixed
// paths split on their `/` segments.
func lastSep(path string) int {
	if i := strings.LastIndexByte(path, '/'); i != -1 {
		return i
	}

	return strings.LastIndexByte(path, '\\')
}

// Dirname returns all but the last segment of path. It returns `.` when path
// has no separator, and the separator itself when the only one is at the
// start.
func Dirname(path string) string {
	switch i := lastSep(path); i {
	case -1:
		return "."
	case 0:
		return path[:1]
	default:
		return path[:i]
	}
}

// Basename returns the last segment of path, ignoring trailing separators.
func Basename(path string) string {
	for {
		i := lastSep(path)
		switch {
		case i == -1:
			return path
		case i == len(path)-1:
			path = path[:i]
		default:
			return path[i+1:]
		}
	}
}

// Extname returns the extension of the last segment of path, from the last
// `.` onward, or the empty string if there is none. Dotfiles such as
// `.bashrc` are their own extension.
func Extname(path string) string {
	base := Basename(path)
	if i := strings.LastIndexByte(base, '.'); i != -1 {
		return base[i:]
	}

	return ""
}
