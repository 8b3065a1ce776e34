package paths

import "strings"

// Join concatenates path fragments with `/`.
//
// Only the root of the first fragment is kept; every other fragment is treated
// as relative even if it looks rooted. Empty and `.` segments are dropped, and
// a `..` segment removes the segment before it unless that segment is also
// `..`. Unlike [Normalize], the root is not consulted when collapsing `..`, so
// leading `..` segments survive after a root. A trailing separator on the last
// fragment is preserved. Separators in the root are rewritten to `/`.
func Join(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}

	// Preserve things like c:/, //localhost/share/, file:///, http://host/.
	root := Root(parts[0])
	first := parts[0][len(root):]

	last := parts[len(parts)-1]
	endsWithSep := last != "" && isSep(last[len(last)-1])

	segments := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i == 0 {
			part = first
		}

		for _, segment := range splitSeps(part) {
			switch {
			case segment == ".":
			case segment == ".." && len(segments) > 0 && segments[len(segments)-1] != "..":
				segments = segments[:len(segments)-1]
			default:
				segments = append(segments, segment)
			}
		}
	}

	if endsWithSep {
		segments = append(segments, "")
	}

	return replaceSeps(root, Sep) + strings.Join(segments, "/")
}

// splitSeps splits s on both `/` and `\`. Empty segments are omitted.
func splitSeps(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
