package paths

import "bytes"

// Normalize returns the canonical forward-slash form of path. It is
// equivalent to calling [Platform.Normalize] with native set to false.
func Normalize(path string) string {
	return normalize(path, Sep)
}

// Normalize resolves `.` and `..` segments in path and rewrites all
// separators outside of the root to a single style. The output uses `\` only
// when p is a Windows platform and native is true.
//
// The root of path (see [RootSep]) is preserved. A `..` segment removes the
// previous segment when there is one, or is dropped when the path is rooted.
// Leading `..` segments of relative paths are kept. A `.` segment is kept only
// when it is the entire path. A trailing separator is preserved. A path that
// is empty, or becomes empty, normalizes to `.`.
func (p Platform) Normalize(path string, native bool) string {
	sep := byte(Sep)
	if native && p.IsWindows() {
		sep = '\\'
	}

	return normalize(path, sep)
}

func normalize(path string, sep byte) string {
	if path == "" {
		return "."
	}

	// Operate on the segments after the root only. Rewriting separators
	// inside the root never changes its length.
	root := RootSep(path, sep)
	rest := path[len(root):]

	res := make([]byte, 0, len(rest))
	start := 0

	for end := 0; end <= len(rest); end++ {
		if end < len(rest) && !isSep(rest[end]) {
			continue
		}

		part := rest[start:end]
		start = end + 1

		if part == "." && (root != "" || len(res) > 0 || end < len(rest)-1) {
			// Skip the current segment if there is already something, or
			// if there is more to come.
			continue
		}

		if part == ".." {
			prevStart := bytes.LastIndexByte(res, sep)
			prev := res[prevStart+1:]

			if (root != "" || len(prev) > 0) && string(prev) != ".." {
				// Drop the current segment and the one before it.
				if prevStart == -1 {
					res = res[:0]
				} else {
					res = res[:prevStart]
				}

				continue
			}
		}

		if len(res) > 0 && res[len(res)-1] != sep {
			res = append(res, sep)
		}

		res = append(res, part...)
	}

	if root == "" && len(res) == 0 {
		return "."
	}

	return root + string(res)
}
