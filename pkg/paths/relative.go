package paths

import "strings"

// Relative returns the path that leads from from to to.
//
// Both paths are normalized and split on `/`, their longest common prefix of
// segments is removed, and one `..` is added for every segment left in from.
// Paths with different roots share no prefix, so the result climbs out of
// every segment of from, root included.
func Relative(from, to string) string {
	fromParts := strings.Split(Normalize(from), "/")
	toParts := strings.Split(Normalize(to), "/")

	for len(fromParts) > 0 && len(toParts) > 0 && fromParts[0] == toParts[0] {
		fromParts = fromParts[1:]
		toParts = toParts[1:]
	}

	out := make([]string, 0, len(fromParts)+len(toParts))
	for range fromParts {
		out = append(out, "..")
	}

	out = append(out, toParts...)

	return strings.Join(out, "/")
}
