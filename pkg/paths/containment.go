package paths

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsEqualOrParent reports whether path is equal to candidate or is located
// beneath it. Both paths are normalized first, and a trailing separator on
// candidate is ignored. On case-insensitive platforms both paths are
// lowercased before comparing.
//
// A match requires a separator directly after the candidate prefix, so
// `/foo2` is not beneath `/foo`.
func (p Platform) IsEqualOrParent(path, candidate string) bool {
	if path == candidate {
		return true
	}

	path = Normalize(path)
	candidate = strings.TrimSuffix(Normalize(candidate), "/")

	if path == candidate {
		return true
	}

	if p.CaseInsensitive {
		// Casers keep internal state, so each call gets its own.
		lower := cases.Lower(language.Und)
		path = lower.String(path)
		candidate = lower.String(candidate)

		if path == candidate {
			return true
		}
	}

	if !strings.HasPrefix(path, candidate) {
		return false
	}

	return path[len(candidate)] == Sep
}
