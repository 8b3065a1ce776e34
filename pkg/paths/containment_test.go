package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/pathkit/pkg/paths"
)

func TestIsEqualOrParent(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path      string
		candidate string
		linux     bool
		windows   bool
	}{
		"child":                      {path: "/foo/bar", candidate: "/foo", linux: true, windows: true},
		"sibling with common prefix": {path: "/foo2", candidate: "/foo", linux: false, windows: false},
		"trailing separator":         {path: "/foo", candidate: "/foo/", linux: true, windows: true},
		"different case":             {path: "/Foo/bar", candidate: "/foo", linux: false, windows: true},
		"dot segments":               {path: "/a/b/../c", candidate: "/a", linux: true, windows: true},
		"parent of candidate":        {path: "/a", candidate: "/a/b", linux: false, windows: false},
		"posix root":                 {path: "/anything", candidate: "/", linux: true, windows: true},
		"drive case":                 {path: `C:\Users\x`, candidate: `c:\users`, linux: false, windows: true},
		"mixed separators":           {path: `C:\a\b`, candidate: "C:/a", linux: true, windows: true},
		"relative":                   {path: "a/b", candidate: "a", linux: true, windows: true},
		"relative not child":         {path: "ab", candidate: "a", linux: false, windows: false},
		"unicode case":               {path: "/ÄRGER/x", candidate: "/ärger", linux: false, windows: true},
		"lowercase only":             {path: "/STRASSE/x", candidate: "/straße", linux: false, windows: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.linux, paths.Linux.IsEqualOrParent(tc.path, tc.candidate))
			assert.Equal(t, tc.windows, paths.Windows.IsEqualOrParent(tc.path, tc.candidate))
			assert.Equal(t, tc.windows, paths.Darwin.IsEqualOrParent(tc.path, tc.candidate))
		})
	}
}

func TestIsEqualOrParentReflexive(t *testing.T) {
	t.Parallel()

	for _, p := range corpus {
		if p == "" {
			continue
		}

		assert.True(t, paths.Linux.IsEqualOrParent(p, p), p)
		assert.True(t, paths.Windows.IsEqualOrParent(p, p), p)
	}
}

func TestIsEqualOrParentConcurrent(t *testing.T) {
	t.Parallel()

	for range 50 {
		t.Run("parallel", func(t *testing.T) {
			t.Parallel()

			assert.True(t, paths.Windows.IsEqualOrParent("/A/B/c", "/a/b"))
			assert.False(t, paths.Windows.IsEqualOrParent("/A/Bc", "/a/b"))
		})
	}
}
