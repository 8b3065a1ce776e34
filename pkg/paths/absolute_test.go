package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/pathkit/pkg/paths"
)

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want bool
	}{
		"posix":               {path: "/a", want: true},
		"posix root only":     {path: "/", want: false},
		"drive":               {path: `C:\a`, want: true},
		"drive forward slash": {path: "C:/a", want: false},
		"drive root only":     {path: `c:\`, want: false},
		"relative":            {path: "a/b", want: false},
		"bracket after root":  {path: "/(a", want: false},
		"bracket later":       {path: "/a(b", want: true},
		"unc":                 {path: `\\host\share`, want: false},
		"uri":                 {path: "file:///a", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, paths.IsAbsolute(tc.path))
		})
	}
}

func TestIsRelative(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want bool
	}{
		"dot slash": {path: "./a", want: true},
		"dotdot":    {path: "../a", want: true},
		"dot only":  {path: ".", want: false},
		"bare name": {path: "a", want: false},
		"empty":     {path: "", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, paths.IsRelative(tc.path))
		})
	}
}

func TestIsUNC(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path    string
		windows bool
	}{
		"backslashes":      {path: `\\host\share\x`, windows: true},
		"forward slashes":  {path: "//host/share/x", windows: true},
		"share root":       {path: `\\host\share\`, windows: true},
		"host only":        {path: `\\host`, windows: false},
		"single char host": {path: `\\a\b\c`, windows: false},
		"posix":            {path: "/a", windows: false},
		"drive":            {path: `C:\a`, windows: false},
		"empty":            {path: "", windows: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.windows, paths.Windows.IsUNC(tc.path))
			assert.False(t, paths.Linux.IsUNC(tc.path))
		})
	}
}

func TestMakeAbsolute(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path       string
		want       string
		normalized bool
	}{
		"relative":                  {path: "a/b", want: "/a/b"},
		"absolute":                  {path: "/a", want: "/a"},
		"backslash root":            {path: `\a`, want: `\a`},
		"backslash root normalized": {path: `\a`, normalized: true, want: `/\a`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, paths.MakeAbsolute(tc.path, tc.normalized))
		})
	}
}
