package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/pathkit/pkg/paths"
)

func TestDirname(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want string
	}{
		"posix":                {path: "/a/b", want: "/a"},
		"no separator":         {path: "a", want: "."},
		"empty":                {path: "", want: "."},
		"root child":           {path: "/a", want: "/"},
		"backslash root child": {path: `\a`, want: `\`},
		"backslashes":          {path: `a\b\c`, want: `a\b`},
		"drive":                {path: `C:\a`, want: "C:"},
		"trailing separator":   {path: "a/b/", want: "a/b"},
		"forward slash wins":   {path: `a/b\c`, want: "a"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, paths.Dirname(tc.path))
		})
	}
}

func TestBasename(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want string
	}{
		"posix":               {path: "/a/b", want: "b"},
		"no separator":        {path: "a", want: "a"},
		"trailing separators": {path: "a/b//", want: "b"},
		"backslashes":         {path: `a\b`, want: "b"},
		"root":                {path: "/", want: ""},
		"empty":               {path: "", want: ""},
		"uri":                 {path: "file:///a/b.txt", want: "b.txt"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, paths.Basename(tc.path))
		})
	}
}

func TestExtname(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want string
	}{
		"simple":             {path: "a/b.txt", want: ".txt"},
		"none":               {path: "a/b", want: ""},
		"double":             {path: "a.tar.gz", want: ".gz"},
		"dotfile":            {path: ".bashrc", want: ".bashrc"},
		"dot in directory":   {path: "a.b/c", want: ""},
		"trailing separator": {path: "a/b.txt/", want: ".txt"},
		"trailing dot":       {path: "a.", want: "."},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, paths.Extname(tc.path))
		})
	}
}
