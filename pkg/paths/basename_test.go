package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/pathkit/pkg/paths"
)

func TestIsValidBasename(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		name    string
		linux   bool
		windows bool
	}{
		"plain file":           {name: "file.txt", linux: true, windows: true},
		"empty":                {name: "", linux: false, windows: false},
		"whitespace":           {name: " \t ", linux: false, windows: false},
		"dot":                  {name: ".", linux: false, windows: false},
		"dotdot":               {name: "..", linux: false, windows: false},
		"slash":                {name: "a/b", linux: false, windows: false},
		"backslash":            {name: `a\b`, linux: false, windows: false},
		"colon":                {name: "a:b", linux: true, windows: false},
		"star":                 {name: "a*", linux: true, windows: false},
		"question mark":        {name: "a?", linux: true, windows: false},
		"quote":                {name: `a"b`, linux: true, windows: false},
		"angle brackets":       {name: "<a>", linux: true, windows: false},
		"pipe":                 {name: "a|b", linux: true, windows: false},
		"reserved con":         {name: "con", linux: true, windows: false},
		"reserved upper":       {name: "CON", linux: true, windows: false},
		"reserved lpt9":        {name: "lpt9", linux: true, windows: false},
		"reserved com1":        {name: "Com1", linux: true, windows: false},
		"reserved clock":       {name: "clock$", linux: true, windows: false},
		"com0 is not reserved": {name: "com0", linux: true, windows: true},
		"lpt0 is not reserved": {name: "LPT0", linux: true, windows: true},
		"reserved prefix only": {name: "con.txt", linux: true, windows: true},
		"reserved suffix only": {name: "xcon", linux: true, windows: true},
		"trailing dot":         {name: "foo.", linux: true, windows: false},
		"trailing space":       {name: "foo ", linux: true, windows: false},
		"leading space":        {name: " foo", linux: true, windows: false},
		"dotfile":              {name: ".bashrc", linux: true, windows: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.linux, paths.Linux.IsValidBasename(tc.name))
			assert.Equal(t, tc.linux, paths.Darwin.IsValidBasename(tc.name))
			assert.Equal(t, tc.windows, paths.Windows.IsValidBasename(tc.name))
		})
	}
}
