package path_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kcl-lang.io/kcl-go/pkg/native"
	"kcl-lang.io/kcl-go/pkg/plugin"
	"kcl-lang.io/kcl-go/pkg/spec/gpyrpc"

	pathplugin "github.com/MacroPower/pathkit/pkg/kclplugin/path"
)

func TestPluginPath(t *testing.T) {
	t.Parallel()

	pathplugin.Register()

	tcs := map[string]struct {
		kclCode string
		want    string
	}{
		"root": {
			kclCode: `path.root("C:\\files", platform="windows")`,
			want:    `"C:\\"`,
		},
		"root uri": {
			kclCode: `path.root("files:///a/b")`,
			want:    `"files:///"`,
		},
		"normalize": {
			kclCode: `path.normalize("a/./b/../c")`,
			want:    `"a/c"`,
		},
		"normalize native": {
			kclCode: `path.normalize("C:/a/../b", platform="windows", native=True)`,
			want:    `"C:\\b"`,
		},
		"join": {
			kclCode: `path.join(["a/", "b", "../c"])`,
			want:    `"a/c"`,
		},
		"relative": {
			kclCode: `path.relative("/a/b", "/a/b/c/d")`,
			want:    `"c/d"`,
		},
		"is_equal_or_parent": {
			kclCode: `path.is_equal_or_parent("/Foo/bar", "/foo", platform="darwin")`,
			want:    `true`,
		},
		"is_valid_basename linux": {
			kclCode: `path.is_valid_basename("con")`,
			want:    `true`,
		},
		"is_valid_basename windows": {
			kclCode: `path.is_valid_basename("con", platform="windows")`,
			want:    `false`,
		},
		"dirname": {
			kclCode: `path.dirname("/path/to/file")`,
			want:    `"/path/to"`,
		},
		"basename": {
			kclCode: `path.basename("/path/to/file/")`,
			want:    `"file"`,
		},
		"extname": {
			kclCode: `path.extname("/path/to/file.txt")`,
			want:    `".txt"`,
		},
		"is_absolute": {
			kclCode: `path.is_absolute("/path")`,
			want:    `true`,
		},
		"is_unc": {
			kclCode: `path.is_unc("//host/share/x", platform="windows")`,
			want:    `true`,
		},
		"is_relative": {
			kclCode: `path.is_relative("./x")`,
			want:    `true`,
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := native.NewNativeServiceClient()
			result, err := client.ExecProgram(&gpyrpc.ExecProgramArgs{
				KFilenameList: []string{"main.k"},
				KCodeList: []string{
					"import kcl_plugin.path\n" +
						"result = " + tc.kclCode,
				},
				Args: []*gpyrpc.Argument{},
			})
			require.NoError(t, err)
			require.Empty(t, result.GetErrMessage(), result.GetLogMessage())

			want := fmt.Sprintf(`{"result": %s}`, tc.want)

			got := result.GetJsonResult()
			assert.JSONEq(t, want, got)
		})
	}
}

func TestPluginPathErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		method string
		args   *plugin.MethodArgs
		errMsg string
	}{
		"unknown platform": {
			method: "normalize",
			args: &plugin.MethodArgs{
				Args:   []any{"a"},
				KwArgs: map[string]any{"platform": "plan9"},
			},
			errMsg: "unknown platform",
		},
		"missing argument": {
			method: "relative",
			args:   &plugin.MethodArgs{Args: []any{"a"}},
			errMsg: "expected at least 2 argument(s), got 1",
		},
		"wrong type": {
			method: "join",
			args:   &plugin.MethodArgs{Args: []any{"a"}},
			errMsg: "expected []string argument at index 0, got string",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := pathplugin.Plugin.MethodMap[tc.method].Body(tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid argument")
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
