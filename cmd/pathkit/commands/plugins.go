package commands

import (
	"os"
	"strings"

	pathplugin "github.com/MacroPower/pathkit/pkg/kclplugin/path"
)

func RegisterEnabledPlugins() {
	if !envTrue("PATHKIT_PATH_PLUGIN_DISABLED") {
		pathplugin.Register()
	}
}

func envTrue(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}
