package version

import (
	"fmt"
	"runtime"
)

// These are set at build time with -ldflags "-X".
var (
	Version  = "0.0.0-dev"
	Revision = "unknown"
)

// GetVersionString returns the version, revision and Go runtime in a single
// line, e.g. "1.2.3+abc1234 (go1.24.1 linux/amd64)".
func GetVersionString() string {
	return fmt.Sprintf("%s+%s (%s %s/%s)", Version, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
