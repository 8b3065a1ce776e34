// Package version holds the build version of pathkit.
//
// [Version] and [Revision] are overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/MacroPower/pathkit/pkg/version.Version=1.2.3"
package version
