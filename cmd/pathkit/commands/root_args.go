package commands

import (
	"github.com/MacroPower/pathkit/pkg/paths"
)

type RootArgs struct {
	logLevel  *string
	logFormat *string
	platform  *string
	output    *string
	native    *bool
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
		platform:  new(string),
		output:    new(string),
		native:    new(bool),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

// GetPlatform returns the platform selected with --platform, or the
// platform of the running process if the flag is empty.
func (a *RootArgs) GetPlatform() (paths.Platform, error) {
	if *a.platform == "" {
		return paths.Native(), nil
	}

	return paths.ParsePlatform(*a.platform)
}

func (a *RootArgs) GetOutput() string {
	return *a.output
}

func (a *RootArgs) GetNative() bool {
	return *a.native
}
