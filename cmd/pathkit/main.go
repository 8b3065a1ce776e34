package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/MacroPower/pathkit/cmd/pathkit/commands"
	"github.com/MacroPower/pathkit/pkg/log"
)

func init() {
	slog.SetDefault(slog.New(log.CreateHandler(os.Stderr, slog.LevelWarn, log.FormatText)))
}

const (
	cmdName = "pathkit"

	shortDesc = "Platform-aware path string utilities."
	longDesc  = `Pathkit manipulates path strings with the rules of a chosen platform,
without touching the file system.

It understands POSIX paths, Windows drive letters, UNC shares and URIs, and
can normalize, join, compare and decompose them. Operations can be run one at
a time, in bulk from a YAML or JSON file, or from KCL through the path plugin.
`
)

func main() {
	commands.RegisterEnabledPlugins()

	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
