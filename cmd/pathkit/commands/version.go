package commands

import (
	"github.com/spf13/cobra"

	"github.com/MacroPower/pathkit/pkg/version"
)

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the pathkit CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(version.GetVersionString())
		},
	}
}
