package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathkit/pkg/batch"
	"github.com/MacroPower/pathkit/pkg/pathutil"
)

// NewResolveCmd returns the resolve command.
func NewResolveCmd(args *RootArgs) *cobra.Command {
	var (
		dir            bool
		allowedSchemes []string
	)

	cmd := &cobra.Command{
		Use:   "resolve <current_path> <repo_root> <file>",
		Short: "Resolve a file against a directory and check it stays inside a root",
		Long: `Resolve a file against a directory and check it stays inside a root.

Relative files are resolved against current_path, rooted files against
repo_root. The result must be located beneath repo_root. URLs are returned
as-is when their scheme is allowed with --allow_scheme.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			p, err := args.GetPlatform()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			format, err := ParseOutputFormat(args.GetOutput())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			var resolved fmt.Stringer
			if dir {
				resolved, err = pathutil.ResolveFileOrDirectoryPath(posArgs[0], posArgs[1], posArgs[2], p)
			} else {
				resolved, err = pathutil.ResolveFilePathOrURL(posArgs[0], posArgs[1], posArgs[2], allowedSchemes, p)
			}

			if err != nil {
				return err
			}

			return newPrinter(cc.OutOrStdout(), format).PrintResult(batch.Result{Op: "resolve", Value: resolved.String()})
		},
	}

	cmd.Flags().BoolVar(&dir, "dir", false, "Allow the result to be the repository root itself")
	cmd.Flags().StringSliceVar(&allowedSchemes, "allow_scheme", []string{"http", "https"},
		"URL schemes that are returned without resolution")

	return cmd
}
