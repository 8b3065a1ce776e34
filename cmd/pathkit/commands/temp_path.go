package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathkit/pkg/batch"
	"github.com/MacroPower/pathkit/pkg/pathutil"
)

// NewTempPathCmd returns the temp-path command.
func NewTempPathCmd(args *RootArgs) *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "temp-path <root> <key>...",
		Short: "Allocate a path beneath root for each key",
		Long: `Allocate a path beneath root for each key. Nothing is created on disk.

By default each key gets a random UUID name. With --static, the name is the
URL-safe base64 encoding of the key, so the same key always maps to the same
path. Static names must be valid file names on the selected platform.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			p, err := args.GetPlatform()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			format, err := ParseOutputFormat(args.GetOutput())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			root := posArgs[0]

			var tp pathutil.TempPaths = pathutil.NewRandomizedTempPaths(root)
			if static {
				tp = pathutil.NewStaticTempPaths(root, pathutil.NewBase64PathEncoder(), p)
			}

			results := make([]batch.Result, 0, len(posArgs)-1)
			for _, key := range posArgs[1:] {
				path, err := tp.GetPath(key)
				if err != nil {
					return err
				}

				results = append(results, batch.Result{ID: key, Op: "temp_path", Value: path})
			}

			return newPrinter(cc.OutOrStdout(), format).PrintResults(results)
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "Derive names from the keys instead of generating them")

	return cmd
}
