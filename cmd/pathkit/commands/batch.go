package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathkit/pkg/batch"
)

// NewBatchCmd returns the batch command.
func NewBatchCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Evaluate path operations from a YAML or JSON file",
		Long: `Evaluate path operations from a YAML or JSON file, or stdin if no file
or "-" is given. The platform and native fields of the file take precedence
over the --platform and --native flags. Without either, the platform is linux.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			format, err := ParseOutputFormat(args.GetOutput())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			var r io.Reader = cc.InOrStdin()

			if len(posArgs) == 1 && posArgs[0] != "-" {
				f, err := os.Open(posArgs[0])
				if err != nil {
					return fmt.Errorf("open batch file: %w", err)
				}
				defer f.Close() //nolint:errcheck // Read only.

				r = f
			}

			req, err := batch.Decode(r)
			if err != nil {
				return err
			}

			// Documents without a platform are evaluated for linux unless the
			// flag was given, so results do not depend on the host.
			if req.Platform == "" && cc.Flags().Changed("platform") {
				p, err := args.GetPlatform()
				if err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
				}

				req.Platform = p.String()
			}

			req.Native = req.Native || args.GetNative()

			results, runErr := batch.NewEvaluator(slog.Default()).Run(cc.Context(), req)
			if results == nil {
				return runErr
			}

			if err := newPrinter(cc.OutOrStdout(), format).PrintResults(results); err != nil {
				return err
			}

			return runErr
		},
	}

	return cmd
}
