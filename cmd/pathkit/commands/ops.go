package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathkit/pkg/batch"
)

// opCommand maps a subcommand to a [batch] operation.
type opCommand struct {
	use   string
	short string
	op    string
	args  cobra.PositionalArgs
}

var opCommands = []opCommand{
	{
		use:   "root <path>",
		short: "Print the root of a path (drive, UNC share, URI authority or separator)",
		op:    "root",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "normalize <path>",
		short: "Collapse dot segments and separators of a path",
		op:    "normalize",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "join [part...]",
		short: "Join path parts with / and collapse dot segments",
		op:    "join",
		args:  cobra.ArbitraryArgs,
	},
	{
		use:   "relative <from> <to>",
		short: "Print the relative path from one path to another",
		op:    "relative",
		args:  cobra.ExactArgs(2),
	},
	{
		use:   "contains <path> <candidate>",
		short: "Report whether candidate is equal to or a parent of path",
		op:    "is_equal_or_parent",
		args:  cobra.ExactArgs(2),
	},
	{
		use:   "valid <name>",
		short: "Report whether name is a valid file name",
		op:    "is_valid_basename",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "dirname <path>",
		short: "Print everything before the last separator",
		op:    "dirname",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "basename <path>",
		short: "Print the last segment of a path",
		op:    "basename",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "extname <path>",
		short: "Print the extension of the last segment of a path",
		op:    "extname",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "abs <path>",
		short: "Report whether a path is absolute",
		op:    "is_absolute",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "unc <path>",
		short: "Report whether a path is a UNC path",
		op:    "is_unc",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "dotted <path>",
		short: "Report whether a path starts with a dot segment",
		op:    "is_relative",
		args:  cobra.ExactArgs(1),
	},
	{
		use:   "make-absolute <path>",
		short: "Prefix a path with a separator unless it is already rooted",
		op:    "make_absolute",
		args:  cobra.ExactArgs(1),
	},
}

func (oc opCommand) command(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   oc.use,
		Short: oc.short,
		Args:  oc.args,
		RunE: func(cc *cobra.Command, posArgs []string) error {
			p, err := args.GetPlatform()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			format, err := ParseOutputFormat(args.GetOutput())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			value, err := batch.Call(p, args.GetNative(), oc.op, posArgs...)
			if err != nil {
				return fmt.Errorf("%s: %w", oc.op, err)
			}

			return newPrinter(cc.OutOrStdout(), format).PrintResult(batch.Result{Op: oc.op, Value: value})
		},
	}
}
