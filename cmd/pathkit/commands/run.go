package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"kcl-lang.io/kcl-go/pkg/native"
	"kcl-lang.io/kcl-go/pkg/spec/gpyrpc"
)

var ErrKCLExecutionFailed = errors.New("kcl execution failed")

// NewRunCmd returns the run command, which evaluates KCL files that may
// import kcl_plugin.path.
func NewRunCmd(args *RootArgs) *cobra.Command {
	var workDir string

	cmd := &cobra.Command{
		Use:   "run <file.k>...",
		Short: "Evaluate KCL files with the path plugin available",
		Long: `Evaluate KCL files with the path plugin available. The plugin is
imported with "import kcl_plugin.path" unless PATHKIT_PATH_PLUGIN_DISABLED
is set to true.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, files []string) error {
			format, err := ParseOutputFormat(args.GetOutput())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			slog.Debug("running kcl",
				slog.Any("files", files),
				slog.String("work_dir", workDir),
			)

			svc := native.NewNativeServiceClient()

			out, err := svc.ExecProgram(&gpyrpc.ExecProgramArgs{
				WorkDir:       workDir,
				KFilenameList: files,
			})
			if err != nil {
				return fmt.Errorf("%w: %w", ErrKCLExecutionFailed, err)
			}

			if msg := out.GetErrMessage(); msg != "" {
				return fmt.Errorf("%w: %s", ErrKCLExecutionFailed, msg)
			}

			result := out.GetYamlResult()
			if format == OutputJSON {
				result = out.GetJsonResult() + "\n"
			}

			_, err = fmt.Fprint(cc.OutOrStdout(), result)
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&workDir, "work_dir", "", "Working directory for resolving KCL imports")
	must(cmd.MarkFlagDirname("work_dir"))

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
