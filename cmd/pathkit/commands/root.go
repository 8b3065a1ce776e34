package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/pathkit/pkg/log"
	"github.com/MacroPower/pathkit/pkg/version"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVarP(args.platform, "platform", "p", "",
		"Path semantics to use (linux, darwin, windows); defaults to the current OS")
	cmd.PersistentFlags().StringVarP(args.output, "output", "o", "text", "Set the output format (text, json, yaml)")
	cmd.PersistentFlags().BoolVar(args.native, "native", false,
		"Use the native separator when normalizing Windows paths")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var merr error

		if _, err := args.GetPlatform(); err != nil {
			merr = multierror.Append(merr, err)
		}

		if _, err := ParseOutputFormat(args.GetOutput()); err != nil {
			merr = multierror.Append(merr, err)
		}

		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %w", ErrLogHandlerFailed, err))
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		return nil
	}

	for _, oc := range opCommands {
		cmd.AddCommand(oc.command(args))
	}

	cmd.AddCommand(NewBatchCmd(args))
	cmd.AddCommand(NewResolveCmd(args))
	cmd.AddCommand(NewTempPathCmd(args))
	cmd.AddCommand(NewSchemaCmd(args))
	cmd.AddCommand(NewRunCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
