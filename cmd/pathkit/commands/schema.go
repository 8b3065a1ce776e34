package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/MacroPower/pathkit/pkg/batch"
)

// NewSchemaCmd returns the schema command.
func NewSchemaCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of batch files",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			format, err := ParseOutputFormat(args.GetOutput())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			b, err := json.MarshalIndent(batch.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal json schema: %w", err)
			}

			if format == OutputYAML {
				b, err = yaml.JSONToYAML(b)
				if err != nil {
					return fmt.Errorf("failed to convert json schema to yaml: %w", err)
				}
			} else {
				b = append(b, '\n')
			}

			_, err = cc.OutOrStdout().Write(b)
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
	}
}
