package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand(st *state) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded toolchain descriptor",
		Long: `Print the loaded toolchain descriptor.

With --format hcl, json or yaml the output is a toolchain file that loads back
into the same descriptor.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := st.app.Load(cmd.Context())
			if err != nil {
				return failure(err)
			}

			if format == "text" {
				return renderProject(cmd.OutOrStdout(), project)
			}

			codec, err := st.app.Loader().Codec(format)
			if err != nil {
				return usageError(fmt.Errorf("invalid format: %w", err))
			}
			out, err := codec.Encode(project.Descriptor)
			if err != nil {
				return failure(err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format. Options: 'text', 'hcl', 'json', 'yaml'.")
	return cmd
}
