package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vk/contractcfg/internal/solc"
)

func newSettingsCommand(st *state) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the compiler's standard-JSON input settings",
		Long: `Print the standard-JSON input (without sources) the compiler receives for
the primary compiler entry, or for the entry that builds --file.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := st.app.Load(cmd.Context())
			if err != nil {
				return failure(err)
			}

			c := project.Descriptor.Compiler()
			if file != "" {
				c = project.Descriptor.CompilerFor(file)
			}
			if c == nil {
				return failure(errors.New("no compiler declared in solidity.compilers"))
			}

			out, err := solc.MarshalInput(*c)
			if err != nil {
				return failure(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Source file (relative to the project root) to resolve overrides for")
	return cmd
}
