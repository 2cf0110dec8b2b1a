package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the descriptor, its plugins, compilers and sources directory",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := st.app.Load(cmd.Context())
			if err != nil {
				return failure(err)
			}
			if err := st.app.Validate(cmd.Context(), project); err != nil {
				return failure(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
			return nil
		},
	}
}
