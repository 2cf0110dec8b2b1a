package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSourcesCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List Solidity sources and the compiler release building each",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := st.app.Load(cmd.Context())
			if err != nil {
				return failure(err)
			}
			sources, err := st.app.Sources(cmd.Context(), project)
			if err != nil {
				return failure(err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range sources {
				version := "-"
				if s.Compiler != nil {
					version = s.Compiler.Version
				}
				fmt.Fprintf(tw, "%s\t%s\n", s.Path, version)
			}
			return tw.Flush()
		},
	}
}
