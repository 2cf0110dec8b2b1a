package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vk/contractcfg/internal/plugin"
)

func newPluginsCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the activated plugins in order",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := st.app.Load(cmd.Context())
			if err != nil {
				return failure(err)
			}
			plugins, err := st.app.Registry().Resolve(st.app.Context(cmd.Context()), project.Descriptor.Plugins)
			if err != nil {
				return failure(err)
			}
			plugins, err = plugin.ActivationOrder(plugins)
			if err != nil {
				return failure(err)
			}

			out := cmd.OutOrStdout()
			for i, p := range plugins {
				fmt.Fprintf(out, "%d. %s (%s)\n", i+1, p.ID, p.Package)
			}
			return nil
		},
	}
}
