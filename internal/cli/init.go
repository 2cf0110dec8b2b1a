package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/loader"
)

func newInitCommand(st *state) *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in descriptor to a toolchain file",
		Long: `Write the built-in descriptor to toolchain.<ext> in the project root.

With --config the descriptor is written to that path instead, in the format
its extension names.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := st.app.Loader().Codec(format)
			if err != nil {
				return usageError(fmt.Errorf("invalid format: %w", err))
			}

			path := st.cfg.ConfigPath
			if path != "" {
				// The file extension decides the format; an explicit
				// --format must agree with it.
				pathCodec, err := st.app.Loader().CodecFor(path)
				if err != nil {
					return usageError(err)
				}
				if cmd.Flags().Changed("format") && pathCodec.Name() != codec.Name() {
					return usageError(fmt.Errorf("--format %s does not match the extension of %s", format, path))
				}
			} else {
				dir := st.cfg.Root
				if dir == "" {
					if dir, err = os.Getwd(); err != nil {
						return failure(err)
					}
				}
				path = filepath.Join(dir, loader.BaseName+codec.Extensions()[0])
			}

			ctx := st.app.Context(cmd.Context())
			if err := st.app.Loader().Write(ctx, path, config.Default(), force); err != nil {
				return failure(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "hcl", "File format. Options: 'hcl', 'json', 'yaml'.")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing toolchain file")
	return cmd
}
