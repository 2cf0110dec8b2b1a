package cli

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/contractcfg/internal/app"
)

// Build information reported by --version. Both are overridden at link time
// with -ldflags "-X".
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError wraps err as an exit code 2 failure.
func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(err)
	}
	return nil
}

// failure wraps err as an exit code 1 failure, keeping existing exit errors.
func failure(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: 1, Message: err.Error()}
}

// state is shared between the root command and its subcommands.
type state struct {
	errW io.Writer
	app  *app.App
	cfg  app.Config
}

// NewRootCommand builds the command tree. Command output goes to outW, logs
// and errors to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	st := &state{errW: errW}

	rootCmd := &cobra.Command{
		Use:   "contractcfg",
		Short: "Inspect and validate smart-contract toolchain configuration",
		Long: `contractcfg loads the project's toolchain descriptor (toolchain.hcl,
toolchain.json or toolchain.yaml): the plugins to activate, the Solidity
compiler releases and settings, and where contract sources live.

Without a toolchain file the built-in descriptor is used.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(st.cfg)
			if err != nil {
				return usageError(err)
			}
			st.app = app.NewApp(st.errW, cfg)
			return nil
		},
	}
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&st.cfg.ConfigPath, "config", "c", "", "Toolchain file (default: discover toolchain.{hcl,json,yaml,yml} in the project root)")
	flags.StringVar(&st.cfg.Root, "root", "", "Project root (default: directory of the toolchain file)")
	flags.StringVar(&st.cfg.LogLevel, "log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&st.cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	rootCmd.AddCommand(newShowCommand(st))
	rootCmd.AddCommand(newValidateCommand(st))
	rootCmd.AddCommand(newInitCommand(st))
	rootCmd.AddCommand(newPluginsCommand(st))
	rootCmd.AddCommand(newSettingsCommand(st))
	rootCmd.AddCommand(newSourcesCommand(st))

	return rootCmd
}

// Run executes the command line given by args. Errors are always *ExitError.
func Run(args []string, outW, errW io.Writer) error {
	rootCmd := NewRootCommand(outW, errW)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		// Unknown subcommands are reported by cobra before any validator runs.
		if strings.HasPrefix(err.Error(), "unknown command ") {
			return usageError(err)
		}
		return failure(err)
	}
	return nil
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
