package commands

import (
	"errors"
	"io"

	"ctest/internal/cli"
	"ctest/internal/config"
	"ctest/internal/execution"
	"ctest/internal/registry"
	"ctest/internal/ui"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree that runs and lists reg.
func NewRootCommand(reg *registry.Registry, version string, flags *cli.Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ctest",
		Short:         "Run a registered test suite",
		Long:          `Run every registered test case in declaration order, report each failed assertion and print a pass/fail summary with timing.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	cmds := NewCommands(cfg, reg)
	cmds.Register(rootCmd, flags, cfg)
	return rootCmd
}

// Execute runs the command line against reg and returns the process exit
// code: 0 when every test passed, 1 otherwise.
func Execute(reg *registry.Registry, version string, args []string, stdout, stderr io.Writer) int {
	var flags cli.Flags
	rootCmd := NewRootCommand(reg, version, &flags)
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrTestsFailed), errors.Is(err, execution.ErrNoTests):
		// Already reported by the console
		return 1
	default:
		ui.NewConsole(stdout, stderr, ui.ConsoleOptions{NoColor: flags.NoColor}).Error(err)
		return 1
	}
}
