package commands

import (
	"errors"

	"ctest/internal/cli"
	"ctest/internal/config"
	"ctest/internal/registry"

	"github.com/spf13/cobra"
)

// ErrTestsFailed is returned by the run command when at least one test failed.
var ErrTestsFailed = errors.New("tests failed")

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, reg *registry.Registry) *Commands {
	return &Commands{
		Run:  NewRunCommand(cfg, reg),
		List: NewListCommand(cfg, reg),
	}
}

// Register registers all commands with cobra. The root command runs the
// tests when no subcommand is given.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file (default "+config.DefaultConfigFile+" when present)")
	rootCmd.PersistentFlags().StringVarP(&flags.Filter, "filter", "f", "", "Run only tests whose name matches the pattern (supports wildcards, e.g. 'parse*' or '*config*')")

	rootCmd.PreRunE = loadConfig
	rootCmd.RunE = c.Run.Execute
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while tests run")

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the registered tests",
		Long:    "Run every registered test in declaration order and print a pass/fail summary",
		RunE:    c.Run.Execute,
		PreRunE: loadConfig,
	}
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while tests run")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered tests",
		Long:    "Print the registered tests in the order they run, without executing them",
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(listCmd)
}
