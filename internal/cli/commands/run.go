package commands

import (
	"errors"
	"fmt"

	"ctest/internal/config"
	"ctest/internal/execution"
	"ctest/internal/registry"
	"ctest/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	registry *registry.Registry
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, reg *registry.Registry) *RunCommand {
	return &RunCommand{
		config:   cfg,
		registry: reg,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), ui.ConsoleOptions{
		NoColor:  rc.config.NoColor,
		Progress: rc.config.Progress,
	})

	// Filter tests
	reg, err := rc.registry.Select(rc.config.Filter)
	if err != nil {
		return err
	}

	summary, err := execution.NewSequence(console, execution.Options{}).Execute(reg)
	if errors.Is(err, execution.ErrNoTests) {
		console.NoTests()
		return err
	}
	if err != nil {
		return fmt.Errorf("run tests: %w", err)
	}

	if !summary.Success() {
		return ErrTestsFailed
	}
	return nil
}
