package commands

import (
	"ctest/internal/config"
	"ctest/internal/registry"
	"ctest/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	registry *registry.Registry
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, reg *registry.Registry) *ListCommand {
	return &ListCommand{
		config:   cfg,
		registry: reg,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	names := registry.FilterByName(lc.registry.Names(), lc.config.Filter)

	if len(names) == 0 {
		warn := color.New(color.FgYellow)
		if lc.config.NoColor || !ui.IsTerminal(cmd.OutOrStdout()) {
			warn.DisableColor()
		}
		warn.Fprintln(cmd.OutOrStdout(), "No tests found")
		return nil
	}

	ui.PrintTestList(cmd.OutOrStdout(), names, lc.config.NoColor)
	return nil
}
