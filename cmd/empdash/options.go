package main

import (
	"github.com/spf13/cobra"

	"github.com/ludo-technologies/empdash/app"
	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/service"
)

// OptionsCommand represents the options command
type OptionsCommand struct {
	json bool
	yaml bool
	data dataFlags
}

// NewOptionsCommand creates a new options command
func NewOptionsCommand() *OptionsCommand {
	return &OptionsCommand{}
}

// CreateCobraCommand creates the cobra command for listing selector options
func (c *OptionsCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options <employee|team>",
		Short: "List the selectable employees or teams",
		Long: `List the ids and labels the dashboard selector offers for a profile type.

Examples:
  # Table output
  empdash options employee

  # JSON output for scripts
  empdash options team --json`,
		Args: cobra.ExactArgs(1),
		RunE: c.runOptions,
	}

	cmd.Flags().BoolVar(&c.json, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output YAML")
	c.data.register(cmd.Flags())

	return cmd
}

// runOptions executes the options command
func (c *OptionsCommand) runOptions(cmd *cobra.Command, args []string) error {
	profile, err := domain.ParseProfileType(args[0])
	if err != nil {
		return reportError(cmd, err)
	}
	format, _, err := service.NewOutputFormatResolver().Determine(c.json, c.yaml)
	if err != nil {
		return err
	}

	var o config.Overrides
	c.data.apply(&o)

	rt, err := openRuntime(cmd.Context(), cmd, o)
	if err != nil {
		return reportError(cmd, err)
	}
	defer rt.Close()

	useCase, err := app.NewOptionsUseCaseBuilder().
		WithAdapters(rt.Adapters).
		WithFormatter(service.NewOptionsFormatter()).
		Build()
	if err != nil {
		return err
	}

	return reportError(cmd, useCase.Execute(cmd.Context(), domain.OptionsRequest{
		Profile:      profile,
		OutputFormat: format,
		OutputWriter: cmd.OutOrStdout(),
	}))
}

// NewOptionsCmd creates and returns the options cobra command
func NewOptionsCmd() *cobra.Command {
	return NewOptionsCommand().CreateCobraCommand()
}
