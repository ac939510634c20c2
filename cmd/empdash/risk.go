package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/empdash/app"
	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/service"
)

// riskOutput is the structured form of the risk command's result
type riskOutput struct {
	app.RiskResult `yaml:",inline"`
	Level          service.RiskLevel `json:"level" yaml:"level"`
}

// RiskCommand represents the risk command
type RiskCommand struct {
	json bool
	yaml bool
	data dataFlags
}

// NewRiskCommand creates a new risk command
func NewRiskCommand() *RiskCommand {
	return &RiskCommand{}
}

// CreateCobraCommand creates the cobra command for risk prediction
func (c *RiskCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk <employee|team> <id>",
		Short: "Print the predicted recruitment risk",
		Long: `Print the recruitment risk the dashboard's risk chart would show.

A team's risk is the mean of its members' predicted probabilities.

Examples:
  empdash risk employee 1
  empdash risk team 1 --json`,
		Args: cobra.ExactArgs(2),
		RunE: c.runRisk,
	}

	cmd.Flags().BoolVar(&c.json, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Output YAML")
	c.data.register(cmd.Flags())

	return cmd
}

// runRisk executes the risk command
func (c *RiskCommand) runRisk(cmd *cobra.Command, args []string) error {
	profile, err := domain.ParseProfileType(args[0])
	if err != nil {
		return reportError(cmd, err)
	}
	id, err := domain.ParseEntityID(args[1])
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

	useCase, err := app.NewRiskUseCaseBuilder().
		WithAdapters(rt.Adapters).
		WithClassifier(rt.Classifier).
		Build()
	if err != nil {
		return err
	}

	result, err := useCase.Execute(cmd.Context(), profile, id)
	if err != nil {
		return reportError(cmd, err)
	}

	out := riskOutput{RiskResult: *result, Level: service.RiskLevelFor(result.Risk)}
	w := cmd.OutOrStdout()
	switch format {
	case domain.OutputFormatJSON:
		return service.WriteJSON(w, out)
	case domain.OutputFormatYAML:
		return service.WriteYAML(w, out)
	default:
		utils := service.NewFormatUtils()
		fmt.Fprint(w, utils.FormatMainHeader("Recruitment Risk"))
		fmt.Fprint(w, utils.FormatLabel("Profile", result.Profile))
		fmt.Fprint(w, utils.FormatLabel("ID", result.ID))
		fmt.Fprint(w, utils.FormatLabel("Risk", fmt.Sprintf("%.3f", result.Risk)))
		fmt.Fprint(w, utils.FormatLabel("Level", out.Level))
		return nil
	}
}

// NewRiskCmd creates and returns the risk cobra command
func NewRiskCmd() *cobra.Command {
	return NewRiskCommand().CreateCobraCommand()
}
