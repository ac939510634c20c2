package main

import (
	"github.com/spf13/cobra"

	"github.com/ludo-technologies/empdash/app"
	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/service"
)

// RenderCommand represents the render command
type RenderCommand struct {
	output      string
	noOpen      bool
	proxyPrefix string
	data        dataFlags
}

// NewRenderCommand creates a new render command
func NewRenderCommand() *RenderCommand {
	return &RenderCommand{}
}

// CreateCobraCommand creates the cobra command for rendering one report
func (r *RenderCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <employee|team> <id>",
		Short: "Render one report to an HTML file",
		Long: `Render a single employee or team report as a standalone HTML document.

Without --output the report is written to the configured output directory
and opened in a browser when running interactively.

Examples:
  # Render employee 1 and open it
  empdash render employee 1

  # Render team 2 to stdout
  empdash render team 2 --output -`,
		Args: cobra.ExactArgs(2),
		RunE: r.runRender,
	}

	cmd.Flags().StringVarP(&r.output, "output", "o", "", "Output file path, or - for stdout")
	cmd.Flags().BoolVar(&r.noOpen, "no-open", false, "Don't open the report in a browser")
	cmd.Flags().StringVar(&r.proxyPrefix, config.FlagProxyPrefix, "", "Path prefix used in form actions")
	r.data.register(cmd.Flags())

	return cmd
}

// runRender executes the render command
func (r *RenderCommand) runRender(cmd *cobra.Command, args []string) error {
	profile, err := domain.ParseProfileType(args[0])
	if err != nil {
		return reportError(cmd, err)
	}
	id, err := domain.ParseEntityID(args[1])
	if err != nil {
		return reportError(cmd, err)
	}

	o := config.Overrides{ProxyPrefix: r.proxyPrefix}
	r.data.apply(&o)

	rt, err := openRuntime(cmd.Context(), cmd, o)
	if err != nil {
		return reportError(cmd, err)
	}
	defer rt.Close()

	req := domain.RenderRequest{
		Profile: profile,
		ID:      id,
		NoOpen:  r.noOpen || !service.IsInteractiveEnvironment(),
	}
	switch r.output {
	case "-":
		req.OutputWriter = cmd.OutOrStdout()
	case "":
		path, err := generateOutputFilePath(rt.Config.Output.Directory, app.ExportFileName(profile, id.String()))
		if err != nil {
			return reportError(cmd, err)
		}
		req.OutputPath = path
	default:
		req.OutputPath = r.output
	}

	useCase, err := app.NewRenderUseCaseBuilder().
		WithRenderer(rt.Reports).
		WithAdapters(rt.Adapters).
		WithWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		Build()
	if err != nil {
		return err
	}

	return reportError(cmd, useCase.Execute(cmd.Context(), req))
}

// NewRenderCmd creates and returns the render cobra command
func NewRenderCmd() *cobra.Command {
	return NewRenderCommand().CreateCobraCommand()
}
