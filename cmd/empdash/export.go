package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/empdash/app"
	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/service"
)

// ExportCommand represents the export command
type ExportCommand struct {
	profiles       []string
	outputDir      string
	maxConcurrency int
	proxyPrefix    string
	data           dataFlags
}

// NewExportCommand creates a new export command
func NewExportCommand() *ExportCommand {
	return &ExportCommand{
		profiles:       []string{domain.ModelNameEmployee, domain.ModelNameTeam},
		outputDir:      config.DefaultOutputDirectory,
		maxConcurrency: config.DefaultMaxConcurrency,
	}
}

// CreateCobraCommand creates the cobra command for exporting all reports
func (e *ExportCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every report into a directory",
		Long: `Render the report of every selectable employee and team.

Files are named <profile>-<id>.html. Reports are rendered concurrently;
a failing report is listed in the summary and does not stop the others.

Examples:
  # Export everything into ./reports
  empdash export

  # Export only team reports with 8 workers
  empdash export --profile team --concurrency 8 --output-dir site`,
		Args: cobra.NoArgs,
		RunE: e.runExport,
	}

	cmd.Flags().StringSliceVar(&e.profiles, "profile", e.profiles, "Profile types to export (employee, team)")
	cmd.Flags().StringVar(&e.outputDir, config.FlagOutputDir, e.outputDir, "Output directory")
	cmd.Flags().IntVar(&e.maxConcurrency, config.FlagMaxConcurrency, e.maxConcurrency, "Maximum concurrent renders (0 for no limit)")
	cmd.Flags().StringVar(&e.proxyPrefix, config.FlagProxyPrefix, "", "Path prefix used in form actions")
	e.data.register(cmd.Flags())

	return cmd
}

// runExport executes the export command
func (e *ExportCommand) runExport(cmd *cobra.Command, args []string) error {
	var profiles []domain.ProfileType
	for _, raw := range e.profiles {
		p, err := domain.ParseProfileType(raw)
		if err != nil {
			return reportError(cmd, err)
		}
		profiles = append(profiles, p)
	}

	o := config.Overrides{OutputDir: e.outputDir, MaxConcurrency: e.maxConcurrency, ProxyPrefix: e.proxyPrefix}
	e.data.apply(&o)

	rt, err := openRuntime(cmd.Context(), cmd, o)
	if err != nil {
		return reportError(cmd, err)
	}
	defer rt.Close()

	progress := service.NewProgressManager()
	progress.SetWriter(cmd.ErrOrStderr())

	useCase, err := app.NewExportUseCaseBuilder().
		WithRenderer(rt.Reports).
		WithAdapters(rt.Adapters).
		WithProgress(progress).
		BuildWithDefaults()
	if err != nil {
		return err
	}

	start := time.Now()
	summary, err := useCase.Execute(cmd.Context(), domain.ExportRequest{
		Profiles:       profiles,
		OutputDir:      rt.Config.Output.Directory,
		MaxConcurrency: rt.Config.Output.MaxConcurrency,
		Timeout:        time.Duration(rt.Config.Output.TimeoutSeconds) * time.Second,
	})
	if summary != nil {
		printExportSummary(cmd, summary, time.Since(start))
	}
	if err != nil {
		rt.Logger.Error().Err(err).Msg("export incomplete")
	}
	return reportError(cmd, err)
}

func printExportSummary(cmd *cobra.Command, summary *domain.ExportSummary, elapsed time.Duration) {
	utils := service.NewFormatUtils()
	w := cmd.OutOrStdout()

	fmt.Fprint(w, utils.FormatMainHeader("Export Summary"))
	fmt.Fprint(w, utils.FormatLabel("Reports", summary.Total))
	fmt.Fprint(w, utils.FormatLabel("Written", len(summary.Written)))
	fmt.Fprint(w, utils.FormatLabel("Failed", len(summary.Failures)))
	fmt.Fprint(w, utils.FormatLabel("Duration", elapsed.Round(time.Millisecond)))

	if len(summary.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprint(w, utils.FormatTableHeader("PROFILE ", "ID    ", "ERROR"))
		for _, f := range summary.Failures {
			fmt.Fprintf(w, "%-8s  %-6s  %v\n", f.Profile, f.ID, f.Err)
		}
	}
}

// NewExportCmd creates and returns the export cobra command
func NewExportCmd() *cobra.Command {
	return NewExportCommand().CreateCobraCommand()
}
