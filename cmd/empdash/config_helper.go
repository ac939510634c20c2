package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/internal/logging"
	"github.com/ludo-technologies/empdash/service"
)

// globalOptions are the persistent flags shared by every command
var globalOptions struct {
	configFile string
	logLevel   string
	logFormat  string
}

func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&globalOptions.configFile, "config", "c", "", "Configuration file path")
	fs.StringVar(&globalOptions.logLevel, config.FlagLogLevel, config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&globalOptions.logFormat, config.FlagLogFormat, config.DefaultLogFormat, "Log format (auto, console, json)")
}

// dataFlags selects where report data comes from
type dataFlags struct {
	source      string
	fixtures    []string
	dsn         string
	model       string
	chartFormat string
}

func (d *dataFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&d.source, config.FlagDataSource, config.SourceFixtures, "Data source (fixtures, postgres)")
	fs.StringSliceVar(&d.fixtures, config.FlagFixtures, config.DefaultFixtures, "Fixture file glob patterns")
	fs.StringVar(&d.dsn, config.FlagDSN, "", "PostgreSQL connection string")
	fs.StringVar(&d.model, config.FlagModel, "", "Classifier coefficients file (YAML or JSON)")
	fs.StringVar(&d.chartFormat, config.FlagChartFormat, config.DefaultChartFormat, "Chart image format (png, svg)")
}

func (d *dataFlags) apply(o *config.Overrides) {
	o.DataSource = d.source
	o.Fixtures = d.fixtures
	o.DSN = d.dsn
	o.ModelPath = d.model
	o.ChartFormat = d.chartFormat
}

// GetExplicitFlags extracts which flags were explicitly set from a cobra command
func GetExplicitFlags(cmd *cobra.Command) map[string]bool {
	explicitFlags := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			explicitFlags[f.Name] = true
		})
	}
	return explicitFlags
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(cmd *cobra.Command, o config.Overrides) (*config.Config, error) {
	cfg, err := config.LoadConfig(globalOptions.configFile)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}

	o.LogLevel = globalOptions.logLevel
	o.LogFormat = globalOptions.logFormat
	ft := config.NewFlagTrackerFromFlagSet(cmd.Flags())
	if err := cfg.ApplyOverrides(ft, o); err != nil {
		return nil, domain.NewConfigError("invalid configuration", err)
	}
	return cfg, nil
}

// newLogger builds the command logger; logs always go to stderr
func newLogger(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}

// openRuntime loads configuration and opens the data source and classifier
func openRuntime(ctx context.Context, cmd *cobra.Command, o config.Overrides) (*service.Runtime, error) {
	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, domain.NewConfigError("invalid logging configuration", err)
	}
	if GetExplicitFlags(cmd)["config"] {
		logger.Debug().Str("path", globalOptions.configFile).Msg("using configuration file")
	}
	return service.NewRuntime(logging.WithLogger(ctx, logger), cfg, logger)
}

// reportError prints the error category with recovery suggestions.
// Cobra prints the error itself.
func reportError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)

	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "%s\n", categorized.Category)
	if suggestions := categorizer.GetRecoverySuggestions(categorized.Category); len(suggestions) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range suggestions {
			fmt.Fprintf(w, "  • %s\n", s)
		}
	}
	return err
}
