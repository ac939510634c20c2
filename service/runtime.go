package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/classifier"
	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/internal/dashboard"
	"github.com/ludo-technologies/empdash/internal/events"
	"github.com/ludo-technologies/empdash/internal/markup"
	"github.com/ludo-technologies/empdash/internal/plot"
)

// Runtime holds the long-lived objects built from a Config: the data
// source, the classifier and the report tree. It is shared by every
// request and command.
type Runtime struct {
	Config     *config.Config
	Source     events.Source
	Adapters   *events.Provider
	Classifier domain.Classifier
	Reports    *ReportService
	Logger     zerolog.Logger

	close func()
}

// NewRuntime opens the configured data source and loads the classifier.
func NewRuntime(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Runtime, error) {
	source, closeSource, err := OpenSource(ctx, cfg.Data)
	if err != nil {
		return nil, err
	}

	model, err := LoadClassifier(cfg.Model)
	if err != nil {
		closeSource()
		return nil, err
	}

	reports, err := NewReportServiceFromConfig(cfg, model)
	if err != nil {
		closeSource()
		return nil, err
	}

	logger.Debug().
		Str("source", cfg.Data.Source).
		Str("charts", cfg.Charts.Format).
		Msg("runtime ready")

	return &Runtime{
		Config:     cfg,
		Source:     source,
		Adapters:   events.NewProvider(source),
		Classifier: model,
		Reports:    reports,
		Logger:     logger,
		close:      closeSource,
	}, nil
}

// Close releases the data source.
func (r *Runtime) Close() {
	if r.close != nil {
		r.close()
	}
}

// Handler builds the HTTP handler over this runtime.
func (r *Runtime) Handler() *Handler {
	return NewHandler(HandlerOptions{
		Reports:     r.Reports,
		Adapters:    r.Adapters,
		Logger:      r.Logger,
		ProxyPrefix: r.Config.Server.ProxyPrefix,
	})
}

// OpenSource opens the data source selected by cfg. The returned func
// releases it.
func OpenSource(ctx context.Context, cfg config.DataConfig) (events.Source, func(), error) {
	switch cfg.Source {
	case config.SourceFixtures:
		src, err := events.LoadFixtures(cfg.Fixtures...)
		if err != nil {
			return nil, nil, domain.NewConfigError("failed to load fixtures", err)
		}
		return src, func() {}, nil
	case config.SourcePostgres:
		pool, err := events.OpenPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, domain.NewUpstreamError("failed to connect to database", err)
		}
		return events.NewPostgresSource(pool), pool.Close, nil
	default:
		return nil, nil, domain.NewConfigError(fmt.Sprintf("unknown data source %q", cfg.Source), nil)
	}
}

// LoadClassifier loads the configured model or falls back to the built-in one.
func LoadClassifier(cfg config.ModelConfig) (*classifier.Logistic, error) {
	if cfg.Path == "" {
		return classifier.Default(), nil
	}
	return classifier.Load(cfg.Path)
}

// NewReportServiceFromConfig assembles the report tree and document shell.
func NewReportServiceFromConfig(cfg *config.Config, model domain.Classifier) (*ReportService, error) {
	format, err := plot.ParseFormat(cfg.Charts.Format)
	if err != nil {
		return nil, domain.NewConfigError("invalid chart format", err)
	}

	report, err := dashboard.New(dashboard.Options{
		ProxyPrefix: cfg.Server.ProxyPrefix,
		Backend:     plot.NewBackend(format, cfg.Charts.Width, cfg.Charts.Height),
		Classifier:  model,
	})
	if err != nil {
		return nil, err
	}

	return NewReportService(report, markup.Page{
		Stylesheets: cfg.Server.Stylesheets,
		Scripts:     cfg.Server.Scripts,
	}), nil
}
