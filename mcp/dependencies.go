package mcp

import (
	"github.com/ludo-technologies/empdash/app"
	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	renderer   domain.ReportRenderer
	adapters   domain.AdapterProvider
	classifier domain.Classifier
	writer     domain.ReportWriter
}

// NewDependencies wires the handlers to an opened runtime.
func NewDependencies(rt *service.Runtime) *Dependencies {
	return &Dependencies{
		renderer:   rt.Reports,
		adapters:   rt.Adapters,
		classifier: rt.Classifier,
		writer:     service.NewFileOutputWriter(nil),
	}
}

// BuildRenderUseCase assembles a RenderUseCase with injected dependencies.
func (d *Dependencies) BuildRenderUseCase() (*app.RenderUseCase, error) {
	return app.NewRenderUseCaseBuilder().
		WithRenderer(d.renderer).
		WithAdapters(d.adapters).
		WithWriter(d.writer).
		Build()
}

// BuildOptionsUseCase assembles an OptionsUseCase with injected dependencies.
func (d *Dependencies) BuildOptionsUseCase() (*app.OptionsUseCase, error) {
	return app.NewOptionsUseCaseBuilder().
		WithAdapters(d.adapters).
		WithFormatter(service.NewOptionsFormatter()).
		Build()
}

// BuildRiskUseCase assembles a RiskUseCase with injected dependencies.
func (d *Dependencies) BuildRiskUseCase() (*app.RiskUseCase, error) {
	return app.NewRiskUseCaseBuilder().
		WithAdapters(d.adapters).
		WithClassifier(d.classifier).
		Build()
}
