package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ludo-technologies/empdash/domain"
)

// RenderUseCase renders one report document and writes it out
type RenderUseCase struct {
	renderer domain.ReportRenderer
	adapters domain.AdapterProvider
	writer   domain.ReportWriter
}

// NewRenderUseCase creates a new render use case
func NewRenderUseCase(
	renderer domain.ReportRenderer,
	adapters domain.AdapterProvider,
	writer domain.ReportWriter,
) *RenderUseCase {
	return &RenderUseCase{
		renderer: renderer,
		adapters: adapters,
		writer:   writer,
	}
}

// Execute renders the requested report and hands it to the report writer
func (uc *RenderUseCase) Execute(ctx context.Context, req domain.RenderRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return domain.NewInvalidInputError("invalid request", err)
	}

	model, err := uc.adapters.Adapter(req.Profile)
	if err != nil {
		return err
	}

	doc, err := uc.renderer.Render(ctx, req.ID, model)
	if err != nil {
		return err
	}

	return uc.writer.Write(req.OutputWriter, req.OutputPath, domain.OutputFormatHTML, req.NoOpen, func(w io.Writer) error {
		_, err := w.Write(doc)
		return err
	})
}

// validateRequest validates the render request
func (uc *RenderUseCase) validateRequest(req domain.RenderRequest) error {
	if _, err := domain.ParseProfileType(string(req.Profile)); err != nil {
		return err
	}
	if !req.ID.IsSet() {
		return fmt.Errorf("entity id is required")
	}
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return nil
}

// RenderUseCaseBuilder provides a builder pattern for creating RenderUseCase
type RenderUseCaseBuilder struct {
	renderer domain.ReportRenderer
	adapters domain.AdapterProvider
	writer   domain.ReportWriter
}

// NewRenderUseCaseBuilder creates a new builder
func NewRenderUseCaseBuilder() *RenderUseCaseBuilder {
	return &RenderUseCaseBuilder{}
}

// WithRenderer sets the report renderer
func (b *RenderUseCaseBuilder) WithRenderer(renderer domain.ReportRenderer) *RenderUseCaseBuilder {
	b.renderer = renderer
	return b
}

// WithAdapters sets the adapter provider
func (b *RenderUseCaseBuilder) WithAdapters(adapters domain.AdapterProvider) *RenderUseCaseBuilder {
	b.adapters = adapters
	return b
}

// WithWriter sets the report writer
func (b *RenderUseCaseBuilder) WithWriter(writer domain.ReportWriter) *RenderUseCaseBuilder {
	b.writer = writer
	return b
}

// Build creates the RenderUseCase with the configured dependencies
func (b *RenderUseCaseBuilder) Build() (*RenderUseCase, error) {
	if b.renderer == nil {
		return nil, fmt.Errorf("report renderer is required")
	}
	if b.adapters == nil {
		return nil, fmt.Errorf("adapter provider is required")
	}
	if b.writer == nil {
		return nil, fmt.Errorf("report writer is required")
	}
	return NewRenderUseCase(b.renderer, b.adapters, b.writer), nil
}
