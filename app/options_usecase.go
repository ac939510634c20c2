package app

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/component"
)

// OptionsUseCase lists the entities a profile's selector offers
type OptionsUseCase struct {
	adapters  domain.AdapterProvider
	formatter domain.OptionsFormatter
}

// NewOptionsUseCase creates a new options use case
func NewOptionsUseCase(adapters domain.AdapterProvider, formatter domain.OptionsFormatter) *OptionsUseCase {
	return &OptionsUseCase{
		adapters:  adapters,
		formatter: formatter,
	}
}

// List returns the options in selector order, each pair as (value, label)
func (uc *OptionsUseCase) List(ctx context.Context, profile domain.ProfileType) ([]domain.Option, error) {
	model, err := uc.adapters.Adapter(profile)
	if err != nil {
		return nil, err
	}
	return component.Dropdown{}.Options(ctx, domain.NoEntity, model)
}

// Execute lists the options and writes them in the requested format
func (uc *OptionsUseCase) Execute(ctx context.Context, req domain.OptionsRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return domain.NewInvalidInputError("invalid request", err)
	}

	options, err := uc.List(ctx, req.Profile)
	if err != nil {
		return err
	}

	return uc.formatter.Write(req.Profile, options, req.OutputFormat, req.OutputWriter)
}

// validateRequest validates the options request
func (uc *OptionsUseCase) validateRequest(req domain.OptionsRequest) error {
	if _, err := domain.ParseProfileType(string(req.Profile)); err != nil {
		return err
	}
	if req.OutputWriter == nil {
		return fmt.Errorf("output writer is required")
	}
	return nil
}

// OptionsUseCaseBuilder provides a builder pattern for creating OptionsUseCase
type OptionsUseCaseBuilder struct {
	adapters  domain.AdapterProvider
	formatter domain.OptionsFormatter
}

// NewOptionsUseCaseBuilder creates a new builder
func NewOptionsUseCaseBuilder() *OptionsUseCaseBuilder {
	return &OptionsUseCaseBuilder{}
}

// WithAdapters sets the adapter provider
func (b *OptionsUseCaseBuilder) WithAdapters(adapters domain.AdapterProvider) *OptionsUseCaseBuilder {
	b.adapters = adapters
	return b
}

// WithFormatter sets the options formatter
func (b *OptionsUseCaseBuilder) WithFormatter(formatter domain.OptionsFormatter) *OptionsUseCaseBuilder {
	b.formatter = formatter
	return b
}

// Build creates the OptionsUseCase with the configured dependencies
func (b *OptionsUseCaseBuilder) Build() (*OptionsUseCase, error) {
	if b.adapters == nil {
		return nil, fmt.Errorf("adapter provider is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("options formatter is required")
	}
	return NewOptionsUseCase(b.adapters, b.formatter), nil
}
