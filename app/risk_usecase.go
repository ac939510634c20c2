package app

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/component"
)

// RiskResult is the predicted recruitment risk of one entity
type RiskResult struct {
	Profile domain.ProfileType `json:"profile" yaml:"profile"`
	ID      string             `json:"id" yaml:"id"`
	Risk    float64            `json:"risk" yaml:"risk"`
}

// RiskUseCase predicts recruitment risk without rendering a chart
type RiskUseCase struct {
	adapters   domain.AdapterProvider
	classifier domain.Classifier
}

// NewRiskUseCase creates a new risk use case
func NewRiskUseCase(adapters domain.AdapterProvider, classifier domain.Classifier) *RiskUseCase {
	return &RiskUseCase{adapters: adapters, classifier: classifier}
}

// Execute returns the same value the risk chart would plot
func (uc *RiskUseCase) Execute(ctx context.Context, profile domain.ProfileType, id domain.EntityID) (*RiskResult, error) {
	if !id.IsSet() {
		return nil, domain.NewInvalidInputError("entity id is required", nil)
	}
	model, err := uc.adapters.Adapter(profile)
	if err != nil {
		return nil, err
	}
	risk, err := component.NewRiskChart(uc.classifier).Risk(ctx, id, model)
	if err != nil {
		return nil, err
	}
	return &RiskResult{Profile: profile, ID: id.String(), Risk: risk}, nil
}

// RiskUseCaseBuilder provides a builder pattern for creating RiskUseCase
type RiskUseCaseBuilder struct {
	adapters   domain.AdapterProvider
	classifier domain.Classifier
}

// NewRiskUseCaseBuilder creates a new builder
func NewRiskUseCaseBuilder() *RiskUseCaseBuilder {
	return &RiskUseCaseBuilder{}
}

// WithAdapters sets the adapter provider
func (b *RiskUseCaseBuilder) WithAdapters(adapters domain.AdapterProvider) *RiskUseCaseBuilder {
	b.adapters = adapters
	return b
}

// WithClassifier sets the classifier
func (b *RiskUseCaseBuilder) WithClassifier(classifier domain.Classifier) *RiskUseCaseBuilder {
	b.classifier = classifier
	return b
}

// Build creates the RiskUseCase with the configured dependencies
func (b *RiskUseCaseBuilder) Build() (*RiskUseCase, error) {
	if b.adapters == nil {
		return nil, fmt.Errorf("adapter provider is required")
	}
	if b.classifier == nil {
		return nil, fmt.Errorf("classifier is required")
	}
	return NewRiskUseCase(b.adapters, b.classifier), nil
}
