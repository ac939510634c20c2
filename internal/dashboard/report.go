// Package dashboard assembles the report component tree.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/component"
	"github.com/ludo-technologies/empdash/internal/plot"
)

// Route paths the filter controls point at, relative to the proxy prefix.
const (
	UpdateDropdownPath = "/update_dropdown"
	UpdateDataPath     = "/update_data"
)

// Form field names shared with the HTTP layer.
const (
	ProfileField   = "profile_type"
	SelectionField = "user-selection"
	SelectorID     = "selector"
	FiltersID      = "top-filters"
)

// Options configures a Report.
type Options struct {
	// ProxyPrefix is prepended to the form and refresh URLs.
	ProxyPrefix string

	// Backend draws the charts.
	Backend plot.Backend

	// Classifier scores recruitment risk. It is shared by every render.
	Classifier domain.Classifier
}

// Report is the top-level component: header, filters, charts and notes.
type Report struct {
	root     *component.Group
	selector component.Dropdown
}

// New assembles the report tree. The tree is immutable and safe to render
// concurrently.
func New(opts Options) (*Report, error) {
	if opts.Classifier == nil {
		return nil, fmt.Errorf("report requires a classifier")
	}
	prefix := strings.TrimRight(opts.ProxyPrefix, "/")

	selector := component.Dropdown{ID: SelectorID, Name: SelectionField}
	profiles := make([]string, 0, len(domain.Profiles))
	for _, p := range domain.Profiles {
		profiles = append(profiles, string(p))
	}

	filters, err := component.NewFormGroup(FiltersID, prefix+UpdateDataPath, "POST").
		Add(
			component.NewRadio(ProfileField, profiles, prefix+UpdateDropdownPath, "#"+SelectorID),
			selector,
			component.Submit{},
		).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build filters: %w", err)
	}

	visualizations, err := component.NewGroup().
		WithClass("grid").
		Add(
			component.NewChart(component.TrendChart{}, opts.Backend, "Cumulative events", component.Attrs{}),
			component.NewChart(component.NewRiskChart(opts.Classifier), opts.Backend, "Recruitment risk", component.Attrs{}),
		).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build visualizations: %w", err)
	}

	root, err := component.NewGroup().
		Add(
			component.Header{},
			filters,
			visualizations,
			component.NewNotesTable(component.Attrs{}),
		).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	return &Report{root: root, selector: selector}, nil
}

// Build implements component.Component.
func (r *Report) Build(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	return r.root.Build(ctx, id, model)
}

// Selector is the dropdown re-rendered alone when the profile type changes.
func (r *Report) Selector() component.Dropdown {
	return r.selector
}
