package component

import (
	"context"

	"golang.org/x/net/html"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/markup"
	"github.com/ludo-technologies/empdash/internal/plot"
)

// Visualization prepares a figure from model data.
type Visualization interface {
	Visualize(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (plot.Figure, error)
}

// Chart renders a Visualization as an embedded image.
type Chart struct {
	attrs   Attrs
	alt     string
	viz     Visualization
	backend plot.Backend
}

// NewChart creates a chart component drawing viz with backend.
func NewChart(viz Visualization, backend plot.Backend, alt string, attrs Attrs) Chart {
	return Chart{attrs: attrs, alt: alt, viz: viz, backend: backend}
}

// Build implements Component.
func (c Chart) Build(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	return Leaf[plot.Figure]{
		Attrs:    c.attrs,
		Data:     c.viz.Visualize,
		Assemble: c.assemble,
	}.Build(ctx, id, model)
}

func (c Chart) assemble(_ domain.EntityID, _ domain.ModelAdapter, fig plot.Figure) (*html.Node, error) {
	src, err := c.backend.DataURI(fig)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to draw "+c.alt, err)
	}
	return markup.Img(src, c.alt), nil
}
