package component

import (
	"context"

	"golang.org/x/net/html"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/markup"
)

// Header renders the model's name as the page heading.
type Header struct{}

// Build implements Component. It never fails.
func (Header) Build(_ context.Context, _ domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	return markup.H1(model.Name()), nil
}
