package component

import (
	"context"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/markup"
)

// Dropdown is a selector whose options come from the model.
// It only calls UserOptions, so it renders with domain.NoEntity too.
type Dropdown struct {
	ID    string // wrapper id, used as the refresh target
	Name  string // form field name
	Class string
}

// Options returns the selector entries with each pair swapped to
// (value, label). Adapter order is kept; no options is an empty slice.
func (d Dropdown) Options(ctx context.Context, _ domain.EntityID, model domain.ModelAdapter) ([]domain.Option, error) {
	raw, err := model.UserOptions(ctx)
	if err != nil {
		return nil, modelError(model.Name()+" options", err)
	}
	opts := make([]domain.Option, 0, len(raw))
	for _, o := range raw {
		opts = append(opts, domain.Option{Value: o.Value, Label: o.Label})
	}
	return opts, nil
}

// Label is the control's caption, e.g. "Employee Selection".
func (d Dropdown) Label(model domain.ModelAdapter) string {
	// Casers keep state and are not shared between goroutines.
	return cases.Title(language.English).String(model.Name()) + " Selection"
}

// Build implements Component.
func (d Dropdown) Build(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	return Leaf[[]domain.Option]{
		Attrs:    Attrs{ID: d.ID, Class: d.Class},
		Data:     d.Options,
		Assemble: d.assemble,
	}.Build(ctx, id, model)
}

func (d Dropdown) assemble(id domain.EntityID, model domain.ModelAdapter, opts []domain.Option) (*html.Node, error) {
	selectID := d.selectID()
	current := id.String()

	var attrs []markup.Attr
	if selectID != "" {
		attrs = append(attrs, markup.A("id", selectID))
	}
	if d.Name != "" {
		attrs = append(attrs, markup.A("name", d.Name))
	}
	sel := markup.Select(attrs)
	for _, o := range opts {
		markup.Append(sel, markup.SelectOption(o.Value, o.Label, current != "" && o.Value == current))
	}
	return markup.Label(selectID, d.Label(model), sel), nil
}

func (d Dropdown) selectID() string {
	if d.ID == "" {
		return ""
	}
	return d.ID + "-input"
}
