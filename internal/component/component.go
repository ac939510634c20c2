// Package component implements the report's renderable elements.
//
// Every component is immutable after construction: Build is a pure function of
// its arguments and the component's static configuration, so one tree can
// serve concurrent renders without locking.
package component

import (
	"context"

	"golang.org/x/net/html"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/markup"
)

// Component is anything that renders to an HTML node for an entity.
type Component interface {
	Build(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error)
}

// Func adapts an ordinary function to Component.
type Func func(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error)

// Build implements Component.
func (f Func) Build(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	return f(ctx, id, model)
}

// Attrs is the static identity of a component: a DOM id and a CSS class.
type Attrs struct {
	ID    string
	Class string
}

func (a Attrs) list() []markup.Attr {
	var out []markup.Attr
	if a.ID != "" {
		out = append(out, markup.A("id", a.ID))
	}
	return append(out, markup.Class(a.Class)...)
}

// Leaf is the shared scaffolding of data-driven components. Data fetches the
// payload from the model, Assemble turns it into markup, and Leaf wraps the
// result in a div carrying the component's Attrs.
type Leaf[T any] struct {
	Attrs    Attrs
	Data     func(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (T, error)
	Assemble func(id domain.EntityID, model domain.ModelAdapter, data T) (*html.Node, error)
}

// Build implements Component.
func (l Leaf[T]) Build(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	data, err := l.Data(ctx, id, model)
	if err != nil {
		return nil, err
	}
	inner, err := l.Assemble(id, model, data)
	if err != nil {
		return nil, err
	}
	return markup.Element("div", l.Attrs.list(), inner), nil
}
