package component

import (
	"context"
	"fmt"

	"golang.org/x/net/html"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/markup"
)

// Group renders its children in order inside one wrapper element.
// Its children are fixed when the GroupBuilder builds it.
type Group struct {
	tag      string
	attrs    []markup.Attr
	children []Component
}

// Build implements Component. The first child error is returned as is.
func (g *Group) Build(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	wrapper := markup.Element(g.tag, g.attrs)
	for _, child := range g.children {
		n, err := child.Build(ctx, id, model)
		if err != nil {
			return nil, err
		}
		markup.Append(wrapper, n)
	}
	return wrapper, nil
}

// GroupBuilder provides a builder pattern for creating a Group
type GroupBuilder struct {
	tag      string
	id       string
	class    string
	attrs    []markup.Attr
	children []Component
}

// NewGroup creates a new builder for a div-wrapped group
func NewGroup() *GroupBuilder {
	return &GroupBuilder{tag: "div"}
}

// NewFormGroup creates a builder for a group wrapped in a <form>
func NewFormGroup(id, action, method string) *GroupBuilder {
	b := &GroupBuilder{tag: "form", id: id}
	if action != "" {
		b.attrs = append(b.attrs, markup.A("action", action))
	}
	if method != "" {
		b.attrs = append(b.attrs, markup.A("method", method))
	}
	return b
}

// WithID sets the wrapper id
func (b *GroupBuilder) WithID(id string) *GroupBuilder {
	b.id = id
	return b
}

// WithClass sets the wrapper CSS class
func (b *GroupBuilder) WithClass(class string) *GroupBuilder {
	b.class = class
	return b
}

// WithAttr adds a wrapper attribute
func (b *GroupBuilder) WithAttr(key, val string) *GroupBuilder {
	b.attrs = append(b.attrs, markup.A(key, val))
	return b
}

// Add appends children
func (b *GroupBuilder) Add(children ...Component) *GroupBuilder {
	b.children = append(b.children, children...)
	return b
}

// Build creates the Group. The builder's slices are copied, so reusing the
// builder never changes a Group already built.
func (b *GroupBuilder) Build() (*Group, error) {
	if len(b.children) == 0 {
		return nil, fmt.Errorf("group requires at least one child")
	}
	for i, c := range b.children {
		if c == nil {
			return nil, fmt.Errorf("group child %d is nil", i)
		}
	}

	var attrs []markup.Attr
	if b.id != "" {
		attrs = append(attrs, markup.A("id", b.id))
	}
	attrs = append(attrs, markup.Class(b.class)...)
	attrs = append(attrs, b.attrs...)

	return &Group{
		tag:      b.tag,
		attrs:    attrs,
		children: append([]Component(nil), b.children...),
	}, nil
}
