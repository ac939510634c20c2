package component

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/markup"
)

// Radio is a set of radio buttons. The value matching the model's name is
// checked. HXGet and HXTarget are stamped onto every input so the page can
// swap a fragment when the choice changes.
type Radio struct {
	name     string
	values   []string
	hxGet    string
	hxTarget string
}

// NewRadio creates a radio group. values is copied.
func NewRadio(name string, values []string, hxGet, hxTarget string) Radio {
	return Radio{
		name:     name,
		values:   append([]string(nil), values...),
		hxGet:    hxGet,
		hxTarget: hxTarget,
	}
}

// Values returns a copy of the choices.
func (r Radio) Values() []string {
	return append([]string(nil), r.values...)
}

// Build implements Component.
func (r Radio) Build(_ context.Context, _ domain.EntityID, model domain.ModelAdapter) (*html.Node, error) {
	var extra []markup.Attr
	if r.hxGet != "" {
		extra = append(extra, markup.A("hx-get", r.hxGet))
	}
	if r.hxTarget != "" {
		extra = append(extra, markup.A("hx-target", r.hxTarget), markup.A("hx-swap", "outerHTML"))
	}

	fs := markup.Element("fieldset", nil)
	for _, v := range r.values {
		checked := strings.EqualFold(v, model.Name())
		markup.Append(fs, markup.RadioInput(r.name, v, checked, extra))
	}
	return fs, nil
}

// Submit renders a form submit button.
type Submit struct {
	Text string
}

// Build implements Component.
func (s Submit) Build(context.Context, domain.EntityID, domain.ModelAdapter) (*html.Node, error) {
	text := s.Text
	if text == "" {
		text = "Submit"
	}
	return markup.Button("submit", text), nil
}
