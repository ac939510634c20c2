package markup

import (
	"golang.org/x/net/html"
)

// H1 returns a top-level heading.
func H1(text string) *html.Node {
	return Element("h1", nil, Text(text))
}

// Div returns a div with an optional class.
func Div(class string, children ...*html.Node) *html.Node {
	return Element("div", Class(class), children...)
}

// Label returns a label bound to the control with id forID.
func Label(forID, text string, children ...*html.Node) *html.Node {
	var attrs []Attr
	if forID != "" {
		attrs = append(attrs, A("for", forID))
	}
	return Element("label", attrs, append([]*html.Node{Text(text)}, children...)...)
}

// SelectOption returns an <option>.
func SelectOption(value, label string, selected bool) *html.Node {
	attrs := []Attr{A("value", value)}
	if selected {
		attrs = append(attrs, A("selected", ""))
	}
	return Element("option", attrs, Text(label))
}

// Select returns a <select> with the given attributes and options.
func Select(attrs []Attr, options ...*html.Node) *html.Node {
	return Element("select", attrs, options...)
}

// RadioInput returns a labelled radio button.
func RadioInput(name, value string, checked bool, extra []Attr) *html.Node {
	attrs := []Attr{A("type", "radio"), A("name", name), A("value", value)}
	if checked {
		attrs = append(attrs, A("checked", ""))
	}
	attrs = append(attrs, extra...)
	return Element("label", nil, Element("input", attrs), Text(value))
}

// Button returns a <button>.
func Button(buttonType, text string) *html.Node {
	return Element("button", []Attr{A("type", buttonType)}, Text(text))
}

// Img returns an <img>.
func Img(src, alt string) *html.Node {
	return Element("img", []Attr{A("src", src), A("alt", alt)})
}

// Table returns a table with one header row and one body row per entry of rows.
// The body is always present, even when empty.
func Table(columns []string, rows [][]string) *html.Node {
	headRow := Element("tr", nil)
	for _, c := range columns {
		Append(headRow, Element("th", nil, Text(c)))
	}
	body := Element("tbody", nil)
	for _, r := range rows {
		tr := Element("tr", nil)
		for _, cell := range r {
			Append(tr, Element("td", nil, Text(cell)))
		}
		Append(body, tr)
	}
	return Element("table", nil, Element("thead", nil, headRow), body)
}
