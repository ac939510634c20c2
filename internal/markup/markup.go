// Package markup builds HTML element trees on top of golang.org/x/net/html.
//
// Every constructor allocates fresh nodes, so a tree returned by one call can be
// attached anywhere without affecting another render.
package markup

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key string
	Val string
}

// A returns an attribute.
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// Class returns a class attribute, or nothing for an empty class.
func Class(class string) []Attr {
	if class == "" {
		return nil
	}
	return []Attr{A("class", class)}
}

// Element creates an element node with the given attributes and children.
// Nil children are skipped.
func Element(tag string, attrs []Attr, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	Append(n, children...)
	return n
}

// Text creates a text node; the renderer escapes it.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append attaches children to parent in order, skipping nils.
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		parent.AppendChild(c)
	}
}

// Render writes n as HTML.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// String renders n to a string. Rendering into memory cannot fail for trees
// built by this package, so the error is dropped.
func String(n *html.Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}
