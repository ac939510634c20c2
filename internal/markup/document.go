package markup

import (
	"bytes"

	"golang.org/x/net/html"
)

// Page describes the document shell a report body is placed in.
type Page struct {
	Title       string
	Stylesheets []string
	Scripts     []string
}

// Document wraps body in a complete HTML document and renders it with a doctype.
func (p Page) Document(body *html.Node) ([]byte, error) {
	head := Element("head", nil,
		Element("meta", []Attr{A("charset", "utf-8")}),
		Element("meta", []Attr{A("name", "viewport"), A("content", "width=device-width, initial-scale=1")}),
		Element("title", nil, Text(p.Title)),
	)
	for _, href := range p.Stylesheets {
		Append(head, Element("link", []Attr{A("rel", "stylesheet"), A("href", href)}))
	}
	for _, src := range p.Scripts {
		Append(head, Element("script", []Attr{A("src", src)}))
	}

	root := Element("html", []Attr{A("lang", "en")},
		head,
		Element("body", nil, Element("main", Class("container"), body)),
	)
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
