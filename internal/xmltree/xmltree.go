// Package xmltree is the output tree produced by the page compiler and its
// serialization to an XHTML document.
package xmltree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is one output node: *Element, *SelfClosing, Text or Raw.
type Node interface {
	isNode()
}

// Attr is one element attribute. Attribute order is preserved on output.
type Attr struct {
	Name  string
	Value string
}

// Element is a tag with attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// SelfClosing is a tag without children.
type SelfClosing struct {
	Tag   string
	Attrs []Attr
}

// Text is character data, escaped on output.
type Text string

// Raw is pre-escaped markup inserted verbatim.
type Raw string

func (*Element) isNode()     {}
func (*SelfClosing) isNode() {}
func (Text) isNode()         {}
func (Raw) isNode()          {}

// El builds an element.
func El(tag string, attrs []Attr, children ...Node) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// Void builds a self-closing element.
func Void(tag string, attrs ...Attr) *SelfClosing {
	return &SelfClosing{Tag: tag, Attrs: attrs}
}

// A builds an attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Attrs builds an attribute list from name/value pairs.
func Attrs(pairs ...string) []Attr {
	if len(pairs)%2 != 0 {
		panic("xmltree: odd number of attribute arguments")
	}
	out := make([]Attr, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Attr{Name: pairs[i], Value: pairs[i+1]})
	}
	return out
}

// Document is a serializable document with an XML declaration.
type Document struct {
	Version  string
	Encoding string
	Root     Node
}

// NewDocument wraps root in a version 1.0, UTF-8 document.
func NewDocument(root Node) *Document {
	return &Document{Version: "1.0", Encoding: "UTF-8", Root: root}
}

// Render writes the XML declaration followed by the serialized tree.
func (d *Document) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<?xml version=%q encoding=%q?>\n", d.Version, d.Encoding); err != nil {
		return err
	}
	return Render(w, d.Root)
}

// String renders d, panicking only on writer errors that cannot occur.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return "<!-- " + err.Error() + " -->"
	}
	return b.String()
}

// Render serializes a single node.
func Render(w io.Writer, n Node) error {
	return html.Render(w, toHTML(n))
}

func toHTML(n Node) *html.Node {
	switch v := n.(type) {
	case *Element:
		e := element(v.Tag, v.Attrs)
		for _, c := range v.Children {
			e.AppendChild(toHTML(c))
		}
		return e
	case *SelfClosing:
		return element(v.Tag, v.Attrs)
	case Text:
		return &html.Node{Type: html.TextNode, Data: string(v)}
	case Raw:
		return &html.Node{Type: html.RawNode, Data: string(v)}
	default:
		panic(fmt.Sprintf("xmltree: unknown node %T", n))
	}
}

func element(tag string, attrs []Attr) *html.Node {
	e := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for _, a := range attrs {
		e.Attr = append(e.Attr, html.Attribute{Key: a.Name, Val: a.Value})
	}
	return e
}
