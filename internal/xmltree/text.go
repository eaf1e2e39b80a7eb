package xmltree

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractString flattens n to its character data. Raw markup contributes
// the text of the fragment it encodes, so highlighter spans do not leak
// into plain-text excerpts.
func ExtractString(n Node) string {
	var b strings.Builder
	extract(&b, n)
	return b.String()
}

// ExtractAll concatenates ExtractString over nodes.
func ExtractAll(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		extract(&b, n)
	}
	return b.String()
}

func extract(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Element:
		for _, c := range v.Children {
			extract(b, c)
		}
	case Text:
		b.WriteString(string(v))
	case Raw:
		b.WriteString(rawText(string(v)))
	}
}

var fragmentContext = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

func rawText(markup string) string {
	nodes, err := html.ParseFragment(strings.NewReader(markup), fragmentContext)
	if err != nil {
		return markup
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return b.String()
}
