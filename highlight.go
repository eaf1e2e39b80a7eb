package tmlsite

import (
	"io"

	"github.com/alnah/go-tmlsite/internal/highlight"
	"github.com/alnah/go-tmlsite/internal/render"
)

// chromaHighlighter adapts the chroma registry to the compiler.
type chromaHighlighter struct {
	registry *highlight.Registry
}

func (h chromaHighlighter) Find(lang string) (render.Syntax, bool) {
	s, ok := h.registry.Find(lang)
	if !ok {
		return nil, false
	}
	return s, true
}

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = highlight.DefaultStyle

// HasHighlightStyle reports whether name is a known chroma style.
func HasHighlightStyle(name string) bool {
	return highlight.HasStyle(name)
}

// WriteHighlightCSS writes the stylesheet for the builder's highlight style.
// Code blocks reference its classes.
func (b *Builder) WriteHighlightCSS(w io.Writer) error {
	return b.registry.WriteCSS(w)
}
