// Package frontend converts Markdown pages into document trees using the
// same command vocabulary as the YAML interchange format.
//
// A page may start with a YAML front matter block:
//
//	---
//	title: Hello
//	date: 2021-01-01
//	kind: article    # or index; defaults to article when date is set
//	articles: diary  # index only: list this directory after the body
//	---
//
// Without a title the first level-1 heading becomes the title.
package frontend

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/yamlutil"
)

const (
	KindArticle = "article"
	KindIndex   = "index"

	plainLang = "plaintext"
)

var (
	// ErrFrontMatter indicates an unreadable front matter block.
	ErrFrontMatter = errors.New("invalid front matter")
	// ErrNoTitle indicates a page with neither a title nor a leading heading.
	ErrNoTitle = errors.New("page has no title")
)

// FrontMatter is the metadata block of a Markdown page.
type FrontMatter struct {
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Kind     string `yaml:"kind"`
	Articles string `yaml:"articles"`
}

// Converter turns Markdown into document trees. It is safe for
// concurrent use.
type Converter struct {
	md     goldmark.Markdown
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger that reports Markdown constructs dropped
// during conversion. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Converter with GitHub Flavored Markdown enabled.
func New(opts ...Option) *Converter {
	c := &Converter{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses src, read from srcPath, into the document at docPath.
func (c *Converter) Convert(srcPath, docPath string, src []byte) (*document.Document, error) {
	front, body, bodyLine := yamlutil.SplitFrontMatter(src)

	var fm FrontMatter
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yamlutil.UnmarshalStrict(front, &fm); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFrontMatter, srcPath, err)
		}
	}
	kind := fm.Kind
	switch {
	case kind == "" && fm.Date != "":
		kind = KindArticle
	case kind == "":
		kind = KindIndex
	case kind != KindArticle && kind != KindIndex:
		return nil, fmt.Errorf("%w: %s: unknown kind %q", ErrFrontMatter, srcPath, kind)
	}

	w := &walker{
		src:    body,
		path:   srcPath,
		base:   len(src) - len(body),
		line:   bodyLine,
		lines:  lineStarts(body),
		logger: c.logger,
	}
	tree := c.md.Parser().Parse(text.NewReader(body))
	rootLoc := document.Location{Path: srcPath, Line: 1, Col: 1}

	var title document.RichText
	first := tree.FirstChild()
	if h, ok := first.(*ast.Heading); ok && h.Level == 1 && fm.Title == "" {
		title = w.inline(h)
		first = first.NextSibling()
	} else if fm.Title != "" {
		title = document.RichText{document.Plain(fm.Title, rootLoc)}
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTitle, srcPath)
	}

	inner := w.sections(first)
	if kind == KindIndex && fm.Articles != "" {
		inner = append(inner, document.Cmd(&document.Command{
			Name:  "articles",
			Attrs: document.Attrs{"dir": {Value: document.String(fm.Articles), Loc: rootLoc}},
			Loc:   rootLoc,
		}))
	}

	attrs := document.Attrs{"title": {Value: title, Loc: rootLoc}}
	if fm.Date != "" {
		attrs["date"] = document.Attr{Value: document.String(fm.Date), Loc: rootLoc}
	}
	return &document.Document{
		Path:   docPath,
		Root:   &document.Command{Name: kind, Attrs: attrs, Inner: inner, Loc: rootLoc},
		Source: string(src),
	}, nil
}

// lineStarts returns the byte offset of every line start in src.
func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

type walker struct {
	src    []byte
	path   string
	base   int // offset of src[0] in the file
	line   int // line of src[0] in the file
	lines  []int
	logger *slog.Logger
}

func (w *walker) locAt(offset int) document.Location {
	i := 0
	for i+1 < len(w.lines) && w.lines[i+1] <= offset {
		i++
	}
	return document.Location{
		Path:   w.path,
		Offset: w.base + offset,
		Line:   w.line + i,
		Col:    offset - w.lines[i] + 1,
	}
}

func (w *walker) loc(n ast.Node) document.Location {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Type() == ast.TypeBlock && cur.Lines().Len() > 0 {
			return w.locAt(cur.Lines().At(0).Start)
		}
		if t, ok := cur.(*ast.Text); ok {
			return w.locAt(t.Segment.Start)
		}
		if cur.Type() == ast.TypeBlock {
			if c := cur.FirstChild(); c != nil && c != n {
				return w.loc(c)
			}
		}
	}
	return document.Location{Path: w.path, Line: w.line, Col: 1}
}

func (w *walker) command(name string, n ast.Node, attrs document.Attrs, inner ...document.Text) document.Text {
	if attrs == nil {
		attrs = document.Attrs{}
	}
	return document.Cmd(&document.Command{Name: name, Attrs: attrs, Inner: inner, Loc: w.loc(n)})
}

// sections converts the sibling blocks starting at n, opening a nested
// section for every heading.
func (w *walker) sections(n ast.Node) []document.Text {
	var out []document.Text
	for n != nil {
		h, ok := n.(*ast.Heading)
		if !ok {
			out = append(out, w.block(n)...)
			n = n.NextSibling()
			continue
		}
		next := h.NextSibling()
		var body []ast.Node
		for next != nil {
			if nh, ok := next.(*ast.Heading); ok && nh.Level <= h.Level {
				break
			}
			body = append(body, next)
			next = next.NextSibling()
		}
		out = append(out, w.section(h, body))
		n = next
	}
	return out
}

func (w *walker) section(h *ast.Heading, body []ast.Node) document.Text {
	loc := w.loc(h)
	var inner []document.Text
	for i := 0; i < len(body); {
		sub, ok := body[i].(*ast.Heading)
		if !ok {
			inner = append(inner, w.block(body[i])...)
			i++
			continue
		}
		j := i + 1
		for j < len(body) {
			if nh, ok := body[j].(*ast.Heading); ok && nh.Level <= sub.Level {
				break
			}
			j++
		}
		inner = append(inner, w.section(sub, body[i+1:j]))
		i = j
	}
	attrs := document.Attrs{"title": {Value: document.RichText(w.inline(h)), Loc: loc}}
	return document.Cmd(&document.Command{Name: "section", Attrs: attrs, Inner: inner, Loc: loc})
}

func (w *walker) block(n ast.Node) []document.Text {
	switch b := n.(type) {
	case *ast.Paragraph:
		return []document.Text{w.command("p", b, nil, w.inline(b)...)}
	case *ast.TextBlock:
		return w.inline(b)
	case *ast.FencedCodeBlock:
		lang := string(b.Language(w.src))
		if lang == "" {
			lang = plainLang
		}
		return []document.Text{w.code(b, lang)}
	case *ast.CodeBlock:
		return []document.Text{w.code(b, plainLang)}
	case *ast.List:
		var items []document.Text
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			var inner []document.Text
			for cc := c.FirstChild(); cc != nil; cc = cc.NextSibling() {
				inner = append(inner, w.block(cc)...)
			}
			items = append(items, w.command("n", c, nil, inner...))
		}
		return []document.Text{w.command("ul", b, nil, items...)}
	case *ast.Blockquote:
		var inner []document.Text
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			inner = append(inner, w.block(c)...)
		}
		return []document.Text{w.command("n", b, nil, inner...)}
	default:
		// Tables, thematic breaks and raw HTML have no command equivalent.
		w.dropped(n)
		return nil
	}
}

func (w *walker) dropped(n ast.Node) {
	w.logger.Warn("markdown construct dropped", "kind", n.Kind().String(), "location", w.loc(n).String())
}

func (w *walker) code(n ast.Node, lang string) document.Text {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.src))
	}
	loc := w.loc(n)
	attrs := document.Attrs{
		"src":  {Value: document.String(b.String()), Loc: loc},
		"lang": {Value: document.String(lang), Loc: loc},
	}
	return document.Cmd(&document.Command{Name: "blockcode", Attrs: attrs, Loc: loc})
}

// inline converts the inline children of n.
func (w *walker) inline(n ast.Node) []document.Text {
	var out []document.Text
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, w.inlineNode(c)...)
	}
	return out
}

func (w *walker) inlineNode(n ast.Node) []document.Text {
	loc := w.loc(n)
	switch v := n.(type) {
	case *ast.Text:
		s := string(v.Segment.Value(w.src))
		if v.SoftLineBreak() || v.HardLineBreak() {
			s += "\n"
		}
		return []document.Text{document.Plain(s, loc)}
	case *ast.String:
		return []document.Text{document.Plain(string(v.Value), loc)}
	case *ast.CodeSpan:
		var b strings.Builder
		for c := v.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(w.src))
			}
		}
		return []document.Text{document.Literal(b.String(), loc)}
	case *ast.Link:
		attrs := document.Attrs{"url": {Value: document.String(string(v.Destination)), Loc: loc}}
		return []document.Text{w.command("link", v, attrs, w.inline(v)...)}
	case *ast.AutoLink:
		url := string(v.URL(w.src))
		attrs := document.Attrs{"url": {Value: document.String(url), Loc: loc}}
		return []document.Text{w.command("link", v, attrs, document.Plain(string(v.Label(w.src)), loc))}
	case *ast.Image:
		attrs := document.Attrs{
			"url": {Value: document.String(string(v.Destination)), Loc: loc},
			"alt": {Value: document.String(plainText(v, w.src)), Loc: loc},
		}
		return []document.Text{w.command("img", v, attrs)}
	case *ast.RawHTML:
		w.dropped(n)
		return nil
	default:
		// Emphasis and extension spans keep their text only.
		return w.inline(n)
	}
}

func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
