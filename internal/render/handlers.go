package render

import (
	"strconv"

	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/linkpath"
	"github.com/alnah/go-tmlsite/internal/xmltree"
)

// maxHeadingLevel caps section headings at h6.
const maxHeadingLevel = 6

const (
	figureChildError = "\\figure can only have \\img as child element."
	ulChildError     = "\\ul can only have commands as child elements."
)

func compileArticles(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	dir, err := cmd.Attrs.Str("dir", ctx.Loc)
	if err != nil {
		return nil, err
	}
	headings := ctx.Titles.Lookup(dir)
	items := make([]xmltree.Node, 0, len(headings))
	for _, h := range headings {
		title, err := compileInner(ctx, h.Title)
		if err != nil {
			return nil, err
		}
		link := xmltree.El("a", xmltree.Attrs("href", linkpath.Resolve(h.Path, ctx.Path)), title...)
		items = append(items, xmltree.El("li", nil, link))
	}
	return xmltree.El("ul", nil, items...), nil
}

func compileSection(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	title, err := cmd.Attrs.Text("title", ctx.Loc)
	if err != nil {
		return nil, err
	}
	inner := ctx.Nested()
	titleNodes, err := compileInner(inner, title)
	if err != nil {
		return nil, err
	}
	body, err := compileInner(inner, cmd.Inner)
	if err != nil {
		return nil, err
	}
	level := min(ctx.Level, maxHeadingLevel)
	heading := xmltree.El("h"+strconv.Itoa(level), nil, titleNodes...)
	children := append([]xmltree.Node{xmltree.El("header", nil, heading)}, body...)
	return xmltree.El("section", nil, children...), nil
}

func compileImg(ctx Context, attrs document.Attrs) (xmltree.Node, error) {
	url, err := attrs.Str("url", ctx.Loc)
	if err != nil {
		return nil, err
	}
	alt, err := attrs.Str("alt", ctx.Loc)
	if err != nil {
		return nil, err
	}
	out := xmltree.Attrs("src", url)
	if classes, ok := attrs.OptStr("classes"); ok {
		out = append(out, xmltree.A("class", classes))
	}
	out = append(out, xmltree.A("alt", alt))
	return xmltree.Void("img", out...), nil
}

func compileFigure(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	caption, err := cmd.Attrs.Text("caption", ctx.Loc)
	if err != nil {
		return nil, err
	}
	imgs := make([]xmltree.Node, 0, len(cmd.Inner))
	for _, t := range cmd.Inner {
		c, ok := t.Elem.(*document.Command)
		if !ok || KindOf(c.Name) != KindImg {
			return nil, &document.ProcessError{Desc: figureChildError, Loc: ctx.Loc}
		}
		img, err := compileImg(ctx.At(t.Loc), c.Attrs)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	captionNodes, err := compileInner(ctx, caption)
	if err != nil {
		return nil, err
	}
	var attrs []xmltree.Attr
	if id, ok := cmd.Attrs.OptStr("id"); ok {
		attrs = xmltree.Attrs("id", id)
	}
	return xmltree.El("figure", attrs,
		xmltree.El("div", xmltree.Attrs("class", "images"), imgs...),
		xmltree.El("figcaption", nil, captionNodes...),
	), nil
}

func compileUl(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	items := make([]xmltree.Node, 0, len(cmd.Inner))
	for _, t := range cmd.Inner {
		c, ok := t.Elem.(*document.Command)
		if !ok {
			return nil, &document.ProcessError{Desc: ulChildError, Loc: t.Loc}
		}
		if KindOf(c.Name) == KindN {
			children, err := compileInner(ctx.At(t.Loc), c.Inner)
			if err != nil {
				return nil, err
			}
			items = append(items, xmltree.El("li", nil, children...))
			continue
		}
		child, err := compileCommand(ctx.At(t.Loc), c)
		if err != nil {
			return nil, err
		}
		items = append(items, xmltree.El("li", nil, child))
	}
	return xmltree.El("ul", nil, items...), nil
}

func compileLink(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	url, err := cmd.Attrs.Str("url", ctx.Loc)
	if err != nil {
		return nil, err
	}
	children, err := compileInner(ctx, cmd.Inner)
	if err != nil {
		return nil, err
	}
	return xmltree.El("a", xmltree.Attrs("href", url), children...), nil
}

func compileIframe(attrs document.Attrs) xmltree.Node {
	var out []xmltree.Attr
	for _, name := range []string{"width", "height", "frameborder"} {
		if v, ok := attrs.OptInt(name); ok {
			out = append(out, xmltree.A(name, strconv.FormatInt(v, 10)))
		}
	}
	for _, name := range []string{"style", "scrolling", "src"} {
		if v, ok := attrs.OptStr(name); ok {
			out = append(out, xmltree.A(name, v))
		}
	}
	return xmltree.Void("iframe", out...)
}
