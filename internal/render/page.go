package render

import (
	"time"

	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/linkpath"
	"github.com/alnah/go-tmlsite/internal/xmltree"
)

const (
	htmlNamespace  = "http://www.w3.org/1999/xhtml"
	pageLang       = "ja"
	indexPrefix    = "og: http://ogp.me/ns# article: http://ogp.me/ns/article#"
	articlePrefix  = "og: http://ogp.me/ns# object: http://ogp.me/ns/object#"
	indexPage      = "index.html"
	fingerprintLen = 7
)

func compileIndex(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	title, err := cmd.Attrs.Text("title", ctx.Loc)
	if err != nil {
		return nil, err
	}
	titleNodes, err := compileInner(ctx, title)
	if err != nil {
		return nil, err
	}
	body, err := compileInner(ctx, cmd.Inner)
	if err != nil {
		return nil, err
	}
	titleStr := xmltree.ExtractAll(titleNodes)
	desc := ctx.Site.IndexDescription

	head := commonHead(ctx, ctx.Site.AbsURL(ctx.Site.Icon))
	head = append(head,
		property("og:title", titleStr),
		meta("twitter:title", titleStr),
		property("og:type", "website"),
		property("og:description", desc),
		meta("description", desc),
		meta("twitter:description", desc),
		xmltree.El("title", nil, xmltree.Text(titleStr)),
	)

	root := []xmltree.Node{xmltree.El("header", nil, xmltree.El("h1", nil, titleNodes...))}
	root = append(root, body...)
	return page(indexPrefix, head, root), nil
}

func compileArticle(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	title, err := cmd.Attrs.Text("title", ctx.Loc)
	if err != nil {
		return nil, err
	}
	titleNodes, err := compileInner(ctx, title)
	if err != nil {
		return nil, err
	}
	body, err := compileInner(ctx, cmd.Inner)
	if err != nil {
		return nil, err
	}
	titleStr := xmltree.ExtractAll(titleNodes)
	excerpt := Excerpt(xmltree.ExtractAll(body))

	image := ctx.Site.AbsURL(ctx.Site.Icon)
	if ctx.CardPath != "" {
		image = ctx.Site.AbsURL(ctx.CardPath)
	}
	head := commonHead(ctx, image)
	head = append(head,
		property("og:title", titleStr),
		meta("twitter:title", titleStr),
		property("og:type", "article"),
		property("og:description", excerpt),
		meta("description", excerpt),
		meta("twitter:description", excerpt),
	)
	if ctx.Dated {
		head = append(head, property("article:published_time", ctx.Date.Format(time.RFC3339)))
	}
	head = append(head, xmltree.El("title", nil, xmltree.Text(titleStr)))

	fp := ctx.Fingerprint
	if len(fp) > fingerprintLen {
		fp = fp[:fingerprintLen]
	}
	header := xmltree.El("header", nil,
		xmltree.El("a", xmltree.Attrs("href", linkpath.Resolve(indexPage, ctx.Path)), xmltree.Text(ctx.Site.BackLabel)),
		xmltree.El("div", xmltree.Attrs("class", "hash"), xmltree.Text(fp)),
		xmltree.El("h1", nil, titleNodes...),
	)

	var nav []xmltree.Node
	if ctx.Prev != nil {
		n, err := navLink(ctx, ctx.Prev.Path, ctx.Prev.Title, "prev-article")
		if err != nil {
			return nil, err
		}
		nav = append(nav, n)
	}
	if ctx.Next != nil {
		n, err := navLink(ctx, ctx.Next.Path, ctx.Next.Title, "next-article")
		if err != nil {
			return nil, err
		}
		nav = append(nav, n)
	}

	root := []xmltree.Node{header}
	root = append(root, body...)
	root = append(root, xmltree.El("footer", nil, nav...))
	return page(articlePrefix, head, root), nil
}

func navLink(ctx Context, target string, title document.RichText, class string) (xmltree.Node, error) {
	children, err := compileInner(ctx, title)
	if err != nil {
		return nil, err
	}
	return xmltree.El("a", xmltree.Attrs("href", linkpath.Resolve(target, ctx.Path), "class", class), children...), nil
}

func page(prefix string, head, root []xmltree.Node) xmltree.Node {
	return xmltree.El("html", xmltree.Attrs("xmlns", htmlNamespace, "lang", pageLang),
		xmltree.El("head", xmltree.Attrs("prefix", prefix), head...),
		xmltree.El("body", nil, xmltree.El("div", xmltree.Attrs("id", "root"), root...)),
	)
}

// commonHead returns the head entries shared by every page.
func commonHead(ctx Context, image string) []xmltree.Node {
	s := ctx.Site
	return []xmltree.Node{
		xmltree.Void("meta", xmltree.Attrs("charset", "UTF-8")...),
		xmltree.Void("link", xmltree.Attrs("href", linkpath.Resolve(s.Stylesheet, ctx.Path), "rel", "stylesheet", "type", "text/css")...),
		xmltree.Void("link", xmltree.Attrs("href", linkpath.Resolve(s.HighlightStylesheet, ctx.Path), "rel", "stylesheet", "type", "text/css")...),
		xmltree.Void("link", xmltree.Attrs("rel", "icon", "type", "image/x-icon", "href", linkpath.Resolve(s.Favicon, ctx.Path))...),
		meta("twitter:card", "summary"),
		meta("twitter:site", s.Twitter),
		meta("twitter:creator", s.Twitter),
		property("og:url", s.AbsURL(ctx.Path)),
		property("og:site_name", s.Name),
		property("og:image", image),
		meta("twitter:image", image),
	}
}

func meta(name, content string) xmltree.Node {
	return xmltree.Void("meta", xmltree.Attrs("name", name, "content", content)...)
}

func property(name, content string) xmltree.Node {
	return xmltree.Void("meta", xmltree.Attrs("property", name, "content", content)...)
}

// Title returns the flattened text of a page root's title, the string used
// for the <title> element and the share card.
func Title(ctx Context, root *document.Command) (string, error) {
	ctx = ctx.At(root.Loc)
	title, err := root.Attrs.Text("title", ctx.Loc)
	if err != nil {
		return "", err
	}
	nodes, err := compileInner(ctx, title)
	if err != nil {
		return "", err
	}
	return xmltree.ExtractAll(nodes), nil
}
