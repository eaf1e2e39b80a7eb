package render

import (
	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/xmltree"
)

// Compile renders a document root into a complete output document.
// The root must be a page shell (index or article).
func Compile(ctx Context, root *document.Command) (*xmltree.Document, error) {
	ctx = ctx.At(root.Loc)
	var (
		page xmltree.Node
		err  error
	)
	switch KindOf(root.Name) {
	case KindIndex:
		page, err = compileIndex(ctx, root)
	case KindArticle:
		page, err = compileArticle(ctx, root)
	default:
		return nil, &document.NoSuchCommandError{Name: root.Name, Loc: root.Loc}
	}
	if err != nil {
		return nil, err
	}
	return xmltree.NewDocument(page), nil
}

// Fragment renders a single command without a page shell.
func Fragment(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	return compileCommand(ctx.At(cmd.Loc), cmd)
}

func compileCommand(ctx Context, cmd *document.Command) (xmltree.Node, error) {
	switch KindOf(cmd.Name) {
	case KindIndex:
		return compileIndex(ctx, cmd)
	case KindArticle:
		return compileArticle(ctx, cmd)
	case KindArticles:
		return compileArticles(ctx, cmd)
	case KindSection:
		return compileSection(ctx, cmd)
	case KindImg:
		return compileImg(ctx, cmd.Attrs)
	case KindFigure:
		return compileFigure(ctx, cmd)
	case KindP:
		return wrap(ctx, "p", cmd.Inner)
	case KindLine:
		return wrap(ctx, "span", cmd.Inner)
	case KindAddress:
		return wrap(ctx, "address", cmd.Inner)
	case KindN:
		return wrap(ctx, "div", cmd.Inner)
	case KindCode:
		return wrap(ctx, "code", cmd.Inner)
	case KindUl:
		return compileUl(ctx, cmd)
	case KindLink:
		return compileLink(ctx, cmd)
	case KindBlockcode:
		return compileBlockcode(ctx, cmd.Attrs)
	case KindIframe:
		return compileIframe(cmd.Attrs), nil
	default:
		return nil, &document.NoSuchCommandError{Name: cmd.Name, Loc: ctx.Loc}
	}
}

func compileText(ctx Context, t document.Text) (xmltree.Node, error) {
	switch e := t.Elem.(type) {
	case document.PlainText:
		return xmltree.Text(e), nil
	case document.InlineLiteral:
		return xmltree.El("span", xmltree.Attrs("class", "inline-code"), xmltree.Text(e)), nil
	case *document.Command:
		return compileCommand(ctx.At(t.Loc), e)
	default:
		return nil, &document.ProcessError{Desc: "unknown text element", Loc: t.Loc}
	}
}

func compileInner(ctx Context, inner []document.Text) ([]xmltree.Node, error) {
	nodes := make([]xmltree.Node, 0, len(inner))
	for _, t := range inner {
		n, err := compileText(ctx, t)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func wrap(ctx Context, tag string, inner []document.Text) (xmltree.Node, error) {
	children, err := compileInner(ctx, inner)
	if err != nil {
		return nil, err
	}
	return xmltree.El(tag, nil, children...), nil
}
