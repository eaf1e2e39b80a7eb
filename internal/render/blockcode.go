package render

import (
	"strings"

	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/xmltree"
)

// Dedent drops whitespace-only lines from both ends of lines and removes
// the indentation common to the remaining non-blank lines. Indentation is
// counted in leading spaces only; a line shorter than that indentation
// becomes empty.
func Dedent(lines []string) []string {
	head := 0
	for head < len(lines) && isBlank(lines[head]) {
		head++
	}
	tail := len(lines)
	for tail > head && isBlank(lines[tail-1]) {
		tail--
	}
	body := lines[head:tail]

	padding := -1
	for _, l := range body {
		if isBlank(l) {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " "))
		if padding < 0 || n < padding {
			padding = n
		}
	}
	if padding < 0 {
		padding = 0
	}

	out := make([]string, len(body))
	for i, l := range body {
		if len(l) >= padding {
			out[i] = l[padding:]
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.Trim(s, " \t\r\n") == ""
}

func compileBlockcode(ctx Context, attrs document.Attrs) (xmltree.Node, error) {
	src, err := attrs.Str("src", ctx.Loc)
	if err != nil {
		return nil, err
	}
	lang, err := attrs.Str("lang", ctx.Loc)
	if err != nil {
		return nil, err
	}
	lines := Dedent(strings.Split(src, "\n"))

	if ctx.Highlighter != nil {
		if syntax, ok := ctx.Highlighter.Find(lang); ok {
			markup, err := syntax.Highlight(lines)
			if err != nil {
				return nil, &document.ProcessError{Desc: err.Error(), Loc: ctx.Loc}
			}
			return xmltree.El("code", nil, xmltree.El("pre", nil, xmltree.Raw(markup))), nil
		}
	}
	ctx.logger().Warn("syntax not found", "lang", lang, "location", ctx.Loc.String())
	return xmltree.El("code", nil, xmltree.El("pre", nil, xmltree.Text(strings.Join(lines, "\n")))), nil
}
