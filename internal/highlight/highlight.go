// Package highlight is the syntax-highlighting registry used by code
// blocks, backed by chroma.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used for the generated stylesheet.
const DefaultStyle = "github"

// ErrHighlight indicates the highlighter failed on its input.
var ErrHighlight = errors.New("syntax highlighting failed")

// Registry finds syntaxes by language tag.
type Registry struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewRegistry creates a Registry emitting class-based markup. styleName
// selects the stylesheet written by WriteCSS; unknown names fall back to
// chroma's default style.
func NewRegistry(styleName string) *Registry {
	if styleName == "" {
		styleName = DefaultStyle
	}
	return &Registry{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
		style: styles.Get(styleName),
	}
}

// Syntax is a resolved language.
type Syntax struct {
	lexer chroma.Lexer
	reg   *Registry
}

// Name returns the lexer name.
func (s *Syntax) Name() string {
	return s.lexer.Config().Name
}

// Find returns the syntax for lang, matched against lexer names, aliases
// and file extensions. ok is false when no lexer matches.
func (r *Registry) Find(lang string) (*Syntax, bool) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return nil, false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, false
	}
	return &Syntax{lexer: chroma.Coalesce(lexer), reg: r}, true
}

// Generator accumulates lines of one code block. Lines are tokenised
// together on Finalize so multi-line constructs keep their state.
type Generator struct {
	syntax *Syntax
	lines  []string
}

// NewGenerator starts a code block in syntax s.
func (s *Syntax) NewGenerator() *Generator {
	return &Generator{syntax: s}
}

// Line appends one source line (without its terminator).
func (g *Generator) Line(line string) {
	g.lines = append(g.lines, line)
}

// Finalize returns the highlighted markup for all lines.
func (g *Generator) Finalize() (string, error) {
	src := strings.Join(g.lines, "\n")
	it, err := g.syntax.lexer.Tokenise(nil, src)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrHighlight, g.syntax.Name(), err)
	}
	var b strings.Builder
	if err := g.syntax.reg.formatter.Format(&b, g.syntax.reg.style, it); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrHighlight, g.syntax.Name(), err)
	}
	return b.String(), nil
}

// Highlight runs lines through s in one go.
func (s *Syntax) Highlight(lines []string) (string, error) {
	g := s.NewGenerator()
	for _, l := range lines {
		g.Line(l)
	}
	return g.Finalize()
}

// WriteCSS writes the stylesheet matching the emitted class names.
func (r *Registry) WriteCSS(w io.Writer) error {
	return r.formatter.WriteCSS(w, r.style)
}

// HasStyle reports whether name is a registered chroma style.
func HasStyle(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// StyleNames returns the registered chroma style names, sorted.
func StyleNames() []string {
	return styles.Names()
}
