package render

import (
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-tmlsite/internal/analysis"
	"github.com/alnah/go-tmlsite/internal/document"
)

// Syntax highlights the lines of one code block.
type Syntax interface {
	Highlight(lines []string) (string, error)
}

// Highlighter resolves language tags to syntaxes.
type Highlighter interface {
	Find(lang string) (Syntax, bool)
}

// Site holds the fixed page-shell values shared by every page.
type Site struct {
	URL                 string // absolute site root, e.g. "https://example.dev/"
	Name                string
	Twitter             string // "@handle"
	Icon                string // site-relative path of the default preview image
	Favicon             string // site-relative path
	Stylesheet          string // site-relative path
	HighlightStylesheet string // site-relative path
	IndexDescription    string
	BackLabel           string
}

// DefaultSite returns the page-shell values of the original site.
func DefaultSite() Site {
	return Site{
		URL:                 "https://namachan10777.dev/",
		Name:                "namachan10777",
		Twitter:             "@namachan10777",
		Icon:                "res/icon.jpg",
		Favicon:             "res/favicon.ico",
		Stylesheet:          "index.css",
		HighlightStylesheet: "syntect.css",
		IndexDescription:    "about me",
		BackLabel:           "戻る",
	}
}

// AbsURL joins the site URL and a site-relative path.
func (s Site) AbsURL(p string) string {
	return strings.TrimSuffix(s.URL, "/") + "/" + strings.TrimPrefix(p, "/")
}

// Context is the render state threaded through compilation.
type Context struct {
	Loc         document.Location
	Level       int
	Prev        *analysis.Heading
	Next        *analysis.Heading
	Titles      analysis.TitleIndex
	Highlighter Highlighter
	Fingerprint string
	Path        string
	Date        time.Time
	Dated       bool
	// CardPath is the site-relative path of the page's share card, or "".
	CardPath string
	Site     Site
	Logger   *slog.Logger
}

// At returns a copy of c located at loc.
func (c Context) At(loc document.Location) Context {
	c.Loc = loc
	return c
}

// Nested returns a copy of c one heading level deeper.
func (c Context) Nested() Context {
	c.Level++
	return c
}

// Options configures NewContext.
type Options struct {
	Highlighter Highlighter
	Site        Site
	Logger      *slog.Logger
	CardPath    string
}

// NewContext builds the root context of the document at path from the
// analysis report. ok is false when the report has no such document.
func NewContext(report *analysis.Report, path string, opts Options) (Context, bool) {
	info, ok := report.Info(path)
	if !ok {
		return Context{}, false
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Context{
		Loc:         info.Loc,
		Level:       1,
		Prev:        info.Prev,
		Next:        info.Next,
		Titles:      report.Titles(),
		Highlighter: opts.Highlighter,
		Fingerprint: info.Fingerprint,
		Path:        path,
		Date:        info.Date,
		Dated:       info.Dated,
		CardPath:    opts.CardPath,
		Site:        opts.Site,
		Logger:      logger,
	}, true
}

func (c Context) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
