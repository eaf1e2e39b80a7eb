package tmlsite

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/render"
)

// Document is one parsed source page. Obtain documents from LoadDir or
// Decode.
type Document = document.Document

// Location is a source position attached to document errors.
type Location = document.Location

// Site holds the values repeated in every page head.
type Site struct {
	URL                 string // absolute site root, e.g. "https://example.dev/"
	Name                string
	Twitter             string // "@handle"
	Icon                string // site-relative path of the default preview image
	Favicon             string
	Stylesheet          string
	HighlightStylesheet string
	IndexDescription    string
	BackLabel           string
}

// DefaultSite returns the built-in site settings.
func DefaultSite() Site {
	return fromRenderSite(render.DefaultSite())
}

// Validate checks that the site URL is absolute.
func (s Site) Validate() error {
	if !strings.HasPrefix(s.URL, "http://") && !strings.HasPrefix(s.URL, "https://") {
		return fmt.Errorf("%w: URL must be an absolute http(s) URL, got %q", ErrInvalidSite, s.URL)
	}
	return nil
}

func (s Site) toRender() render.Site {
	return render.Site{
		URL:                 s.URL,
		Name:                s.Name,
		Twitter:             s.Twitter,
		Icon:                s.Icon,
		Favicon:             s.Favicon,
		Stylesheet:          s.Stylesheet,
		HighlightStylesheet: s.HighlightStylesheet,
		IndexDescription:    s.IndexDescription,
		BackLabel:           s.BackLabel,
	}
}

func fromRenderSite(s render.Site) Site {
	return Site{
		URL:                 s.URL,
		Name:                s.Name,
		Twitter:             s.Twitter,
		Icon:                s.Icon,
		Favicon:             s.Favicon,
		Stylesheet:          s.Stylesheet,
		HighlightStylesheet: s.HighlightStylesheet,
		IndexDescription:    s.IndexDescription,
		BackLabel:           s.BackLabel,
	}
}

// Card backends.
const (
	CardBackendRaster = "raster"
	CardBackendChrome = "chrome"
)

// ShareCards configures share-card rendering for article pages.
type ShareCards struct {
	// Backend is CardBackendRaster (default) or CardBackendChrome.
	Backend string
	// Font is a TrueType/OpenType font for the raster backend. Nil uses the
	// bundled Go font, which has no CJK glyphs: titles it cannot draw fail
	// with ErrCardMissingGlyph.
	Font []byte
	// FontFamily is the CSS font family for the Chrome backend.
	FontFamily string
	FontSize   int // pixels; 0 uses the default
	Width      int // line budget in bytes; 0 uses the default
}

// Page is one rendered output page.
type Page struct {
	Path     string // site-relative, slash separated
	HTML     []byte
	CardPath string // empty when the page has no share card
	Card     []byte // PNG
}

// Result holds every page of a build in input order.
type Result struct {
	Pages []Page
}

// Cards returns the number of pages carrying a share card.
func (r *Result) Cards() int {
	n := 0
	for _, p := range r.Pages {
		if p.Card != nil {
			n++
		}
	}
	return n
}

// Option configures a Builder.
type Option func(*Builder)

// WithSite sets the page-shell values.
func WithSite(site Site) Option {
	return func(b *Builder) {
		b.site = site
	}
}

// WithHighlightStyle selects the chroma style used for code blocks.
func WithHighlightStyle(name string) Option {
	return func(b *Builder) {
		b.style = name
	}
}

// WithWorkers sets the number of documents rendered concurrently.
// Zero picks a value from GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.workers = n
	}
}

// WithLogger sets the logger for build diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithShareCards enables share cards for article pages.
func WithShareCards(cfg ShareCards) Option {
	return func(b *Builder) {
		b.cardCfg = &cfg
	}
}
