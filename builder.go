package tmlsite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-tmlsite/internal/analysis"
	"github.com/alnah/go-tmlsite/internal/fileutil"
	"github.com/alnah/go-tmlsite/internal/highlight"
	"github.com/alnah/go-tmlsite/internal/ogp"
	"github.com/alnah/go-tmlsite/internal/render"
)

// Builder renders a set of documents into a site.
// A Builder is safe for concurrent use once created; Close releases the
// share-card backend.
type Builder struct {
	site    Site
	style   string
	workers int
	logger  *slog.Logger
	cardCfg *ShareCards

	registry    *highlight.Registry
	highlighter render.Highlighter
	cards       *ogp.Renderer
	closer      io.Closer
}

// New creates a Builder. Share cards are off unless WithShareCards is given.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{
		site:   DefaultSite(),
		style:  DefaultHighlightStyle,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.site.Validate(); err != nil {
		return nil, err
	}
	if b.workers < 0 || b.workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d (must be 0..%d, 0 means auto)", ErrInvalidWorkers, b.workers, MaxWorkers)
	}
	if !highlight.HasStyle(b.style) {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, b.style)
	}
	b.registry = highlight.NewRegistry(b.style)
	b.highlighter = chromaHighlighter{registry: b.registry}

	// Renderer may already be injected (e.g., by tests)
	if b.cardCfg != nil && b.cards == nil {
		cards, closer, err := newCardRenderer(*b.cardCfg)
		if err != nil {
			return nil, err
		}
		b.cards, b.closer = cards, closer
	}
	return b, nil
}

// withCardRenderer injects a share-card renderer.
func withCardRenderer(r *ogp.Renderer) Option {
	return func(b *Builder) {
		b.cards = r
	}
}

func newCardRenderer(cfg ShareCards) (*ogp.Renderer, io.Closer, error) {
	if cfg.FontSize < 0 || cfg.Width < 0 {
		return nil, nil, fmt.Errorf("%w: font size and width must not be negative", ErrInvalidCardSetup)
	}

	var (
		backend ogp.Backend
		closer  io.Closer
	)
	switch cfg.Backend {
	case "", CardBackendRaster:
		raster, err := ogp.NewRaster(cfg.Font)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidCardSetup, err)
		}
		backend = raster
	case CardBackendChrome:
		chrome := ogp.NewChrome(cfg.FontFamily)
		backend, closer = chrome, chrome
	default:
		return nil, nil, fmt.Errorf("%w: unknown backend %q (use %q or %q)",
			ErrInvalidCardSetup, cfg.Backend, CardBackendRaster, CardBackendChrome)
	}

	r := ogp.NewRenderer(ogp.NewKagome(), backend,
		ogp.WithWidth(cfg.Width),
		ogp.WithFontSize(cfg.FontSize),
	)
	return r, closer, nil
}

// Close releases the share-card backend. It is safe to call more than once.
func (b *Builder) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// Build analyzes every document, then renders each page.
//
// Analysis needs the whole set and fails the build on the first error.
// Pages then render concurrently; on failure the error of the earliest
// failing document (in input order) is returned and no result is produced.
func (b *Builder) Build(ctx context.Context, docs []*Document) (*Result, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	report, err := analysis.Analyze(docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}
	b.logger.Debug("analysis complete", "documents", report.Len())

	workers := ResolvePoolSize(b.workers)
	pages := make([]Page, len(docs))
	errs := make([]error, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page, err := b.renderPage(gctx, report, doc)
			if err != nil {
				// Recorded per document so the earliest one wins below.
				errs[i] = err
				return nil
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := &Result{Pages: pages}
	b.logger.Info("build complete",
		"pages", len(pages),
		"cards", result.Cards(),
		"workers", workers,
	)
	return result, nil
}

func (b *Builder) renderPage(ctx context.Context, report *analysis.Report, doc *Document) (Page, error) {
	page := Page{Path: doc.Path}
	withCard := b.cards != nil && render.KindOf(doc.Root.Name) == render.KindArticle
	if withCard {
		page.CardPath = fileutil.CardPath(doc.Path)
	}

	rctx, ok := render.NewContext(report, doc.Path, render.Options{
		Highlighter: b.highlighter,
		Site:        b.site.toRender(),
		Logger:      b.logger,
		CardPath:    page.CardPath,
	})
	if !ok {
		return Page{}, fmt.Errorf("%w: %s: document was not analyzed", ErrRender, doc.Path)
	}

	out, err := render.Compile(rctx, doc.Root)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrRender, doc.Path, err)
	}
	var buf bytes.Buffer
	if err := out.Render(&buf); err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrRender, doc.Path, err)
	}
	page.HTML = buf.Bytes()
	b.logger.Debug("rendered page", "path", doc.Path, "bytes", len(page.HTML))

	if !withCard {
		return page, nil
	}

	title, err := render.Title(rctx, doc.Root)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrRender, doc.Path, err)
	}
	var card bytes.Buffer
	if err := b.cards.Render(ctx, &card, title); err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrShareCard, page.CardPath, err)
	}
	page.Card = card.Bytes()
	b.logger.Debug("rendered share card", "path", page.CardPath, "bytes", len(page.Card))
	return page, nil
}

// WrapTitle returns the share-card lines for title at the given line
// budget in bytes (0 uses the default).
func WrapTitle(title string, width int) ([]string, error) {
	if width <= 0 {
		width = ogp.Width
	}
	lines, err := ogp.Wrap(ogp.NewKagome(), title, width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShareCard, err)
	}
	return lines, nil
}
