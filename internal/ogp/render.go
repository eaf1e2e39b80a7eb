package ogp

import (
	"context"
	"image"
	"image/color"
	"io"
)

// Renderer turns titles into share-card images.
type Renderer struct {
	tokenizer Tokenizer
	backend   Backend
	width     int
	fontSize  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the line budget in bytes.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithFontSize sets the font size in pixels.
func WithFontSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.fontSize = size
		}
	}
}

// NewRenderer returns a Renderer drawing on b with words from t.
func NewRenderer(t Tokenizer, b Backend, opts ...Option) *Renderer {
	r := &Renderer{tokenizer: t, backend: b, width: Width, fontSize: FontSize}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lines returns the wrapped lines of title.
func (r *Renderer) Lines(title string) ([]string, error) {
	return Wrap(r.tokenizer, title, r.width)
}

// Render writes the PNG share card for title to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, title string) error {
	lines, err := r.Lines(title)
	if err != nil {
		return err
	}

	cw, ch := Canvas(r.width, r.fontSize)
	s, err := r.backend.NewSurface(cw, ch)
	if err != nil {
		return err
	}
	if err := s.FillRect(image.Rect(0, 0, cw, ch), color.White); err != nil {
		return err
	}
	if err := s.SetFont(float64(r.fontSize)); err != nil {
		return err
	}
	for _, p := range Place(lines, r.fontSize, ch) {
		if err := s.DrawText(p.X, p.Y, p.Text); err != nil {
			return err
		}
	}
	return s.Encode(ctx, w)
}
