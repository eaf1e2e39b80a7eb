package ogp

import (
	"context"
	"image"
	"image/color"
	"io"
)

// Surface is a drawable canvas.
type Surface interface {
	FillRect(r image.Rectangle, c color.Color) error
	SetFont(size float64) error
	DrawText(x, y int, text string) error
	Encode(ctx context.Context, w io.Writer) error
}

// Backend creates surfaces.
type Backend interface {
	NewSurface(w, h int) (Surface, error)
}
