package ogp

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Raster draws into an in-memory RGBA image.
type Raster struct {
	font *sfnt.Font
}

// NewRaster parses fontData (TrueType, OpenType or a collection, of which
// the first face is used). Empty fontData selects the bundled Go Regular
// face, which has no CJK glyphs. Drawing a rune the face lacks fails with
// ErrBackend instead of producing .notdef boxes.
func NewRaster(fontData []byte) (*Raster, error) {
	if len(fontData) == 0 {
		fontData = goregular.TTF
	}
	f, err := parseFont(fontData)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing font: %v", ErrBackend, err)
	}
	return &Raster{font: f}, nil
}

func parseFont(data []byte) (*sfnt.Font, error) {
	if f, err := opentype.Parse(data); err == nil {
		return f, nil
	}
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if c.NumFonts() == 0 {
		return nil, errors.New("empty font collection")
	}
	return c.Font(0)
}

// NewSurface implements Backend.
func (r *Raster) NewSurface(w, h int) (Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas %dx%d", ErrBackend, w, h)
	}
	return &rasterSurface{font: r.font, img: image.NewRGBA(image.Rect(0, 0, w, h))}, nil
}

type rasterSurface struct {
	font *sfnt.Font
	face font.Face
	img  *image.RGBA
	buf  sfnt.Buffer
}

func (s *rasterSurface) FillRect(r image.Rectangle, c color.Color) error {
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

func (s *rasterSurface) SetFont(size float64) error {
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("%w: font face: %v", ErrBackend, err)
	}
	if s.face != nil {
		_ = s.face.Close()
	}
	s.face = face
	return nil
}

func (s *rasterSurface) DrawText(x, y int, text string) error {
	if s.face == nil {
		return fmt.Errorf("%w: no font selected", ErrBackend)
	}
	if err := s.covers(text); err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(color.Black),
		Face: s.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// covers fails on the first rune of text that maps to the missing glyph.
func (s *rasterSurface) covers(text string) error {
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		gi, err := s.font.GlyphIndex(&s.buf, r)
		if err != nil {
			return fmt.Errorf("%w: glyph lookup for %q: %v", ErrBackend, r, err)
		}
		if gi == 0 {
			return fmt.Errorf("%w: %w: %q (U+%04X)", ErrBackend, ErrMissingGlyph, r, r)
		}
	}
	return nil
}

func (s *rasterSurface) Encode(_ context.Context, w io.Writer) error {
	if s.face != nil {
		_ = s.face.Close()
		s.face = nil
	}
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
