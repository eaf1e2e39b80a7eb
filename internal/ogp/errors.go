package ogp

import "errors"

var (
	// ErrLayout indicates the title could not be tokenized or laid out.
	ErrLayout = errors.New("share card layout failed")
	// ErrBackend indicates the drawing backend failed.
	ErrBackend = errors.New("share card drawing failed")
	// ErrEncode indicates the image could not be encoded.
	ErrEncode = errors.New("share card encoding failed")
	// ErrMissingGlyph indicates the raster font cannot draw a title rune.
	// It is always wrapped together with ErrBackend.
	ErrMissingGlyph = errors.New("font has no glyph for")
)
