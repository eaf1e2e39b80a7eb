package render

import "strings"

const (
	// ExcerptLength is the number of characters kept from an article body.
	ExcerptLength = 64
	// ExcerptMarker is appended to every excerpt.
	ExcerptMarker = "……"
)

// Excerpt shortens text to its first ExcerptLength characters, trims
// surrounding whitespace and appends ExcerptMarker.
func Excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > ExcerptLength {
		text = string(runes[:ExcerptLength])
	}
	return strings.TrimSpace(text) + ExcerptMarker
}
