// Package ogp renders share-card preview images for article titles.
//
// A title is tokenized, each token boundary gets a break cost, and tokens
// are packed greedily into lines no longer than Width bytes (biased by the
// costs). The lines are then drawn bottom-up on a white canvas by a
// drawing Backend and encoded as PNG.
//
// Layout failures wrap ErrLayout, drawing failures wrap ErrBackend and
// encoding failures wrap ErrEncode, so callers can tell bad input from a
// broken backend.
package ogp
