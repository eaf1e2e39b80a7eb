package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a stylesheet from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadFont always fails: fonts are too large to embed.
func (e *EmbeddedLoader) LoadFont(name string) ([]byte, error) {
	if err := ValidateFontName(name); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %q (no embedded fonts)", ErrFontNotFound, name)
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
