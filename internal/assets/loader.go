package assets

// AssetLoader defines the contract for loading stylesheets and fonts.
type AssetLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadFont loads a font file by file name (with extension).
	// Returns ErrFontNotFound if the font doesn't exist.
	// Returns ErrInvalidAssetName if the name is not a plain font file name.
	LoadFont(name string) ([]byte, error)
}
