package assets

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

var fontExtensions = map[string]bool{".ttf": true, ".otf": true, ".ttc": true}

// ValidateFontName checks that name is a plain font file name such as
// "NotoSansCJKjp-Regular.otf".
func ValidateFontName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\") || strings.HasPrefix(name, ".") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if !fontExtensions[strings.ToLower(filepath.Ext(name))] {
		return fmt.Errorf("%w: %q is not a .ttf, .otf or .ttc file", ErrInvalidAssetName, name)
	}
	return nil
}
