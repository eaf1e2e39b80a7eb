package assets

import "errors"

// Lookup failures. The not-found pair lets a resolver fall back to the
// embedded assets.
var (
	ErrStyleNotFound = errors.New("style not found")
	ErrFontNotFound  = errors.New("font not found")
)

// Rejections of names, directories and reads.
var (
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid asset directory")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrPathTraversal    = errors.New("asset path escapes asset directory")
)
