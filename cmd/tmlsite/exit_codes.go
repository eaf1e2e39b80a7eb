package main

import (
	"errors"
	"os"

	tmlsite "github.com/alnah/go-tmlsite"
	"github.com/alnah/go-tmlsite/internal/assets"
	"github.com/alnah/go-tmlsite/internal/config"
	"github.com/alnah/go-tmlsite/internal/fileutil"
	"github.com/alnah/go-tmlsite/internal/frontend"
)

// Exit codes for the tmlsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Site built
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied, write failure
	ExitDocument  = 4 // A source document is invalid
	ExitShareCard = 5 // Share card backend failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Share card errors (exit 5)
	if errors.Is(err, tmlsite.ErrShareCard) ||
		errors.Is(err, tmlsite.ErrCardBackend) ||
		errors.Is(err, tmlsite.ErrCardEncode) ||
		errors.Is(err, tmlsite.ErrInvalidCardSetup) ||
		errors.Is(err, ErrReadFont) {
		return ExitShareCard
	}

	// Document errors (exit 4)
	if errors.Is(err, tmlsite.ErrMissingAttribute) ||
		errors.Is(err, tmlsite.ErrInvalidAttributeType) ||
		errors.Is(err, tmlsite.ErrProcess) ||
		errors.Is(err, tmlsite.ErrNoSuchCommand) ||
		errors.Is(err, tmlsite.ErrDuplicatePath) ||
		errors.Is(err, tmlsite.ErrDecode) ||
		errors.Is(err, frontend.ErrFrontMatter) ||
		errors.Is(err, frontend.ErrNoTitle) {
		return ExitDocument
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, tmlsite.ErrWrite) ||
		errors.Is(err, fileutil.ErrWrite) ||
		errors.Is(err, ErrWriteAsset) ||
		errors.Is(err, ErrNoSources) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, tmlsite.ErrInvalidSite) ||
		errors.Is(err, tmlsite.ErrInvalidWorkers) ||
		errors.Is(err, tmlsite.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, fileutil.ErrOutsideSite) {
		return ExitUsage
	}

	return ExitGeneral
}
