package tmlsite

import (
	"errors"

	"github.com/alnah/go-tmlsite/internal/analysis"
	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/ogp"
)

// Sentinel errors for library operations.
var (
	ErrNoDocuments   = errors.New("no documents to build")
	ErrLoad          = errors.New("cannot load source document")
	ErrAnalysis      = errors.New("analysis failed")
	ErrRender        = errors.New("render failed")
	ErrShareCard     = errors.New("share card failed")
	ErrWrite         = errors.New("cannot write site")
	ErrInvalidSite   = errors.New("invalid site settings")
	ErrStyleNotFound = errors.New("highlight style not found")

	// Invalid builder options.
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrInvalidCardSetup = errors.New("invalid share card settings")
)

// Document errors. Each carries a source location; use errors.As with
// *document.ProcessError and friends, or LocationOf, to recover it.
var (
	ErrMissingAttribute     = document.ErrMissingAttribute
	ErrInvalidAttributeType = document.ErrInvalidAttributeType
	ErrProcess              = document.ErrProcess
	ErrNoSuchCommand        = document.ErrNoSuchCommand
	ErrDuplicatePath        = analysis.ErrDuplicatePath
	ErrDecode               = document.ErrDecode
)

// Share-card failure kinds.
var (
	ErrCardLayout       = ogp.ErrLayout
	ErrCardBackend      = ogp.ErrBackend
	ErrCardEncode       = ogp.ErrEncode
	ErrCardMissingGlyph = ogp.ErrMissingGlyph
)

// LocationOf returns the source location carried by err, if any.
func LocationOf(err error) (Location, bool) {
	return document.LocationOf(err)
}
