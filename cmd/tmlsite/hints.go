package main

import (
	"errors"
	"strings"

	tmlsite "github.com/alnah/go-tmlsite"
	"github.com/alnah/go-tmlsite/internal/config"
	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/fileutil"
	"github.com/alnah/go-tmlsite/internal/highlight"
	"github.com/alnah/go-tmlsite/internal/hints"
	"github.com/alnah/go-tmlsite/internal/render"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var process *document.ProcessError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, ErrNoInput):
		return hints.ForInputDirectory()
	case errors.Is(err, fileutil.ErrWrite), errors.Is(err, ErrWriteAsset):
		return hints.ForOutputDirectory()
	case errors.Is(err, tmlsite.ErrNoSuchCommand):
		return hints.ForUnknownCommand(render.CommandNames())
	case errors.As(err, &process) && strings.Contains(process.Desc, "date"):
		return hints.ForDateFormat()
	case errors.Is(err, ErrReadFont), errors.Is(err, tmlsite.ErrInvalidCardSetup),
		errors.Is(err, tmlsite.ErrCardMissingGlyph):
		return hints.ForShareCardFont()
	case errors.Is(err, tmlsite.ErrCardBackend) && strings.Contains(err.Error(), "browser"):
		return hints.ForBrowserConnect()
	case errors.Is(err, tmlsite.ErrStyleNotFound),
		errors.Is(err, config.ErrInvalidValue) && strings.Contains(err.Error(), "highlight.style"):
		return hints.ForStyleNotFound(highlight.StyleNames())
	}
	return ""
}

// triedPaths recovers the searched locations from a config lookup error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
