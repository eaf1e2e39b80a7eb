package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	tmlsite "github.com/alnah/go-tmlsite"
	"github.com/alnah/go-tmlsite/internal/config"
	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/fileutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	loc := document.Location{Path: "a.tml.yaml", Line: 2, Col: 3}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown", errors.New("boom"), ExitGeneral},
		{"usage", fmt.Errorf("%w: bad flag", ErrUsage), ExitUsage},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"invalid config", config.ErrInvalidValue, ExitUsage},
		{"invalid site", tmlsite.ErrInvalidSite, ExitUsage},
		{"file not found", os.ErrNotExist, ExitIO},
		{"write failure", fmt.Errorf("%w: %w", tmlsite.ErrWrite, fileutil.ErrWrite), ExitIO},
		{"missing attribute", fmt.Errorf("%w: %w", tmlsite.ErrAnalysis, &document.MissingAttributeError{Name: "title", Loc: loc}), ExitDocument},
		{"unknown command", fmt.Errorf("%w: %w", tmlsite.ErrRender, &document.NoSuchCommandError{Name: "blink", Loc: loc}), ExitDocument},
		{"process error", &document.ProcessError{Desc: "invalid date format", Loc: loc}, ExitDocument},
		{"share card backend", fmt.Errorf("%w: %w", tmlsite.ErrShareCard, tmlsite.ErrCardBackend), ExitShareCard},
		{"font read", fmt.Errorf("%w: %w", ErrReadFont, os.ErrNotExist), ExitShareCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
