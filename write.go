package tmlsite

import (
	"fmt"

	"github.com/alnah/go-tmlsite/internal/fileutil"
)

// WriteTo writes every page and share card under dir and returns the
// written file paths in page order.
func (r *Result) WriteTo(dir string) ([]string, error) {
	written := make([]string, 0, len(r.Pages)+r.Cards())
	for _, p := range r.Pages {
		target, err := fileutil.WriteFile(dir, p.Path, p.HTML)
		if err != nil {
			return written, fmt.Errorf("%w: %s: %w", ErrWrite, p.Path, err)
		}
		written = append(written, target)

		if p.Card == nil {
			continue
		}
		target, err = fileutil.WriteFile(dir, p.CardPath, p.Card)
		if err != nil {
			return written, fmt.Errorf("%w: %s: %w", ErrWrite, p.CardPath, err)
		}
		written = append(written, target)
	}
	return written, nil
}
