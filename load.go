package tmlsite

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-tmlsite/internal/document"
	"github.com/alnah/go-tmlsite/internal/fileutil"
	"github.com/alnah/go-tmlsite/internal/frontend"
)

// Decode parses one source file. name is its path relative to the input
// root; its extension selects the format (".tml.yaml" command trees or
// ".md" Markdown) and fixes the page's output path.
func Decode(name string, data []byte) (*Document, error) {
	return decode(frontend.New(), filepath.ToSlash(name), data)
}

func decode(conv *frontend.Converter, name string, data []byte) (*Document, error) {
	sitePath, err := fileutil.SitePath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	var doc *Document
	switch fileutil.SourceExt(name) {
	case fileutil.ExtMarkdown:
		doc, err = conv.Convert(name, sitePath, data)
	default:
		doc, err = document.Decode(name, sitePath, data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return doc, nil
}

// LoadDir decodes every source file under dir in lexical path order.
// Hidden files and directories are skipped.
func LoadDir(dir string) ([]*Document, error) {
	conv := frontend.New()
	var docs []*Document
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", p, err)
		}
		if p != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !fileutil.IsSource(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoad, err)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoad, err)
		}
		doc, err := decode(conv, filepath.ToSlash(rel), data)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}
