// Package fileutil maps source files to site paths and writes outputs.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source file extensions, longest first.
const (
	ExtTML      = ".tml.yaml"
	ExtMarkdown = ".md"
	ExtHTML     = ".html"
	ExtCard     = ".png"
)

var sourceExtensions = []string{ExtTML, ExtMarkdown}

// Sentinel errors for file utility operations.
var (
	ErrNotSource    = errors.New("not a source file")
	ErrOutsideSite  = errors.New("path escapes the site root")
	ErrPathEmpty    = errors.New("path cannot be empty")
	ErrPathNullByte = errors.New("path contains a null byte")
	ErrWrite        = errors.New("cannot write output file")
)

// SourceExt returns the source extension of name, or "" when name is not
// a source file.
func SourceExt(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(lower, ext) && len(name) > len(ext) {
			return ext
		}
	}
	return ""
}

// IsSource reports whether name has a source extension.
func IsSource(name string) bool {
	return SourceExt(name) != ""
}

// SitePath maps a source path relative to the input directory to its
// slash-separated output path, e.g. "article/a1.tml.yaml" to
// "article/a1.html".
func SitePath(rel string) (string, error) {
	if rel == "" {
		return "", ErrPathEmpty
	}
	if strings.ContainsRune(rel, 0) {
		return "", ErrPathNullByte
	}
	ext := SourceExt(rel)
	if ext == "" {
		return "", fmt.Errorf("%w: %s", ErrNotSource, rel)
	}
	p := path.Clean(filepath.ToSlash(rel))
	if p == ".." || strings.HasPrefix(p, "../") || path.IsAbs(p) {
		return "", fmt.Errorf("%w: %s", ErrOutsideSite, rel)
	}
	return p[:len(p)-len(ext)] + ExtHTML, nil
}

// CardPath returns the share-card path next to a page path.
func CardPath(page string) string {
	return strings.TrimSuffix(page, path.Ext(page)) + ExtCard
}

// WriteFile writes data to sitePath under root, creating parent
// directories. The file is written to a temporary sibling and renamed so
// readers never see a partial page.
func WriteFile(root, sitePath string, data []byte) (string, error) {
	if sitePath == "" {
		return "", ErrPathEmpty
	}
	target := filepath.Join(root, filepath.FromSlash(sitePath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(target), ".tmlsite-*")
	if err != nil {
		return "", fmt.Errorf("%w: creating temp file: %v", ErrWrite, err)
	}
	tmp := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmp) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", fmt.Errorf("%w: writing temp file: %v", ErrWrite, writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", fmt.Errorf("%w: closing temp file: %v", ErrWrite, closeErr)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return target, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
