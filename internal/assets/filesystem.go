package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Subdirectories of a site asset directory.
const (
	stylesDir = "styles"
	fontsDir  = "fonts"
)

// FilesystemLoader reads site assets from a directory laid out as
// styles/<name>.css and fonts/<file>.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader opens the asset directory dir.
// It fails with ErrInvalidBasePath unless dir is a readable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		root = real
	}

	if _, err := os.ReadDir(root); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
		case !isDir(root):
			return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, root)
		default:
			return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
		}
	}
	return &FilesystemLoader{root: root}, nil
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// LoadStyle reads styles/<name>.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	data, err := f.read(filepath.Join(stylesDir, name+".css"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadFont reads fonts/<name>.
func (f *FilesystemLoader) LoadFont(name string) ([]byte, error) {
	if err := ValidateFontName(name); err != nil {
		return nil, err
	}
	data, err := f.read(filepath.Join(fontsDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return data, err
}

// read loads rel from the asset directory. The file, after symlink
// resolution, must stay inside the directory. A missing file is returned
// as fs.ErrNotExist for the caller to classify.
func (f *FilesystemLoader) read(rel string) ([]byte, error) {
	p := filepath.Join(f.root, rel)
	if real, err := filepath.EvalSymlinks(p); err == nil {
		p = real
	}
	if !strings.HasPrefix(p, f.root+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, rel, f.root)
	}

	data, err := os.ReadFile(p) // #nosec G304 -- contained in the asset directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fs.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return data, nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
