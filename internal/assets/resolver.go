package assets

import "errors"

// AssetResolver looks assets up in a site asset directory first and in the
// embedded assets second. Only not-found errors fall through; validation,
// traversal and read errors from the directory are returned as is.
type AssetResolver struct {
	loaders []AssetLoader
}

// NewAssetResolver creates a resolver over dir. An empty dir resolves
// embedded assets only.
func NewAssetResolver(dir string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if dir != "" {
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.loaders = append(r.loaders, fsLoader)
	}
	r.loaders = append(r.loaders, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle resolves a stylesheet by name.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return resolve(r.loaders, func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadFont resolves a font file by name.
func (r *AssetResolver) LoadFont(name string) ([]byte, error) {
	return resolve(r.loaders, func(l AssetLoader) ([]byte, error) { return l.LoadFont(name) })
}

// HasCustomLoader reports whether a site asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.loaders) > 1
}

func resolve[T any](loaders []AssetLoader, load func(AssetLoader) (T, error)) (T, error) {
	var (
		zero T
		err  error
	)
	for _, l := range loaders {
		var v T
		v, err = load(l)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrFontNotFound) {
			return zero, err
		}
	}
	return zero, err
}

var _ AssetLoader = (*AssetResolver)(nil)
