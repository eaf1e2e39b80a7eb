package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle_Embedded(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultStyleName, err)
	}
	for _, selector := range []string{"#root", ".hash", ".inline-code", "figcaption", ".next-article"} {
		if !strings.Contains(css, selector) {
			t.Errorf("embedded stylesheet has no %s rule", selector)
		}
	}
}

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		load    func() error
		wantErr error
	}{
		{
			name:    "unknown style",
			load:    func() error { _, err := loader.LoadStyle("missing"); return err },
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "traversal in style name",
			load:    func() error { _, err := loader.LoadStyle("../styles/index"); return err },
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "fonts are never embedded",
			load:    func() error { _, err := loader.LoadFont("NotoSansCJKjp-Regular.otf"); return err },
			wantErr: ErrFontNotFound,
		},
		{
			name:    "font name validated first",
			load:    func() error { _, err := loader.LoadFont("font.woff2"); return err },
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.load(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFontName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "NotoSansCJK-Regular.ttc"},
		{name: "font.TTF"},
		{name: "font.otf"},
		{name: "", wantErr: true},
		{name: "fonts/font.ttf", wantErr: true},
		{name: `fonts\font.ttf`, wantErr: true},
		{name: ".hidden.ttf", wantErr: true},
		{name: "a..ttf", wantErr: true},
		{name: "font.woff", wantErr: true},
		{name: "font", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateFontName(tt.name)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateFontName(%q) error = %v, want ErrInvalidAssetName", tt.name, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateFontName(%q) unexpected error: %v", tt.name, err)
			}
		})
	}
}
