package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-tmlsite/internal/highlight"
	"github.com/alnah/go-tmlsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxURLLength   = 2048 // Browser limit
	MaxNameLength  = 100
	MaxPathLength  = 1024
	MaxTextLength  = 500
	MaxStyleLength = 50
	MaxWorkers     = 64
	MaxFontSize    = 200
	MaxLineWidth   = 200
)

// Share-card drawing backends.
const (
	BackendRaster = "raster"
	BackendChrome = "chrome"
)

// DefaultCardFontFamily is the CJK face share cards are drawn in by default.
const DefaultCardFontFamily = "Noto Sans CJK JP"

// appDir is the directory under the user config dir searched by name.
const appDir = "go-tmlsite"

// Config holds all configuration for a site build.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Build     BuildConfig     `yaml:"build"`
	Highlight HighlightConfig `yaml:"highlight"`
	OGP       OGPConfig       `yaml:"ogp"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// SiteConfig holds the values every page head repeats.
type SiteConfig struct {
	URL                 string `yaml:"url"` // absolute, e.g. "https://example.dev/"
	Name                string `yaml:"name"`
	Twitter             string `yaml:"twitter"`
	Icon                string `yaml:"icon"`    // site-relative
	Favicon             string `yaml:"favicon"` // site-relative
	Stylesheet          string `yaml:"stylesheet"`
	HighlightStylesheet string `yaml:"highlightStylesheet"`
	IndexDescription    string `yaml:"indexDescription"`
	BackLabel           string `yaml:"backLabel"`
}

// InputConfig defines where sources are read.
type InputConfig struct {
	Dir string `yaml:"dir"` // Empty = positional argument required
}

// OutputConfig defines where pages are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty = "public"
}

// BuildConfig tunes the render phase.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// HighlightConfig selects the code highlighting style.
type HighlightConfig struct {
	Style string `yaml:"style"`
}

// OGPConfig controls share-card generation.
type OGPConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Backend  string `yaml:"backend"` // "raster" or "chrome"
	Font     string `yaml:"font"`    // raster: font file path; chrome: font family
	FontSize int    `yaml:"fontSize"`
	Width    int    `yaml:"width"` // line budget in bytes
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"site.url", c.Site.URL, MaxURLLength},
		{"site.name", c.Site.Name, MaxNameLength},
		{"site.twitter", c.Site.Twitter, MaxNameLength},
		{"site.icon", c.Site.Icon, MaxPathLength},
		{"site.favicon", c.Site.Favicon, MaxPathLength},
		{"site.stylesheet", c.Site.Stylesheet, MaxPathLength},
		{"site.highlightStylesheet", c.Site.HighlightStylesheet, MaxPathLength},
		{"site.indexDescription", c.Site.IndexDescription, MaxTextLength},
		{"site.backLabel", c.Site.BackLabel, MaxNameLength},
		{"highlight.style", c.Highlight.Style, MaxStyleLength},
		{"ogp.font", c.OGP.Font, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Site.URL != "" {
		u, err := url.Parse(c.Site.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: site.url must be an absolute http(s) URL, got %q", ErrInvalidValue, c.Site.URL)
		}
	}
	if c.Highlight.Style != "" && !highlight.HasStyle(c.Highlight.Style) {
		return fmt.Errorf("%w: highlight.style: unknown style %q", ErrInvalidValue, c.Highlight.Style)
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	switch strings.ToLower(c.OGP.Backend) {
	case "", BackendRaster, BackendChrome:
	default:
		return fmt.Errorf("%w: ogp.backend: invalid value %q (must be %s or %s)", ErrInvalidValue, c.OGP.Backend, BackendRaster, BackendChrome)
	}
	if c.OGP.FontSize < 0 || c.OGP.FontSize > MaxFontSize {
		return fmt.Errorf("%w: ogp.fontSize: must be between 0 and %d, got %d", ErrInvalidValue, MaxFontSize, c.OGP.FontSize)
	}
	if c.OGP.Width < 0 || c.OGP.Width > MaxLineWidth {
		return fmt.Errorf("%w: ogp.width: must be between 0 and %d, got %d", ErrInvalidValue, MaxLineWidth, c.OGP.Width)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration of the original site: its head
// values, share cards drawn by Chrome in Noto Sans CJK JP at 30px and a
// 40-byte line budget.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			URL:                 "https://namachan10777.dev/",
			Name:                "namachan10777",
			Twitter:             "@namachan10777",
			Icon:                "res/icon.jpg",
			Favicon:             "res/favicon.ico",
			Stylesheet:          "index.css",
			HighlightStylesheet: "syntect.css",
			IndexDescription:    "about me",
			BackLabel:           "戻る",
		},
		Highlight: HighlightConfig{Style: highlight.DefaultStyle},
		OGP: OGPConfig{
			Enabled:  true,
			Backend:  BackendChrome,
			Font:     DefaultCardFontFamily,
			FontSize: 30,
			Width:    40,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-tmlsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
