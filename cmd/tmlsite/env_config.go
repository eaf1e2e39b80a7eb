package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-tmlsite/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TMLSITE_CONFIG: config file name or path
	InputDir   string // TMLSITE_INPUT_DIR: source directory
	OutputDir  string // TMLSITE_OUTPUT_DIR: output directory
	SiteURL    string // TMLSITE_SITE_URL: absolute site root
	OGPBackend string // TMLSITE_OGP_BACKEND: raster, chrome
	Workers    int    // TMLSITE_WORKERS: parallel renders
}

// knownEnvVars lists valid TMLSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TMLSITE_CONFIG":      true,
	"TMLSITE_INPUT_DIR":   true,
	"TMLSITE_OUTPUT_DIR":  true,
	"TMLSITE_SITE_URL":    true,
	"TMLSITE_OGP_BACKEND": true,
	"TMLSITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TMLSITE_CONFIG"),
		InputDir:   os.Getenv("TMLSITE_INPUT_DIR"),
		OutputDir:  os.Getenv("TMLSITE_OUTPUT_DIR"),
		SiteURL:    os.Getenv("TMLSITE_SITE_URL"),
		OGPBackend: os.Getenv("TMLSITE_OGP_BACKEND"),
	}
	if workers := os.Getenv("TMLSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized TMLSITE_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TMLSITE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values over the config file.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.Dir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.SiteURL != "" {
		cfg.Site.URL = env.SiteURL
	}
	if env.OGPBackend != "" {
		cfg.OGP.Backend = env.OGPBackend
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
