package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-tmlsite/internal/config"
)

// Environment tests use t.Setenv and cannot run in parallel.

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("TMLSITE_CONFIG", "site")
	t.Setenv("TMLSITE_INPUT_DIR", "src")
	t.Setenv("TMLSITE_OUTPUT_DIR", "out")
	t.Setenv("TMLSITE_SITE_URL", "https://example.dev/")
	t.Setenv("TMLSITE_OGP_BACKEND", "chrome")
	t.Setenv("TMLSITE_WORKERS", "3")

	env := loadEnvConfig()
	if env.ConfigPath != "site" || env.InputDir != "src" || env.OutputDir != "out" {
		t.Errorf("paths not read: %+v", env)
	}
	if env.SiteURL != "https://example.dev/" || env.OGPBackend != "chrome" || env.Workers != 3 {
		t.Errorf("values not read: %+v", env)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	for _, v := range []string{"abc", "-2", "0"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("TMLSITE_WORKERS", v)
			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("Workers = %d, want 0 for %q", got, v)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	applyEnvConfig(&envConfig{
		InputDir:   "src",
		OutputDir:  "out",
		SiteURL:    "https://example.dev/",
		OGPBackend: "chrome",
		Workers:    2,
	}, cfg)

	if cfg.Input.Dir != "src" || cfg.Output.Dir != "out" {
		t.Errorf("dirs = %q, %q", cfg.Input.Dir, cfg.Output.Dir)
	}
	if cfg.Site.URL != "https://example.dev/" || cfg.OGP.Backend != "chrome" || cfg.Build.Workers != 2 {
		t.Errorf("values not applied: %+v", cfg)
	}

	// Empty env keeps the config.
	cfg = config.DefaultConfig()
	applyEnvConfig(&envConfig{}, cfg)
	if cfg.Site.URL != config.DefaultConfig().Site.URL {
		t.Errorf("Site.URL changed to %q", cfg.Site.URL)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("TMLSITE_OUTPUT_DIRR", "x")
	t.Setenv("TMLSITE_WORKERS", "2")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)
	if !strings.Contains(buf.String(), "TMLSITE_OUTPUT_DIRR") {
		t.Errorf("missing warning for typo, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "TMLSITE_WORKERS ") {
		t.Errorf("known variable reported: %q", buf.String())
	}
}
