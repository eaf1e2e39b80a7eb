package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tmlsite "github.com/alnah/go-tmlsite"
	"github.com/alnah/go-tmlsite/internal/assets"
	"github.com/alnah/go-tmlsite/internal/config"
)

const indexSource = `name: index
attrs:
  title: [Home]
inner:
  - name: articles
    attrs:
      dir: article
`

const articleSource = `name: article
attrs:
  title: [First]
  date: "2021-01-01"
inner:
  - name: blockcode
    attrs:
      lang: go
      src: "package main\n"
`

const badDateSource = `name: article
attrs:
  title: [Broken]
  date: "April 1st"
`

const japaneseArticleSource = `name: article
attrs:
  title: [日本国民は、正当に選挙された国会における代表者を通じて行動し]
  date: "2021-01-01"
`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRunBuild_WritesSite(t *testing.T) {
	t.Parallel()

	src := writeTree(t, map[string]string{
		"index.tml.yaml":      indexSource,
		"article/a1.tml.yaml": articleSource,
	})
	out := t.TempDir()
	env, stdout, _ := newTestEnv()

	flags := &buildFlags{output: out, noOGP: true}
	if err := runBuild(context.Background(), []string{src}, flags, env); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	for _, rel := range []string{"index.html", "article/a1.html", "index.css", "syntect.css"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not written: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "article", "a1.png")); !os.IsNotExist(err) {
		t.Error("share card written despite --no-ogp")
	}
	if got := strings.Count(stdout.String(), "Created "); got != 4 {
		t.Errorf("stdout has %d Created lines, want 4:\n%s", got, stdout.String())
	}
}

func TestRunBuild_Quiet(t *testing.T) {
	t.Parallel()

	src := writeTree(t, map[string]string{"index.tml.yaml": indexSource})
	env, stdout, _ := newTestEnv()

	flags := &buildFlags{output: t.TempDir(), noOGP: true, common: commonFlags{quiet: true}}
	if err := runBuild(context.Background(), []string{src}, flags, env); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet build printed %q", stdout.String())
	}
}

func TestRunBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		files    map[string]string
		input    func(src string) []string
		flags    buildFlags
		wantErr  error
		wantCode int
	}{
		{
			name:     "no input",
			input:    func(string) []string { return nil },
			flags:    buildFlags{noOGP: true},
			wantErr:  ErrNoInput,
			wantCode: ExitUsage,
		},
		{
			name:     "missing input directory",
			input:    func(src string) []string { return []string{filepath.Join(src, "nope")} },
			flags:    buildFlags{noOGP: true},
			wantErr:  os.ErrNotExist,
			wantCode: ExitIO,
		},
		{
			name:     "empty input directory",
			files:    map[string]string{"notes.txt": "x"},
			flags:    buildFlags{noOGP: true},
			wantErr:  ErrNoSources,
			wantCode: ExitIO,
		},
		{
			name:     "bad article date",
			files:    map[string]string{"article/a.tml.yaml": badDateSource},
			flags:    buildFlags{noOGP: true},
			wantErr:  tmlsite.ErrProcess,
			wantCode: ExitDocument,
		},
		{
			name:     "unknown highlight style",
			files:    map[string]string{"index.tml.yaml": indexSource},
			flags:    buildFlags{noOGP: true, style: "no-such-style"},
			wantErr:  config.ErrInvalidValue,
			wantCode: ExitUsage,
		},
		{
			name:     "missing share card font",
			files:    map[string]string{"index.tml.yaml": indexSource},
			flags:    buildFlags{ogpBackend: "raster", ogpFont: "missing.ttf"},
			wantErr:  ErrReadFont,
			wantCode: ExitShareCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := writeTree(t, tt.files)
			input := []string{src}
			if tt.input != nil {
				input = tt.input(src)
			}
			flags := tt.flags
			flags.output = t.TempDir()
			env, _, _ := newTestEnv()

			err := runBuild(context.Background(), input, &flags, env)
			if err == nil {
				t.Fatal("runBuild() expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runBuild() error = %v, want %v", err, tt.wantErr)
			}
			if code := exitCodeFor(err); code != tt.wantCode {
				t.Errorf("exitCodeFor(%v) = %d, want %d", err, code, tt.wantCode)
			}
		})
	}
}

func TestRunBuild_RasterWithoutCJKFont(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("loads the tokenizer dictionary")
	}

	src := writeTree(t, map[string]string{"article/jp.tml.yaml": japaneseArticleSource})
	env, _, _ := newTestEnv()

	// The default font family is a Chrome face; on the raster backend it
	// falls back to the bundled font, which cannot draw the title.
	flags := &buildFlags{output: t.TempDir(), ogpBackend: config.BackendRaster}
	err := runBuild(context.Background(), []string{src}, flags, env)
	if !errors.Is(err, tmlsite.ErrCardMissingGlyph) {
		t.Fatalf("runBuild() error = %v, want ErrCardMissingGlyph", err)
	}
	if code := exitCodeFor(err); code != ExitShareCard {
		t.Errorf("exitCodeFor() = %d, want %d", code, ExitShareCard)
	}
	if hint := hintFor(err); !strings.Contains(hint, "ogp.font") {
		t.Errorf("hintFor() = %q, want a font hint", hint)
	}
}

func TestBuilderOptions_DefaultCardsUseCJKFamily(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	if cfg.OGP.Backend != config.BackendChrome || cfg.OGP.Font != config.DefaultCardFontFamily {
		t.Fatalf("default OGP = %+v, want chrome with %q", cfg.OGP, config.DefaultCardFontFamily)
	}

	resolver, err := assets.NewAssetResolver("")
	if err != nil {
		t.Fatal(err)
	}
	opts, err := builderOptions(cfg, resolver, nil)
	if err != nil {
		t.Fatalf("builderOptions() error = %v", err)
	}
	b, err := tmlsite.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// The browser starts on first draw, so closing an unused builder is cheap.
	if err := b.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	mergeFlags(&buildFlags{
		output:     "out",
		workers:    3,
		style:      "monokai",
		assetPath:  "assets",
		ogpBackend: "chrome",
		ogpFont:    "Noto Sans JP",
		noOGP:      true,
	}, cfg)

	if cfg.Output.Dir != "out" || cfg.Build.Workers != 3 || cfg.Highlight.Style != "monokai" {
		t.Errorf("output/workers/style not merged: %+v", cfg)
	}
	if cfg.Assets.BasePath != "assets" {
		t.Errorf("Assets.BasePath = %q, want assets", cfg.Assets.BasePath)
	}
	if cfg.OGP.Backend != "chrome" || cfg.OGP.Font != "Noto Sans JP" || cfg.OGP.Enabled {
		t.Errorf("OGP not merged: %+v", cfg.OGP)
	}

	// Zero values keep the config.
	cfg = config.DefaultConfig()
	mergeFlags(&buildFlags{}, cfg)
	if !cfg.OGP.Enabled || cfg.Highlight.Style != config.DefaultConfig().Highlight.Style {
		t.Errorf("empty flags changed config: %+v", cfg)
	}
}
