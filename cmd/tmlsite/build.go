package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tmlsite "github.com/alnah/go-tmlsite"
	"github.com/alnah/go-tmlsite/internal/assets"
	"github.com/alnah/go-tmlsite/internal/config"
	"github.com/alnah/go-tmlsite/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage      = errors.New("invalid arguments")
	ErrNoInput    = errors.New("no input directory specified")
	ErrNoSources  = errors.New("no source files found")
	ErrReadFont   = errors.New("failed to read share card font")
	ErrWriteAsset = errors.New("failed to write stylesheet")
)

// defaultOutputDir is used when neither flags, env nor config name one.
const defaultOutputDir = "public"

// runBuildCmd parses the build flags and runs a build.
func runBuildCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input directory, got %d", ErrUsage, len(positional))
	}
	setMaxProcs(env, flags.common.verbose)
	return runBuild(ctx, positional, flags, env)
}

// runBuild loads the sources, builds the site and writes it out.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, env *Environment) error {
	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(env.Stderr)

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if len(positional) == 1 {
		cfg.Input.Dir = positional[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Input.Dir == "" {
		return ErrNoInput
	}
	if !fileutil.DirExists(cfg.Input.Dir) {
		return fmt.Errorf("%w: %s", os.ErrNotExist, cfg.Input.Dir)
	}
	outDir := cfg.Output.Dir
	if outDir == "" {
		outDir = defaultOutputDir
	}

	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	logger.Debug("assets", "custom", resolver.HasCustomLoader(), "basePath", cfg.Assets.BasePath)

	start := env.Now()
	docs, err := tmlsite.LoadDir(cfg.Input.Dir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("%w in %s", ErrNoSources, cfg.Input.Dir)
	}
	logger.Debug("loaded sources", "dir", cfg.Input.Dir, "documents", len(docs))

	opts, err := builderOptions(cfg, resolver, logger)
	if err != nil {
		return err
	}
	b, err := tmlsite.New(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()

	result, err := b.Build(ctx, docs)
	if err != nil {
		return err
	}

	written, err := result.WriteTo(outDir)
	if err != nil {
		return err
	}
	styles, err := writeStylesheets(outDir, cfg, b, resolver)
	if err != nil {
		return err
	}
	written = append(written, styles...)

	if !flags.common.quiet {
		for _, p := range written {
			fmt.Fprintf(env.Stdout, "Created %s\n", p)
		}
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Built %d page(s), %d share card(s) in %s\n",
			len(result.Pages), result.Cards(), env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// loadConfig loads the named config, falling back to TMLSITE_CONFIG and
// then to the defaults.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.workers != 0 {
		cfg.Build.Workers = flags.workers
	}
	if flags.style != "" {
		cfg.Highlight.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.ogpBackend != "" {
		cfg.OGP.Backend = flags.ogpBackend
	}
	if flags.ogpFont != "" {
		cfg.OGP.Font = flags.ogpFont
	}
	if flags.noOGP {
		cfg.OGP.Enabled = false
	}
}

// builderOptions translates the config into builder options.
func builderOptions(cfg *config.Config, loader assets.AssetLoader, logger *slog.Logger) ([]tmlsite.Option, error) {
	opts := []tmlsite.Option{
		tmlsite.WithSite(siteFromConfig(cfg.Site)),
		tmlsite.WithHighlightStyle(cfg.Highlight.Style),
		tmlsite.WithWorkers(cfg.Build.Workers),
		tmlsite.WithLogger(logger),
	}
	if !cfg.OGP.Enabled {
		return opts, nil
	}

	backend := strings.ToLower(cfg.OGP.Backend)
	cards := tmlsite.ShareCards{
		Backend:  backend,
		FontSize: cfg.OGP.FontSize,
		Width:    cfg.OGP.Width,
	}
	switch backend {
	case config.BackendChrome:
		cards.FontFamily = cfg.OGP.Font
	default:
		name := cfg.OGP.Font
		if name == config.DefaultCardFontFamily {
			// The default names a Chrome family, not a font file.
			name = ""
		}
		font, err := loadFont(name, loader)
		if err != nil {
			return nil, err
		}
		cards.Font = font
	}
	return append(opts, tmlsite.WithShareCards(cards)), nil
}

// loadFont reads a raster font from a file path or, failing that, from the
// asset fonts/ directory. An empty name selects the bundled font.
func loadFont(name string, loader assets.AssetLoader) ([]byte, error) {
	if name == "" {
		return nil, nil
	}
	if fileutil.FileExists(name) {
		data, err := os.ReadFile(name) // #nosec G304 -- font path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadFont, err)
		}
		return data, nil
	}
	data, err := loader.LoadFont(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFont, err)
	}
	return data, nil
}

func siteFromConfig(s config.SiteConfig) tmlsite.Site {
	return tmlsite.Site{
		URL:                 s.URL,
		Name:                s.Name,
		Twitter:             s.Twitter,
		Icon:                s.Icon,
		Favicon:             s.Favicon,
		Stylesheet:          s.Stylesheet,
		HighlightStylesheet: s.HighlightStylesheet,
		IndexDescription:    s.IndexDescription,
		BackLabel:           s.BackLabel,
	}
}

// writeStylesheets writes the site and highlight stylesheets next to the
// pages at the paths every page head links to.
func writeStylesheets(outDir string, cfg *config.Config, b *tmlsite.Builder, loader assets.AssetLoader) ([]string, error) {
	var written []string

	if cfg.Site.Stylesheet != "" {
		css, err := loader.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return nil, err
		}
		p, err := fileutil.WriteFile(outDir, cfg.Site.Stylesheet, []byte(css))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteAsset, err)
		}
		written = append(written, p)
	}

	if cfg.Site.HighlightStylesheet != "" {
		var buf bytes.Buffer
		if err := b.WriteHighlightCSS(&buf); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteAsset, err)
		}
		p, err := fileutil.WriteFile(outDir, cfg.Site.HighlightStylesheet, buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteAsset, err)
		}
		written = append(written, p)
	}
	return written, nil
}
