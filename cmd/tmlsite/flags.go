package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common     commonFlags
	output     string
	workers    int
	style      string // highlight style
	assetPath  string
	ogpBackend string
	ogpFont    string
	noOGP      bool
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	common commonFlags
	style  string
}

// wrapFlags holds flags for the wrap command.
type wrapFlags struct {
	width int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page diagnostics")
}

func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "documents rendered in parallel (0 = auto)")
	fs.StringVar(&f.style, "style", "", "chroma highlight style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory (styles/, fonts/)")
	fs.StringVar(&f.ogpBackend, "ogp-backend", "", "share card backend: raster, chrome")
	fs.StringVar(&f.ogpFont, "ogp-font", "", "share card font (raster: file or asset name, chrome: family)")
	fs.BoolVar(&f.noOGP, "no-ogp", false, "skip share cards")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseCSSFlags(args []string) (*cssFlags, []string, error) {
	f := &cssFlags{}
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.style, "style", "", "chroma highlight style")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseWrapFlags(args []string) (*wrapFlags, []string, error) {
	f := &wrapFlags{}
	fs := flag.NewFlagSet("wrap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&f.width, "width", 0, "line budget in bytes (0 = 40)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
