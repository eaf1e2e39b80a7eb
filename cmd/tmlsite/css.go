package main

import (
	"fmt"

	tmlsite "github.com/alnah/go-tmlsite"
)

// runCSSCmd writes the highlight stylesheet for the configured style to
// stdout.
func runCSSCmd(args []string, env *Environment) error {
	flags, positional, err := parseCSSFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: css takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	style := cfg.Highlight.Style
	if flags.style != "" {
		style = flags.style
	}

	b, err := tmlsite.New(
		tmlsite.WithHighlightStyle(style),
		tmlsite.WithLogger(newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)),
	)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()
	return b.WriteHighlightCSS(env.Stdout)
}
