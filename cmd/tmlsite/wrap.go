package main

import (
	"fmt"
	"strings"

	tmlsite "github.com/alnah/go-tmlsite"
)

// runWrapCmd prints the share-card lines of a title, one per line.
func runWrapCmd(args []string, env *Environment) error {
	flags, positional, err := parseWrapFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: wrap needs a title", ErrUsage)
	}
	if flags.width < 0 {
		return fmt.Errorf("%w: --width must not be negative", ErrUsage)
	}

	lines, err := tmlsite.WrapTitle(strings.Join(positional, " "), flags.width)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(env.Stdout, l)
	}
	return nil
}
