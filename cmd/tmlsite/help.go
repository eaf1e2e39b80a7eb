package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tmlsite <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the site from a source directory")
	fmt.Fprintln(w, "  css        Print the code highlight stylesheet")
	fmt.Fprintln(w, "  wrap       Print the share card lines of a title")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tmlsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tmlsite build [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every .tml.yaml and .md file under input into HTML pages,")
	fmt.Fprintln(w, "plus a PNG share card per article.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Source directory (optional if config has input.dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: public)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel renders (0 = auto)")
	fmt.Fprintln(w, "      --style <name>        Chroma highlight style")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom assets (styles/, fonts/)")
	fmt.Fprintln(w, "      --ogp-backend <s>     Share card backend: raster, chrome")
	fmt.Fprintln(w, "      --ogp-font <s>        Raster: font file or asset name; chrome: font family")
	fmt.Fprintln(w, "      --no-ogp              Skip share cards")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-page diagnostics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TMLSITE_CONFIG, TMLSITE_INPUT_DIR, TMLSITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  TMLSITE_SITE_URL, TMLSITE_OGP_BACKEND, TMLSITE_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general, 2 usage/config, 3 I/O, 4 document, 5 share card")
}

// runHelp prints help for a command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "css":
		fmt.Fprintln(env.Stdout, "Usage: tmlsite css [--style <name>] [--config <name>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the stylesheet matching the classes of highlighted code blocks.")
	case "wrap":
		fmt.Fprintln(env.Stdout, "Usage: tmlsite wrap [--width <n>] <title>")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the lines a share card would draw for title.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: tmlsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: tmlsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
