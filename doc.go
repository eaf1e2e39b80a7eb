// Package tmlsite builds a static site from command-tree documents.
//
// # Quick Start
//
// Load the sources, build, and write the pages:
//
//	docs, err := tmlsite.LoadDir("src")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := tmlsite.New(tmlsite.WithShareCards(tmlsite.ShareCards{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	result, err := b.Build(ctx, docs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := result.WriteTo("public"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sources
//
// A source file is either a YAML command tree (".tml.yaml") or Markdown
// with optional front matter (".md"). Its path relative to the input root
// fixes the page path: "article/a1.tml.yaml" becomes "article/a1.html".
// The root command of every page is \index or \article; articles carry a
// "date" attribute in YYYY-MM-DD form.
//
// # Build Phases
//
//  1. Analysis reads every document once: fingerprints, publish dates,
//     per-directory title lists and prev/next neighbours.
//  2. Rendering compiles each document against that read-only snapshot.
//     Documents are independent and render concurrently (WithWorkers).
//  3. Share cards: with WithShareCards, every article gets a PNG card with
//     its title wrapped by a Japanese-aware line filler.
//
// A failure in analysis aborts the build. A failure while rendering
// returns the error of the earliest failing document in input order.
// Document errors carry a source location:
//
//	if loc, ok := tmlsite.LocationOf(err); ok {
//	    fmt.Println(loc)
//	}
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b, err := tmlsite.New(
//	    tmlsite.WithSite(site),
//	    tmlsite.WithHighlightStyle("monokai"),
//	    tmlsite.WithWorkers(4),
//	    tmlsite.WithLogger(slog.Default()),
//	)
//
// Code blocks reference the classes of the highlight stylesheet, written
// by Builder.WriteHighlightCSS.
package tmlsite
