// Package render compiles one document's command tree into an XHTML
// output tree.
//
// Compilation is a recursive fold. Every handler receives a Context by
// value and derives children's contexts with At (new location) or Nested
// (one heading level deeper); a parent's context is never modified.
// Contexts only reference the immutable analysis Report, so documents can
// be compiled concurrently.
package render
