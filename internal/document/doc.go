// Package document defines the command tree consumed by the site compiler.
//
// A Document is one source page. Its Root is a Command: a named markup
// construct with attributes and inner content. Inner content and rich-text
// attribute values are sequences of Text items, each pairing an Elem
// (PlainText, InlineLiteral or *Command) with the Location it came from.
//
// The tree is owned top-down: commands hold their children by value or
// pointer, never their parent, and no cycles are possible.
//
// Trees are produced by a front-end. This package ships the YAML
// interchange decoder (Decode); internal/frontend adds Markdown.
package document
