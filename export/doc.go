// Package export serializes rich-text content to HTML, Markdown and plain
// text.
//
// Exports are computed on demand. Nothing in this package is meant to run on
// every edit.
package export
