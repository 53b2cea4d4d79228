// Package pipeline implements the text stages of grocery list generation.
//
// This package handles the stages around the root package's partitioner:
//   - Input decoding (byte order marks, UTF-16 transcoding) and line splitting
//   - LaTeX escaping of item text
//   - Rendering a Document through a LaTeX text/template
//   - Rendering a Document as a Markdown checklist
//
// Templates themselves are loaded by internal/assets. The root grocerylist
// package owns file I/O and error classification; this package works on
// bytes, strings and io.Writer only.
package pipeline
