package pipeline

import (
	"errors"
	"fmt"
	"io"
	"text/template"
)

// Sentinel errors for LaTeX rendering.
var (
	ErrTemplateParse = errors.New("failed to parse document template")
	ErrRender        = errors.New("failed to render document")
)

// Template delimiters. LaTeX uses braces everywhere, so {{ }} would clash.
const (
	leftDelim  = "<<"
	rightDelim = ">>"
)

// LaTeXRenderer renders a Document through a text/template LaTeX source.
// Safe for concurrent use: the parsed template is never modified after
// construction.
type LaTeXRenderer struct {
	tmpl *template.Template
}

// NewLaTeXRenderer parses a document template.
func NewLaTeXRenderer(name, source string) (*LaTeXRenderer, error) {
	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &LaTeXRenderer{tmpl: tmpl}, nil
}

// Render writes doc to w. Text is escaped unless doc.Raw is set.
func (r *LaTeXRenderer) Render(w io.Writer, doc *Document) error {
	if err := r.tmpl.Execute(w, escapeDocument(doc)); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// escapeDocument returns a copy of doc with LaTeX-escaped text.
func escapeDocument(doc *Document) *Document {
	if doc.Raw {
		return doc
	}
	out := *doc
	out.Sections = make([]Section, len(doc.Sections))
	for i, s := range doc.Sections {
		items := make([]string, len(s.Items))
		for j, item := range s.Items {
			items[j] = EscapeLaTeX(item)
		}
		out.Sections[i] = Section{
			Title: EscapeLaTeX(s.Title),
			Label: EscapeLaTeX(s.Label),
			Items: items,
		}
	}
	return &out
}

// Compile-time interface check.
var _ Renderer = (*LaTeXRenderer)(nil)
