package pipeline

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
)

// MarkdownRenderer renders a Document as a Markdown checklist.
// Each section becomes a heading, its label a subheading and each item an
// unchecked task list entry. Sections are separated by horizontal rules.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render writes doc to w. Item text is written as is.
func (r *MarkdownRenderer) Render(w io.Writer, doc *Document) error {
	md := markdown.NewMarkdown(w)
	for i, s := range doc.Sections {
		if i > 0 {
			md.HorizontalRule()
			md.PlainText("")
		}
		md.H1(s.Title)
		md.PlainText("")
		md.H2(s.Label)
		md.PlainText("")
		if len(s.Items) > 0 {
			entries := make([]string, len(s.Items))
			for j, item := range s.Items {
				entries[j] = "[ ] " + item
			}
			md.BulletList(entries...)
			md.PlainText("")
		}
	}
	if err := md.Build(); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// Compile-time interface check.
var _ Renderer = (*MarkdownRenderer)(nil)
