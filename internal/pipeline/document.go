package pipeline

import "io"

// Document is the render-ready view of a partitioned grocery list.
type Document struct {
	Font     string
	FontSize int
	Columns  int
	Raw      bool // Items, titles and labels are emitted verbatim
	Sections []Section
}

// Section is one heading plus its item list.
type Section struct {
	Title string   // Main heading, e.g. "Grocery List"
	Label string   // Date stamp in single mode, bucket name in split mode
	Items []string // In input order
}

// Renderer writes a Document in one output format.
type Renderer interface {
	Render(w io.Writer, doc *Document) error
}
