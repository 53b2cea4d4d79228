package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const testTemplate = `<<.FontSize>>|<<.Font>>|<<.Columns>>
<<range $i, $s := .Sections>><<if $i>>\newpage
<<end>>[<<$s.Title>>/<<$s.Label>>]
<<range $s.Items>>\item[] <<.>>
<<end>><<end>>END`

func TestNewLaTeXRenderer(t *testing.T) {
	t.Parallel()

	t.Run("valid template", func(t *testing.T) {
		t.Parallel()

		if _, err := NewLaTeXRenderer("doc", testTemplate); err != nil {
			t.Fatalf("NewLaTeXRenderer() error = %v", err)
		}
	})

	t.Run("unterminated action", func(t *testing.T) {
		t.Parallel()

		_, err := NewLaTeXRenderer("doc", "<<.Font")
		if !errors.Is(err, ErrTemplateParse) {
			t.Errorf("error = %v, want ErrTemplateParse", err)
		}
	})

	t.Run("braces are not delimiters", func(t *testing.T) {
		t.Parallel()

		if _, err := NewLaTeXRenderer("doc", `\begin{document}{{not an action}}`); err != nil {
			t.Errorf("NewLaTeXRenderer() error = %v", err)
		}
	})
}

func TestLaTeXRenderer_Render(t *testing.T) {
	t.Parallel()

	r, err := NewLaTeXRenderer("doc", testTemplate)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("sections and page breaks", func(t *testing.T) {
		t.Parallel()

		doc := &Document{
			Font: "Andika", FontSize: 12, Columns: 2,
			Sections: []Section{
				{Title: "Grocery List", Label: "All", Items: []string{"apples", "bread"}},
				{Title: "Grocery List", Label: "A", Items: []string{"apples"}},
				{Title: "Grocery List", Label: "B", Items: []string{"bread"}},
			},
		}
		var buf bytes.Buffer
		if err := r.Render(&buf, doc); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		want := `12|Andika|2
[Grocery List/All]
\item[] apples
\item[] bread
\newpage
[Grocery List/A]
\item[] apples
\newpage
[Grocery List/B]
\item[] bread
END`
		if got := buf.String(); got != want {
			t.Errorf("Render() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("escapes by default", func(t *testing.T) {
		t.Parallel()

		doc := &Document{Sections: []Section{{Title: "Mom & Dad", Label: "x", Items: []string{"50% cocoa"}}}}
		var buf bytes.Buffer
		if err := r.Render(&buf, doc); err != nil {
			t.Fatal(err)
		}
		got := buf.String()
		for _, want := range []string{`Mom \& Dad`, `\item[] 50\% cocoa`} {
			if !strings.Contains(got, want) {
				t.Errorf("Render() output missing %q:\n%s", want, got)
			}
		}
		if doc.Sections[0].Items[0] != "50% cocoa" {
			t.Error("Render() modified the caller's document")
		}
	})

	t.Run("raw keeps text verbatim", func(t *testing.T) {
		t.Parallel()

		doc := &Document{Raw: true, Sections: []Section{{Title: "T", Label: "L", Items: []string{`\textbf{milk}`}}}}
		var buf bytes.Buffer
		if err := r.Render(&buf, doc); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), `\item[] \textbf{milk}`) {
			t.Errorf("Render() output = %q, want raw item", buf.String())
		}
	})

	t.Run("empty item produces empty entry", func(t *testing.T) {
		t.Parallel()

		doc := &Document{Sections: []Section{{Title: "T", Label: "L", Items: []string{""}}}}
		var buf bytes.Buffer
		if err := r.Render(&buf, doc); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "\\item[] \n") {
			t.Errorf("Render() output = %q, want empty entry", buf.String())
		}
	})
}

func TestLaTeXRenderer_RenderUnknownField(t *testing.T) {
	t.Parallel()

	r, err := NewLaTeXRenderer("doc", "<<.Nope>>")
	if err != nil {
		t.Fatal(err)
	}
	err = r.Render(&bytes.Buffer{}, &Document{})
	if !errors.Is(err, ErrRender) {
		t.Errorf("Render() error = %v, want ErrRender", err)
	}
}
