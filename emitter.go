package grocerylist

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alnah/go-grocerylist/internal/assets"
	"github.com/alnah/go-grocerylist/internal/dateutil"
	"github.com/alnah/go-grocerylist/internal/pipeline"
)

// Emitter renders partitioned items into a document.
// Create with NewEmitter. An Emitter is safe for concurrent use.
type Emitter struct {
	latex    pipeline.Renderer
	markdown pipeline.Renderer
	now      func() time.Time
}

type emitterConfig struct {
	templateSet string
	assetPath   string
	now         func() time.Time
}

// EmitterOption configures an Emitter.
type EmitterOption func(*emitterConfig)

// WithTemplate selects the LaTeX template set by name (default "default").
func WithTemplate(name string) EmitterOption {
	return func(c *emitterConfig) {
		c.templateSet = name
	}
}

// WithTemplateDir adds a directory of custom template sets, laid out as
// {dir}/templates/{name}/document.tex. Built-in sets remain available.
func WithTemplateDir(dir string) EmitterOption {
	return func(c *emitterConfig) {
		c.assetPath = dir
	}
}

// WithNow sets the clock used for date stamps (default time.Now).
func WithNow(now func() time.Time) EmitterOption {
	return func(c *emitterConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewEmitter loads and parses the document template.
// Returns ErrInvalidAssetPath, ErrTemplateNotFound or ErrTemplateParse.
func NewEmitter(opts ...EmitterOption) (*Emitter, error) {
	cfg := emitterConfig{
		templateSet: assets.DefaultTemplateSetName,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	loader, err := newAssetLoader(cfg.assetPath)
	if err != nil {
		return nil, err
	}

	ts, err := loader.LoadTemplateSet(cfg.templateSet)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrTemplateNotFound, cfg.templateSet, err)
	}

	latex, err := pipeline.NewLaTeXRenderer(ts.Name, ts.Document)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrTemplateParse, ts.Name, err)
	}

	return &Emitter{
		latex:    latex,
		markdown: pipeline.NewMarkdownRenderer(),
		now:      cfg.now,
	}, nil
}

// newAssetLoader returns the embedded loader, or a resolver preferring
// assetPath when one is given.
func newAssetLoader(assetPath string) (assets.AssetLoader, error) {
	if assetPath == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}

// TemplateNames lists the template sets available with the given asset
// directory (empty for built-in sets only).
func TemplateNames(assetPath string) []string {
	loader, err := newAssetLoader(assetPath)
	if err != nil {
		return assets.NewEmbeddedLoader().TemplateSetNames()
	}
	return loader.TemplateSetNames()
}

// Emit renders b to w. The document is built in memory and written once.
// Write failures are reported as ErrOutputIO.
func (e *Emitter) Emit(w io.Writer, b *Buckets, opts RenderOptions) error {
	data, err := e.render(b, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputIO, err)
	}
	return nil
}

// EmitFile renders b and writes it to path, creating or truncating the file.
// Nothing is created when rendering fails. A failed write can leave a
// truncated file behind.
func (e *Emitter) EmitFile(path string, b *Buckets, opts RenderOptions) (err error) {
	data, err := e.render(b, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputNotWritable, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrOutputIO, path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrOutputIO, path, err)
	}
	return nil
}

// render validates opts and produces the complete document.
func (e *Emitter) render(b *Buckets, opts RenderOptions) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buckets", ErrInvalidLayout)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	doc, err := e.document(b, opts)
	if err != nil {
		return nil, err
	}

	renderer := e.latex
	if opts.Format == FormatMarkdown {
		renderer = e.markdown
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}
	return buf.Bytes(), nil
}

// document maps buckets to sections. The single-mode section is labelled
// with the date stamp, split sections with their bucket name.
func (e *Emitter) document(b *Buckets, opts RenderOptions) (*pipeline.Document, error) {
	var date string
	if b.Mode != ModeSplitTwo {
		var err error
		date, err = dateutil.ResolveDate(opts.Date, e.now())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
		}
	}

	doc := &pipeline.Document{
		Font:     opts.Font,
		FontSize: opts.FontSize,
		Columns:  opts.Columns,
		Raw:      opts.Raw,
		Sections: make([]pipeline.Section, 0, len(b.List)),
	}
	for _, bucket := range b.List {
		label := bucket.Name
		if b.Mode != ModeSplitTwo {
			label = date
		}
		doc.Sections = append(doc.Sections, pipeline.Section{
			Title: opts.Title,
			Label: label,
			Items: bucket.Items,
		})
	}
	return doc, nil
}
