package grocerylist

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-grocerylist/internal/assets"
	"github.com/alnah/go-grocerylist/internal/fileutil"
)

// Job describes one input file to turn into a document.
type Job struct {
	InputPath  string
	OutputPath string // Empty = derived from InputPath with OutputPath
	Mode       Mode // Empty = ModeSingle
	Names      Names
	SkipBlank  bool // Drop empty and whitespace-only lines before partitioning
	Render     RenderOptions
}

// Result describes a generated document.
type Result struct {
	InputPath  string
	OutputPath string
	Buckets    *Buckets
	ItemCount  int
	Duration   time.Duration
}

// Generator runs read, partition and emit for single input files.
// Create with NewGenerator. A Generator is safe for concurrent use.
type Generator struct {
	emitter *Emitter
	logger  *zap.Logger
}

type generatorConfig struct {
	templateSet string
	assetPath   string
	now         func() time.Time
	logger      *zap.Logger
}

// Option configures a Generator.
type Option func(*generatorConfig)

// WithTemplateSet selects the document template set by name.
func WithTemplateSet(name string) Option {
	return func(c *generatorConfig) {
		if name != "" {
			c.templateSet = name
		}
	}
}

// WithAssetPath adds a directory of custom template sets.
func WithAssetPath(path string) Option {
	return func(c *generatorConfig) {
		c.assetPath = path
	}
}

// WithClock sets the clock used for date stamps.
func WithClock(now func() time.Time) Option {
	return func(c *generatorConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for diagnostic output (default: no-op).
func WithLogger(logger *zap.Logger) Option {
	return func(c *generatorConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewGenerator creates a Generator with default configuration.
// Returns error if the asset path is invalid or the template cannot be
// loaded or parsed.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := generatorConfig{
		templateSet: assets.DefaultTemplateSetName,
		now:         time.Now,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	emitter, err := NewEmitter(
		WithTemplate(cfg.templateSet),
		WithTemplateDir(cfg.assetPath),
		WithNow(cfg.now),
	)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("generator ready",
		zap.String("template", cfg.templateSet),
		zap.String("assetPath", cfg.assetPath))

	return &Generator{emitter: emitter, logger: cfg.logger}, nil
}

// GenerateFile reads job.InputPath, partitions its items and writes the
// document. Nothing is written when reading or partitioning fails, and the
// input file is never overwritten.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) GenerateFile(ctx context.Context, job Job) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	outputPath := job.OutputPath
	if outputPath == "" {
		outputPath = OutputPath(job.InputPath, job.Render.Format)
	}
	if fileutil.SamePath(job.InputPath, outputPath) {
		return nil, fmt.Errorf("%w: %s", ErrOutputIsInput, job.InputPath)
	}

	log := g.logger.With(zap.String("input", job.InputPath), zap.String("output", outputPath))

	items, err := ReadItems(job.InputPath)
	if err != nil {
		return nil, err
	}
	read := len(items)
	if job.SkipBlank {
		items = SkipBlank(items)
	}
	log.Debug("read items", zap.Int("lines", read), zap.Int("items", len(items)))

	mode := job.Mode
	if mode == "" {
		mode = ModeSingle
	}
	buckets, err := Partition(items, mode, job.Names)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := g.emitter.EmitFile(outputPath, buckets, job.Render); err != nil {
		return nil, err
	}

	result = &Result{
		InputPath:  job.InputPath,
		OutputPath: outputPath,
		Buckets:    buckets,
		ItemCount:  len(items),
		Duration:   time.Since(start),
	}
	log.Debug("wrote document",
		zap.String("mode", string(mode)),
		zap.Int("sections", len(buckets.List)),
		zap.Duration("duration", result.Duration))
	return result, nil
}
