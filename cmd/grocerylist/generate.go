package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-grocerylist"
	"github.com/alnah/go-grocerylist/internal/config"
	"github.com/alnah/go-grocerylist/internal/fileutil"
	"github.com/alnah/go-grocerylist/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoListFiles        = errors.New("no list files found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrAmbiguousOutput    = errors.New("output file given for several inputs")
)

// MaxWorkers caps --workers.
const MaxWorkers = 64

// settings is the resolved configuration for one generate run.
type settings struct {
	mode      grocerylist.Mode
	names     grocerylist.Names
	format    grocerylist.Format
	render    grocerylist.RenderOptions
	skipBlank bool
}

// hintedError appends an actionable hint to an error message.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() + e.hint }
func (e *hintedError) Unwrap() error { return e.err }

// withHint wraps err with hint. Empty hints leave err unchanged.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}

// runGenerate orchestrates one generate invocation: configuration, input
// discovery, batch generation, and optionally watch mode.
func runGenerate(ctx context.Context, positional []string, flags *generateFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	// Load configuration
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return withHint(fmt.Errorf("loading config: %w", err), configHint(err, configName))
		}
		cfg = loaded
	}

	// flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	s, err := buildSettings(cfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputs, err := resolveInputs(positional, cfg)
	if err != nil {
		return err
	}
	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	targets, err := discoverTargets(inputs, outputDir, s.format)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("%w in %v (looked for %v)", ErrNoListFiles, inputs, listExtensions)
	}
	if len(targets) > 1 && isOutputFile(outputDir) {
		return fmt.Errorf("%w: %s", ErrAmbiguousOutput, outputDir)
	}

	logger := newLogger(flags.common.verbose, env.Stderr)
	defer func() { _ = logger.Sync() }()

	// One timestamp for the whole batch so every document carries the same date
	now := env.Now()
	gen, err := newGenerator(cfg, func() time.Time { return now }, logger)
	if err != nil {
		return err
	}

	jobs := make([]grocerylist.Job, len(targets))
	for i, t := range targets {
		jobs[i] = s.job(t)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	logger.Sugar().Debugf("generating %d list(s) with %d worker(s)", len(jobs), workers)

	results := generateBatch(ctx, gen, jobs, workers, outputDir != "")
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)

	// Watch mode still reports a batch where nothing could be generated
	if failed > 0 && (!flags.watch || failed == len(results)) {
		if len(results) == 1 {
			return results[0].Err
		}
		return fmt.Errorf("%d of %d list(s) failed: %w", failed, len(results), firstError(results))
	}

	if flags.watch {
		// Regenerations are stamped with the date they run on
		watchGen, err := newGenerator(cfg, env.Now, logger)
		if err != nil {
			return err
		}
		return watchJobs(ctx, watchGen, jobs, env, flags.common.quiet)
	}
	return nil
}

// newGenerator builds the generator for cfg's template settings.
func newGenerator(cfg *config.Config, now func() time.Time, logger *zap.Logger) (*grocerylist.Generator, error) {
	gen, err := grocerylist.NewGenerator(
		grocerylist.WithTemplateSet(cfg.Template),
		grocerylist.WithAssetPath(cfg.Assets.BasePath),
		grocerylist.WithClock(now),
		grocerylist.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, grocerylist.ErrTemplateNotFound) {
			err = withHint(err, hints.ForTemplateNotFound(grocerylist.TemplateNames(cfg.Assets.BasePath)))
		}
		return nil, err
	}
	return gen, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.split.mode != "" {
		cfg.Mode = flags.split.mode
	}
	if flags.split.names != "" {
		cfg.Split.Names = splitNames(flags.split.names)
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.assets.template != "" {
		cfg.Template = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}
	if flags.document.font != "" {
		cfg.Document.Font = flags.document.font
	}
	if flags.document.fontSize != 0 {
		cfg.Document.FontSize = flags.document.fontSize
	}
	if flags.document.columns != 0 {
		cfg.Document.Columns = flags.document.columns
	}
	if flags.input.skipBlank {
		cfg.Input.SkipBlank = true
	}
	if flags.input.raw {
		cfg.Input.Raw = true
	}
}

// buildSettings converts the merged config into library types.
func buildSettings(cfg *config.Config) (*settings, error) {
	mode, err := grocerylist.ParseMode(cfg.Mode)
	if err != nil {
		modes := make([]string, 0, 2)
		for _, m := range grocerylist.Modes() {
			modes = append(modes, string(m))
		}
		return nil, withHint(err, hints.ForInvalidMode(modes))
	}

	format, err := grocerylist.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	var names grocerylist.Names
	if len(cfg.Split.Names) == 2 {
		names = grocerylist.Names{First: cfg.Split.Names[0], Second: cfg.Split.Names[1]}
		if err := names.Validate(); err != nil {
			return nil, err
		}
	}

	render := grocerylist.RenderOptions{
		Title:    cfg.Document.Title,
		Date:     cfg.Document.Date,
		Font:     cfg.Document.Font,
		FontSize: cfg.Document.FontSize,
		Columns:  cfg.Document.Columns,
		Raw:      cfg.Input.Raw,
		Format:   format,
	}
	if err := render.Validate(); err != nil {
		return nil, err
	}

	return &settings{
		mode:      mode,
		names:     names,
		format:    format,
		render:    render,
		skipBlank: cfg.Input.SkipBlank,
	}, nil
}

// job builds the library job for one discovered target.
func (s *settings) job(t target) grocerylist.Job {
	return grocerylist.Job{
		InputPath:  t.InputPath,
		OutputPath: t.OutputPath,
		Mode:       s.mode,
		Names:      s.names,
		SkipBlank:  s.skipBlank,
		Render:     s.render,
	}
}

// resolveInputs returns the positional inputs, or the configured default
// input directory when none are given.
func resolveInputs(positional []string, cfg *config.Config) ([]string, error) {
	if len(positional) > 0 {
		return positional, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, fmt.Errorf("%w: pass a list file or set input.defaultDir in config", ErrNoInput)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > environment > GOMAXPROCS (set by automaxprocs).
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return min(envWorkers, MaxWorkers)
	}
	return max(1, runtime.GOMAXPROCS(0))
}

// configHint returns the hint for a config loading failure.
func configHint(err error, name string) string {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return ""
	}
	if fileutil.IsFilePath(name) {
		return hints.ForConfigNotFound([]string{name})
	}
	return hints.ForConfigNotFound(config.CandidatePaths(name))
}

// hintFor returns the hint for a per-file generation failure.
func hintFor(err error) string {
	switch {
	case errors.Is(err, grocerylist.ErrInputNotFound):
		var path string
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			path = pathErr.Path
		}
		return hints.ForInputNotFound(path)
	case errors.Is(err, grocerylist.ErrInputDecode):
		return hints.ForInputDecode()
	case errors.Is(err, grocerylist.ErrOutputIsInput):
		return hints.ForOutputIsInput()
	case errors.Is(err, grocerylist.ErrOutputNotWritable):
		return hints.ForOutputDirectory()
	}
	return ""
}
