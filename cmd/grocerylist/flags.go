package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// splitFlags holds bucket distribution flags.
type splitFlags struct {
	mode  string
	names string
}

// documentFlags holds document appearance flags.
type documentFlags struct {
	title    string
	date     string
	font     string
	fontSize int
	columns  int
}

// inputFlags holds item handling flags.
type inputFlags struct {
	skipBlank bool
	raw       bool
}

// assetFlags holds template selection flags.
type assetFlags struct {
	template  string // Template set name
	assetPath string // Directory with custom template sets
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	output   string
	format   string
	workers  int
	watch    bool
	split    splitFlags
	document documentFlags
	input    inputFlags
	assets   assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and debug logs")
}

// addSplitFlags adds bucket distribution flags to a FlagSet.
func addSplitFlags(fs *flag.FlagSet, f *splitFlags) {
	fs.StringVarP(&f.mode, "mode", "m", "", "single or split-two (default single)")
	fs.StringVar(&f.names, "names", "", "split-two bucket names, e.g. Alice,Bob (default A,B)")
}

// addDocumentFlags adds document appearance flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "heading text (default \"Grocery List\")")
	fs.StringVar(&f.date, "date", "", "date stamp: \"auto\", \"auto:FORMAT\", or literal")
	fs.StringVar(&f.font, "font", "", "main font (default Andika)")
	fs.IntVar(&f.fontSize, "font-size", 0, "font size in points: 10, 11, 12 (default 12)")
	fs.IntVar(&f.columns, "columns", 0, "list columns 1-4 (default 2)")
}

// addInputFlags adds item handling flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.BoolVar(&f.skipBlank, "skip-blank", false, "drop empty and whitespace-only lines")
	fs.BoolVar(&f.raw, "raw", false, "do not escape LaTeX special characters")
}

// addAssetFlags adds template selection flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.template, "template", "", "template set name (default, compact)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom template sets")
}

// parseGenerateFlags parses generate command flags and returns positional args.
// Usage goes to usageOut on -h or a parse error.
func parseGenerateFlags(args []string, usageOut io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &generateFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: tex, md (default tex)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.watch, "watch", false, "regenerate when an input changes")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addSplitFlags(fs, &f.split)
	addDocumentFlags(fs, &f.document)
	addInputFlags(fs, &f.input)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printGenerateUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
