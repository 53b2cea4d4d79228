package grocerylist

import (
	"fmt"
	"strings"
)

// Mode selects how items are distributed into buckets.
type Mode string

// Supported modes.
const (
	ModeSingle   Mode = "single"
	ModeSplitTwo Mode = "split-two"
)

// Modes lists the supported modes in display order.
func Modes() []Mode {
	return []Mode{ModeSingle, ModeSplitTwo}
}

// ParseMode converts a user-supplied string to a Mode (case-insensitive).
// An empty string selects ModeSingle.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSingle:
		return ModeSingle, nil
	case ModeSplitTwo:
		return ModeSplitTwo, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Format selects the output document format.
type Format string

// Supported formats.
const (
	FormatTeX      Format = "tex"
	FormatMarkdown Format = "md"
)

// ParseFormat converts a user-supplied string to a Format (case-insensitive).
// An empty string selects FormatTeX.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatTeX:
		return FormatTeX, nil
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return "tex"
}

// AllBucket is the name of the bucket holding every item.
const AllBucket = "All"

// Default per-person bucket names.
const (
	DefaultFirstName  = "A"
	DefaultSecondName = "B"
)

// Names are the display names of the two split-two buckets.
// The zero value means "A" and "B".
type Names struct {
	First  string
	Second string
}

// ParseNames parses a "first,second" pair. An empty string gives the zero value.
func ParseNames(s string) (Names, error) {
	if strings.TrimSpace(s) == "" {
		return Names{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Names{}, fmt.Errorf("%w: %q (want two comma-separated names)", ErrInvalidNames, s)
	}
	n := Names{First: strings.TrimSpace(parts[0]), Second: strings.TrimSpace(parts[1])}
	return n, n.Validate()
}

// orDefault fills in the default names when n is the zero value.
func (n Names) orDefault() Names {
	if n == (Names{}) {
		return Names{First: DefaultFirstName, Second: DefaultSecondName}
	}
	return n
}

// Validate checks that both names are set, distinct and not the "All" bucket.
// The zero value is valid.
func (n Names) Validate() error {
	if n == (Names{}) {
		return nil
	}
	if n.First == "" || n.Second == "" {
		return fmt.Errorf("%w: both names must be set", ErrInvalidNames)
	}
	if n.First == n.Second {
		return fmt.Errorf("%w: names must differ, got %q twice", ErrInvalidNames, n.First)
	}
	if n.First == AllBucket || n.Second == AllBucket {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidNames, AllBucket)
	}
	return nil
}

// Bucket is a named, ordered group of items rendered as one section.
type Bucket struct {
	Name  string
	Items []string
}

// Buckets is the result of Partition.
type Buckets struct {
	Mode Mode
	List []Bucket // Render order: All first
}

// Get returns the bucket with the given name.
func (b *Buckets) Get(name string) (Bucket, bool) {
	for _, bucket := range b.List {
		if bucket.Name == name {
			return bucket, true
		}
	}
	return Bucket{}, false
}

// All returns the bucket holding every item.
func (b *Buckets) All() Bucket {
	all, _ := b.Get(AllBucket)
	return all
}

// Document defaults and bounds.
const (
	DefaultTitle    = "Grocery List"
	DefaultFont     = "Andika"
	DefaultFontSize = 12
	DefaultColumns  = 2
	MinFontSize     = 10
	MaxFontSize     = 12
	MinColumns      = 1
	MaxColumns      = 4
)

// RenderOptions controls how buckets are rendered.
// Zero values select the defaults.
type RenderOptions struct {
	Title    string // Heading text (default "Grocery List")
	Date     string // "auto", "auto:FORMAT", preset or literal (default YYYYMMDD of now)
	Font     string // Main font (default "Andika")
	FontSize int    // 10, 11 or 12 points (default 12)
	Columns  int    // 1-4 list columns (default 2)
	Raw      bool   // Emit items verbatim, without LaTeX escaping
	Format   Format // Output format (default tex)
}

// withDefaults returns a copy of o with zero values replaced by defaults.
func (o RenderOptions) withDefaults() RenderOptions {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Font == "" {
		o.Font = DefaultFont
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.Format == "" {
		o.Format = FormatTeX
	}
	return o
}

// Validate checks layout bounds and the format. Zero values are valid.
func (o RenderOptions) Validate() error {
	if o.FontSize != 0 && (o.FontSize < MinFontSize || o.FontSize > MaxFontSize) {
		return fmt.Errorf("%w: font size %d (must be between %d and %d)", ErrInvalidLayout, o.FontSize, MinFontSize, MaxFontSize)
	}
	if o.Columns != 0 && (o.Columns < MinColumns || o.Columns > MaxColumns) {
		return fmt.Errorf("%w: columns %d (must be between %d and %d)", ErrInvalidLayout, o.Columns, MinColumns, MaxColumns)
	}
	if strings.ContainsAny(o.Font, "{}\\\n") {
		return fmt.Errorf("%w: font name %q", ErrInvalidLayout, o.Font)
	}
	switch o.Format {
	case "", FormatTeX, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, o.Format)
	}
	return nil
}
