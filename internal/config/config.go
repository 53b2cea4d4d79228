package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/alnah/go-grocerylist/internal/dateutil"
	"github.com/alnah/go-grocerylist/internal/fileutil"
	"github.com/alnah/go-grocerylist/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength    = 100  // Document heading
	MaxFontLength     = 100  // Font family name
	MaxNameLength     = 50   // Split bucket name
	MaxTemplateLength = 64   // Template set name
	MaxPathLength     = 4096 // Directories and asset path
)

// Allowed numeric ranges.
const (
	MinFontSize = 10
	MaxFontSize = 12
	MinColumns  = 1
	MaxColumns  = 4
)

// AppDir is the directory name under the XDG config home.
const AppDir = "go-grocerylist"

// Config holds all configuration for list generation.
type Config struct {
	Mode     string         `yaml:"mode"`     // "single" or "split-two" (empty = single)
	Format   string         `yaml:"format"`   // "tex" or "md" (empty = tex)
	Template string         `yaml:"template"` // Template set name (empty = default)
	Document DocumentConfig `yaml:"document"`
	Split    SplitConfig    `yaml:"split"`
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// DocumentConfig defines what the rendered document looks like.
type DocumentConfig struct {
	Title    string `yaml:"title"`    // Heading text (empty = "Grocery List")
	Date     string `yaml:"date"`     // "auto", "auto:FORMAT", preset or literal
	Font     string `yaml:"font"`     // Main font (empty = Andika)
	FontSize int    `yaml:"fontSize"` // 10, 11 or 12 (0 = default)
	Columns  int    `yaml:"columns"`  // 1-4 (0 = default)
}

// SplitConfig defines the two per-person buckets of split-two mode.
type SplitConfig struct {
	Names []string `yaml:"names"` // Exactly two names when set
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	SkipBlank  bool   `yaml:"skipBlank"`  // Drop empty and whitespace-only lines
	Raw        bool   `yaml:"raw"`        // Do not escape LaTeX special characters
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case "", "single", "split-two":
	default:
		return fmt.Errorf("%w: mode %q (must be single or split-two)", ErrInvalidValue, c.Mode)
	}
	switch strings.ToLower(c.Format) {
	case "", "tex", "md", "markdown":
	default:
		return fmt.Errorf("%w: format %q (must be tex or md)", ErrInvalidValue, c.Format)
	}
	if err := validateFieldLength("template", c.Template, MaxTemplateLength); err != nil {
		return err
	}

	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.date", c.Document.Date, dateutil.MaxDateFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.font", c.Document.Font, MaxFontLength); err != nil {
		return err
	}
	if c.Document.FontSize != 0 && (c.Document.FontSize < MinFontSize || c.Document.FontSize > MaxFontSize) {
		return fmt.Errorf("%w: document.fontSize must be between %d and %d, got %d",
			ErrInvalidValue, MinFontSize, MaxFontSize, c.Document.FontSize)
	}
	if c.Document.Columns != 0 && (c.Document.Columns < MinColumns || c.Document.Columns > MaxColumns) {
		return fmt.Errorf("%w: document.columns must be between %d and %d, got %d",
			ErrInvalidValue, MinColumns, MaxColumns, c.Document.Columns)
	}

	if len(c.Split.Names) != 0 && len(c.Split.Names) != 2 {
		return fmt.Errorf("%w: split.names needs exactly 2 names, got %d", ErrInvalidValue, len(c.Split.Names))
	}
	for i, name := range c.Split.Names {
		if err := validateFieldLength(fmt.Sprintf("split.names[%d]", i), name, MaxNameLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: every field empty so that
// library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CandidatePaths returns the files searched for a config given by name,
// in order: current directory, then $XDG_CONFIG_HOME/go-grocerylist/,
// each with .yaml then .yml.
func CandidatePaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"", filepath.Join(xdg.ConfigHome, AppDir)}
	paths := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			if dir == "" {
				paths = append(paths, name+ext)
				continue
			}
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing candidate for name.
func resolveConfigPath(name string) (string, error) {
	triedPaths := CandidatePaths(name)
	for _, candidate := range triedPaths {
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
