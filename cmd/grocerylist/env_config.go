package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-grocerylist/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "GROCERYLIST_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // GROCERYLIST_CONFIG: config file name or path
	Mode       string // GROCERYLIST_MODE: single, split-two
	Format     string // GROCERYLIST_FORMAT: tex, md
	Names      string // GROCERYLIST_NAMES: "First,Second"
	Template   string // GROCERYLIST_TEMPLATE: template set name
	OutputDir  string // GROCERYLIST_OUTPUT_DIR: default output directory
	Workers    int    // GROCERYLIST_WORKERS: parallel workers
}

// knownEnvVars lists valid GROCERYLIST_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"GROCERYLIST_CONFIG":     true,
	"GROCERYLIST_MODE":       true,
	"GROCERYLIST_FORMAT":     true,
	"GROCERYLIST_NAMES":      true,
	"GROCERYLIST_TEMPLATE":   true,
	"GROCERYLIST_OUTPUT_DIR": true,
	"GROCERYLIST_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("GROCERYLIST_CONFIG"),
		Mode:       os.Getenv("GROCERYLIST_MODE"),
		Format:     os.Getenv("GROCERYLIST_FORMAT"),
		Names:      os.Getenv("GROCERYLIST_NAMES"),
		Template:   os.Getenv("GROCERYLIST_TEMPLATE"),
		OutputDir:  os.Getenv("GROCERYLIST_OUTPUT_DIR"),
	}

	// Invalid or non-positive values are ignored
	if workers := os.Getenv("GROCERYLIST_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized GROCERYLIST_* variables.
// Helps catch typos like GROCERYLIST_MOED.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// CLI flags are applied afterwards by mergeFlags, giving:
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Mode != "" {
		cfg.Mode = env.Mode
	}
	if env.Format != "" {
		cfg.Format = env.Format
	}
	if env.Names != "" {
		cfg.Split.Names = splitNames(env.Names)
	}
	if env.Template != "" {
		cfg.Template = env.Template
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}

// splitNames splits a "First,Second" list into trimmed names.
func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
