// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-grocerylist/internal/fileutil"
)

// listExtensions are tried when an input path without extension is missing.
var listExtensions = []string{".txt", ".list"}

// ForInputNotFound returns hints for a missing input file.
// Suggests a sibling with a list extension when the user left it off.
func ForInputNotFound(path string) string {
	if path != "" && filepath.Ext(path) == "" {
		for _, ext := range listExtensions {
			if fileutil.FileExists(path + ext) {
				return format("did you mean " + path + ext + "?")
			}
		}
	}
	return format("check the path; the input is a plain-text file with one item per line")
}

// ForInputDecode returns hints for input that is not valid text.
func ForInputDecode() string {
	return format("save the list as UTF-8 text (UTF-16 needs a byte order mark)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-grocerylist/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForOutputIsInput returns hints when the output would overwrite the input.
func ForOutputIsInput() string {
	return format("rename the input or pass --output")
}

// ForTemplateNotFound returns hints listing the templates that do exist.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidMode returns hints for an unknown --mode value.
func ForInvalidMode(modes []string) string {
	return format("use --mode " + strings.Join(modes, " or "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
