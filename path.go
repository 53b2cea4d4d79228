package grocerylist

import (
	"path/filepath"

	"github.com/alnah/go-grocerylist/internal/fileutil"
)

// OutputPath derives the output file from the input path by replacing its
// extension with the format's (".tex" or ".md"). Inputs without an
// extension get one appended; "list.csv" becomes "list.tex".
func OutputPath(inputPath string, format Format) string {
	return fileutil.ReplaceExt(inputPath, format.Extension())
}

// ResolveOutputPath places the output for inputPath.
//
//   - outputDir empty: next to the input (OutputPath)
//   - outputDir names a file (has an extension and is not an existing
//     directory): used as is
//   - otherwise: inside outputDir, keeping the input's path relative to
//     baseInputDir when one is given
func ResolveOutputPath(inputPath, outputDir, baseInputDir string, format Format) string {
	if outputDir == "" {
		return OutputPath(inputPath, format)
	}
	if fileutil.Ext(outputDir) != "" && !fileutil.DirExists(outputDir) {
		return outputDir
	}

	name := filepath.Base(OutputPath(inputPath, format))
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil && filepath.IsLocal(rel) {
			return filepath.Join(outputDir, OutputPath(rel, format))
		}
	}
	return filepath.Join(outputDir, name)
}
