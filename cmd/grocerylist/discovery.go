package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-grocerylist"
	"github.com/alnah/go-grocerylist/internal/fileutil"
)

// listExtensions are the file extensions picked up when walking a directory.
var listExtensions = []string{".txt", ".list"}

// target is one list file to generate, with its resolved output path.
type target struct {
	InputPath  string
	OutputPath string
}

// discoverTargets expands inputs into list files to generate.
// Directories are walked recursively for list files. Anything else is taken
// as a list file as is, so a missing path surfaces as an input error later.
func discoverTargets(inputs []string, outputDir string, format grocerylist.Format) ([]target, error) {
	var targets []target
	seen := make(map[string]bool)

	add := func(t target) {
		key := filepath.Clean(t.InputPath)
		if seen[key] {
			return
		}
		seen[key] = true
		targets = append(targets, t)
	}

	for _, input := range inputs {
		if !fileutil.DirExists(input) {
			add(target{
				InputPath:  input,
				OutputPath: grocerylist.ResolveOutputPath(input, outputDir, "", format),
			})
			continue
		}

		found, err := walkListFiles(input)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			add(target{
				InputPath:  path,
				OutputPath: grocerylist.ResolveOutputPath(path, outputDir, input, format),
			})
		}
	}

	return targets, nil
}

// walkListFiles returns the list files under dir in lexical order.
// Hidden directories are skipped.
func walkListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isListFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// isListFile reports whether path has a list file extension.
func isListFile(path string) bool {
	return slices.Contains(listExtensions, strings.ToLower(filepath.Ext(path)))
}

// isOutputFile reports whether outputDir names a single output file
// rather than a directory.
func isOutputFile(outputDir string) bool {
	return outputDir != "" && fileutil.Ext(outputDir) != "" && !fileutil.DirExists(outputDir)
}
